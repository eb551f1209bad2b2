package content

import "hotel-website/models"

// MenuItem is one orderable item on the food or drink menu.
type MenuItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"` // FOOD or DRINK
	Section     string  `json:"section"`  // menu heading, e.g. "Breakfast"
}

var FoodMenu = []MenuItem{
	{Name: "Kenyan Breakfast Platter", Description: "Eggs, sausage, mandazi, and chai.", Price: 600, Category: models.CategoryFood, Section: "Breakfast"},
	{Name: "Omena & Ugali", Description: "Traditional lake fish with ugali and greens.", Price: 600, Category: models.CategoryFood, Section: "Breakfast"},
	{Name: "Pancakes & Fruit", Description: "Served with honey and seasonal fruit.", Price: 600, Category: models.CategoryFood, Section: "Breakfast"},
	{Name: "Nyama Choma Platter", Description: "Roasted beef or goat with kachumbari.", Price: 600, Category: models.CategoryFood, Section: "Lunch"},
	{Name: "Chicken Biryani", Description: "Aromatic spiced rice with marinated chicken.", Price: 600, Category: models.CategoryFood, Section: "Lunch"},
	{Name: "Tilapia Fillet", Description: "Grilled or fried with ugali and greens.", Price: 600, Category: models.CategoryFood, Section: "Lunch"},
	{Name: "Beef Stew & Chapati", Description: "Slow-cooked beef with soft chapatis.", Price: 600, Category: models.CategoryFood, Section: "Dinner"},
	{Name: "Vegetable Curry", Description: "Served with rice or chapati.", Price: 600, Category: models.CategoryFood, Section: "Dinner"},
	{Name: "Grilled Chicken", Description: "With mashed potatoes and sautéed vegetables.", Price: 600, Category: models.CategoryFood, Section: "Dinner"},
	{Name: "Fresh Passion Juice", Description: "Cold-pressed and refreshing.", Price: 600, Category: models.CategoryDrink, Section: "Beverages"},
	{Name: "Dawa", Description: "A hot drink made with honey, lemon, and ginger.", Price: 600, Category: models.CategoryDrink, Section: "Beverages"},
	{Name: "Milkshake (Vanilla/Strawberry/Chocolate)", Description: "Thick and creamy milkshakes in multiple flavors.", Price: 600, Category: models.CategoryDrink, Section: "Beverages"},
	{Name: "Chocolate Cake", Description: "Rich, moist chocolate cake with fudge icing.", Price: 600, Category: models.CategoryFood, Section: "Desserts"},
	{Name: "Fruit Salad", Description: "Fresh mixed fruit topped with mint.", Price: 600, Category: models.CategoryFood, Section: "Desserts"},
	{Name: "Ice Cream (2 Scoops)", Description: "Choice of vanilla, strawberry, or chocolate.", Price: 600, Category: models.CategoryFood, Section: "Desserts"},
}

var DrinkMenu = []MenuItem{
	{Name: "Classic Mojito", Description: "White rum, mint, lime, sugar, and soda water.", Price: 600, Category: models.CategoryDrink, Section: "Cocktails"},
	{Name: "Dawa", Description: "Vodka, honey, lime, and crushed ice.", Price: 600, Category: models.CategoryDrink, Section: "Cocktails"},
	{Name: "Tequila Sunrise", Description: "Tequila, orange juice, grenadine syrup.", Price: 600, Category: models.CategoryDrink, Section: "Cocktails"},
	{Name: "Chardonnay (Glass/Bottle)", Description: "Crisp white wine with hints of citrus.", Price: 600, Category: models.CategoryDrink, Section: "Wines"},
	{Name: "Merlot (Glass/Bottle)", Description: "Smooth red wine with soft tannins.", Price: 600, Category: models.CategoryDrink, Section: "Wines"},
	{Name: "Johnnie Walker Black Label", Description: "Rich, smoky Scotch whisky.", Price: 600, Category: models.CategoryDrink, Section: "Spirits"},
	{Name: "Tanqueray Gin", Description: "London dry gin with strong juniper notes.", Price: 600, Category: models.CategoryDrink, Section: "Spirits"},
	{Name: "Hennessy VS", Description: "Smooth Cognac with vanilla and oak.", Price: 600, Category: models.CategoryDrink, Section: "Spirits"},
	{Name: "Tusker Lager", Description: "Kenya's classic lager.", Price: 600, Category: models.CategoryDrink, Section: "Beers"},
	{Name: "White Cap Lager", Description: "Smooth and refreshing lager.", Price: 600, Category: models.CategoryDrink, Section: "Beers"},
	{Name: "Heineken", Description: "Premium imported lager.", Price: 600, Category: models.CategoryDrink, Section: "Beers"},
	{Name: "Mocktail Punch", Description: "Fruity blend of tropical juices.", Price: 600, Category: models.CategoryDrink, Section: "Non-Alcoholic"},
}
