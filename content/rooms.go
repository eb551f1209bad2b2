package content

// ShowcaseRoom is an entry in the accommodation page's static catalog. Live
// availability and pricing come from the reservation backend; this list is
// marketing copy only.
type ShowcaseRoom struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	SizeSqm     int      `json:"size_sqm"`
	BedType     string   `json:"bed_type"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
}

var ShowcaseRooms = []ShowcaseRoom{
	{
		ID:          1,
		Name:        "Standard Room",
		Description: "Cozy and comfortable room ideal for solo travelers or couples on a budget.",
		Price:       6500,
		Capacity:    2,
		SizeSqm:     25,
		BedType:     "1 Queen Bed",
		Image:       "/room1.avif",
		Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "TV", "Private Bathroom", "Work Desk"},
	},
	{
		ID:          2,
		Name:        "Deluxe Room",
		Description: "Spacious room with modern amenities and beautiful views of the surroundings.",
		Price:       8500,
		Capacity:    2,
		SizeSqm:     32,
		BedType:     "1 King Bed",
		Image:       "/room2.avif",
		Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Flat-screen TV", "Private Bathroom", "Coffee Maker", "Safe", "Minibar"},
	},
	{
		ID:          3,
		Name:        "Executive Suite",
		Description: "Luxurious suite with separate living area and premium amenities for a truly comfortable stay.",
		Price:       15000,
		Capacity:    2,
		SizeSqm:     48,
		BedType:     "1 King Bed",
		Image:       "/room3.avif",
		Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "55\" Smart TV", "Living Area", "Premium Bathroom", "Coffee Maker", "Safe", "Minibar", "Balcony"},
	},
	{
		ID:          4,
		Name:        "Family Room",
		Description: "Perfect for families, with spacious accommodation for up to 4 guests.",
		Price:       12000,
		Capacity:    4,
		SizeSqm:     45,
		BedType:     "1 King Bed + 2 Twin Beds",
		Image:       "/room4.avif",
		Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "Flat-screen TV", "Family Bathroom", "Coffee Maker", "Safe", "Refrigerator"},
	},
	{
		ID:          5,
		Name:        "Presidential Suite",
		Description: "Our most luxurious accommodation with expansive space and top-tier amenities for an unforgettable stay.",
		Price:       25000,
		Capacity:    4,
		SizeSqm:     75,
		BedType:     "1 King Bed + Sofa Bed",
		Image:       "/room5.avif",
		Amenities:   []string{"Free Wi-Fi", "Air Conditioning", "65\" Smart TV", "Separate Living Room", "Dining Area", "Luxury Bathroom with Jacuzzi", "Kitchenette", "Premium Minibar", "Private Balcony"},
	},
}
