// Package content holds the site's static marketing data. The pages
// themselves are rendered by the front-end; this side only serves the copy.
package content

// Amenity is one entry on the amenities page.
type Amenity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Testimonial is a guest quote shown on the home page.
type Testimonial struct {
	Name  string `json:"name"`
	Quote string `json:"quote"`
}

// Page is a block of marketing copy addressed by slug.
type Page struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Tagline  string   `json:"tagline"`
	Sections []string `json:"sections,omitempty"`
}

// Contact holds the hotel's contact details.
type Contact struct {
	Phone    string   `json:"phone"`
	Emails   []string `json:"emails"`
	Address  string   `json:"address"`
	MapQuery string   `json:"map_query"`
}

var ContactDetails = Contact{
	Phone:    "+254 712 345 678",
	Emails:   []string{"info@kamuluwatershotel.co.ke", "reservations@kamuluwatershotel.co.ke"},
	Address:  "Kamulu, Kasarani Constituency, Nairobi, Kenya",
	MapQuery: "Kamulu, Nairobi",
}

var AmenitiesList = []Amenity{
	{Title: "Restaurant", Description: "Enjoy delicious local and international cuisine prepared by our expert chefs."},
	{Title: "Bar & Lounge", Description: "Relax with your favorite drink in our comfortable lounge area."},
	{Title: "Free Wi-Fi", Description: "Stay connected with complimentary high-speed internet throughout the hotel."},
	{Title: "Parking", Description: "Secure on-site parking available for all our guests."},
	{Title: "Event Space", Description: "Perfect venues for weddings, celebrations and special occasions."},
	{Title: "Meeting Rooms", Description: "Professional spaces for business meetings, seminars, and conferences."},
	{Title: "Laundry Service", Description: "Keep your clothes fresh with our prompt laundry service."},
	{Title: "Conference Room", Description: "Modern meeting facilities for business events and special occasions."},
}

var Testimonials = []Testimonial{
	{Name: "John Kamau", Quote: "Exceptional service and comfortable rooms. The staff went above and beyond to make my business trip a success. I'll definitely be returning on my next visit to Nairobi."},
	{Name: "Jane Wanjiku", Quote: "Our family had an amazing stay at Kamulu Waters Hotel. The rooms were spacious, the food was delicious, and the location was perfect for exploring the city."},
	{Name: "David Omondi", Quote: "A perfect weekend retreat! The peaceful environment and excellent amenities made our short stay very relaxing. We particularly enjoyed the restaurant's local dishes."},
}

// GalleryImages lists the gallery page assets by their public URL paths.
var GalleryImages = []string{
	"/home.avif",
	"/room1.avif",
	"/room2.avif",
	"/room3.avif",
	"/room4.avif",
	"/room5.avif",
	"/reservation-hero.jpg",
	"/phone.webp",
}

var pages = map[string]Page{
	"home": {
		Slug:    "home",
		Title:   "Kamulu Waters Hotel",
		Tagline: "Experience comfort and Kenyan hospitality in the heart of Kamulu",
		Sections: []string{
			"Discover our range of comfortable and elegant rooms and suites.",
			"Dine at our restaurant serving local and international cuisine.",
			"Host your wedding, conference or special occasion in our event spaces.",
		},
	},
	"about": {
		Slug:    "about",
		Title:   "About Us",
		Tagline: "A Legacy of Kenyan Hospitality",
		Sections: []string{
			"Kamulu Waters Hotel has grown from a family venture into one of the area's most welcoming stays, built on warm service and attention to detail.",
			"Our vision is to be the preferred home away from home for travellers to Nairobi's east, and our mission is to deliver memorable stays at honest prices.",
		},
	},
	"amenities": {
		Slug:    "amenities",
		Title:   "Our Amenities",
		Tagline: "Everything you need for a comfortable stay",
	},
	"gallery": {
		Slug:    "gallery",
		Title:   "Gallery",
		Tagline: "A look around Kamulu Waters Hotel",
	},
	"contact": {
		Slug:    "contact",
		Title:   "Contact Us",
		Tagline: "Our front desk is available 24/7",
	},
}

// PageBySlug looks up a marketing page.
func PageBySlug(slug string) (Page, bool) {
	p, ok := pages[slug]
	return p, ok
}
