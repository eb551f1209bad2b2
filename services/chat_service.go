package services

import "strings"

// chatRule maps trigger keywords to a canned reply. Rules are checked in
// order and the first hit wins, so more specific topics come first.
type chatRule struct {
	keywords []string
	reply    string
}

// ChatService answers the site's chat widget with scripted replies chosen by
// case-insensitive keyword matching.
type ChatService struct {
	greeting string
	rules    []chatRule
	fallback string
}

func NewChatService() *ChatService {
	return &ChatService{
		greeting: "Hello! Welcome to Kamulu Waters Hotel. How can I assist you today?",
		rules: []chatRule{
			{
				keywords: []string{"booking", "reservation", "book"},
				reply:    "You can make a reservation by visiting our Reservation page or calling us at +254 712 345 678. Would you like me to provide more information about our rooms?",
			},
			{
				keywords: []string{"room", "accommodation"},
				reply:    "We offer various room types including Deluxe Rooms, Family Rooms, and Executive Suites. Each room is equipped with modern amenities for your comfort. Would you like specific details about any room type?",
			},
			{
				keywords: []string{"price", "cost", "rate"},
				reply:    "Our room rates start from Ksh 5,000 per night, depending on the room type and season. For exact pricing, please check our Reservation page or contact our front desk.",
			},
			{
				keywords: []string{"location", "address", "direction"},
				reply:    "We are located in Kamulu, Kasarani Constituency, Nairobi, Kenya. You can find detailed directions on our Contact page.",
			},
			{
				keywords: []string{"check-in", "check out"},
				reply:    "Our standard check-in time is 2:00 PM and check-out time is 12:00 PM. Early check-in or late check-out can be arranged based on availability.",
			},
			{
				keywords: []string{"amenities", "facilities"},
				reply:    "We offer various amenities including a swimming pool, restaurant, bar, spa, fitness center, conference facilities, and free Wi-Fi throughout the property.",
			},
			{
				keywords: []string{"contact", "phone", "email"},
				reply:    "You can contact us at +254 712 345 678 or email us at info@kamuluwatershotel.co.ke. Our front desk is available 24/7 to assist you.",
			},
			{
				keywords: []string{"hello", "hi", "hey"},
				reply:    "Hello! How can I help you with Kamulu Waters Hotel today?",
			},
			{
				keywords: []string{"thank"},
				reply:    "You're welcome! Is there anything else I can help you with?",
			},
			{
				keywords: []string{"bye", "goodbye"},
				reply:    "Thank you for chatting with us. Have a great day! Feel free to return if you have more questions.",
			},
		},
		fallback: "Thank you for your message. If you have specific questions about our hotel, rooms, amenities, or booking process, please let me know and I'll be happy to assist you.",
	}
}

// Greeting is the widget's opening bubble.
func (s *ChatService) Greeting() string {
	return s.greeting
}

// Reply picks the canned response for a visitor message.
func (s *ChatService) Reply(message string) string {
	input := strings.ToLower(message)
	for _, rule := range s.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(input, kw) {
				return rule.reply
			}
		}
	}
	return s.fallback
}
