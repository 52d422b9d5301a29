package chat

import "strings"

// Responder is the rule-based assistant behind /api/chat. It matches keywords
// against a fixed rule table; no store access, no external calls.
type Responder struct {
	rules    []rule
	fallback string
}

type rule struct {
	keywords []string
	reply    string
}

func NewResponder() *Responder {
	return &Responder{
		rules: []rule{
			{
				keywords: []string{"hello", "hi", "namaste", "hey"},
				reply:    "Hello! I can help you find rides, post a ride, or raise an SOS alert. What would you like to do?",
			},
			{
				keywords: []string{"book", "booking", "reserve", "seat"},
				reply:    "To book a ride, open Find Ride, search by source and destination, pick a ride and choose how many seats you need.",
			},
			{
				keywords: []string{"search", "find", "ride to", "travel"},
				reply:    "Use the Find Ride page: enter your source city, destination city and travel date, and I will list matching active rides.",
			},
			{
				keywords: []string{"post", "offer", "driver", "publish"},
				reply:    "To post a ride, log in and open Post Ride. You will need your route, departure time, vehicle details, capacity and price per seat.",
			},
			{
				keywords: []string{"price", "cost", "fare", "amount"},
				reply:    "The fare is price per seat times the number of seats you book. The total shown at booking time is final.",
			},
			{
				keywords: []string{"sos", "emergency", "help me", "danger"},
				reply:    "If you are in danger, press the red SOS button. Your location is recorded immediately and flagged as an active alert.",
			},
			{
				keywords: []string{"cancel"},
				reply:    "Booking cancellation is not available yet. Please contact the driver on the number shown in your booking.",
			},
		},
		fallback: "Sorry, I did not get that. You can ask me about finding rides, posting a ride, booking seats, or SOS alerts.",
	}
}

func (r *Responder) Reply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return r.fallback
	}
	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.reply
			}
		}
	}
	return r.fallback
}
