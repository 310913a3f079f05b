package chat

import (
	"math/rand"
	"strings"
	"sync"
)

// Categories returned by Classify.
const (
	CategoryHelp           = "help"
	CategoryRecommendation = "recommendation"
	CategoryPricing        = "pricing"
	CategoryShipping       = "shipping"
	CategoryDiscount       = "discount"
	CategoryReturns        = "returns"
	CategoryGreeting       = "greeting"
	CategoryGeneric        = "generic"
)

type pattern struct {
	category  string
	keywords  []string
	responses []string
}

// patterns is checked in order; the first row with a matching keyword wins.
var patterns = []pattern{
	{
		category: CategoryHelp,
		keywords: []string{"help", "assistance", "support"},
		responses: []string{
			"I'm here to help! What specific information can I assist you with today?",
			"Our support team is ready. What questions do you have about our products or services?",
			"Need guidance? I'm your virtual assistant, ready to provide personalized recommendations.",
		},
	},
	{
		category: CategoryRecommendation,
		keywords: []string{"recommendation", "recommend", "suggest", "what should", "best product"},
		responses: []string{
			"Based on our current bestsellers, I recommend checking out our premium wireless headphones or ergonomic laptop stand.",
			"Our top-rated products include high-performance tech accessories and ergonomic office solutions.",
			"Looking for a great product? I can help you find something that matches your needs perfectly!",
		},
	},
	{
		category: CategoryPricing,
		keywords: []string{"pricing", "price", "cost", "expensive"},
		responses: []string{
			"We offer competitive pricing with high-quality products. Would you like to know more about our price ranges?",
			"Quality doesn't always mean expensive. We have options for every budget.",
			"Our pricing is transparent, and we offer great value for money across our product lines.",
		},
	},
	{
		category: CategoryShipping,
		keywords: []string{"shipping", "delivery", "arrive"},
		responses: []string{
			"We offer free shipping on orders over $50! Standard delivery takes 3-5 business days.",
			"Shipping is quick and reliable. Most orders are processed within 1-2 business days.",
			"Want to know more about our shipping options? I'm happy to provide details!",
		},
	},
	{
		category: CategoryDiscount,
		keywords: []string{"discount", "coupon", "promo"},
		responses: []string{
			"Great news! Use code WELCOME10 at checkout for 10% off your first order!",
		},
	},
	{
		category: CategoryReturns,
		keywords: []string{"return", "refund"},
		responses: []string{
			"Our return policy is simple: 30-day money-back guarantee, no questions asked!",
		},
	},
	{
		category: CategoryGreeting,
		keywords: []string{"hello", "hey", "good morning", "good evening"},
		responses: []string{
			"Hello there! How can I help with your shopping today?",
		},
	},
}

var genericResponses = []string{
	"Interesting point! How can I help you further?",
	"I'm listening. What else would you like to know?",
	"Our team is dedicated to providing the best shopping experience. How can I assist you today?",
	"I'm here to make your shopping experience smooth and enjoyable. What can I do for you?",
}

// GreetingText opens every new conversation.
const GreetingText = "Hi there! I'm your shopping assistant. How can I help you find the perfect products today?"

// LocalResponder answers from a fixed keyword table without any network access.
type LocalResponder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocalResponder uses rng to pick among candidate replies. A nil rng is seeded from the clock.
func NewLocalResponder(rng *rand.Rand) *LocalResponder {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &LocalResponder{rng: rng}
}

// Classify returns the category of the first table row whose keyword occurs in text.
func Classify(text string) string {
	category, _ := lookup(text)
	return category
}

// Candidates lists the possible replies for a category.
func Candidates(category string) []string {
	for _, p := range patterns {
		if p.category == category {
			return p.responses
		}
	}
	return genericResponses
}

func (r *LocalResponder) Respond(text string) string {
	_, responses := lookup(text)
	r.mu.Lock()
	idx := r.rng.Intn(len(responses))
	r.mu.Unlock()
	return responses[idx]
}

func lookup(text string) (string, []string) {
	lower := strings.ToLower(text)
	for _, p := range patterns {
		for _, k := range p.keywords {
			if strings.Contains(lower, k) {
				return p.category, p.responses
			}
		}
	}
	return CategoryGeneric, genericResponses
}
