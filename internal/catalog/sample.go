package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront-demo/internal/domain"
)

var sampleCreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// SampleProducts is the demo catalog used when no database is configured.
func SampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Premium Wireless Headphones",
			Price:       decimal.RequireFromString("149.99"),
			Description: "Premium noise-cancelling headphones with 30-hour battery life and ultra-comfortable design.",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Category:    "audio",
			Features:    []string{"noise-cancelling", "bluetooth", "30-hour battery"},
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Price:       decimal.RequireFromString("249.99"),
			Description: "Track your fitness, receive notifications, and more with this stylish smartwatch.",
			Image:       "https://images.unsplash.com/photo-1546868871-7041f2a55e12?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Category:    "wearables",
			Features:    []string{"fitness tracking", "notifications", "water resistant"},
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          "3",
			Name:        "Premium Sunglasses",
			Price:       decimal.RequireFromString("99.99"),
			Description: "UV protection with polarized lenses and lightweight, durable frame.",
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Category:    "accessories",
			Features:    []string{"polarized", "uv protection"},
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          "4",
			Name:        "Running Shoes",
			Price:       decimal.RequireFromString("129.99"),
			Description: "Responsive cushioning and breathable upper make these perfect for any runner.",
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-1.2.1&auto=format&fit=crop&w=500&q=60",
			Category:    "footwear",
			Features:    []string{"breathable", "cushioned"},
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          "5",
			Name:        "Ergonomic Keyboard",
			Price:       decimal.RequireFromString("89.99"),
			Description: "Split-layout mechanical keyboard with a padded wrist rest for long typing sessions.",
			Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?auto=format&fit=crop&w=500&q=60",
			Category:    "office",
			Features:    []string{"mechanical", "wrist rest", "wireless"},
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          "6",
			Name:        "Ergonomic Laptop Stand",
			Price:       decimal.RequireFromString("49.99"),
			Description: "Adjustable aluminium stand that raises your screen to eye level.",
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?auto=format&fit=crop&w=500&q=60",
			Category:    "office",
			Features:    []string{"adjustable", "aluminium"},
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          "7",
			Name:        "Kids Adventure Tablet",
			Price:       decimal.RequireFromString("119.99"),
			Description: "Durable tablet with a rubber bumper, educational games and parental controls.",
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?auto=format&fit=crop&w=500&q=60",
			Category:    "kids",
			Features:    []string{"parental controls", "educational games", "kid-safe"},
			CreatedAt:   sampleCreatedAt,
		},
	}
}
