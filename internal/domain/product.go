package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an immutable catalog entry. Catalog updates replace products wholesale.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Features    []string        `json:"features,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// PriceRange bounds are inclusive. A nil bound is open.
type PriceRange struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

// Contains reports whether price lies within the range.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	if r.Min != nil && price.LessThan(*r.Min) {
		return false
	}
	if r.Max != nil && price.GreaterThan(*r.Max) {
		return false
	}
	return true
}
