package catalog

import (
	"strings"

	"storefront-demo/internal/domain"
)

// Age bands used by GetRecommendedProducts.
const (
	kidAgeLimit  = 12
	teenAgeLimit = 18
)

var (
	kidMarkers         = []string{"kid", "child", "toy"}
	kidPromoCategories = []string{"kids", "wearables"}
	teenCategories     = []string{"audio", "wearables"}
)

// RecommendOptions narrows GetRecommendedProducts. Zero values widen the result.
type RecommendOptions struct {
	Age        *int
	Category   string
	PriceRange *domain.PriceRange
}

// SearchProducts returns, in catalog order, the products whose name, description or any
// feature contains query case-insensitively. A non-empty category must match exactly.
func SearchProducts(products []domain.Product, query, category string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []domain.Product{}
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// GetRecommendedProducts filters by category and price and then moves the products that
// suit the age band to the front, keeping relative order inside each group.
func GetRecommendedProducts(products []domain.Product, opts RecommendOptions) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if opts.PriceRange != nil && !opts.PriceRange.Contains(p.Price) {
			continue
		}
		filtered = append(filtered, p)
	}

	if opts.Age == nil {
		return filtered
	}
	switch age := *opts.Age; {
	case age < kidAgeLimit:
		return promote(filtered, isKidFriendly)
	case age < teenAgeLimit:
		return promote(filtered, isTrending)
	default:
		return filtered
	}
}

func matchesQuery(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func promote(products []domain.Product, front func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	var rest []domain.Product
	for _, p := range products {
		if front(p) {
			out = append(out, p)
		} else {
			rest = append(rest, p)
		}
	}
	return append(out, rest...)
}

func isKidFriendly(p domain.Product) bool {
	if containsFold(kidPromoCategories, p.Category) {
		return true
	}
	fields := append([]string{p.Name}, p.Features...)
	for _, f := range fields {
		lower := strings.ToLower(f)
		for _, m := range kidMarkers {
			if strings.Contains(lower, m) {
				return true
			}
		}
	}
	return false
}

func isTrending(p domain.Product) bool {
	return containsFold(teenCategories, p.Category)
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
