package cart

import (
	"fmt"
	"strings"

	"storefront-demo/internal/domain"
)

// Describe renders a cart snapshot as plain text for the assistant's context.
func Describe(state domain.CartState) string {
	if len(state.Items) == 0 {
		return "The cart is empty."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "The cart contains %d item(s) totalling $%s:\n", state.TotalItems, state.TotalPrice.StringFixed(2))
	for _, it := range state.Items {
		fmt.Fprintf(&b, "- %s (id %s) x%d at $%s each\n", it.Name, it.ID, it.Quantity, it.Price.StringFixed(2))
	}
	return strings.TrimRight(b.String(), "\n")
}
