// Package seed writes the sample catalog into the products table.
package seed

import (
	"context"
	"fmt"

	"storefront-demo/internal/catalog"
	"storefront-demo/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// Apply upserts the sample catalog. Rows are written last-to-first so the first sample
// product lists first. It is idempotent.
func Apply(ctx context.Context, w ProductWriter) (int, error) {
	products := catalog.SampleProducts()
	for i := len(products) - 1; i >= 0; i-- {
		if _, err := w.Upsert(ctx, products[i]); err != nil {
			return len(products) - 1 - i, fmt.Errorf("upsert product %s: %w", products[i].ID, err)
		}
	}
	return len(products), nil
}
