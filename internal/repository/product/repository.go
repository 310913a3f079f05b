package product

import (
	"context"

	"storefront-demo/internal/domain"
)

// Repository is the durable source of the catalog. Listing order is catalog order.
type Repository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
