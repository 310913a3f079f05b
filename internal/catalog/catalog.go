// Package catalog holds the purchasable product list and the pure query functions over it.
package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-demo/internal/domain"
)

// Catalog is the in-memory product list. Products are never mutated in place; Create
// prepends and Replace swaps the whole list.
type Catalog struct {
	mu       sync.RWMutex
	products []domain.Product
	now      func() time.Time
}

func New(products []domain.Product) *Catalog {
	c := &Catalog{now: time.Now}
	c.Replace(products)
	return c
}

// CreateInput carries the store-owner "create product" form.
type CreateInput struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
}

// List returns the products in catalog order.
func (c *Catalog) List() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create validates in and prepends the new product.
func (c *Catalog) Create(in CreateInput) (*domain.Product, error) {
	p, err := c.Build(in)
	if err != nil {
		return nil, err
	}
	c.Prepend(p)
	return &p, nil
}

// Build validates in and returns the product Create would add, without adding it.
func (c *Catalog) Build(in CreateInput) (domain.Product, error) {
	p, err := buildProduct(in)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = uuid.NewString()
	p.CreatedAt = c.now().UTC()
	return p, nil
}

func (c *Catalog) Prepend(p domain.Product) {
	c.mu.Lock()
	c.products = append([]domain.Product{p}, c.products...)
	c.mu.Unlock()
}

func (c *Catalog) Replace(products []domain.Product) {
	cp := make([]domain.Product, len(products))
	copy(cp, products)
	c.mu.Lock()
	c.products = cp
	c.mu.Unlock()
}

func buildProduct(in CreateInput) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	image := strings.TrimSpace(in.Image)
	rawPrice := strings.TrimSpace(in.Price)
	if name == "" || rawPrice == "" || description == "" || image == "" {
		return domain.Product{}, fmt.Errorf("%w: please fill in all fields and add an image", domain.ErrValidation)
	}
	price, err := decimal.NewFromString(rawPrice)
	if err != nil || !price.IsPositive() {
		return domain.Product{}, fmt.Errorf("%w: please enter a valid price greater than 0", domain.ErrValidation)
	}

	var features []string
	for _, f := range in.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	return domain.Product{
		Name:        name,
		Price:       price,
		Description: description,
		Image:       image,
		Category:    strings.ToLower(strings.TrimSpace(in.Category)),
		Features:    features,
	}, nil
}
