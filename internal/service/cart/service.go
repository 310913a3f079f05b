package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront-demo/internal/domain"
)

// Service applies shopper actions to a session cart, resolving product ids against the catalog.
type Service struct {
	products productLookup
}

type productLookup interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// Cart is the session-owned store the service mutates.
type Cart interface {
	AddItem(p domain.Product)
	RemoveItem(id string)
	UpdateQuantity(id string, n int)
	Clear()
	ToggleCart() bool
	Snapshot() domain.CartState
}

func New(products productLookup) *Service {
	return &Service{products: products}
}

type UpdateInput struct {
	Actions []UpdateAction `json:"actions"`
}

type UpdateAction struct {
	Action     string `json:"action"`
	ProductID  string `json:"productId,omitempty"`
	LineItemID string `json:"lineItemId,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
}

func (s *Service) Get(_ context.Context, c Cart) domain.CartState {
	return c.Snapshot()
}

// Add puts one unit of the product into the cart.
func (s *Service) Add(ctx context.Context, c Cart, productID string) (domain.CartState, error) {
	return s.Update(ctx, c, UpdateInput{Actions: []UpdateAction{{Action: "addLineItem", ProductID: productID}}})
}

// ChangeQuantity sets the quantity of a line; zero or less removes it. Unknown lines are ignored.
func (s *Service) ChangeQuantity(ctx context.Context, c Cart, lineItemID string, quantity int) (domain.CartState, error) {
	return s.Update(ctx, c, UpdateInput{Actions: []UpdateAction{{Action: "changeLineItemQuantity", LineItemID: lineItemID, Quantity: quantity}}})
}

func (s *Service) Remove(ctx context.Context, c Cart, lineItemID string) (domain.CartState, error) {
	return s.Update(ctx, c, UpdateInput{Actions: []UpdateAction{{Action: "removeLineItem", LineItemID: lineItemID}}})
}

func (s *Service) Clear(_ context.Context, c Cart) domain.CartState {
	c.Clear()
	return c.Snapshot()
}

func (s *Service) Toggle(_ context.Context, c Cart) domain.CartState {
	c.ToggleCart()
	return c.Snapshot()
}

type step func(Cart)

// Update validates every action before applying any, so a rejected batch leaves the cart untouched.
func (s *Service) Update(ctx context.Context, c Cart, in UpdateInput) (domain.CartState, error) {
	if len(in.Actions) == 0 {
		return domain.CartState{}, fmt.Errorf("%w: actions required", domain.ErrValidation)
	}

	steps := make([]step, 0, len(in.Actions))
	for _, action := range in.Actions {
		st, err := s.plan(ctx, action)
		if err != nil {
			return domain.CartState{}, err
		}
		steps = append(steps, st)
	}
	for _, st := range steps {
		st(c)
	}
	return c.Snapshot(), nil
}

func (s *Service) plan(ctx context.Context, action UpdateAction) (step, error) {
	switch strings.ToLower(strings.TrimSpace(action.Action)) {
	case "addlineitem":
		id := strings.TrimSpace(action.ProductID)
		if id == "" {
			return nil, fmt.Errorf("%w: productId required", domain.ErrValidation)
		}
		if s.products == nil {
			return nil, errors.New("product catalog unavailable")
		}
		product, err := s.products.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		p := *product
		return func(c Cart) { c.AddItem(p) }, nil
	case "changelineitemquantity":
		lineID := strings.TrimSpace(action.LineItemID)
		if lineID == "" {
			return nil, fmt.Errorf("%w: lineItemId required", domain.ErrValidation)
		}
		qty := action.Quantity
		return func(c Cart) { c.UpdateQuantity(lineID, qty) }, nil
	case "removelineitem":
		lineID := strings.TrimSpace(action.LineItemID)
		if lineID == "" {
			return nil, fmt.Errorf("%w: lineItemId required", domain.ErrValidation)
		}
		return func(c Cart) { c.RemoveItem(lineID) }, nil
	default:
		return nil, fmt.Errorf("%w: unsupported action %q", domain.ErrValidation, action.Action)
	}
}
