package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"storefront-demo/internal/cart"
	"storefront-demo/internal/catalog"
	"storefront-demo/internal/domain"
	"storefront-demo/internal/llm"
)

// Tool names declared to the remote assistant.
const (
	ToolSearchProducts         = "searchProducts"
	ToolGetRecommendedProducts = "getRecommendedProducts"
	ToolGetCartContents        = "getCartContents"
)

// ProductSource exposes the current catalog.
type ProductSource interface {
	List() []domain.Product
}

// CartReader exposes a consistent view of a cart.
type CartReader interface {
	Snapshot() domain.CartState
}

var toolDefinitions = []llm.Tool{
	{
		Type: "function",
		Function: llm.FunctionDef{
			Name:        ToolSearchProducts,
			Description: "Search the store catalog by keyword, optionally within one category.",
			Parameters: json.RawMessage(`{"type":"object","properties":{` +
				`"query":{"type":"string","description":"Keyword to look for in product names, descriptions and features"},` +
				`"category":{"type":"string","description":"Exact category such as audio, wearables, office"}},` +
				`"required":["query"]}`),
		},
	},
	{
		Type: "function",
		Function: llm.FunctionDef{
			Name:        ToolGetRecommendedProducts,
			Description: "Recommend products for a shopper, optionally by age, category and price range.",
			Parameters: json.RawMessage(`{"type":"object","properties":{` +
				`"age":{"type":"integer"},"category":{"type":"string"},` +
				`"minPrice":{"type":"number"},"maxPrice":{"type":"number"}}}`),
		},
	},
	{
		Type: "function",
		Function: llm.FunctionDef{
			Name:        ToolGetCartContents,
			Description: "Return the items currently in the shopper's cart with totals.",
			Parameters:  json.RawMessage(`{"type":"object","properties":{}}`),
		},
	},
}

// Tools returns the declared tool set.
func Tools() []llm.Tool {
	out := make([]llm.Tool, len(toolDefinitions))
	copy(out, toolDefinitions)
	return out
}

type productView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
}

type cartView struct {
	Items      []cartLineView `json:"items"`
	TotalItems int            `json:"totalItems"`
	TotalPrice string         `json:"totalPrice"`
	Summary    string         `json:"summary"`
}

type cartLineView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type searchArgs struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

type recommendArgs struct {
	Age      *int     `json:"age"`
	Category string   `json:"category"`
	MinPrice *float64 `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`
}

// toolRunner executes tool calls against local state.
type toolRunner struct {
	products ProductSource
	cart     CartReader
}

// Run returns the serialized tool result. Bad arguments and unknown tools produce an
// error object for the assistant rather than a Go error.
func (r toolRunner) Run(call llm.ToolCall) string {
	out, err := r.run(call.Function.Name, call.Function.Arguments)
	if err != nil {
		return errorJSON(err)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return errorJSON(err)
	}
	return string(data)
}

func (r toolRunner) run(name, rawArgs string) (interface{}, error) {
	if strings.TrimSpace(rawArgs) == "" {
		rawArgs = "{}"
	}
	switch name {
	case ToolSearchProducts:
		var args searchArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		return viewProducts(catalog.SearchProducts(r.productList(), args.Query, args.Category)), nil
	case ToolGetRecommendedProducts:
		var args recommendArgs
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		opts := catalog.RecommendOptions{Age: args.Age, Category: args.Category}
		if args.MinPrice != nil || args.MaxPrice != nil {
			opts.PriceRange = &domain.PriceRange{Min: floatPtr(args.MinPrice), Max: floatPtr(args.MaxPrice)}
		}
		return viewProducts(catalog.GetRecommendedProducts(r.productList(), opts)), nil
	case ToolGetCartContents:
		return viewCart(r.cartState()), nil
	default:
		return nil, fmt.Errorf("unknown tool %q", name)
	}
}

func (r toolRunner) productList() []domain.Product {
	if r.products == nil {
		return nil
	}
	return r.products.List()
}

func (r toolRunner) cartState() domain.CartState {
	if r.cart == nil {
		return domain.CartState{TotalPrice: decimal.Zero}
	}
	return r.cart.Snapshot()
}

func viewProducts(products []domain.Product) []productView {
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, productView{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price.StringFixed(2),
			Category:    p.Category,
			Description: p.Description,
			Features:    p.Features,
		})
	}
	return out
}

func viewCart(state domain.CartState) cartView {
	lines := make([]cartLineView, 0, len(state.Items))
	for _, it := range state.Items {
		lines = append(lines, cartLineView{ID: it.ID, Name: it.Name, Price: it.Price.StringFixed(2), Quantity: it.Quantity})
	}
	return cartView{
		Items:      lines,
		TotalItems: state.TotalItems,
		TotalPrice: state.TotalPrice.StringFixed(2),
		Summary:    cart.Describe(state),
	}
}

func floatPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func errorJSON(err error) string {
	data, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(data)
}
