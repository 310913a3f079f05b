package domain

import "github.com/shopspring/decimal"

type CartLineItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
}

// LineTotal is Price×Quantity.
func (l CartLineItem) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartState is a point-in-time copy of a cart. Totals are derived from Items when the
// snapshot is taken.
type CartState struct {
	Items      []CartLineItem  `json:"items"`
	IsOpen     bool            `json:"isOpen"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
