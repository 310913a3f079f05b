// Package cart holds the in-memory cart ledger owned by one storefront session.
package cart

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"storefront-demo/internal/domain"
)

// Store keeps cart lines in insertion order, at most one line per product id.
// Totals are computed from the lines on every read.
type Store struct {
	mu     sync.RWMutex
	items  []domain.CartLineItem
	isOpen bool
}

func NewStore() *Store {
	return &Store{}
}

// AddItem increments the quantity of an existing line or appends a new line with quantity 1.
func (s *Store) AddItem(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(p.ID); idx >= 0 {
		s.items[idx].Quantity++
		return
	}
	s.items = append(s.items, domain.CartLineItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	})
}

// RemoveItem deletes the line for id. Unknown ids are ignored.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

// UpdateQuantity sets the quantity of the line for id; n <= 0 removes the line.
func (s *Store) UpdateQuantity(id string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		s.removeLocked(id)
		return
	}
	if idx := s.indexOf(id); idx >= 0 {
		s.items[idx].Quantity = n
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// ToggleCart flips the drawer visibility flag and returns the new value.
func (s *Store) ToggleCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
	return s.isOpen
}

func (s *Store) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOpen
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []domain.CartLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyItems()
}

func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalItems(s.items)
}

func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalPrice(s.items)
}

// Snapshot returns a consistent copy of lines, flag and totals.
func (s *Store) Snapshot() domain.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CartState{
		Items:      s.copyItems(),
		IsOpen:     s.isOpen,
		TotalItems: totalItems(s.items),
		TotalPrice: totalPrice(s.items),
	}
}

func (s *Store) indexOf(id string) int {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1
	}
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeLocked(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
}

func (s *Store) copyItems() []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

func totalItems(items []domain.CartLineItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

func totalPrice(items []domain.CartLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}
