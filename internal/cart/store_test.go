package cart

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"storefront-demo/internal/domain"
)

func product(id, price string) domain.Product {
	return domain.Product{ID: id, Name: "Product " + id, Price: decimal.RequireFromString(price)}
}

func TestStoreAddSameProductTwiceMergesLine(t *testing.T) {
	s := NewStore()
	p := product("p1", "10.50")
	s.AddItem(p)
	s.AddItem(p)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if s.TotalItems() != 2 {
		t.Fatalf("expected 2 items, got %d", s.TotalItems())
	}
	if !s.TotalPrice().Equal(decimal.RequireFromString("21")) {
		t.Fatalf("unexpected total %s", s.TotalPrice())
	}
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	s := NewStore()
	s.AddItem(product("b", "1"))
	s.AddItem(product("a", "1"))
	s.AddItem(product("b", "1"))
	s.AddItem(product("c", "1"))

	var ids []string
	for _, it := range s.Items() {
		ids = append(ids, it.ID)
	}
	if strings.Join(ids, ",") != "b,a,c" {
		t.Fatalf("unexpected order %v", ids)
	}
}

func TestStoreUpdateQuantityZeroRemovesLine(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", "5"))
	s.AddItem(product("p2", "7"))

	s.UpdateQuantity("p1", 0)
	items := s.Items()
	if len(items) != 1 || items[0].ID != "p2" {
		t.Fatalf("expected only p2 left, got %+v", items)
	}

	s.UpdateQuantity("p2", -3)
	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", s.Items())
	}
}

func TestStoreUpdateQuantitySetsValue(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", "2.25"))
	s.UpdateQuantity("p1", 4)
	if s.TotalItems() != 4 {
		t.Fatalf("expected 4 items, got %d", s.TotalItems())
	}
	if !s.TotalPrice().Equal(decimal.RequireFromString("9")) {
		t.Fatalf("unexpected total %s", s.TotalPrice())
	}
}

func TestStoreUnknownIDsAreNoOps(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", "3"))
	before := s.Snapshot()

	s.RemoveItem("missing")
	s.RemoveItem("")
	s.UpdateQuantity("missing", 5)

	after := s.Snapshot()
	if len(after.Items) != len(before.Items) || after.TotalItems != before.TotalItems || !after.TotalPrice.Equal(before.TotalPrice) {
		t.Fatalf("state changed: before=%+v after=%+v", before, after)
	}
}

func TestStoreClearAndToggle(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", "3"))
	s.Clear()
	if s.TotalItems() != 0 || !s.TotalPrice().IsZero() {
		t.Fatalf("expected empty totals after clear")
	}

	if !s.ToggleCart() || !s.IsOpen() {
		t.Fatalf("expected cart open after first toggle")
	}
	if s.ToggleCart() {
		t.Fatalf("expected cart closed after second toggle")
	}
}

func TestStoreItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.AddItem(product("p1", "3"))
	items := s.Items()
	items[0].Quantity = 99
	if s.TotalItems() != 1 {
		t.Fatalf("mutating returned slice changed store")
	}
}

func TestStoreTotalsMatchLedgerForRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	catalog := []domain.Product{product("a", "1.10"), product("b", "2.20"), product("c", "3.30"), product("d", "0.99")}
	s := NewStore()
	want := map[string]int{}

	for i := 0; i < 500; i++ {
		p := catalog[rng.Intn(len(catalog))]
		switch rng.Intn(3) {
		case 0:
			s.AddItem(p)
			want[p.ID]++
		case 1:
			s.RemoveItem(p.ID)
			delete(want, p.ID)
		case 2:
			n := rng.Intn(6) - 2
			if n <= 0 {
				delete(want, p.ID)
			} else if _, ok := want[p.ID]; ok {
				want[p.ID] = n
			}
			s.UpdateQuantity(p.ID, n)
		}

		state := s.Snapshot()
		wantItems := 0
		wantPrice := decimal.Zero
		for _, c := range catalog {
			if q, ok := want[c.ID]; ok {
				wantItems += q
				wantPrice = wantPrice.Add(c.Price.Mul(decimal.NewFromInt(int64(q))))
			}
		}
		if len(state.Items) != len(want) {
			t.Fatalf("step %d: expected %d lines, got %d", i, len(want), len(state.Items))
		}
		for _, it := range state.Items {
			if it.Quantity <= 0 {
				t.Fatalf("step %d: line %s has quantity %d", i, it.ID, it.Quantity)
			}
			if it.Quantity != want[it.ID] {
				t.Fatalf("step %d: line %s quantity %d, want %d", i, it.ID, it.Quantity, want[it.ID])
			}
		}
		if state.TotalItems != wantItems || !state.TotalPrice.Equal(wantPrice) {
			t.Fatalf("step %d: totals %d/%s, want %d/%s", i, state.TotalItems, state.TotalPrice, wantItems, wantPrice)
		}
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe(domain.CartState{}); got != "The cart is empty." {
		t.Fatalf("unexpected empty description %q", got)
	}
	s := NewStore()
	s.AddItem(product("p1", "149.99"))
	s.AddItem(product("p1", "149.99"))
	got := Describe(s.Snapshot())
	if !strings.Contains(got, "2 item(s) totalling $299.98") || !strings.Contains(got, "Product p1 (id p1) x2 at $149.99 each") {
		t.Fatalf("unexpected description %q", got)
	}
}
