package seed

import (
	"context"
	"errors"
	"testing"

	"storefront-demo/internal/catalog"
	"storefront-demo/internal/domain"
)

type recordingWriter struct {
	ids     []string
	failOn  string
	failErr error
}

func (w *recordingWriter) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == w.failOn {
		return nil, w.failErr
	}
	w.ids = append(w.ids, p.ID)
	return &p, nil
}

func TestApplyWritesSampleCatalogInReverse(t *testing.T) {
	w := &recordingWriter{}
	n, err := Apply(context.Background(), w)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	sample := catalog.SampleProducts()
	if n != len(sample) || len(w.ids) != len(sample) {
		t.Fatalf("expected %d writes, got n=%d ids=%d", len(sample), n, len(w.ids))
	}
	if w.ids[0] != sample[len(sample)-1].ID || w.ids[len(w.ids)-1] != sample[0].ID {
		t.Fatalf("unexpected write order %v", w.ids)
	}
}

func TestApplyStopsOnError(t *testing.T) {
	sample := catalog.SampleProducts()
	w := &recordingWriter{failOn: sample[len(sample)-2].ID, failErr: errors.New("boom")}
	n, err := Apply(context.Background(), w)
	if !errors.Is(err, w.failErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 product written before failure, got %d", n)
	}
}
