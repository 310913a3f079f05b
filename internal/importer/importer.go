// Package importer loads storefront products from CSV exports.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-demo/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads rows with columns id,name,price,description,image,category,features.
// Features are separated by "|". A row without id and name continues the previous product
// and contributes only its features.
type CSVImporter struct {
	reader *csv.Reader
	writer ProductWriter
}

func NewCSVImporter(r io.Reader, writer ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	return &CSVImporter{reader: csvr, writer: writer}
}

type csvRow struct {
	ID          string
	Name        string
	Price       string
	Description string
	Image       string
	Category    string
	Features    []string
}

// Run parses CSV rows and upserts one product per leading row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing name column")
	}

	var (
		current  *csvRow
		imported int
		line     = 1
	)
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}
		if row.ID != "" || row.Name != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}
		if current != nil {
			current.Features = append(current.Features, row.Features...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.Name == "" || row.Price == "" {
		return fmt.Errorf("invalid product row %q: name and price required", row.ID)
	}
	price, err := decimal.NewFromString(row.Price)
	if err != nil || !price.IsPositive() {
		return fmt.Errorf("invalid price %q for product %q", row.Price, row.Name)
	}
	id := row.ID
	if id == "" {
		id = uuid.NewString()
	}

	p := domain.Product{
		ID:          id,
		Name:        row.Name,
		Price:       price,
		Description: row.Description,
		Image:       row.Image,
		Category:    strings.ToLower(row.Category),
		Features:    row.Features,
	}
	if _, err := i.writer.Upsert(ctx, p); err != nil {
		return fmt.Errorf("upsert product %q: %w", row.Name, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	row := &csvRow{
		ID:          pick(record, index, "id"),
		Name:        pick(record, index, "name"),
		Price:       pick(record, index, "price"),
		Description: pick(record, index, "description"),
		Image:       pick(record, index, "image"),
		Category:    pick(record, index, "category"),
		Features:    splitFeatures(pick(record, index, "features")),
	}
	if row.ID == "" && row.Name == "" && len(row.Features) == 0 {
		return nil
	}
	return row
}

func splitFeatures(raw string) []string {
	var out []string
	for _, f := range strings.Split(raw, "|") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
