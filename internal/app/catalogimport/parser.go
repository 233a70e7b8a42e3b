// Package catalogimport loads the item catalog from a CSV export of the
// shop's Items sheet: a header row, then name, price and stock columns.
package catalogimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

const (
	colName = iota
	colPrice
	colStock
)

// Issue is a cell that could not be parsed and was coerced to zero.
type Issue struct {
	Line    int
	Column  string
	Value   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s %q: %s", i.Line, i.Column, i.Value, i.Message)
}

// Parsed is the result of reading one CSV file.
type Parsed struct {
	Entries []domain.CatalogEntry
	Skipped int // rows with a blank name
	Issues  []Issue
}

// Parse reads a catalog CSV. The first row is a header and is ignored.
// Missing trailing cells are treated as empty. Unparsable price or stock
// cells become zero and are reported in Issues, the way the shop treats
// them when serving the catalog.
func Parse(r io.Reader) (*Parsed, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	out := &Parsed{Entries: []domain.CatalogEntry{}}

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		name := strings.TrimSpace(cell(record, colName))
		if name == "" {
			out.Skipped++
			continue
		}

		price, priceIssue := parsePrice(cell(record, colPrice))
		if priceIssue != "" {
			out.Issues = append(out.Issues, Issue{Line: line, Column: "price", Value: cell(record, colPrice), Message: priceIssue})
		}
		stock, stockIssue := parseStock(cell(record, colStock))
		if stockIssue != "" {
			out.Issues = append(out.Issues, Issue{Line: line, Column: "stock", Value: cell(record, colStock), Message: stockIssue})
		}

		out.Entries = append(out.Entries, domain.CatalogEntry{Name: name, Price: price, Stock: stock})
	}

	return out, nil
}

func cell(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

func parsePrice(raw string) (decimal.Decimal, string) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, ""
	}
	d, ok := domain.ParseDecimal(raw)
	if !ok {
		return decimal.Zero, "not a number"
	}
	if d.IsNegative() {
		return decimal.Zero, "negative price"
	}
	return d, ""
}

func parseStock(raw string) (int, string) {
	if strings.TrimSpace(raw) == "" {
		return 0, ""
	}
	d, ok := domain.ParseDecimal(raw)
	if !ok || !d.IsInteger() {
		return domain.ParseIntOrDefault(raw, 0), "not an integer"
	}
	return int(d.IntPart()), ""
}
