package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogRow is a catalog row exactly as stored. Price and stock are kept as
// raw cell text because the catalog is maintained by hand; use Entry to get
// coerced values. Position is the row's mutation address and Version guards
// stock writes against lost updates.
type CatalogRow struct {
	Position int64
	Name     string
	PriceRaw string
	StockRaw string
	Version  int64
}

// CatalogEntry is a sellable item as served to clients.
// Stock may be negative, meaning oversold/backordered.
type CatalogEntry struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// MarshalJSON writes the price as a JSON number.
func (e CatalogEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string      `json:"name"`
		Price json.Number `json:"price"`
		Stock int         `json:"stock"`
	}{e.Name, json.Number(e.Price.String()), e.Stock})
}

// Entry coerces the raw row. Unparsable price or stock become zero.
func (r CatalogRow) Entry() CatalogEntry {
	return CatalogEntry{
		Name:  strings.TrimSpace(r.Name),
		Price: ParseDecimalOrDefault(r.PriceRaw, decimal.Zero),
		Stock: r.Stock(),
	}
}

// Stock returns the coerced stock level of the row.
func (r CatalogRow) Stock() int {
	return ParseIntOrDefault(r.StockRaw, 0)
}

// StockChange records one applied stock decrement.
type StockChange struct {
	Name     string `json:"name"`
	Position int64  `json:"position"`
	Previous int    `json:"previous"`
	Current  int    `json:"current"`
}
