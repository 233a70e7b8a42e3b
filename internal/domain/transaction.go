package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one (name, quantity, unit price) tuple within a transaction.
// Quantity is the raw amount deducted from stock and is not bounded to
// positive values.
type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Transaction is a ledger entry. It is never mutated once appended.
type Transaction struct {
	ID          uuid.UUID
	UserName    string
	LineItems   []LineItem
	TotalAmount decimal.Decimal
	Timestamp   string // formatted at write time, see FormatTimestamp
	ItemSummary string
	CreatedAt   time.Time
}

type lineItemJSON struct {
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice json.Number `json:"unitPrice"`
}

// MarshalJSON writes the canonical {name, quantity, unitPrice} shape with
// the price as a JSON number.
func (li LineItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineItemJSON{
		Name:      li.Name,
		Quantity:  li.Quantity,
		UnitPrice: json.Number(li.UnitPrice.String()),
	})
}

// rawLineItem accepts both the current keys and the legacy form keys
// ("item", "price") still sent by older clients.
type rawLineItem struct {
	Name      *string     `json:"name"`
	Item      *string     `json:"item"`
	Quantity  json.Number `json:"quantity"`
	UnitPrice json.Number `json:"unitPrice"`
	Price     json.Number `json:"price"`
}

// DecodeLineItems decodes the JSON line-items payload of a submission.
// The payload must be a non-empty array of objects, each with a non-empty
// name, an integer quantity and an optional non-negative unit price.
// Every failure is reported as a *MalformedPayloadError.
func DecodeLineItems(payload string) ([]LineItem, error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()

	var raw []rawLineItem
	if err := dec.Decode(&raw); err != nil {
		return nil, NewMalformedPayloadError("not a JSON array of items", err)
	}
	if dec.More() {
		return nil, NewMalformedPayloadError("trailing data after items array", nil)
	}
	if len(raw) == 0 {
		return nil, NewMalformedPayloadError("no items", nil)
	}

	items := make([]LineItem, 0, len(raw))
	for i, r := range raw {
		item, err := r.toLineItem()
		if err != nil {
			return nil, NewMalformedPayloadError(fmt.Sprintf("item %d", i), err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r rawLineItem) toLineItem() (LineItem, error) {
	var name string
	switch {
	case r.Name != nil:
		name = *r.Name
	case r.Item != nil:
		name = *r.Item
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return LineItem{}, fmt.Errorf("name is required")
	}

	if r.Quantity == "" {
		return LineItem{}, fmt.Errorf("%s: quantity is required", name)
	}
	qty, err := decimal.NewFromString(r.Quantity.String())
	if err != nil || !qty.IsInteger() {
		return LineItem{}, fmt.Errorf("%s: quantity %q is not an integer", name, r.Quantity)
	}
	if qty.LessThan(decimal.NewFromInt(math.MinInt)) || qty.GreaterThan(decimal.NewFromInt(math.MaxInt)) {
		return LineItem{}, fmt.Errorf("%s: quantity %s is out of range", name, r.Quantity)
	}

	priceRaw := r.UnitPrice
	if priceRaw == "" {
		priceRaw = r.Price
	}
	price := decimal.Zero
	if priceRaw != "" {
		price, err = decimal.NewFromString(priceRaw.String())
		if err != nil {
			return LineItem{}, fmt.Errorf("%s: unit price %q: %w", name, priceRaw, err)
		}
		if price.IsNegative() {
			return LineItem{}, fmt.Errorf("%s: unit price must be >= 0", name)
		}
	}

	return LineItem{Name: name, Quantity: int(qty.IntPart()), UnitPrice: price}, nil
}

// EncodeLineItems renders items as the JSON stored in the ledger row.
func EncodeLineItems(items []LineItem) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(items); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// RenderItemSummary builds the human-readable summary of a transaction,
// e.g. "Coke (Qty: 2, $2.50 each), Mars Bar (Qty: 1)". The price clause is
// omitted for items without a unit price.
func RenderItemSummary(items []LineItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		if it.UnitPrice.IsZero() {
			parts[i] = fmt.Sprintf("%s (Qty: %d)", it.Name, it.Quantity)
			continue
		}
		parts[i] = fmt.Sprintf("%s (Qty: %d, $%s each)", it.Name, it.Quantity, it.UnitPrice.StringFixed(2))
	}
	return strings.Join(parts, ", ")
}
