package ledger

import (
	"strings"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

// SubmitInput is a multi-item submission exactly as received.
type SubmitInput struct {
	UserName    string
	LineItems   string // JSON array of {name, quantity, unitPrice}
	TotalAmount string
	Timestamp   string
}

// Validate reports every absent field at once.
func (i SubmitInput) Validate() error {
	var missing []string
	if strings.TrimSpace(i.UserName) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(i.LineItems) == "" {
		missing = append(missing, "items")
	}
	if strings.TrimSpace(i.TotalAmount) == "" {
		missing = append(missing, "totalAmount")
	}
	if strings.TrimSpace(i.Timestamp) == "" {
		missing = append(missing, "timestamp")
	}
	if len(missing) > 0 {
		return domain.NewMissingFieldError(missing...)
	}
	return nil
}

// LegacyInput is a single-item submission from older clients.
type LegacyInput struct {
	UserName  string
	ItemName  string
	Timestamp string
}

// Validate reports every absent field at once.
func (i LegacyInput) Validate() error {
	var missing []string
	if strings.TrimSpace(i.UserName) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(i.ItemName) == "" {
		missing = append(missing, "item")
	}
	if strings.TrimSpace(i.Timestamp) == "" {
		missing = append(missing, "timestamp")
	}
	if len(missing) > 0 {
		return domain.NewMissingFieldError(missing...)
	}
	return nil
}
