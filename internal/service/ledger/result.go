package ledger

import "github.com/heartmarshall/lodgeshop-backend/internal/domain"

// SubmitResult describes an appended transaction and its stock side effects.
type SubmitResult struct {
	Transaction  domain.Transaction
	StockChanges []domain.StockChange

	// StockErr is set when the transaction was recorded but updating stock
	// failed part way. Changes before the failure remain applied.
	StockErr error
}
