package ledger

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

const maxListLimit = 500

// ListTransactions returns ledger rows in the order they were recorded.
// limit is capped at 500; zero or less means the cap.
func (s *Service) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	txs, err := s.ledger.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
