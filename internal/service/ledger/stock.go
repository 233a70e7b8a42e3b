package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

// applyStock subtracts each item's quantity from its catalog row. The
// catalog is read once; items absent from it are skipped. Repeated names
// chain through the row returned by the previous write. The first failure
// stops the loop and the changes made so far are returned with it.
func (s *Service) applyStock(ctx context.Context, items []domain.LineItem) ([]domain.StockChange, error) {
	rows, err := s.stock.ReadStockMap(ctx)
	if err != nil {
		return []domain.StockChange{}, fmt.Errorf("read stock: %w", err)
	}

	changes := make([]domain.StockChange, 0, len(items))
	for _, item := range items {
		row, ok := rows[item.Name]
		if !ok {
			s.log.DebugContext(ctx, "item not in catalog, stock unchanged", slog.String("item", item.Name))
			continue
		}

		written, err := s.stock.AdjustStock(ctx, row, item.Quantity)
		if err != nil {
			return changes, err
		}
		rows[item.Name] = written

		change := domain.StockChange{
			Name:     item.Name,
			Position: written.Position,
			Previous: written.Stock() + item.Quantity,
			Current:  written.Stock(),
		}
		changes = append(changes, change)

		s.log.DebugContext(ctx, "stock updated",
			slog.String("item", change.Name),
			slog.Int("previous", change.Previous),
			slog.Int("current", change.Current),
		)
	}
	return changes, nil
}
