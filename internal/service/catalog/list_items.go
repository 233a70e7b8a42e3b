package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

// ListItems returns every named catalog row in position order with price and
// stock coerced. Rows with a blank name are skipped. The result is never nil.
func (s *Service) ListItems(ctx context.Context) ([]domain.CatalogEntry, error) {
	rows, err := s.repo.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := make([]domain.CatalogEntry, 0, len(rows))
	for _, row := range rows {
		entry := row.Entry()
		if entry.Name == "" {
			continue
		}
		items = append(items, entry)
	}
	return items, nil
}

// ReadStockMap returns the catalog keyed by trimmed item name. When a name
// appears on several rows the last one wins.
func (s *Service) ReadStockMap(ctx context.Context) (map[string]domain.CatalogRow, error) {
	rows, err := s.repo.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("read stock map: %w", err)
	}

	stock := make(map[string]domain.CatalogRow, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			continue
		}
		stock[name] = row
	}
	return stock, nil
}
