package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

// ImportItems loads entries into the catalog in one transaction, after the
// existing rows or, when replace is set, in place of them. Entries with a
// blank name are dropped. Returns the number of rows written.
func (s *Service) ImportItems(ctx context.Context, entries []domain.CatalogEntry, replace bool) (int, error) {
	clean := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			continue
		}
		clean = append(clean, e)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if replace {
			if err := s.repo.DeleteAll(ctx); err != nil {
				return err
			}
		}
		return s.repo.Insert(ctx, clean)
	})
	if err != nil {
		return 0, fmt.Errorf("import items: %w", err)
	}

	s.log.InfoContext(ctx, "catalog imported",
		slog.Int("rows", len(clean)),
		slog.Int("skipped", len(entries)-len(clean)),
		slog.Bool("replace", replace),
	)
	return len(clean), nil
}
