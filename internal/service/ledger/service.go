// Package ledger records transactions in the append-only ledger and applies
// their stock side effects to the catalog.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lodgeshop-backend/internal/config"
	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

type ledgerStore interface {
	Append(ctx context.Context, tx *domain.Transaction) error
	List(ctx context.Context, limit, offset int) ([]domain.Transaction, error)
}

type stockKeeper interface {
	ReadStockMap(ctx context.Context) (map[string]domain.CatalogRow, error)
	AdjustStock(ctx context.Context, row domain.CatalogRow, delta int) (domain.CatalogRow, error)
}

// Service processes transaction submissions.
type Service struct {
	ledger ledgerStore
	stock  stockKeeper
	cfg    config.LedgerConfig
	log    *slog.Logger

	newID func() uuid.UUID
	now   func() time.Time
}

// NewService creates a new transaction processor.
func NewService(log *slog.Logger, ledger ledgerStore, stock stockKeeper, cfg config.LedgerConfig) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Service{
		ledger: ledger,
		stock:  stock,
		cfg:    cfg,
		log:    log.With("service", "ledger"),
		newID:  uuid.New,
		now:    time.Now,
	}
}
