// Package catalog serves the item catalog and applies stock adjustments.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lodgeshop-backend/internal/config"
	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

type catalogRepo interface {
	ListRows(ctx context.Context) ([]domain.CatalogRow, error)
	GetRow(ctx context.Context, position int64) (domain.CatalogRow, error)
	CompareAndSetStock(ctx context.Context, position, expectedVersion int64, stock int) (int64, error)
	Insert(ctx context.Context, entries []domain.CatalogEntry) error
	DeleteAll(ctx context.Context) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog reads and stock writes.
type Service struct {
	repo  catalogRepo
	tx    txManager
	stock config.StockConfig
	log   *slog.Logger
}

// NewService creates a new catalog service.
func NewService(log *slog.Logger, repo catalogRepo, tx txManager, stock config.StockConfig) *Service {
	return &Service{
		repo:  repo,
		tx:    tx,
		stock: stock,
		log:   log.With("service", "catalog"),
	}
}
