// Package catalog implements the item catalog table on PostgreSQL.
// Cells are stored as entered; coercion to prices and stock levels happens
// in the domain layer.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/lodgeshop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.Querier
	table string
}

// New creates a catalog repository over table.
func New(db postgres.Querier, table string) *Repo {
	return &Repo{db: db, table: table}
}

var rowColumns = []string{"position", "name", "price", "stock", "version"}

// ListRows returns every catalog row in position order.
func (r *Repo) ListRows(ctx context.Context) ([]domain.CatalogRow, error) {
	query, args, err := postgres.Builder().
		Select(rowColumns...).
		From(r.table).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list catalog rows: build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list catalog rows")
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CatalogRow, error) {
		return scanRow(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "list catalog rows")
	}
	if result == nil {
		result = []domain.CatalogRow{}
	}
	return result, nil
}

// GetRow returns the row at position.
// Returns domain.ErrNotFound if no such row exists.
func (r *Repo) GetRow(ctx context.Context, position int64) (domain.CatalogRow, error) {
	query, args, err := postgres.Builder().
		Select(rowColumns...).
		From(r.table).
		Where(sq.Eq{"position": position}).
		ToSql()
	if err != nil {
		return domain.CatalogRow{}, fmt.Errorf("get catalog row: build query: %w", err)
	}

	row, err := scanRow(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.CatalogRow{}, postgres.MapError(err, fmt.Sprintf("get catalog row %d", position))
	}
	return row, nil
}

// CompareAndSetStock writes stock to the row at position only if its
// version still equals expectedVersion, and returns the new version.
// Returns domain.ErrConcurrentModification when the row changed (or
// disappeared) since it was read.
func (r *Repo) CompareAndSetStock(ctx context.Context, position, expectedVersion int64, stock int) (int64, error) {
	query, args, err := postgres.Builder().
		Update(r.table).
		Set("stock", strconv.Itoa(stock)).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"position": position, "version": expectedVersion}).
		Suffix("RETURNING version").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("set catalog stock: build query: %w", err)
	}

	var version int64
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&version)
	if err != nil {
		mapped := postgres.MapError(err, fmt.Sprintf("set catalog stock %d", position))
		if errors.Is(mapped, domain.ErrNotFound) {
			return 0, fmt.Errorf("set catalog stock %d: %w", position, domain.ErrConcurrentModification)
		}
		return 0, mapped
	}
	return version, nil
}

// Insert appends entries after the existing rows, preserving their order.
func (r *Repo) Insert(ctx context.Context, entries []domain.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	builder := postgres.Builder().
		Insert(r.table).
		Columns("name", "price", "stock")
	for _, e := range entries {
		builder = builder.Values(e.Name, e.Price.String(), strconv.Itoa(e.Stock))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("insert catalog rows: build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "insert catalog rows")
	}
	return nil
}

// DeleteAll removes every catalog row.
func (r *Repo) DeleteAll(ctx context.Context) error {
	query, args, err := postgres.Builder().
		Delete(r.table).
		ToSql()
	if err != nil {
		return fmt.Errorf("delete catalog rows: build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "delete catalog rows")
	}
	return nil
}

func scanRow(row pgx.Row) (domain.CatalogRow, error) {
	var c domain.CatalogRow
	err := row.Scan(&c.Position, &c.Name, &c.PriceRaw, &c.StockRaw, &c.Version)
	return c, err
}
