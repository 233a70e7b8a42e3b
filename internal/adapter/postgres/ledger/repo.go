// Package ledger implements the append-only transaction ledger on PostgreSQL.
// Rows are inserted and read, never updated or deleted.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/lodgeshop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lodgeshop-backend/internal/domain"
)

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.Querier
	table string
}

// New creates a ledger repository writing to table.
func New(db postgres.Querier, table string) *Repo {
	return &Repo{db: db, table: table}
}

var listColumns = []string{
	"id", "user_name", "line_items", "total_amount::text",
	"entry_time", "item_summary", "created_at",
}

// Append inserts tx as one new ledger row.
func (r *Repo) Append(ctx context.Context, tx *domain.Transaction) error {
	lineItems, err := domain.EncodeLineItems(tx.LineItems)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(r.table).
		Columns("id", "user_name", "line_items", "total_amount", "entry_time", "item_summary").
		Values(tx.ID, tx.UserName, lineItems, tx.TotalAmount.String(), tx.Timestamp, tx.ItemSummary).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("append ledger entry: build query: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&tx.CreatedAt); err != nil {
		return postgres.MapError(err, "append ledger entry")
	}
	return nil
}

// ListUserNames returns the user_name column of table ordered by its seq
// column, so table must have both. Empty and duplicate values are returned
// as stored.
func (r *Repo) ListUserNames(ctx context.Context, table string) ([]string, error) {
	query, args, err := postgres.Builder().
		Select("user_name").
		From(table).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list user names: build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list user names")
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "list user names")
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// List returns ledger rows in insertion order. A limit of zero or less
// returns every row after offset.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	builder := postgres.Builder().
		Select(listColumns...).
		From(r.table).
		OrderBy("seq")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "list ledger entries")
	}
	defer rows.Close()

	result := make([]domain.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list ledger entries")
	}
	return result, nil
}

func scanTransaction(rows pgx.Rows) (domain.Transaction, error) {
	var (
		tx        domain.Transaction
		id        uuid.UUID
		lineItems string
		total     string
	)
	if err := rows.Scan(&id, &tx.UserName, &lineItems, &total, &tx.Timestamp, &tx.ItemSummary, &tx.CreatedAt); err != nil {
		return domain.Transaction{}, postgres.MapError(err, "scan ledger entry")
	}
	tx.ID = id

	items, err := domain.DecodeLineItems(lineItems)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("ledger entry %s: %w", id, err)
	}
	tx.LineItems = items

	amount, err := decimal.NewFromString(total)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("ledger entry %s: total amount %q: %w", id, total, err)
	}
	tx.TotalAmount = amount
	return tx, nil
}
