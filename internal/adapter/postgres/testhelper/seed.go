package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lodgeshop-backend/internal/config"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// IsolatedTables creates empty copies of the catalog and ledger tables with
// unique names and returns a StorageConfig pointing at them. The users table
// is the ledger copy. Tables are dropped via t.Cleanup.
func IsolatedTables(t *testing.T, pool *pgxpool.Pool) config.StorageConfig {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	tables := config.StorageConfig{
		LedgerTable:  "ledger_" + suffix,
		CatalogTable: "catalog_" + suffix,
	}
	tables.UsersTable = tables.LedgerTable

	for src, dst := range map[string]string{
		"ledger_entries": tables.LedgerTable,
		"catalog_items":  tables.CatalogTable,
	} {
		stmt := fmt.Sprintf(`CREATE TABLE %q (LIKE %s INCLUDING ALL)`, dst, src)
		if _, err := pool.Exec(ctx, stmt); err != nil {
			t.Fatalf("testhelper: create %s: %v", dst, err)
		}
	}

	t.Cleanup(func() {
		stmt := fmt.Sprintf(`DROP TABLE IF EXISTS %q, %q`, tables.LedgerTable, tables.CatalogTable)
		if _, err := pool.Exec(context.Background(), stmt); err != nil {
			t.Logf("testhelper: drop isolated tables: %v", err)
		}
	})

	return tables
}

// SeedCatalogRow inserts a raw catalog row and returns its position.
func SeedCatalogRow(t *testing.T, pool *pgxpool.Pool, table, name, price, stock string) int64 {
	t.Helper()

	var position int64
	err := pool.QueryRow(context.Background(),
		fmt.Sprintf(`INSERT INTO %q (name, price, stock) VALUES ($1, $2, $3) RETURNING position`, table),
		name, price, stock,
	).Scan(&position)
	if err != nil {
		t.Fatalf("testhelper: SeedCatalogRow %q: %v", name, err)
	}
	return position
}

// CatalogStock returns the raw stock cell of the row at position.
func CatalogStock(t *testing.T, pool *pgxpool.Pool, table string, position int64) string {
	t.Helper()

	var stock string
	err := pool.QueryRow(context.Background(),
		fmt.Sprintf(`SELECT stock FROM %q WHERE position = $1`, table),
		position,
	).Scan(&stock)
	if err != nil {
		t.Fatalf("testhelper: CatalogStock %d: %v", position, err)
	}
	return stock
}

// SeedLedgerUser appends a minimal ledger row for userName so that it
// appears in the user directory.
func SeedLedgerUser(t *testing.T, pool *pgxpool.Pool, table, userName string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		fmt.Sprintf(`INSERT INTO %q (id, user_name, line_items, total_amount, entry_time, item_summary)
		 VALUES ($1, $2, '[{"name":"seed","quantity":1,"unitPrice":0}]', 0, '', 'seed (Qty: 1)')`, table),
		uuid.New(), userName,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLedgerUser %q: %v", userName, err)
	}
}

// CountLedgerRows returns the number of rows in the ledger table.
func CountLedgerRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), fmt.Sprintf(`SELECT count(*) FROM %q`, table)).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountLedgerRows: %v", err)
	}
	return n
}
