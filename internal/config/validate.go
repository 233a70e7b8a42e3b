package config

import (
	"fmt"
	"regexp"
	"time"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}(\.[A-Za-z_][A-Za-z0-9_]{0,62})?$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Ledger.validate(); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	if c.Stock.RetryInitialInterval <= 0 {
		return fmt.Errorf("stock: retry_initial_interval must be > 0 (got %s)", c.Stock.RetryInitialInterval)
	}
	if c.Stock.RetryMaxInterval < c.Stock.RetryInitialInterval {
		return fmt.Errorf("stock: retry_max_interval must be >= retry_initial_interval")
	}

	if c.RateLimit.WritesPerMinute < 0 {
		return fmt.Errorf("rate_limit: writes_per_minute must be >= 0 (got %d)", c.RateLimit.WritesPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit: cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

// Table names are interpolated into SQL, so only plain (optionally
// schema-qualified) identifiers are allowed.
func (s *StorageConfig) validate() error {
	tables := []struct {
		field string
		value string
	}{
		{"ledger_table", s.LedgerTable},
		{"catalog_table", s.CatalogTable},
		{"users_table", s.UsersTable},
	}
	for _, tbl := range tables {
		if !identifierRe.MatchString(tbl.value) {
			return fmt.Errorf("%s: invalid table identifier %q", tbl.field, tbl.value)
		}
	}
	if s.LedgerTable == s.CatalogTable {
		return fmt.Errorf("ledger_table and catalog_table must differ")
	}
	return nil
}

func (l *LedgerConfig) validate() error {
	loc, err := time.LoadLocation(l.TimeZone)
	if err != nil {
		return fmt.Errorf("time_zone: %w", err)
	}
	l.Location = loc

	if l.TimestampLayout == "" {
		return fmt.Errorf("timestamp_layout must not be empty")
	}
	return nil
}
