package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Storage   StorageConfig   `yaml:"storage"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Stock     StockConfig     `yaml:"stock"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings. The shop form is served from a different
// origin than the API, so all origins are allowed by default.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"false"`
}

// StorageConfig names the tables backing the ledger, the catalog and the
// user directory. The users table may be the ledger table itself; any other
// table works if it has a user_name column holding the names and a seq
// column giving their order.
type StorageConfig struct {
	LedgerTable  string `yaml:"ledger_table"  env:"STORAGE_LEDGER_TABLE"  env-default:"ledger_entries"`
	CatalogTable string `yaml:"catalog_table" env:"STORAGE_CATALOG_TABLE" env-default:"catalog_items"`
	UsersTable   string `yaml:"users_table"   env:"STORAGE_USERS_TABLE"   env-default:"ledger_entries"`
}

// LedgerConfig controls how ledger rows are rendered.
type LedgerConfig struct {
	TimeZone        string `yaml:"time_zone"        env:"LEDGER_TIME_ZONE"        env-default:"Local"`
	TimestampLayout string `yaml:"timestamp_layout" env:"LEDGER_TIMESTAMP_LAYOUT" env-default:"2006-01-02 15:04:05"`

	// Location is resolved from TimeZone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// StockConfig bounds the compare-and-swap retry loop used for stock writes.
type StockConfig struct {
	MaxRetries           uint64        `yaml:"max_retries"            env:"STOCK_MAX_RETRIES"            env-default:"5"`
	RetryInitialInterval time.Duration `yaml:"retry_initial_interval" env:"STOCK_RETRY_INITIAL_INTERVAL" env-default:"10ms"`
	RetryMaxInterval     time.Duration `yaml:"retry_max_interval"     env:"STOCK_RETRY_MAX_INTERVAL"     env-default:"200ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits write requests per client IP. Zero disables limiting.
type RateLimitConfig struct {
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}
