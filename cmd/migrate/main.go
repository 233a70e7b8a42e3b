// Command migrate applies pending database migrations and exits.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lodgeshop-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lodgeshop-backend/internal/app"
	"github.com/heartmarshall/lodgeshop-backend/internal/config"
	"github.com/heartmarshall/lodgeshop-backend/migrations"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config.yaml")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}

	logger.Info("migrations up to date")
}
