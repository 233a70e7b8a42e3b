// Command catalog-import loads the item catalog from a CSV export of the
// Items sheet (header row, then name, price, stock).
//
// Flags:
//
//	--file     path to the CSV file (required)
//	--replace  delete existing catalog rows before importing
//	--dry-run  parse and report without writing
//	--config   path to config.yaml (default: $CONFIG_PATH or ./config.yaml)
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
	catalogrepo "github.com/heartmarshall/lodgeshop-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/lodgeshop-backend/internal/app"
	"github.com/heartmarshall/lodgeshop-backend/internal/app/catalogimport"
	"github.com/heartmarshall/lodgeshop-backend/internal/config"
	"github.com/heartmarshall/lodgeshop-backend/internal/service/catalog"
)

func main() {
	fileFlag := flag.String("file", "", "path to the catalog CSV file")
	replaceFlag := flag.Bool("replace", false, "delete existing catalog rows before importing")
	dryRunFlag := flag.Bool("dry-run", false, "parse the file without writing to the database")
	configFlag := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config.yaml")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.LoadFrom(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := catalog.NewService(logger,
		catalogrepo.New(pool, cfg.Storage.CatalogTable),
		postgres.NewTxManager(pool),
		cfg.Stock,
	)

	res, err := catalogimport.NewImporter(logger, svc).Run(ctx, catalogimport.Options{
		Path:    *fileFlag,
		Replace: *replaceFlag,
		DryRun:  *dryRunFlag,
	})
	if err != nil {
		logger.Error("catalog import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("catalog import completed",
		slog.String("table", cfg.Storage.CatalogTable),
		slog.Int("parsed", res.Parsed),
		slog.Int("written", res.Written),
		slog.Int("skipped", res.Skipped),
		slog.Int("issues", len(res.Issues)),
	)
}
