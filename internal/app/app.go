package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lodgeshop-backend/internal/adapter/postgres"
	catalogrepo "github.com/heartmarshall/lodgeshop-backend/internal/adapter/postgres/catalog"
	ledgerrepo "github.com/heartmarshall/lodgeshop-backend/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/lodgeshop-backend/internal/config"
	"github.com/heartmarshall/lodgeshop-backend/internal/service/catalog"
	"github.com/heartmarshall/lodgeshop-backend/internal/service/ledger"
	"github.com/heartmarshall/lodgeshop-backend/internal/service/users"
	"github.com/heartmarshall/lodgeshop-backend/internal/transport/middleware"
	"github.com/heartmarshall/lodgeshop-backend/internal/transport/rest"
	"github.com/heartmarshall/lodgeshop-backend/migrations"
)

// Run loads configuration, connects to Postgres and serves HTTP until ctx
// is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("ledger_table", cfg.Storage.LedgerTable),
		slog.String("catalog_table", cfg.Storage.CatalogTable),
		slog.String("users_table", cfg.Storage.UsersTable),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	ledgerRepo := ledgerrepo.New(pool, cfg.Storage.LedgerTable)
	catalogRepo := catalogrepo.New(pool, cfg.Storage.CatalogTable)
	txm := postgres.NewTxManager(pool)

	catalogSvc := catalog.NewService(logger, catalogRepo, txm, cfg.Stock)
	usersSvc := users.NewService(logger, ledgerRepo, cfg.Storage.UsersTable)
	ledgerSvc := ledger.NewService(logger, ledgerRepo, catalogSvc, cfg.Ledger)

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rl.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Shop: rest.NewShopHandler(usersSvc, catalogSvc, ledgerSvc, logger),
		Health: rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{
			"database": pool,
		}),
		RateLimiter: rl,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done or the listener fails, whichever comes
// first, and then drains in-flight requests within cfg.ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
