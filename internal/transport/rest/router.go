package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/lodgeshop-backend/internal/config"
	"github.com/heartmarshall/lodgeshop-backend/internal/transport/middleware"
)

// RouterDeps groups what NewRouter wires together.
type RouterDeps struct {
	Shop        *ShopHandler
	Health      *HealthHandler
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	Logger      *slog.Logger
}

// NewRouter builds the HTTP handler. Writes are rate limited per client.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/", d.Shop.Get)
	r.Post("/", d.Shop.Post)

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", d.Shop.ListUsers)
		r.Get("/items", d.Shop.ListItems)
		r.Get("/transactions", d.Shop.ListTransactions)
		r.Post("/transactions", d.Shop.CreateTransaction)
		r.Post("/transactions/legacy", d.Shop.CreateLegacyTransaction)
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	chain := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	}
	if d.RateLimiter != nil {
		chain = append(chain, middleware.ForMethods(d.RateLimiter.Limit(d.RateLimit.WritesPerMinute), http.MethodPost))
	}

	return middleware.Chain(chain...)(r)
}
