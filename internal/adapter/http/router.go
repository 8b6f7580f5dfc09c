package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/hisab/internal/adapter/http/handler"
	"github.com/iho/hisab/internal/adapter/http/middleware"
	"github.com/iho/hisab/internal/infrastructure/auth"
	"github.com/iho/hisab/internal/infrastructure/metrics"
	"github.com/iho/hisab/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	SettlementHandler  *handler.SettlementHandler
	ReportHandler      *handler.ReportHandler
	CategoryHandler    *handler.CategoryHandler
	HealthHandler      *handler.HealthHandler
	JWTManager         *auth.JWTManager
	Metrics            *metrics.Metrics
	IdempotencyStore   usecase.IdempotencyStore
	RateLimiter        *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API v1, authenticated
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.JWTManager, cfg.Metrics))

		// Rate limiting runs after auth so buckets key on the user
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Business-scoped collections
		r.Route("/businesses/{businessId}", func(r chi.Router) {
			r.Post("/transactions", cfg.TransactionHandler.Create)
			r.Get("/transactions", cfg.TransactionHandler.List)
			r.Get("/transactions/dues", cfg.ReportHandler.PendingDues)
			r.Get("/transactions/summary/monthly", cfg.ReportHandler.MonthlySummary)
			r.Get("/consistency", cfg.ReportHandler.CheckConsistency)

			r.Post("/categories", cfg.CategoryHandler.Create)
			r.Get("/categories", cfg.CategoryHandler.List)
			r.Post("/categories/seed", cfg.CategoryHandler.Seed)
		})

		// Transactions addressed by ID
		r.Route("/transactions/{id}", func(r chi.Router) {
			r.Get("/", cfg.TransactionHandler.Get)
			r.Patch("/", cfg.TransactionHandler.Update)
			r.Delete("/", cfg.TransactionHandler.Delete)
			r.Post("/settle", cfg.SettlementHandler.Record)
			r.Get("/settlements", cfg.SettlementHandler.List)
		})
	})

	return r
}
