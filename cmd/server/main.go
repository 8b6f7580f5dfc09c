package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/hisab/internal/adapter/http"
	"github.com/iho/hisab/internal/adapter/http/handler"
	"github.com/iho/hisab/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/hisab/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/hisab/internal/adapter/repository/redis"
	"github.com/iho/hisab/internal/infrastructure/auth"
	"github.com/iho/hisab/internal/infrastructure/config"
	"github.com/iho/hisab/internal/infrastructure/logger"
	"github.com/iho/hisab/internal/infrastructure/metrics"
	"github.com/iho/hisab/internal/infrastructure/postgres"
	"github.com/iho/hisab/internal/infrastructure/redis"
	"github.com/iho/hisab/internal/usecase"
)

const poolStatsInterval = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations if requested
	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize metrics
	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	settlementRepo := postgresRepo.NewSettlementRepository(pool)
	membershipRepo := postgresRepo.NewMembershipRepository(pool)
	categoryRepo := postgresRepo.NewCategoryRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	reportCache := redisRepo.NewReportCache(redisClient, cfg.ReportCacheTTL)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger, m.SettlementRetries)

	// Initialize use cases
	gate := usecase.NewAccessGate(membershipRepo)
	transactionUC := usecase.NewTransactionUseCase(txManager, transactionRepo, settlementRepo, categoryRepo, gate, idGen)
	settlementUC := usecase.NewSettlementUseCase(txManager, transactionRepo, settlementRepo, gate, idGen, retrier)
	reportUC := usecase.NewReportUseCase(transactionRepo, gate)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, gate, idGen)

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(transactionUC, reportCache, m)
	settlementHandler := handler.NewSettlementHandler(settlementUC, reportCache, m)
	reportHandler := handler.NewReportHandler(reportUC, reportCache, m)
	categoryHandler := handler.NewCategoryHandler(categoryUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	rateLimiter := middleware.NewRateLimiter(10, 20)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: transactionHandler,
		SettlementHandler:  settlementHandler,
		ReportHandler:      reportHandler,
		CategoryHandler:    categoryHandler,
		HealthHandler:      healthHandler,
		JWTManager:         jwtManager,
		Metrics:            m,
		IdempotencyStore:   idempotencyStore,
		RateLimiter:        rateLimiter,
	})

	// Report pool stats for the connections gauge
	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()
		for range ticker.C {
			m.DBConnections.Set(float64(pool.Stat().TotalConns()))
		}
	}()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
