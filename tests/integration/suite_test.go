package integration

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	adaptershttp "github.com/iho/hisab/internal/adapter/http"
	"github.com/iho/hisab/internal/adapter/http/handler"
	postgresrepo "github.com/iho/hisab/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/hisab/internal/adapter/repository/redis"
	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/infrastructure/auth"
	"github.com/iho/hisab/internal/infrastructure/metrics"
	infraredis "github.com/iho/hisab/internal/infrastructure/redis"
	"github.com/iho/hisab/internal/usecase"
	"github.com/iho/hisab/tests/testutil"
)

const testJWTSecret = "integration-test-secret"

// testApp bundles the wired router with the pieces tests poke at directly.
type testApp struct {
	Router     http.Handler
	JWTManager *auth.JWTManager
	Cleanup    func()
}

func newTestApp(t *testing.T, testDB *testutil.TestDB) *testApp {
	t.Helper()

	ctx := context.Background()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}

	// Each app gets a fresh registry so repeated wiring does not collide.
	registry := prometheus.NewRegistry()
	origRegisterer, origGatherer := prometheus.DefaultRegisterer, prometheus.DefaultGatherer
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	m := metrics.New()
	prometheus.DefaultRegisterer = origRegisterer
	prometheus.DefaultGatherer = origGatherer

	pool := testDB.Pool
	txManager := postgresrepo.NewTxManager(pool)
	transactionRepo := postgresrepo.NewTransactionRepository(pool)
	settlementRepo := postgresrepo.NewSettlementRepository(pool)
	membershipRepo := postgresrepo.NewMembershipRepository(pool)
	categoryRepo := postgresrepo.NewCategoryRepository(pool)
	idGen := postgresrepo.NewULIDGenerator()
	retrier := postgresrepo.NewRetrier(zerolog.Nop(), m.SettlementRetries)

	gate := usecase.NewAccessGate(membershipRepo)
	transactionUC := usecase.NewTransactionUseCase(txManager, transactionRepo, settlementRepo, categoryRepo, gate, idGen)
	settlementUC := usecase.NewSettlementUseCase(txManager, transactionRepo, settlementRepo, gate, idGen, retrier)
	reportUC := usecase.NewReportUseCase(transactionRepo, gate)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, gate, idGen)

	idempotencyStore := redisrepo.NewIdempotencyStore(redisClient)
	reportCache := redisrepo.NewReportCache(redisClient, time.Minute)

	jwtManager := auth.NewJWTManager(testJWTSecret, time.Hour)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(transactionUC, reportCache, m),
		SettlementHandler:  handler.NewSettlementHandler(settlementUC, reportCache, m),
		ReportHandler:      handler.NewReportHandler(reportUC, reportCache, m),
		CategoryHandler:    handler.NewCategoryHandler(categoryUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		JWTManager:         jwtManager,
		Metrics:            m,
		IdempotencyStore:   idempotencyStore,
	})

	return &testApp{
		Router:     router,
		JWTManager: jwtManager,
		Cleanup: func() {
			redisClient.FlushDB(ctx)
			redisClient.Close()
		},
	}
}

func (app *testApp) token(t *testing.T, userID string) string {
	t.Helper()

	signed, err := app.JWTManager.Generate(&domain.User{
		ID:    userID,
		Email: userID + "@example.com",
	})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return signed
}

// do executes an authenticated request against the router.
func (app *testApp) do(t *testing.T, method, path, userID string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	return doRaw(app, newAuthedRequest(t, app, method, path, userID, body))
}

func newAuthedRequest(t *testing.T, app *testApp, method, path, userID string, body io.Reader) *http.Request {
	t.Helper()

	r := httptest.NewRequest(method, path, body)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Authorization", "Bearer "+app.token(t, userID))
	return r
}

func doRaw(app *testApp, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, r)
	return w
}
