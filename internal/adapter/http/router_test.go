package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iho/hisab/internal/adapter/http/handler"
	apimiddleware "github.com/iho/hisab/internal/adapter/http/middleware"
	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/infrastructure/auth"
	"github.com/iho/hisab/internal/infrastructure/metrics"
	"github.com/iho/hisab/internal/usecase"
	"github.com/iho/hisab/internal/usecase/mocks"
)

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	m := metrics.New()

	memberships := mocks.NewMockMembershipRepository()
	memberships.Grant("biz-1", "alice", domain.RoleOwner)
	gate := usecase.NewAccessGate(memberships)

	transactionRepo := mocks.NewMockTransactionRepository()
	settlementRepo := mocks.NewMockSettlementRepository()
	categoryRepo := mocks.NewMockCategoryRepository()
	txManager := mocks.NewMockTxManager()
	idGen := mocks.NewMockIDGenerator("id")

	transactionUC := usecase.NewTransactionUseCase(txManager, transactionRepo, settlementRepo, categoryRepo, gate, idGen)
	settlementUC := usecase.NewSettlementUseCase(txManager, transactionRepo, settlementRepo, gate, idGen, mocks.NewMockRetrier())
	reportUC := usecase.NewReportUseCase(transactionRepo, gate)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, gate, idGen)

	cache := noopReportCache{}

	cfg := RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(transactionUC, cache, m),
		SettlementHandler:  handler.NewSettlementHandler(settlementUC, cache, m),
		ReportHandler:      handler.NewReportHandler(reportUC, cache, m),
		CategoryHandler:    handler.NewCategoryHandler(categoryUC),
		HealthHandler:      &handler.HealthHandler{},
		JWTManager:         auth.NewJWTManager("test-secret", time.Hour),
		Metrics:            m,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type noopReportCache struct{}

func (noopReportCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (noopReportCache) Set(ctx context.Context, key string, b []byte) error { return nil }

func (noopReportCache) Invalidate(ctx context.Context, businessID string) error { return nil }

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

func bearerToken(t *testing.T, cfg RouterConfig, userID string) string {
	t.Helper()

	token, err := cfg.JWTManager.Generate(&domain.User{ID: userID, Email: userID + "@example.com"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_APIRequiresAuth(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/biz-1/transactions", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}

func TestNewRouter_AuthenticatedListSucceeds(t *testing.T) {
	cfg := newRouterConfig()
	router := NewRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/biz-1/transactions", nil)
	req.Header.Set("Authorization", bearerToken(t, cfg, "alice"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	cfg := newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = apimiddleware.NewRateLimiter(1, 1)
	})
	router := NewRouter(cfg)

	token := bearerToken(t, cfg, "alice")

	req1 := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/biz-1/transactions", nil)
	req1.Header.Set("Authorization", token)
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/biz-1/transactions", nil)
	req2.Header.Set("Authorization", token)
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	cfg := newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	})
	router := NewRouter(cfg)

	body := `{"name":"Books","kind":"expense"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/businesses/biz-1/categories", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerToken(t, cfg, "alice"))
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/businesses/{businessId}/transactions",
		"GET /api/v1/businesses/{businessId}/transactions",
		"GET /api/v1/businesses/{businessId}/transactions/dues",
		"GET /api/v1/businesses/{businessId}/transactions/summary/monthly",
		"GET /api/v1/businesses/{businessId}/consistency",
		"GET /api/v1/transactions/{id}/",
		"PATCH /api/v1/transactions/{id}/",
		"DELETE /api/v1/transactions/{id}/",
		"POST /api/v1/transactions/{id}/settle",
		"GET /api/v1/transactions/{id}/settlements",
		"POST /api/v1/businesses/{businessId}/categories",
		"POST /api/v1/businesses/{businessId}/categories/seed",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}
