package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/hisab/internal/domain"
)

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Transaction, error)
	Update(ctx context.Context, transaction *domain.Transaction) error
	UpdateSettlement(ctx context.Context, tx Transaction, id string, settledAmount decimal.Decimal, status domain.SettlementStatus, updatedAt time.Time) error
	Delete(ctx context.Context, tx Transaction, id string) error
	List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	Count(ctx context.Context, filter domain.TransactionFilter) (int64, error)
	Totals(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionTotals, error)
	MonthlyTotals(ctx context.Context, businessID string, year int) ([]domain.MonthTypeTotal, error)
	ListUnsettledWithShares(ctx context.Context, businessID string) ([]*domain.Transaction, error)
	SettlementMismatches(ctx context.Context, businessID string) ([]domain.SettlementMismatch, error)
}

// SettlementRepository defines data access for settlement records.
type SettlementRepository interface {
	Create(ctx context.Context, tx Transaction, settlement *domain.Settlement) error
	ListByTransaction(ctx context.Context, transactionID string) ([]*domain.Settlement, error)
	DeleteByTransaction(ctx context.Context, tx Transaction, transactionID string) error
}

// MembershipRepository defines role lookup for the membership authority.
type MembershipRepository interface {
	Get(ctx context.Context, businessID, userID string) (*domain.Membership, error)
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*domain.Category, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles database transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
