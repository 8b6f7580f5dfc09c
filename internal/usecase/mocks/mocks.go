package mocks

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/usecase"
)

// MockTx is a usecase.Transaction whose lifetime controls a store-wide
// lock, emulating FOR UPDATE row locking.
type MockTx struct {
	mu       *sync.Mutex
	locked   bool
	released bool
}

func (t *MockTx) lock() {
	if t.mu != nil && !t.locked {
		t.mu.Lock()
		t.locked = true
	}
}

func (t *MockTx) release() {
	if t.locked && !t.released {
		t.mu.Unlock()
		t.released = true
	}
}

func (t *MockTx) Commit(ctx context.Context) error {
	t.release()
	return nil
}

func (t *MockTx) Rollback(ctx context.Context) error {
	t.release()
	return nil
}

// MockTxManager is an in-memory usecase.TransactionManager. All
// transactions it begins share one lock.
type MockTxManager struct {
	mu sync.Mutex
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	return &MockTx{mu: &m.mu}, nil
}

// MockTransactionRepository is an in-memory TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction

	GetByIDFunc          func(ctx context.Context, id string) (*domain.Transaction, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Transaction, error)
	ListFunc             func(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	MonthlyTotalsFunc    func(ctx context.Context, businessID string, year int) ([]domain.MonthTypeTotal, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

// Put seeds a transaction directly.
func (m *MockTransactionRepository) Put(txn *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *txn
	m.transactions[txn.ID] = &cp
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	m.Put(txn)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	txn, ok := m.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}

	cp := *txn

	return &cp, nil
}

func (m *MockTransactionRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Transaction, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}

	if mockTx, ok := tx.(*MockTx); ok {
		mockTx.lock()
	}

	return m.GetByID(ctx, id)
}

func (m *MockTransactionRepository) Update(ctx context.Context, txn *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transactions[txn.ID]; !ok {
		return domain.ErrTransactionNotFound
	}

	cp := *txn
	m.transactions[txn.ID] = &cp

	return nil
}

func (m *MockTransactionRepository) UpdateSettlement(ctx context.Context, tx usecase.Transaction, id string, settledAmount decimal.Decimal, status domain.SettlementStatus, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	txn, ok := m.transactions[id]
	if !ok {
		return domain.ErrTransactionNotFound
	}

	txn.SettledAmount = settledAmount
	txn.SettlementStatus = status
	txn.UpdatedAt = updatedAt

	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}

	delete(m.transactions, id)

	return nil
}

func (m *MockTransactionRepository) matching(filter domain.TransactionFilter) []*domain.Transaction {
	var out []*domain.Transaction

	for _, txn := range m.transactions {
		if filter.BusinessID != "" && txn.BusinessID != filter.BusinessID {
			continue
		}
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		if filter.CategoryID != "" && txn.CategoryID != filter.CategoryID {
			continue
		}
		if filter.MemberID != "" && txn.MemberID != filter.MemberID {
			continue
		}
		if filter.SettlementStatus != "" && txn.SettlementStatus != filter.SettlementStatus {
			continue
		}
		if filter.StartDate != nil && txn.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && txn.Date.After(*filter.EndDate) {
			continue
		}

		cp := *txn
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })

	return out
}

func (m *MockTransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := m.matching(filter)

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (m *MockTransactionRepository) Count(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.matching(filter))), nil
}

func (m *MockTransactionRepository) Totals(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionTotals, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	totals := &domain.TransactionTotals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, txn := range m.matching(filter) {
		switch txn.Type {
		case domain.TypeIncome:
			totals.TotalIncome = totals.TotalIncome.Add(txn.Amount)
			totals.IncomeCount++
		case domain.TypeExpense:
			totals.TotalExpense = totals.TotalExpense.Add(txn.Amount)
			totals.ExpenseCount++
		}
	}

	totals.Balance = totals.TotalIncome.Sub(totals.TotalExpense)

	return totals, nil
}

func (m *MockTransactionRepository) MonthlyTotals(ctx context.Context, businessID string, year int) ([]domain.MonthTypeTotal, error) {
	if m.MonthlyTotalsFunc != nil {
		return m.MonthlyTotalsFunc(ctx, businessID, year)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	sums := make(map[int]map[domain.TransactionType]decimal.Decimal)

	for _, txn := range m.transactions {
		if txn.BusinessID != businessID || txn.Date.Year() != year {
			continue
		}

		month := int(txn.Date.Month())
		if sums[month] == nil {
			sums[month] = make(map[domain.TransactionType]decimal.Decimal)
		}

		sums[month][txn.Type] = sums[month][txn.Type].Add(txn.Amount)
	}

	var rows []domain.MonthTypeTotal
	for month := 1; month <= 12; month++ {
		for _, typ := range []domain.TransactionType{domain.TypeIncome, domain.TypeExpense, domain.TypeTransfer} {
			if total, ok := sums[month][typ]; ok {
				rows = append(rows, domain.MonthTypeTotal{Month: month, Type: typ, Total: total})
			}
		}
	}

	return rows, nil
}

func (m *MockTransactionRepository) ListUnsettledWithShares(ctx context.Context, businessID string) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.Transaction

	for _, txn := range m.transactions {
		if txn.BusinessID != businessID || len(txn.PaidFor) == 0 {
			continue
		}

		if txn.SettlementStatus != domain.StatusPending && txn.SettlementStatus != domain.StatusPartial {
			continue
		}

		cp := *txn
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (m *MockTransactionRepository) SettlementMismatches(ctx context.Context, businessID string) ([]domain.SettlementMismatch, error) {
	return nil, nil
}

// MockSettlementRepository is an in-memory SettlementRepository.
type MockSettlementRepository struct {
	mu          sync.RWMutex
	settlements []*domain.Settlement

	CreateFunc func(ctx context.Context, tx usecase.Transaction, settlement *domain.Settlement) error
}

func NewMockSettlementRepository() *MockSettlementRepository {
	return &MockSettlementRepository{}
}

func (m *MockSettlementRepository) Create(ctx context.Context, tx usecase.Transaction, settlement *domain.Settlement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, settlement)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *settlement
	m.settlements = append(m.settlements, &cp)

	return nil
}

func (m *MockSettlementRepository) ListByTransaction(ctx context.Context, transactionID string) ([]*domain.Settlement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.Settlement
	for _, s := range m.settlements {
		if s.TransactionID == transactionID {
			cp := *s
			out = append(out, &cp)
		}
	}

	// Newest first.
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	return out, nil
}

func (m *MockSettlementRepository) DeleteByTransaction(ctx context.Context, tx usecase.Transaction, transactionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.settlements[:0]
	for _, s := range m.settlements {
		if s.TransactionID != transactionID {
			kept = append(kept, s)
		}
	}
	m.settlements = kept

	return nil
}

// All returns every stored settlement.
func (m *MockSettlementRepository) All() []*domain.Settlement {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Settlement, len(m.settlements))
	copy(out, m.settlements)

	return out
}

// MockMembershipRepository is an in-memory MembershipRepository.
type MockMembershipRepository struct {
	mu          sync.RWMutex
	memberships map[string]*domain.Membership
}

func NewMockMembershipRepository() *MockMembershipRepository {
	return &MockMembershipRepository{
		memberships: make(map[string]*domain.Membership),
	}
}

// Grant registers an active membership.
func (m *MockMembershipRepository) Grant(businessID, userID string, role domain.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.memberships[businessID+"/"+userID] = &domain.Membership{
		BusinessID: businessID,
		UserID:     userID,
		Role:       role,
		Status:     domain.MembershipActive,
	}
}

// Revoke marks a membership inactive.
func (m *MockMembershipRepository) Revoke(businessID, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ms, ok := m.memberships[businessID+"/"+userID]; ok {
		ms.Status = domain.MembershipInactive
	}
}

func (m *MockMembershipRepository) Get(ctx context.Context, businessID, userID string) (*domain.Membership, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ms, ok := m.memberships[businessID+"/"+userID]
	if !ok {
		return nil, domain.ErrMembershipNotFound
	}

	cp := *ms

	return &cp, nil
}

// MockCategoryRepository is an in-memory CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]*domain.Category),
	}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *category
	m.categories[category.ID] = &cp

	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}

	cp := *c

	return &cp, nil
}

func (m *MockCategoryRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*domain.Category
	for _, c := range m.categories {
		if c.BusinessID == businessID {
			cp := *c
			out = append(out, &cp)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu      sync.Mutex
	prefix  string
	counter int
}

func NewMockIDGenerator(prefix string) *MockIDGenerator {
	return &MockIDGenerator{prefix: prefix}
}

func (g *MockIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++

	return g.prefix + "-" + strconv.Itoa(g.counter)
}

// MockRetrier runs the operation once without retrying.
type MockRetrier struct{}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (r *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}
