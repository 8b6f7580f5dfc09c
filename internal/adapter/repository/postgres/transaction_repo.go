package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/infrastructure/postgres/generated"
	"github.com/iho/hisab/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new transaction.
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	paidFor, err := marshalPaidFor(transaction.PaidFor)
	if err != nil {
		return err
	}

	return r.queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:                  transaction.ID,
		BusinessID:          transaction.BusinessID,
		Type:                string(transaction.Type),
		CategoryID:          transaction.CategoryID,
		Amount:              decimalToNumeric(transaction.Amount),
		Date:                timeToPgTimestamptz(transaction.Date),
		Note:                transaction.Note,
		Reference:           transaction.Reference,
		MemberID:            transaction.MemberID,
		CreatedBy:           transaction.CreatedBy,
		ToMemberID:          transaction.ToMemberID,
		PaidFor:             paidFor,
		SplitType:           string(transaction.SplitType),
		SettlementStatus:    string(transaction.SettlementStatus),
		SettledAmount:       decimalToNumeric(transaction.SettledAmount),
		LinkedTransactionID: transaction.LinkedTransactionID,
		IsAdjustment:        transaction.IsAdjustment,
		CreatedAt:           timeToPgTimestamptz(transaction.CreatedAt),
		UpdatedAt:           timeToPgTimestamptz(transaction.UpdatedAt),
	})
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row)
}

// GetByIDForUpdate retrieves a transaction by ID with a FOR UPDATE lock.
func (r *TransactionRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Transaction, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetTransactionByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row)
}

// Update updates the editable fields of a transaction.
func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	return r.queries.UpdateTransaction(ctx, generated.UpdateTransactionParams{
		ID:         transaction.ID,
		Type:       string(transaction.Type),
		CategoryID: transaction.CategoryID,
		Amount:     decimalToNumeric(transaction.Amount),
		Date:       timeToPgTimestamptz(transaction.Date),
		Note:       transaction.Note,
		Reference:  transaction.Reference,
		UpdatedAt:  timeToPgTimestamptz(transaction.UpdatedAt),
	})
}

// UpdateSettlement updates settlement progress within a transaction.
func (r *TransactionRepository) UpdateSettlement(ctx context.Context, tx usecase.Transaction, id string, settledAmount decimal.Decimal, status domain.SettlementStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateTransactionSettlement(ctx, generated.UpdateTransactionSettlementParams{
		ID:               id,
		SettledAmount:    decimalToNumeric(settledAmount),
		SettlementStatus: string(status),
		UpdatedAt:        timeToPgTimestamptz(updatedAt),
	})
}

// Delete removes a transaction within a transaction.
func (r *TransactionRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteTransaction(ctx, id)
}

// List lists transactions matching the filter, date descending.
func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactions(ctx, generated.ListTransactionsParams{
		BusinessID:       filter.BusinessID,
		Type:             string(filter.Type),
		CategoryID:       filter.CategoryID,
		MemberID:         filter.MemberID,
		SettlementStatus: string(filter.SettlementStatus),
		StartDate:        timePtrToPgTimestamptz(filter.StartDate),
		EndDate:          timePtrToPgTimestamptz(filter.EndDate),
		Limit:            int32(filter.Limit),
		Offset:           int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := rowToTransaction(row)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// Count counts transactions matching the filter.
func (r *TransactionRepository) Count(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	return r.queries.CountTransactions(ctx, generated.CountTransactionsParams{
		BusinessID:       filter.BusinessID,
		Type:             string(filter.Type),
		CategoryID:       filter.CategoryID,
		MemberID:         filter.MemberID,
		SettlementStatus: string(filter.SettlementStatus),
		StartDate:        timePtrToPgTimestamptz(filter.StartDate),
		EndDate:          timePtrToPgTimestamptz(filter.EndDate),
	})
}

// Totals computes income/expense totals over the whole filtered set.
func (r *TransactionRepository) Totals(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionTotals, error) {
	row, err := r.queries.TransactionTotals(ctx, generated.TransactionTotalsParams{
		BusinessID:       filter.BusinessID,
		Type:             string(filter.Type),
		CategoryID:       filter.CategoryID,
		MemberID:         filter.MemberID,
		SettlementStatus: string(filter.SettlementStatus),
		StartDate:        timePtrToPgTimestamptz(filter.StartDate),
		EndDate:          timePtrToPgTimestamptz(filter.EndDate),
	})
	if err != nil {
		return nil, err
	}

	income := numericToDecimal(row.TotalIncome)
	expense := numericToDecimal(row.TotalExpense)

	return &domain.TransactionTotals{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		IncomeCount:  row.IncomeCount,
		ExpenseCount: row.ExpenseCount,
	}, nil
}

// MonthlyTotals returns per-month, per-type amount sums for a year.
func (r *TransactionRepository) MonthlyTotals(ctx context.Context, businessID string, year int) ([]domain.MonthTypeTotal, error) {
	rows, err := r.queries.MonthlyTransactionTotals(ctx, generated.MonthlyTransactionTotalsParams{
		BusinessID: businessID,
		Year:       int32(year),
	})
	if err != nil {
		return nil, err
	}

	totals := make([]domain.MonthTypeTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, domain.MonthTypeTotal{
			Month: int(row.Month),
			Type:  domain.TransactionType(row.Type),
			Total: numericToDecimal(row.Total),
		})
	}

	return totals, nil
}

// ListUnsettledWithShares returns pending/partial transactions that carry
// paidFor shares.
func (r *TransactionRepository) ListUnsettledWithShares(ctx context.Context, businessID string) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListUnsettledTransactionsWithShares(ctx, businessID)
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		t, err := rowToTransaction(row)
		if err != nil {
			return nil, err
		}

		transactions = append(transactions, t)
	}

	return transactions, nil
}

// SettlementMismatches returns transactions whose settled amount disagrees
// with the sum of their settlement records.
func (r *TransactionRepository) SettlementMismatches(ctx context.Context, businessID string) ([]domain.SettlementMismatch, error) {
	rows, err := r.queries.SettlementMismatches(ctx, businessID)
	if err != nil {
		return nil, err
	}

	mismatches := make([]domain.SettlementMismatch, 0, len(rows))
	for _, row := range rows {
		mismatches = append(mismatches, domain.SettlementMismatch{
			TransactionID:  row.ID,
			SettledAmount:  numericToDecimal(row.SettledAmount),
			SettlementsSum: numericToDecimal(row.SettlementsSum),
		})
	}

	return mismatches, nil
}

func rowToTransaction(row generated.Transaction) (*domain.Transaction, error) {
	paidFor, err := unmarshalPaidFor(row.PaidFor)
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		ID:                  row.ID,
		BusinessID:          row.BusinessID,
		Type:                domain.TransactionType(row.Type),
		CategoryID:          row.CategoryID,
		Amount:              numericToDecimal(row.Amount),
		Date:                row.Date.Time,
		Note:                row.Note,
		Reference:           row.Reference,
		MemberID:            row.MemberID,
		CreatedBy:           row.CreatedBy,
		ToMemberID:          row.ToMemberID,
		PaidFor:             paidFor,
		SplitType:           domain.SplitType(row.SplitType),
		SettlementStatus:    domain.SettlementStatus(row.SettlementStatus),
		SettledAmount:       numericToDecimal(row.SettledAmount),
		LinkedTransactionID: row.LinkedTransactionID,
		IsAdjustment:        row.IsAdjustment,
		CreatedAt:           row.CreatedAt.Time,
		UpdatedAt:           row.UpdatedAt.Time,
	}, nil
}

func marshalPaidFor(shares []domain.PaidForShare) ([]byte, error) {
	if shares == nil {
		shares = []domain.PaidForShare{}
	}

	data, err := json.Marshal(shares)
	if err != nil {
		return nil, fmt.Errorf("marshal paid_for: %w", err)
	}

	return data, nil
}

func unmarshalPaidFor(data []byte) ([]domain.PaidForShare, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var shares []domain.PaidForShare
	if err := json.Unmarshal(data, &shares); err != nil {
		return nil, fmt.Errorf("unmarshal paid_for: %w", err)
	}

	if len(shares) == 0 {
		return nil, nil
	}

	return shares, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timePtrToPgTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}

	return pgtype.Timestamptz{Time: *t, Valid: true}
}
