package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/hisab/internal/domain"
)

// ReportUseCase derives dues, summary, and consistency views over a
// business's transactions. All operations are pure reads.
type ReportUseCase struct {
	transactionRepo TransactionRepository
	gate            *AccessGate
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(transactionRepo TransactionRepository, gate *AccessGate) *ReportUseCase {
	return &ReportUseCase{
		transactionRepo: transactionRepo,
		gate:            gate,
	}
}

// Authorize checks that the caller may read reports for a business.
// Callers that serve cached report bodies must check this first, the
// compute paths below enforce it themselves.
func (uc *ReportUseCase) Authorize(ctx context.Context, businessID, callerID string) error {
	return uc.gate.Require(ctx, businessID, callerID, RolesRead)
}

// PendingDues computes who owes whom across all pending/partial
// transactions that carry paidFor shares.
//
// The remaining share per debtor is approximated as the portion amount
// minus an equal fraction of the settled amount, regardless of which debtor
// actually paid. Exact per-debtor tracking would need settlement records
// attributed to shares, which the data model does not do.
func (uc *ReportUseCase) PendingDues(ctx context.Context, businessID, callerID string) ([]*domain.Due, error) {
	if err := uc.gate.Require(ctx, businessID, callerID, RolesRead); err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.ListUnsettledWithShares(ctx, businessID)
	if err != nil {
		return nil, err
	}

	type pairKey struct {
		from string
		to   string
	}

	buckets := make(map[pairKey]*domain.Due)

	var order []pairKey

	for _, t := range transactions {
		if len(t.PaidFor) == 0 {
			continue
		}

		shareCount := decimal.NewFromInt(int64(len(t.PaidFor)))
		settledShare := t.SettledAmount.Div(shareCount)

		for _, pf := range t.PaidFor {
			remaining := pf.Amount.Sub(settledShare)

			key := pairKey{from: pf.MemberID, to: t.MemberID}

			due, ok := buckets[key]
			if !ok {
				due = &domain.Due{
					FromMemberID: pf.MemberID,
					ToMemberID:   t.MemberID,
					Amount:       decimal.Zero,
				}
				buckets[key] = due
				order = append(order, key)
			}

			due.Amount = due.Amount.Add(remaining)
			due.Transactions = append(due.Transactions, domain.DueTransactionRef{
				TransactionID: t.ID,
				Amount:        t.Amount,
				Date:          t.Date,
				Note:          t.Note,
			})
		}
	}

	dues := make([]*domain.Due, 0, len(order))
	for _, key := range order {
		if buckets[key].Amount.GreaterThan(decimal.Zero) {
			dues = append(dues, buckets[key])
		}
	}

	return dues, nil
}

// MonthlySummary produces per-month income/expense/balance totals for a
// year. All 12 months are always present, zero-filled where no data exists.
func (uc *ReportUseCase) MonthlySummary(ctx context.Context, businessID, callerID string, year int) ([]domain.MonthSummary, error) {
	if err := uc.gate.Require(ctx, businessID, callerID, RolesRead); err != nil {
		return nil, err
	}

	rows, err := uc.transactionRepo.MonthlyTotals(ctx, businessID, year)
	if err != nil {
		return nil, err
	}

	months := make([]domain.MonthSummary, 12)
	for i := range months {
		months[i] = domain.MonthSummary{
			Month:   i + 1,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Balance: decimal.Zero,
		}
	}

	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}

		m := &months[row.Month-1]

		switch row.Type {
		case domain.TypeIncome:
			m.Income = m.Income.Add(row.Total)
		case domain.TypeExpense:
			m.Expense = m.Expense.Add(row.Total)
		}
	}

	for i := range months {
		months[i].Balance = months[i].Income.Sub(months[i].Expense)
	}

	return months, nil
}

// CheckConsistency verifies that every transaction's cumulative settled
// amount equals the sum of its settlement records. An empty result means
// the ledger is consistent.
func (uc *ReportUseCase) CheckConsistency(ctx context.Context, businessID, callerID string) ([]domain.SettlementMismatch, error) {
	if err := uc.gate.Require(ctx, businessID, callerID, RolesManage); err != nil {
		return nil, err
	}

	return uc.transactionRepo.SettlementMismatches(ctx, businessID)
}
