package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthSummary is one month's income/expense rollup.
type MonthSummary struct {
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// TransactionTotals aggregates a filtered transaction set.
type TransactionTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	IncomeCount  int64
	ExpenseCount int64
}

// DueTransactionRef points at a transaction contributing to a dues bucket.
type DueTransactionRef struct {
	TransactionID string
	Amount        decimal.Decimal
	Date          time.Time
	Note          string
}

// Due is an outstanding debtor -> creditor balance aggregated across
// transactions.
type Due struct {
	FromMemberID string
	ToMemberID   string
	Amount       decimal.Decimal
	Transactions []DueTransactionRef
}

// SettlementMismatch is a transaction whose recorded settlements do not add
// up to its cumulative settled amount.
type SettlementMismatch struct {
	TransactionID  string
	SettledAmount  decimal.Decimal
	SettlementsSum decimal.Decimal
}
