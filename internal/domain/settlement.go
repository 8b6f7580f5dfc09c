package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementType marks whether a payment cleared the transaction's
// remaining balance at the time it was recorded.
type SettlementType string

const (
	SettlementFull    SettlementType = "full"
	SettlementPartial SettlementType = "partial"
)

// Settlement is an immutable record of one payment against a transaction.
// Settlements are append-only; they are removed only when their parent
// transaction is deleted.
type Settlement struct {
	ID            string
	BusinessID    string
	TransactionID string
	PaidBy        string
	PaidTo        string
	Amount        decimal.Decimal
	Type          SettlementType
	Note          string
	Date          time.Time
	CreatedBy     string
	CreatedAt     time.Time
}

// Validate checks settlement invariants.
func (s *Settlement) Validate() error {
	if s.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// SettlementTypeFor returns full when amount meets or exceeds the remaining
// balance at recording time, partial otherwise.
func SettlementTypeFor(amount, remaining decimal.Decimal) SettlementType {
	if amount.GreaterThanOrEqual(remaining) {
		return SettlementFull
	}
	return SettlementPartial
}
