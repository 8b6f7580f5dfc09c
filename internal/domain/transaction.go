package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	}
	return false
}

// SplitType records how a paidFor split was derived. It is informational
// and is not re-validated against the split amounts.
type SplitType string

const (
	SplitNone       SplitType = "none"
	SplitEqual      SplitType = "equal"
	SplitCustom     SplitType = "custom"
	SplitPercentage SplitType = "percentage"
)

// Valid reports whether s is a known split type.
func (s SplitType) Valid() bool {
	switch s {
	case SplitNone, SplitEqual, SplitCustom, SplitPercentage:
		return true
	}
	return false
}

// SettlementStatus is the settlement state of a transaction.
//
// not_applicable is an absorbing state fixed at creation time. The other
// states form a strictly ordered chain: pending -> partial -> settled.
// A status never moves backwards.
type SettlementStatus string

const (
	StatusNotApplicable SettlementStatus = "not_applicable"
	StatusPending       SettlementStatus = "pending"
	StatusPartial       SettlementStatus = "partial"
	StatusSettled       SettlementStatus = "settled"
)

// rank orders the pending -> partial -> settled chain. not_applicable sits
// outside the chain and cannot transition at all.
func (s SettlementStatus) rank() int {
	switch s {
	case StatusPending:
		return 1
	case StatusPartial:
		return 2
	case StatusSettled:
		return 3
	}
	return 0
}

// CanTransitionTo reports whether moving from s to next is legal. Staying
// in place is allowed for the chain states; moving backwards is not.
func (s SettlementStatus) CanTransitionTo(next SettlementStatus) bool {
	if s == StatusNotApplicable || next == StatusNotApplicable {
		return false
	}
	return next.rank() >= s.rank()
}

// PaidForShare is one portion of a transaction paid on behalf of another
// member.
type PaidForShare struct {
	MemberID string          `json:"member_id"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

// Transaction is a single ledger entry owned by a business.
type Transaction struct {
	ID                  string
	BusinessID          string
	Type                TransactionType
	CategoryID          string
	Amount              decimal.Decimal
	Date                time.Time
	Note                string
	Reference           string
	MemberID            string
	CreatedBy           string
	ToMemberID          string
	PaidFor             []PaidForShare
	SplitType           SplitType
	SettlementStatus    SettlementStatus
	SettledAmount       decimal.Decimal
	LinkedTransactionID string
	IsAdjustment        bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks the creation-time invariants of a transaction.
func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	for _, pf := range t.PaidFor {
		if pf.Amount.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidAmount
		}
	}

	if t.Type == TypeTransfer && t.ToMemberID == "" {
		return ErrMissingToMember
	}

	return nil
}

// InitialSettlementStatus returns the status a transaction starts in:
// pending when it carries paidFor shares, not_applicable otherwise.
func InitialSettlementStatus(paidFor []PaidForShare) SettlementStatus {
	if len(paidFor) > 0 {
		return StatusPending
	}
	return StatusNotApplicable
}

// Remaining returns the unsettled portion of the transaction amount.
func (t *Transaction) Remaining() decimal.Decimal {
	return t.Amount.Sub(t.SettledAmount)
}

// Editable reports whether amount/category/type edits are still allowed.
// A fully settled transaction is read-only.
func (t *Transaction) Editable() bool {
	return t.SettlementStatus != StatusSettled
}

// ApplySettlement advances the settlement state by amount and returns the
// resulting status. It assumes the amount was already validated against
// Remaining.
func (t *Transaction) ApplySettlement(amount decimal.Decimal) (SettlementStatus, error) {
	newSettled := t.SettledAmount.Add(amount)

	newStatus := StatusPartial
	if newSettled.GreaterThanOrEqual(t.Amount) {
		newStatus = StatusSettled
	}

	if !t.SettlementStatus.CanTransitionTo(newStatus) {
		return t.SettlementStatus, ErrStatusRegression
	}

	t.SettledAmount = newSettled
	t.SettlementStatus = newStatus

	return newStatus, nil
}
