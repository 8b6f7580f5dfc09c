package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/usecase"
)

// PaidForShareRequest is one split portion in a create request.
type PaidForShareRequest struct {
	MemberID string          `json:"member_id"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

// CreateTransactionRequest represents a request to create a transaction.
type CreateTransactionRequest struct {
	Type       string                `json:"type"`
	CategoryID string                `json:"category_id"`
	Amount     decimal.Decimal       `json:"amount"`
	Date       *time.Time            `json:"date,omitempty"`
	Note       string                `json:"note,omitempty"`
	Reference  string                `json:"reference,omitempty"`
	MemberID   string                `json:"member_id,omitempty"`
	ToMemberID string                `json:"to_member_id,omitempty"`
	PaidFor    []PaidForShareRequest `json:"paid_for,omitempty"`
	SplitType  string                `json:"split_type,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput(businessID, callerID string) usecase.CreateTransactionInput {
	paidFor := make([]usecase.PaidForShareInput, 0, len(r.PaidFor))
	for _, pf := range r.PaidFor {
		paidFor = append(paidFor, usecase.PaidForShareInput{
			MemberID: pf.MemberID,
			Amount:   pf.Amount,
			Note:     pf.Note,
		})
	}

	return usecase.CreateTransactionInput{
		BusinessID: businessID,
		CallerID:   callerID,
		Type:       domain.TransactionType(r.Type),
		CategoryID: r.CategoryID,
		Amount:     r.Amount,
		Date:       r.Date,
		Note:       r.Note,
		Reference:  r.Reference,
		MemberID:   r.MemberID,
		ToMemberID: r.ToMemberID,
		PaidFor:    paidFor,
		SplitType:  domain.SplitType(r.SplitType),
	}
}

// UpdateTransactionRequest represents a partial update. Absent fields are
// left unchanged.
type UpdateTransactionRequest struct {
	Type       *string          `json:"type,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	CategoryID *string          `json:"category_id,omitempty"`
	Note       *string          `json:"note,omitempty"`
	Date       *time.Time       `json:"date,omitempty"`
	Reference  *string          `json:"reference,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateTransactionRequest) ToUseCaseInput(id, callerID string) usecase.UpdateTransactionInput {
	input := usecase.UpdateTransactionInput{
		ID:         id,
		CallerID:   callerID,
		Amount:     r.Amount,
		CategoryID: r.CategoryID,
		Note:       r.Note,
		Date:       r.Date,
		Reference:  r.Reference,
	}

	if r.Type != nil {
		t := domain.TransactionType(*r.Type)
		input.Type = &t
	}

	return input
}

// RecordSettlementRequest represents a request to settle part of a
// transaction.
type RecordSettlementRequest struct {
	Amount decimal.Decimal `json:"amount"`
	PaidTo string          `json:"paid_to"`
	Note   string          `json:"note,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordSettlementRequest) ToUseCaseInput(transactionID, callerID string) usecase.RecordSettlementInput {
	return usecase.RecordSettlementInput{
		TransactionID: transactionID,
		CallerID:      callerID,
		PaidTo:        r.PaidTo,
		Amount:        r.Amount,
		Note:          r.Note,
	}
}

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Kind  string `json:"kind,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Group string `json:"group,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCategoryRequest) ToUseCaseInput(businessID, callerID string) usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{
		BusinessID: businessID,
		CallerID:   callerID,
		Name:       r.Name,
		Kind:       domain.CategoryKind(r.Kind),
		Icon:       r.Icon,
		Group:      r.Group,
	}
}
