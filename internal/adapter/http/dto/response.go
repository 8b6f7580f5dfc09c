package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/usecase"
)

// PaidForShareResponse is one split portion in API responses.
type PaidForShareResponse struct {
	MemberID string          `json:"member_id"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID                  string                 `json:"id"`
	BusinessID          string                 `json:"business_id"`
	Type                string                 `json:"type"`
	CategoryID          string                 `json:"category_id"`
	Amount              decimal.Decimal        `json:"amount"`
	Date                time.Time              `json:"date"`
	Note                string                 `json:"note,omitempty"`
	Reference           string                 `json:"reference,omitempty"`
	MemberID            string                 `json:"member_id"`
	CreatedBy           string                 `json:"created_by"`
	ToMemberID          string                 `json:"to_member_id,omitempty"`
	PaidFor             []PaidForShareResponse `json:"paid_for,omitempty"`
	SplitType           string                 `json:"split_type"`
	SettlementStatus    string                 `json:"settlement_status"`
	SettledAmount       decimal.Decimal        `json:"settled_amount"`
	RemainingAmount     decimal.Decimal        `json:"remaining_amount"`
	LinkedTransactionID string                 `json:"linked_transaction_id,omitempty"`
	IsAdjustment        bool                   `json:"is_adjustment,omitempty"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	paidFor := make([]PaidForShareResponse, 0, len(t.PaidFor))
	for _, pf := range t.PaidFor {
		paidFor = append(paidFor, PaidForShareResponse{
			MemberID: pf.MemberID,
			Amount:   pf.Amount,
			Note:     pf.Note,
		})
	}
	if len(paidFor) == 0 {
		paidFor = nil
	}

	return &TransactionResponse{
		ID:                  t.ID,
		BusinessID:          t.BusinessID,
		Type:                string(t.Type),
		CategoryID:          t.CategoryID,
		Amount:              t.Amount,
		Date:                t.Date,
		Note:                t.Note,
		Reference:           t.Reference,
		MemberID:            t.MemberID,
		CreatedBy:           t.CreatedBy,
		ToMemberID:          t.ToMemberID,
		PaidFor:             paidFor,
		SplitType:           string(t.SplitType),
		SettlementStatus:    string(t.SettlementStatus),
		SettledAmount:       t.SettledAmount,
		RemainingAmount:     t.Remaining(),
		LinkedTransactionID: t.LinkedTransactionID,
		IsAdjustment:        t.IsAdjustment,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// TotalsResponse carries filter-wide aggregates alongside a page.
type TotalsResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	IncomeCount  int64           `json:"income_count"`
	ExpenseCount int64           `json:"expense_count"`
}

// TransactionListResponse is a page of transactions.
type TransactionListResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Totals       *TotalsResponse        `json:"totals"`
	Page         int                    `json:"page"`
	Limit        int                    `json:"limit"`
	Total        int64                  `json:"total"`
	TotalPages   int64                  `json:"total_pages"`
}

// TransactionPageFromUseCase converts a use case page to a response.
func TransactionPageFromUseCase(page *usecase.TransactionPage) *TransactionListResponse {
	return &TransactionListResponse{
		Transactions: TransactionsFromDomain(page.Transactions),
		Totals: &TotalsResponse{
			TotalIncome:  page.Totals.TotalIncome,
			TotalExpense: page.Totals.TotalExpense,
			Balance:      page.Totals.Balance,
			IncomeCount:  page.Totals.IncomeCount,
			ExpenseCount: page.Totals.ExpenseCount,
		},
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}

// SettlementResponse represents a settlement record in API responses.
type SettlementResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	PaidBy        string          `json:"paid_by"`
	PaidTo        string          `json:"paid_to"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Note          string          `json:"note,omitempty"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SettlementFromDomain converts domain settlement to response.
func SettlementFromDomain(s *domain.Settlement) *SettlementResponse {
	return &SettlementResponse{
		ID:            s.ID,
		TransactionID: s.TransactionID,
		PaidBy:        s.PaidBy,
		PaidTo:        s.PaidTo,
		Amount:        s.Amount,
		Type:          string(s.Type),
		Note:          s.Note,
		Date:          s.Date,
		CreatedAt:     s.CreatedAt,
	}
}

// SettlementsFromDomain converts domain settlements to responses.
func SettlementsFromDomain(settlements []*domain.Settlement) []*SettlementResponse {
	result := make([]*SettlementResponse, len(settlements))
	for i, s := range settlements {
		result[i] = SettlementFromDomain(s)
	}
	return result
}

// SettlementResultResponse is the transaction state after a settlement.
type SettlementResultResponse struct {
	SettledAmount   decimal.Decimal `json:"settled_amount"`
	Status          string          `json:"settlement_status"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

// SettlementResultFromUseCase converts a use case result to a response.
func SettlementResultFromUseCase(res *usecase.RecordSettlementResult) *SettlementResultResponse {
	return &SettlementResultResponse{
		SettledAmount:   res.SettledAmount,
		Status:          string(res.Status),
		RemainingAmount: res.Remaining,
	}
}

// DueTransactionResponse is one transaction contributing to a due.
type DueTransactionResponse struct {
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Note          string          `json:"note,omitempty"`
}

// DueResponse represents one member-pair debt in API responses.
type DueResponse struct {
	FromMemberID string                   `json:"from_member_id"`
	ToMemberID   string                   `json:"to_member_id"`
	Amount       decimal.Decimal          `json:"amount"`
	Transactions []DueTransactionResponse `json:"transactions"`
}

// DuesFromDomain converts domain dues to responses.
func DuesFromDomain(dues []*domain.Due) []*DueResponse {
	result := make([]*DueResponse, len(dues))
	for i, d := range dues {
		transactions := make([]DueTransactionResponse, len(d.Transactions))
		for j, ref := range d.Transactions {
			transactions[j] = DueTransactionResponse{
				TransactionID: ref.TransactionID,
				Amount:        ref.Amount,
				Date:          ref.Date,
				Note:          ref.Note,
			}
		}

		result[i] = &DueResponse{
			FromMemberID: d.FromMemberID,
			ToMemberID:   d.ToMemberID,
			Amount:       d.Amount,
			Transactions: transactions,
		}
	}
	return result
}

// MonthSummaryResponse is one month of the yearly summary.
type MonthSummaryResponse struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// MonthlySummaryFromDomain converts domain month summaries to responses.
func MonthlySummaryFromDomain(months []domain.MonthSummary) []MonthSummaryResponse {
	result := make([]MonthSummaryResponse, len(months))
	for i, m := range months {
		result[i] = MonthSummaryResponse{
			Month:   m.Month,
			Income:  m.Income,
			Expense: m.Expense,
			Balance: m.Balance,
		}
	}
	return result
}

// MismatchResponse is one inconsistent transaction.
type MismatchResponse struct {
	TransactionID  string          `json:"transaction_id"`
	SettledAmount  decimal.Decimal `json:"settled_amount"`
	SettlementsSum decimal.Decimal `json:"settlements_sum"`
}

// ConsistencyResponse is the result of a consistency check.
type ConsistencyResponse struct {
	Consistent bool               `json:"consistent"`
	Mismatches []MismatchResponse `json:"mismatches"`
}

// ConsistencyFromDomain converts domain mismatches to a response.
func ConsistencyFromDomain(mismatches []domain.SettlementMismatch) *ConsistencyResponse {
	result := make([]MismatchResponse, len(mismatches))
	for i, m := range mismatches {
		result[i] = MismatchResponse{
			TransactionID:  m.TransactionID,
			SettledAmount:  m.SettledAmount,
			SettlementsSum: m.SettlementsSum,
		}
	}

	return &ConsistencyResponse{
		Consistent: len(mismatches) == 0,
		Mismatches: result,
	}
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Icon       string    `json:"icon,omitempty"`
	Group      string    `json:"group,omitempty"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategoryFromDomain converts domain category to response.
func CategoryFromDomain(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:         c.ID,
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Kind:       string(c.Kind),
		Icon:       c.Icon,
		Group:      c.Group,
		IsDefault:  c.IsDefault,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryFromDomain(c)
	}
	return result
}

// SeedResponse reports how many default categories were created.
type SeedResponse struct {
	Created int `json:"created"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
