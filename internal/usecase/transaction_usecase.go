package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/hisab/internal/domain"
)

// TransactionUseCase handles transaction CRUD and listing.
type TransactionUseCase struct {
	txManager       TransactionManager
	transactionRepo TransactionRepository
	settlementRepo  SettlementRepository
	categoryRepo    CategoryRepository
	gate            *AccessGate
	idGen           IDGenerator
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	transactionRepo TransactionRepository,
	settlementRepo SettlementRepository,
	categoryRepo CategoryRepository,
	gate *AccessGate,
	idGen IDGenerator,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		settlementRepo:  settlementRepo,
		categoryRepo:    categoryRepo,
		gate:            gate,
		idGen:           idGen,
	}
}

// PaidForShareInput is one split portion in a create request.
type PaidForShareInput struct {
	MemberID string
	Amount   decimal.Decimal
	Note     string
}

// CreateTransactionInput represents input for creating a transaction.
type CreateTransactionInput struct {
	BusinessID string
	CallerID   string
	Type       domain.TransactionType
	CategoryID string
	Amount     decimal.Decimal
	Date       *time.Time
	Note       string
	Reference  string
	// MemberID attributes the entry to another member; empty means the
	// caller records for themselves.
	MemberID   string
	ToMemberID string
	PaidFor    []PaidForShareInput
	SplitType  domain.SplitType
}

// CreateTransaction records a new ledger entry.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := uc.gate.Require(ctx, input.BusinessID, input.CallerID, RolesRecord); err != nil {
		return nil, err
	}

	// Recording on someone else's behalf needs owner/admin.
	member := input.CallerID
	if input.MemberID != "" && input.MemberID != input.CallerID {
		if err := uc.gate.Require(ctx, input.BusinessID, input.CallerID, RolesManage); err != nil {
			return nil, err
		}

		member = input.MemberID
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	splitType := input.SplitType
	if splitType == "" {
		splitType = domain.SplitNone
	}
	if !splitType.Valid() {
		splitType = domain.SplitNone
	}

	paidFor := make([]domain.PaidForShare, 0, len(input.PaidFor))
	for _, pf := range input.PaidFor {
		paidFor = append(paidFor, domain.PaidForShare{
			MemberID: pf.MemberID,
			Amount:   pf.Amount,
			Note:     pf.Note,
		})
	}

	now := time.Now().UTC()

	date := now
	if input.Date != nil {
		date = *input.Date
	}

	txn := &domain.Transaction{
		ID:               uc.idGen.Generate(),
		BusinessID:       input.BusinessID,
		Type:             input.Type,
		CategoryID:       input.CategoryID,
		Amount:           input.Amount,
		Date:             date,
		Note:             input.Note,
		Reference:        input.Reference,
		MemberID:         member,
		CreatedBy:        input.CallerID,
		ToMemberID:       input.ToMemberID,
		PaidFor:          paidFor,
		SplitType:        splitType,
		SettlementStatus: domain.InitialSettlementStatus(paidFor),
		SettledAmount:    decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id, callerID string) (*domain.Transaction, error) {
	txn, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Require(ctx, txn.BusinessID, callerID, RolesRead); err != nil {
		return nil, err
	}

	return txn, nil
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	BusinessID       string
	CallerID         string
	Type             domain.TransactionType
	CategoryID       string
	MemberID         string
	SettlementStatus domain.SettlementStatus
	StartDate        *time.Time
	EndDate          *time.Time
	Page             int
	Limit            int
}

// TransactionPage is a page of transactions with aggregate totals over the
// whole filtered set.
type TransactionPage struct {
	Transactions []*domain.Transaction
	Totals       *domain.TransactionTotals
	Page         int
	Limit        int
	Total        int64
	TotalPages   int64
}

// ListTransactions lists transactions date-descending with pagination and
// filter-wide income/expense totals.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) (*TransactionPage, error) {
	if err := uc.gate.Require(ctx, input.BusinessID, input.CallerID, RolesRead); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	filter := domain.TransactionFilter{
		BusinessID:       input.BusinessID,
		Type:             input.Type,
		CategoryID:       input.CategoryID,
		MemberID:         input.MemberID,
		SettlementStatus: input.SettlementStatus,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Limit:            limit,
		Offset:           (page - 1) * limit,
	}

	transactions, err := uc.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := uc.transactionRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals, err := uc.transactionRepo.Totals(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &TransactionPage{
		Transactions: transactions,
		Totals:       totals,
		Page:         page,
		Limit:        limit,
		Total:        total,
		TotalPages:   totalPages,
	}, nil
}

// UpdateTransactionInput represents a partial update. Nil fields are left
// unchanged.
type UpdateTransactionInput struct {
	ID         string
	CallerID   string
	Type       *domain.TransactionType
	Amount     *decimal.Decimal
	CategoryID *string
	Note       *string
	Date       *time.Time
	Reference  *string
}

// UpdateTransaction edits a transaction. Only the creator or an owner/admin
// may edit, and a fully settled transaction is read-only.
func (uc *TransactionUseCase) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*domain.Transaction, error) {
	txn, err := uc.transactionRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if txn.CreatedBy != input.CallerID {
		if err := uc.gate.Require(ctx, txn.BusinessID, input.CallerID, RolesManage); err != nil {
			return nil, err
		}
	} else {
		if err := uc.gate.Require(ctx, txn.BusinessID, input.CallerID, RolesRecord); err != nil {
			return nil, err
		}
	}

	if !txn.Editable() {
		return nil, domain.ErrTransactionSettled
	}

	if input.Type != nil {
		txn.Type = *input.Type
	}

	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return nil, err
		}

		// The settled portion must never exceed the amount owed
		if input.Amount.LessThan(txn.SettledAmount) {
			return nil, fmt.Errorf("%w: amount cannot drop below settled amount %s", domain.ErrInvalidAmount, txn.SettledAmount)
		}

		txn.Amount = *input.Amount
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}

		txn.CategoryID = *input.CategoryID
	}

	if input.Note != nil {
		txn.Note = *input.Note
	}

	if input.Date != nil {
		txn.Date = *input.Date
	}

	if input.Reference != nil {
		txn.Reference = *input.Reference
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

// DeleteTransaction removes a transaction together with its settlement
// records. Only the creator or an owner/admin may delete.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id, callerID string) error {
	txn, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if txn.CreatedBy != callerID {
		if err := uc.gate.Require(ctx, txn.BusinessID, callerID, RolesManage); err != nil {
			return err
		}
	} else {
		if err := uc.gate.Require(ctx, txn.BusinessID, callerID, RolesRecord); err != nil {
			return err
		}
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Settlements are owned by the transaction and go with it.
	if err := uc.settlementRepo.DeleteByTransaction(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.transactionRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
