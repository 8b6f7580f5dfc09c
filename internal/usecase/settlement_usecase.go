package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/hisab/internal/domain"
)

// SettlementUseCase applies payments against a transaction's outstanding
// balance and keeps its settlement status consistent.
type SettlementUseCase struct {
	txManager       TransactionManager
	transactionRepo TransactionRepository
	settlementRepo  SettlementRepository
	gate            *AccessGate
	idGen           IDGenerator
	retrier         Retrier
}

// NewSettlementUseCase creates a new SettlementUseCase.
func NewSettlementUseCase(
	txManager TransactionManager,
	transactionRepo TransactionRepository,
	settlementRepo SettlementRepository,
	gate *AccessGate,
	idGen IDGenerator,
	retrier Retrier,
) *SettlementUseCase {
	return &SettlementUseCase{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		settlementRepo:  settlementRepo,
		gate:            gate,
		idGen:           idGen,
		retrier:         retrier,
	}
}

// RecordSettlementInput represents input for recording a settlement.
type RecordSettlementInput struct {
	TransactionID string
	CallerID      string
	PaidTo        string
	Amount        decimal.Decimal
	Note          string
}

// RecordSettlementResult is the state of the transaction after a settlement
// was applied.
type RecordSettlementResult struct {
	BusinessID    string
	SettledAmount decimal.Decimal
	Status        domain.SettlementStatus
	Remaining     decimal.Decimal
	Type          domain.SettlementType
}

// RecordSettlement applies a payment against a transaction.
//
// The read-validate-append-update sequence runs inside one database
// transaction with the row locked, so two concurrent settlements against
// the same transaction cannot both pass the remaining-balance check.
// Serialization failures are retried.
func (uc *SettlementUseCase) RecordSettlement(ctx context.Context, input RecordSettlementInput) (*RecordSettlementResult, error) {
	// 0. Validate the amount before touching storage
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	var result *RecordSettlementResult

	err := uc.retrier.Retry(ctx, func() error {
		r, err := uc.recordOnce(ctx, input)
		if err != nil {
			return err
		}

		result = r

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *SettlementUseCase) recordOnce(ctx context.Context, input RecordSettlementInput) (*RecordSettlementResult, error) {
	// 1. Begin transaction
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 2. Lock the transaction row
	txn, err := uc.transactionRepo.GetByIDForUpdate(ctx, tx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Require(ctx, txn.BusinessID, input.CallerID, RolesRecord); err != nil {
		return nil, err
	}

	// 3. Reject terminal states
	switch txn.SettlementStatus {
	case domain.StatusSettled:
		return nil, domain.ErrAlreadySettled
	case domain.StatusNotApplicable:
		return nil, domain.ErrSettlementNotRequired
	}

	// 4. Check against the remaining balance
	remaining := txn.Remaining()
	if input.Amount.GreaterThan(remaining) {
		return nil, fmt.Errorf("%w: maximum settleable amount is %s", domain.ErrExceedsRemaining, remaining)
	}

	now := time.Now().UTC()

	// 5. Append the settlement record
	settlement := &domain.Settlement{
		ID:            uc.idGen.Generate(),
		BusinessID:    txn.BusinessID,
		TransactionID: txn.ID,
		PaidBy:        input.CallerID,
		PaidTo:        input.PaidTo,
		Amount:        input.Amount,
		Type:          domain.SettlementTypeFor(input.Amount, remaining),
		Note:          input.Note,
		Date:          now,
		CreatedBy:     input.CallerID,
		CreatedAt:     now,
	}

	if err := settlement.Validate(); err != nil {
		return nil, err
	}

	if err := uc.settlementRepo.Create(ctx, tx, settlement); err != nil {
		return nil, err
	}

	// 6. Advance the transaction's settlement state
	newStatus, err := txn.ApplySettlement(input.Amount)
	if err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.UpdateSettlement(ctx, tx, txn.ID, txn.SettledAmount, newStatus, now); err != nil {
		return nil, err
	}

	// 7. Commit
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &RecordSettlementResult{
		BusinessID:    txn.BusinessID,
		SettledAmount: txn.SettledAmount,
		Status:        newStatus,
		Remaining:     txn.Remaining(),
		Type:          settlement.Type,
	}, nil
}

// ListSettlements returns all settlement records for a transaction,
// newest first.
func (uc *SettlementUseCase) ListSettlements(ctx context.Context, transactionID, callerID string) ([]*domain.Settlement, error) {
	txn, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if err := uc.gate.Require(ctx, txn.BusinessID, callerID, RolesRead); err != nil {
		return nil, err
	}

	return uc.settlementRepo.ListByTransaction(ctx, transactionID)
}
