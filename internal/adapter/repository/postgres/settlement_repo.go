package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/infrastructure/postgres/generated"
	"github.com/iho/hisab/internal/usecase"
)

// SettlementRepository implements usecase.SettlementRepository.
type SettlementRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewSettlementRepository creates a new SettlementRepository.
func NewSettlementRepository(pool *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a settlement record within a transaction.
func (r *SettlementRepository) Create(ctx context.Context, tx usecase.Transaction, settlement *domain.Settlement) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.CreateSettlement(ctx, generated.CreateSettlementParams{
		ID:            settlement.ID,
		BusinessID:    settlement.BusinessID,
		TransactionID: settlement.TransactionID,
		PaidBy:        settlement.PaidBy,
		PaidTo:        settlement.PaidTo,
		Amount:        decimalToNumeric(settlement.Amount),
		Type:          string(settlement.Type),
		Note:          settlement.Note,
		Date:          timeToPgTimestamptz(settlement.Date),
		CreatedBy:     settlement.CreatedBy,
		CreatedAt:     timeToPgTimestamptz(settlement.CreatedAt),
	})
}

// ListByTransaction lists a transaction's settlements, newest first.
func (r *SettlementRepository) ListByTransaction(ctx context.Context, transactionID string) ([]*domain.Settlement, error) {
	rows, err := r.queries.ListSettlementsByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	settlements := make([]*domain.Settlement, 0, len(rows))
	for _, row := range rows {
		settlements = append(settlements, rowToSettlement(row))
	}

	return settlements, nil
}

// DeleteByTransaction removes all settlements of a transaction.
func (r *SettlementRepository) DeleteByTransaction(ctx context.Context, tx usecase.Transaction, transactionID string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteSettlementsByTransaction(ctx, transactionID)
}

func rowToSettlement(row generated.Settlement) *domain.Settlement {
	return &domain.Settlement{
		ID:            row.ID,
		BusinessID:    row.BusinessID,
		TransactionID: row.TransactionID,
		PaidBy:        row.PaidBy,
		PaidTo:        row.PaidTo,
		Amount:        numericToDecimal(row.Amount),
		Type:          domain.SettlementType(row.Type),
		Note:          row.Note,
		Date:          row.Date.Time,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     row.CreatedAt.Time,
	}
}
