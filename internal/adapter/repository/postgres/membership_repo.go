package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/infrastructure/postgres/generated"
)

// MembershipRepository implements usecase.MembershipRepository.
type MembershipRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(pool *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Get retrieves a user's membership in a business.
func (r *MembershipRepository) Get(ctx context.Context, businessID, userID string) (*domain.Membership, error) {
	row, err := r.queries.GetMembership(ctx, generated.GetMembershipParams{
		BusinessID: businessID,
		UserID:     userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}

		return nil, err
	}

	return &domain.Membership{
		ID:         row.ID,
		BusinessID: row.BusinessID,
		UserID:     row.UserID,
		Role:       domain.Role(row.Role),
		Status:     domain.MembershipStatus(row.Status),
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}, nil
}
