package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/infrastructure/postgres/generated"
)

// CategoryRepository implements usecase.CategoryRepository.
type CategoryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return r.queries.CreateCategory(ctx, generated.CreateCategoryParams{
		ID:            category.ID,
		BusinessID:    category.BusinessID,
		Name:          category.Name,
		Kind:          string(category.Kind),
		Icon:          category.Icon,
		CategoryGroup: category.Group,
		IsDefault:     category.IsDefault,
		CreatedAt:     timeToPgTimestamptz(category.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(category.UpdatedAt),
	})
}

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row, err := r.queries.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}

		return nil, err
	}

	return rowToCategory(row), nil
}

// ListByBusiness lists a business's categories by name.
func (r *CategoryRepository) ListByBusiness(ctx context.Context, businessID string) ([]*domain.Category, error) {
	rows, err := r.queries.ListCategoriesByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, rowToCategory(row))
	}

	return categories, nil
}

func rowToCategory(row generated.Category) *domain.Category {
	return &domain.Category{
		ID:         row.ID,
		BusinessID: row.BusinessID,
		Name:       row.Name,
		Kind:       domain.CategoryKind(row.Kind),
		Icon:       row.Icon,
		Group:      row.CategoryGroup,
		IsDefault:  row.IsDefault,
		CreatedAt:  row.CreatedAt.Time,
		UpdatedAt:  row.UpdatedAt.Time,
	}
}
