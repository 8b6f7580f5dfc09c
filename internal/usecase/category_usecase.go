package usecase

import (
	"context"
	"time"

	"github.com/iho/hisab/internal/domain"
)

// CategoryUseCase handles transaction category management.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	gate         *AccessGate
	idGen        IDGenerator
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository, gate *AccessGate, idGen IDGenerator) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		gate:         gate,
		idGen:        idGen,
	}
}

// CreateCategoryInput represents input for creating a category.
type CreateCategoryInput struct {
	BusinessID string
	CallerID   string
	Name       string
	Kind       domain.CategoryKind
	Icon       string
	Group      string
}

// CreateCategory adds a category to a business. Owner/admin only.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := uc.gate.Require(ctx, input.BusinessID, input.CallerID, RolesManage); err != nil {
		return nil, err
	}

	if err := domain.ValidateCategoryName(input.Name); err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.CategoryBoth
	}

	now := time.Now().UTC()

	category := &domain.Category{
		ID:         uc.idGen.Generate(),
		BusinessID: input.BusinessID,
		Name:       input.Name,
		Kind:       kind,
		Icon:       input.Icon,
		Group:      input.Group,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories lists a business's categories.
func (uc *CategoryUseCase) ListCategories(ctx context.Context, businessID, callerID string) ([]*domain.Category, error) {
	if err := uc.gate.Require(ctx, businessID, callerID, RolesRead); err != nil {
		return nil, err
	}

	return uc.categoryRepo.ListByBusiness(ctx, businessID)
}

type defaultCategory struct {
	name  string
	kind  domain.CategoryKind
	group string
	icon  string
}

var defaultCategories = []defaultCategory{
	{"Salary", domain.CategoryIncome, "salary", "💰"},
	{"Business Income", domain.CategoryIncome, "business", "🏢"},
	{"Freelance", domain.CategoryIncome, "business", "💻"},
	{"Investment", domain.CategoryIncome, "business", "📈"},
	{"Rental Income", domain.CategoryIncome, "housing", "🏠"},
	{"Gift Received", domain.CategoryIncome, "other", "🎁"},
	{"Loan Received", domain.CategoryIncome, "loan", "🤝"},
	{"Refund", domain.CategoryIncome, "general", "↩️"},
	{"Meal / Food", domain.CategoryExpense, "food", "🍱"},
	{"Grocery", domain.CategoryExpense, "food", "🛒"},
	{"Transport", domain.CategoryExpense, "transport", "🚌"},
	{"Rent", domain.CategoryExpense, "housing", "🏘️"},
	{"Utilities", domain.CategoryExpense, "housing", "💡"},
	{"Shopping", domain.CategoryExpense, "shopping", "🛍️"},
	{"Healthcare", domain.CategoryExpense, "health", "🏥"},
	{"Entertainment", domain.CategoryExpense, "leisure", "🎬"},
	{"Loan Payment", domain.CategoryExpense, "loan", "💳"},
	{"Other", domain.CategoryExpense, "general", "📦"},
}

// SeedDefaults creates the stock category set for a business. Existing
// categories are left alone; seeding a non-empty business is a no-op.
func (uc *CategoryUseCase) SeedDefaults(ctx context.Context, businessID, callerID string) (int, error) {
	if err := uc.gate.Require(ctx, businessID, callerID, RolesManage); err != nil {
		return 0, err
	}

	existing, err := uc.categoryRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return 0, err
	}

	if len(existing) > 0 {
		return 0, nil
	}

	now := time.Now().UTC()

	created := 0
	for _, d := range defaultCategories {
		category := &domain.Category{
			ID:         uc.idGen.Generate(),
			BusinessID: businessID,
			Name:       d.name,
			Kind:       d.kind,
			Icon:       d.icon,
			Group:      d.group,
			IsDefault:  true,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			return created, err
		}

		created++
	}

	return created, nil
}
