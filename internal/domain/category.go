package domain

import "time"

// CategoryKind restricts which transaction types a category applies to.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
	CategoryBoth    CategoryKind = "both"
)

// Category is a per-business transaction category.
type Category struct {
	ID         string
	BusinessID string
	Name       string
	Kind       CategoryKind
	Icon       string
	Group      string
	IsDefault  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
