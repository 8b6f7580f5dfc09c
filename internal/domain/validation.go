package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrAmountTooLarge      = errors.New("amount exceeds maximum allowed")
	ErrInvalidIDFormat     = errors.New("invalid ID format")
)

// Validation constants
const (
	MaxCategoryNameLength = 100
	MaxNoteLength         = 1000
	MaxAmount             = "1000000000" // 1 billion
)

// ValidateAmount validates a transaction or settlement amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	return nil
}

// ValidateCategoryName validates a category name.
func ValidateCategoryName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidCategoryName)
	}

	if len(name) > MaxCategoryNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidCategoryName, MaxCategoryNameLength)
	}

	return nil
}

// ValidateID validates an entity ID. IDs are ULIDs: 26 characters of
// Crockford base32.
func ValidateID(id string) error {
	if len(id) != 26 {
		return ErrInvalidIDFormat
	}

	for _, c := range id {
		if !strings.ContainsRune("0123456789ABCDEFGHJKMNPQRSTVWXYZabcdefghjkmnpqrstvwxyz", c) {
			return ErrInvalidIDFormat
		}
	}

	return nil
}
