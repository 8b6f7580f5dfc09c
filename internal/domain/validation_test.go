package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{"positive", decimal.NewFromInt(100), nil},
		{"smallest unit", decimal.RequireFromString("0.01"), nil},
		{"zero", decimal.Zero, ErrInvalidAmount},
		{"negative", decimal.NewFromInt(-5), ErrInvalidAmount},
		{"over max", decimal.RequireFromString("1000000001"), ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateAmount(tt.amount); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAmount(%s) = %v, want %v", tt.amount, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCategoryName(t *testing.T) {
	if err := ValidateCategoryName("Groceries"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateCategoryName("   "); !errors.Is(err, ErrInvalidCategoryName) {
		t.Errorf("blank name: got %v, want %v", err, ErrInvalidCategoryName)
	}

	long := make([]byte, MaxCategoryNameLength+1)
	for i := range long {
		long[i] = 'x'
	}
	if err := ValidateCategoryName(string(long)); !errors.Is(err, ErrInvalidCategoryName) {
		t.Errorf("overlong name: got %v, want %v", err, ErrInvalidCategoryName)
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID("01J8ZQZB8M3N9Y6W2K4T7V5X1A"); err != nil {
		t.Errorf("valid ULID rejected: %v", err)
	}

	for _, id := range []string{"", "abc", "not-a-ulid-but-26-chars!!!"} {
		if err := ValidateID(id); !errors.Is(err, ErrInvalidIDFormat) {
			t.Errorf("ValidateID(%q) = %v, want %v", id, err, ErrInvalidIDFormat)
		}
	}
}
