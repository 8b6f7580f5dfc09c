package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/hisab/internal/domain"
	"github.com/iho/hisab/internal/usecase"
	"github.com/iho/hisab/internal/usecase/mocks"
)

type transactionFixture struct {
	uc              *usecase.TransactionUseCase
	transactionRepo *mocks.MockTransactionRepository
	settlementRepo  *mocks.MockSettlementRepository
	categoryRepo    *mocks.MockCategoryRepository
	memberships     *mocks.MockMembershipRepository
}

func newTransactionFixture() *transactionFixture {
	transactionRepo := mocks.NewMockTransactionRepository()
	settlementRepo := mocks.NewMockSettlementRepository()
	categoryRepo := mocks.NewMockCategoryRepository()
	memberships := mocks.NewMockMembershipRepository()

	memberships.Grant("biz-1", "alice", domain.RoleOwner)
	memberships.Grant("biz-1", "bob", domain.RoleMember)
	memberships.Grant("biz-1", "victor", domain.RoleViewer)

	_ = categoryRepo.Create(context.Background(), &domain.Category{
		ID: "cat-food", BusinessID: "biz-1", Name: "Meal/Food", Kind: domain.CategoryExpense,
	})

	uc := usecase.NewTransactionUseCase(
		mocks.NewMockTxManager(),
		transactionRepo,
		settlementRepo,
		categoryRepo,
		usecase.NewAccessGate(memberships),
		mocks.NewMockIDGenerator("txn"),
	)

	return &transactionFixture{
		uc:              uc,
		transactionRepo: transactionRepo,
		settlementRepo:  settlementRepo,
		categoryRepo:    categoryRepo,
		memberships:     memberships,
	}
}

func TestTransactionUseCase_CreateTransaction(t *testing.T) {
	tests := []struct {
		name       string
		input      usecase.CreateTransactionInput
		wantErr    error
		wantStatus domain.SettlementStatus
		wantMember string
	}{
		{
			name: "plain expense",
			input: usecase.CreateTransactionInput{
				BusinessID: "biz-1", CallerID: "bob", Type: domain.TypeExpense,
				CategoryID: "cat-food", Amount: decimal.NewFromInt(50),
			},
			wantStatus: domain.StatusNotApplicable,
			wantMember: "bob",
		},
		{
			name: "shared expense starts pending",
			input: usecase.CreateTransactionInput{
				BusinessID: "biz-1", CallerID: "bob", Type: domain.TypeExpense,
				CategoryID: "cat-food", Amount: decimal.NewFromInt(90),
				PaidFor: []usecase.PaidForShareInput{
					{MemberID: "alice", Amount: decimal.NewFromInt(45)},
				},
				SplitType: domain.SplitEqual,
			},
			wantStatus: domain.StatusPending,
			wantMember: "bob",
		},
		{
			name: "owner records on behalf of member",
			input: usecase.CreateTransactionInput{
				BusinessID: "biz-1", CallerID: "alice", Type: domain.TypeExpense,
				CategoryID: "cat-food", Amount: decimal.NewFromInt(10),
				MemberID: "bob",
			},
			wantStatus: domain.StatusNotApplicable,
			wantMember: "bob",
		},
		{
			name: "member cannot record on behalf",
			input: usecase.CreateTransactionInput{
				BusinessID: "biz-1", CallerID: "bob", Type: domain.TypeExpense,
				CategoryID: "cat-food", Amount: decimal.NewFromInt(10),
				MemberID: "alice",
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name: "viewer cannot record",
			input: usecase.CreateTransactionInput{
				BusinessID: "biz-1", CallerID: "victor", Type: domain.TypeExpense,
				CategoryID: "cat-food", Amount: decimal.NewFromInt(10),
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name: "zero amount",
			input: usecase.CreateTransactionInput{
				BusinessID: "biz-1", CallerID: "bob", Type: domain.TypeExpense,
				CategoryID: "cat-food", Amount: decimal.Zero,
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "unknown category",
			input: usecase.CreateTransactionInput{
				BusinessID: "biz-1", CallerID: "bob", Type: domain.TypeExpense,
				CategoryID: "cat-missing", Amount: decimal.NewFromInt(10),
			},
			wantErr: domain.ErrCategoryNotFound,
		},
		{
			name: "transfer without recipient",
			input: usecase.CreateTransactionInput{
				BusinessID: "biz-1", CallerID: "bob", Type: domain.TypeTransfer,
				CategoryID: "cat-food", Amount: decimal.NewFromInt(10),
			},
			wantErr: domain.ErrMissingToMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransactionFixture()

			txn, err := f.uc.CreateTransaction(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}

				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if txn.SettlementStatus != tt.wantStatus {
				t.Errorf("status = %s, want %s", txn.SettlementStatus, tt.wantStatus)
			}
			if txn.MemberID != tt.wantMember {
				t.Errorf("member = %s, want %s", txn.MemberID, tt.wantMember)
			}
			if !txn.SettledAmount.IsZero() {
				t.Errorf("settled amount must start at zero, got %s", txn.SettledAmount)
			}
		})
	}
}

func TestTransactionUseCase_GetTransaction_Forbidden(t *testing.T) {
	f := newTransactionFixture()

	txn, err := f.uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		BusinessID: "biz-1", CallerID: "bob", Type: domain.TypeExpense,
		CategoryID: "cat-food", Amount: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.uc.GetTransaction(context.Background(), txn.ID, "mallory"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	// Viewers may read.
	if _, err := f.uc.GetTransaction(context.Background(), txn.ID, "victor"); err != nil {
		t.Fatalf("viewer read: %v", err)
	}
}

func TestTransactionUseCase_ListTransactions_Pagination(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 45; i++ {
		date := base.Add(time.Duration(i) * time.Hour)
		if _, err := f.uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
			BusinessID: "biz-1", CallerID: "bob", Type: domain.TypeExpense,
			CategoryID: "cat-food", Amount: decimal.NewFromInt(int64(i + 1)),
			Date: &date,
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	page, err := f.uc.ListTransactions(ctx, usecase.ListTransactionsInput{
		BusinessID: "biz-1", CallerID: "victor", Page: 2,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if page.Limit != 20 {
		t.Errorf("default limit = %d, want 20", page.Limit)
	}
	if page.Total != 45 {
		t.Errorf("total = %d, want 45", page.Total)
	}
	if page.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", page.TotalPages)
	}
	if len(page.Transactions) != 20 {
		t.Errorf("page size = %d, want 20", len(page.Transactions))
	}

	for i := 1; i < len(page.Transactions); i++ {
		if page.Transactions[i-1].Date.Before(page.Transactions[i].Date) {
			t.Fatal("transactions must be ordered date descending")
		}
	}

	// Limit is capped.
	page, err = f.uc.ListTransactions(ctx, usecase.ListTransactionsInput{
		BusinessID: "biz-1", CallerID: "victor", Limit: 500,
	})
	if err != nil {
		t.Fatalf("list capped: %v", err)
	}
	if page.Limit != 100 {
		t.Errorf("capped limit = %d, want 100", page.Limit)
	}
}

func TestTransactionUseCase_ListTransactions_Totals(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()

	amounts := map[domain.TransactionType][]int64{
		domain.TypeIncome:  {100, 200},
		domain.TypeExpense: {30, 20, 10},
	}
	for typ, list := range amounts {
		for _, a := range list {
			if _, err := f.uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
				BusinessID: "biz-1", CallerID: "bob", Type: typ,
				CategoryID: "cat-food", Amount: decimal.NewFromInt(a),
			}); err != nil {
				t.Fatalf("create: %v", err)
			}
		}
	}

	page, err := f.uc.ListTransactions(ctx, usecase.ListTransactionsInput{
		BusinessID: "biz-1", CallerID: "bob",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if !page.Totals.TotalIncome.Equal(decimal.NewFromInt(300)) {
		t.Errorf("income = %s, want 300", page.Totals.TotalIncome)
	}
	if !page.Totals.TotalExpense.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expense = %s, want 60", page.Totals.TotalExpense)
	}
	if !page.Totals.Balance.Equal(decimal.NewFromInt(240)) {
		t.Errorf("balance = %s, want 240", page.Totals.Balance)
	}
	if page.Totals.IncomeCount != 2 || page.Totals.ExpenseCount != 3 {
		t.Errorf("counts = %d/%d, want 2/3", page.Totals.IncomeCount, page.Totals.ExpenseCount)
	}
}

func TestTransactionUseCase_UpdateTransaction(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()

	txn, err := f.uc.CreateTransaction(ctx, usecase.CreateTransactionInput{
		BusinessID: "biz-1", CallerID: "bob", Type: domain.TypeExpense,
		CategoryID: "cat-food", Amount: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newAmount := decimal.NewFromInt(75)
	note := "team lunch"

	updated, err := f.uc.UpdateTransaction(ctx, usecase.UpdateTransactionInput{
		ID: txn.ID, CallerID: "bob", Amount: &newAmount, Note: &note,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Amount.Equal(newAmount) || updated.Note != note {
		t.Errorf("update not applied: amount=%s note=%q", updated.Amount, updated.Note)
	}

	// Owner may edit someone else's entry, a plain member may not.
	if _, err := f.uc.UpdateTransaction(ctx, usecase.UpdateTransactionInput{
		ID: txn.ID, CallerID: "alice", Note: &note,
	}); err != nil {
		t.Fatalf("owner update: %v", err)
	}

	f.memberships.Grant("biz-1", "carol", domain.RoleMember)
	if _, err := f.uc.UpdateTransaction(ctx, usecase.UpdateTransactionInput{
		ID: txn.ID, CallerID: "carol", Note: &note,
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestTransactionUseCase_UpdateTransaction_SettledIsReadOnly(t *testing.T) {
	f := newTransactionFixture()

	f.transactionRepo.Put(&domain.Transaction{
		ID:         "tx-done",
		BusinessID: "biz-1",
		Type:       domain.TypeExpense,
		Amount:     decimal.NewFromInt(100),
		MemberID:   "bob",
		CreatedBy:  "bob",
		PaidFor: []domain.PaidForShare{
			{MemberID: "alice", Amount: decimal.NewFromInt(50)},
		},
		SettlementStatus: domain.StatusSettled,
		SettledAmount:    decimal.NewFromInt(100),
	})

	note := "edit"
	if _, err := f.uc.UpdateTransaction(context.Background(), usecase.UpdateTransactionInput{
		ID: "tx-done", CallerID: "bob", Note: &note,
	}); !errors.Is(err, domain.ErrTransactionSettled) {
		t.Fatalf("err = %v, want ErrTransactionSettled", err)
	}
}

func TestTransactionUseCase_UpdateTransaction_AmountFloorsAtSettled(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()

	f.transactionRepo.Put(&domain.Transaction{
		ID:         "tx-part",
		BusinessID: "biz-1",
		Type:       domain.TypeExpense,
		Amount:     decimal.NewFromInt(300),
		MemberID:   "bob",
		CreatedBy:  "bob",
		PaidFor: []domain.PaidForShare{
			{MemberID: "alice", Amount: decimal.NewFromInt(300)},
		},
		SettlementStatus: domain.StatusPartial,
		SettledAmount:    decimal.NewFromInt(100),
	})

	// Shrinking the amount below what is already settled would drive
	// the remaining balance negative
	below := decimal.NewFromInt(50)
	if _, err := f.uc.UpdateTransaction(ctx, usecase.UpdateTransactionInput{
		ID: "tx-part", CallerID: "bob", Amount: &below,
	}); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("err = %v, want ErrInvalidAmount", err)
	}

	raised := decimal.NewFromInt(400)
	updated, err := f.uc.UpdateTransaction(ctx, usecase.UpdateTransactionInput{
		ID: "tx-part", CallerID: "bob", Amount: &raised,
	})
	if err != nil {
		t.Fatalf("raising amount: %v", err)
	}
	if !updated.Remaining().Equal(decimal.NewFromInt(300)) {
		t.Errorf("remaining = %s, want 300", updated.Remaining())
	}
}

func TestTransactionUseCase_DeleteTransaction_CascadesSettlements(t *testing.T) {
	f := newTransactionFixture()
	ctx := context.Background()

	f.transactionRepo.Put(&domain.Transaction{
		ID:         "tx-1",
		BusinessID: "biz-1",
		Type:       domain.TypeExpense,
		Amount:     decimal.NewFromInt(100),
		MemberID:   "bob",
		CreatedBy:  "bob",
		PaidFor: []domain.PaidForShare{
			{MemberID: "alice", Amount: decimal.NewFromInt(50)},
		},
		SettlementStatus: domain.StatusPartial,
		SettledAmount:    decimal.NewFromInt(30),
	})
	_ = f.settlementRepo.Create(ctx, nil, &domain.Settlement{
		ID: "stl-1", TransactionID: "tx-1", Amount: decimal.NewFromInt(30),
	})

	if err := f.uc.DeleteTransaction(ctx, "tx-1", "bob"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := f.transactionRepo.GetByID(ctx, "tx-1"); !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("transaction still present: %v", err)
	}
	if got := len(f.settlementRepo.All()); got != 0 {
		t.Fatalf("settlements left behind: %d", got)
	}
}

func TestTransactionUseCase_DeleteTransaction_Forbidden(t *testing.T) {
	f := newTransactionFixture()

	f.transactionRepo.Put(&domain.Transaction{
		ID:         "tx-1",
		BusinessID: "biz-1",
		Type:       domain.TypeExpense,
		Amount:     decimal.NewFromInt(100),
		MemberID:   "bob",
		CreatedBy:  "bob",
	})

	f.memberships.Grant("biz-1", "carol", domain.RoleMember)
	if err := f.uc.DeleteTransaction(context.Background(), "tx-1", "carol"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}
