package services

import (
	"context"
	"testing"

	"banchi/internal/core"
	"banchi/internal/storage/memory"
)

func TestBudgetService_Upsert(t *testing.T) {
	ctx := context.Background()
	svc := NewBudgetService(memory.New())

	first, err := svc.Upsert(ctx, core.Budget{
		Owner: core.OwnerPuri, Category: core.CategoryFood, MonthlyLimit: core.Money{Satang: 100000},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	second, err := svc.Upsert(ctx, core.Budget{
		Owner: core.OwnerPuri, Category: core.CategoryFood, MonthlyLimit: core.Money{Satang: 200000},
	})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a second row for the same owner and category")
	}
	if second.MonthlyLimit.Satang != 200000 {
		t.Errorf("limit = %d, want 200000", second.MonthlyLimit.Satang)
	}

	if _, err := svc.Upsert(ctx, core.Budget{
		Owner: core.OwnerPuri, Category: core.CategoryFood, MonthlyLimit: core.Money{Satang: 0},
	}); !core.IsValidation(err) {
		t.Errorf("zero limit = %v, want validation error", err)
	}

	if _, err := svc.Upsert(ctx, core.Budget{
		Owner: core.OwnerPuri, Category: core.CategorySalary, MonthlyLimit: core.Money{Satang: 1000},
	}); !core.IsValidation(err) {
		t.Errorf("income category = %v, want validation error", err)
	}
}

func TestBudgetService_Evaluate(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	budgets := NewBudgetService(store)
	txs := NewTransactionService(store, nil)

	if _, err := budgets.Upsert(ctx, core.Budget{
		Owner: core.OwnerPuri, Category: core.CategoryFood, MonthlyLimit: core.Money{Satang: 100000},
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	spend := newExpense(core.PayCash)
	spend.Quantity = 1
	spend.UnitPrice = core.Money{Satang: 85000}
	spend.Total = core.Money{Satang: 85000}
	if _, err := txs.Create(ctx, spend); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Other cycle spend must not count.
	other := newExpense(core.PayCash)
	other.Month = 4
	other.UnitPrice = core.Money{Satang: 99000}
	if _, err := txs.Create(ctx, other); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	statuses, err := budgets.Evaluate(ctx, core.OwnerPuri, 3, 2025)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	s := statuses[0]
	if s.Spent.Satang != 85000 {
		t.Errorf("Spent = %d, want 85000", s.Spent.Satang)
	}
	if s.Percent != 85 {
		t.Errorf("Percent = %v, want 85", s.Percent)
	}
	if !s.NearLimit {
		t.Error("85%% consumed must flag near limit")
	}
}
