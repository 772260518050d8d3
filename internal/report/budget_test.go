package report

import (
	"testing"

	"banchi/internal/core"
)

func TestEvaluateBudgets(t *testing.T) {
	budgets := []core.Budget{
		{Owner: core.OwnerPuri, Category: core.CategoryFood, MonthlyLimit: core.Money{Satang: 100000}},
		{Owner: core.OwnerPuri, Category: core.CategoryCar, MonthlyLimit: core.Money{Satang: 50000}},
		{Owner: core.OwnerPuri, Category: core.CategoryKids, MonthlyLimit: core.Money{Satang: 20000}},
	}
	spend := map[core.Category]core.Money{
		core.CategoryFood: {Satang: 85000}, // 85%, near limit
		core.CategoryCar:  {Satang: 10000}, // 20%
		core.CategoryKids: {Satang: 60000}, // over, capped at 100
	}

	got := EvaluateBudgets(budgets, spend)
	if len(got) != 3 {
		t.Fatalf("got %d statuses, want 3", len(got))
	}

	tests := []struct {
		category      core.Category
		wantSpent     int64
		wantPercent   float64
		wantNearLimit bool
	}{
		{core.CategoryFood, 85000, 85, true},
		{core.CategoryCar, 10000, 20, false},
		{core.CategoryKids, 60000, 100, true},
	}
	for i, tt := range tests {
		s := got[i]
		if s.Category != tt.category {
			t.Errorf("status[%d].Category = %v, want %v", i, s.Category, tt.category)
		}
		if s.Spent.Satang != tt.wantSpent {
			t.Errorf("%s: Spent = %d, want %d", tt.category, s.Spent.Satang, tt.wantSpent)
		}
		if s.Percent != tt.wantPercent {
			t.Errorf("%s: Percent = %v, want %v", tt.category, s.Percent, tt.wantPercent)
		}
		if s.NearLimit != tt.wantNearLimit {
			t.Errorf("%s: NearLimit = %v, want %v", tt.category, s.NearLimit, tt.wantNearLimit)
		}
	}
}

func TestEvaluateBudgets_NoSpendIsZeroPercent(t *testing.T) {
	budgets := []core.Budget{
		{Owner: core.OwnerPhurita, Category: core.CategoryLuxury, MonthlyLimit: core.Money{Satang: 30000}},
	}
	got := EvaluateBudgets(budgets, nil)
	if len(got) != 1 {
		t.Fatalf("got %d statuses, want 1", len(got))
	}
	if got[0].Percent != 0 || got[0].NearLimit {
		t.Errorf("status = %+v, want zero percent and not near limit", got[0])
	}
}

func TestEvaluateBudgets_ExactThreshold(t *testing.T) {
	budgets := []core.Budget{
		{Owner: core.OwnerPuri, Category: core.CategoryFood, MonthlyLimit: core.Money{Satang: 100000}},
	}
	spend := map[core.Category]core.Money{core.CategoryFood: {Satang: 80000}}
	got := EvaluateBudgets(budgets, spend)
	if !got[0].NearLimit {
		t.Errorf("80%% consumed must flag near limit")
	}
}
