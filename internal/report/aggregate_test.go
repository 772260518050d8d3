package report

import (
	"testing"

	"banchi/internal/core"
)

func expense(cat core.Category, satang int64, method core.PaymentMethod) core.Transaction {
	return core.Transaction{
		Day: 1, Month: 3, Year: 2025,
		Type:          core.Expense,
		Category:      cat,
		Owner:         core.OwnerPuri,
		Quantity:      1,
		UnitPrice:     core.Money{Satang: satang},
		Total:         core.Money{Satang: satang},
		PaymentMethod: method,
	}
}

func income(cat core.Category, satang int64) core.Transaction {
	return core.Transaction{
		Day: 1, Month: 3, Year: 2025,
		Type:      core.Income,
		Category:  cat,
		Owner:     core.OwnerPuri,
		Quantity:  1,
		UnitPrice: core.Money{Satang: satang},
		Total:     core.Money{Satang: satang},
	}
}

func TestSummarize(t *testing.T) {
	txs := []core.Transaction{
		expense(core.CategoryFood, 50000, core.PayCash),
		expense(core.CategoryFood, 30000, core.PayCash),
		income(core.CategorySalary, 100000),
	}
	got := Summarize(txs)
	if got.Income.Satang != 100000 {
		t.Errorf("Income = %d, want 100000", got.Income.Satang)
	}
	if got.Expense.Satang != 80000 {
		t.Errorf("Expense = %d, want 80000", got.Expense.Satang)
	}
	if got.Net != 20000 {
		t.Errorf("Net = %d, want 20000", got.Net)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)
	if got.Income.Satang != 0 || got.Expense.Satang != 0 || got.Net != 0 {
		t.Errorf("Summarize(nil) = %+v, want zeros", got)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	txs := []core.Transaction{
		expense(core.CategoryFood, 50000, core.PayCash),
		expense(core.CategoryCar, 120000, core.PayTransfer),
		expense(core.CategoryFood, 30000, core.PayCash),
		income(core.CategorySalary, 100000), // must not appear
	}
	got := CategoryBreakdown(txs)
	if len(got) != 2 {
		t.Fatalf("breakdown has %d entries, want 2", len(got))
	}
	if got[0].Category != core.CategoryCar || got[0].Total.Satang != 120000 {
		t.Errorf("top entry = %+v, want car/120000", got[0])
	}
	if got[1].Category != core.CategoryFood || got[1].Total.Satang != 80000 {
		t.Errorf("second entry = %+v, want food/80000", got[1])
	}
	wantShare := 120000.0 / 200000.0
	if got[0].Share != wantShare {
		t.Errorf("car share = %v, want %v", got[0].Share, wantShare)
	}
}

func TestCategoryBreakdown_TiesKeepFirstEncounteredOrder(t *testing.T) {
	txs := []core.Transaction{
		expense(core.CategoryKids, 10000, core.PayCash),
		expense(core.CategoryHome, 10000, core.PayCash),
	}
	got := CategoryBreakdown(txs)
	if got[0].Category != core.CategoryKids || got[1].Category != core.CategoryHome {
		t.Errorf("tie order = %v, %v; want kids then home", got[0].Category, got[1].Category)
	}
}

func TestCategoryBreakdown_ZeroTotalHasZeroShares(t *testing.T) {
	txs := []core.Transaction{
		expense(core.CategoryFood, 0, core.PayCash),
	}
	got := CategoryBreakdown(txs)
	if len(got) != 1 || got[0].Share != 0 {
		t.Errorf("breakdown = %+v, want single entry with zero share", got)
	}
}

func TestTopCategories(t *testing.T) {
	breakdown := []CategorySum{
		{Category: core.CategoryCar}, {Category: core.CategoryFood}, {Category: core.CategoryKids}, {Category: core.CategoryHome},
	}
	if got := TopCategories(breakdown, 3); len(got) != 3 {
		t.Errorf("TopCategories(3) returned %d entries", len(got))
	}
	if got := TopCategories(breakdown, 10); len(got) != 4 {
		t.Errorf("TopCategories(10) returned %d entries, want all 4", len(got))
	}
	if got := TopCategories(nil, 3); len(got) != 0 {
		t.Errorf("TopCategories(nil) returned %d entries", len(got))
	}
}

func TestDailySeries(t *testing.T) {
	txs := []core.Transaction{
		expense(core.CategoryFood, 50000, core.PayCash),
		income(core.CategorySalary, 100000),
	}
	txs[0].Day = 10
	txs[1].Day = 10
	other := expense(core.CategoryCar, 99999, core.PayCash)
	other.Month = 4 // different month, must be skipped
	txs = append(txs, other)

	series := DailySeries(txs, 3, 2025)
	if len(series) != 31 {
		t.Fatalf("march series has %d days, want 31", len(series))
	}
	for i, e := range series {
		if e.Day != i+1 {
			t.Fatalf("series[%d].Day = %d, want %d", i, e.Day, i+1)
		}
		if e.Income.Satang < 0 || e.Expense.Satang < 0 {
			t.Fatalf("day %d has negative sums", e.Day)
		}
	}
	if series[9].Income.Satang != 100000 || series[9].Expense.Satang != 50000 {
		t.Errorf("day 10 = %+v, want income 100000 / expense 50000", series[9])
	}

	// Dense series sums must equal the month totals.
	var incomeSum, expenseSum int64
	for _, e := range series {
		incomeSum += e.Income.Satang
		expenseSum += e.Expense.Satang
	}
	monthTotals := Summarize(core.FilterOptions{Month: 3, Year: 2025}.Apply(txs))
	if incomeSum != monthTotals.Income.Satang || expenseSum != monthTotals.Expense.Satang {
		t.Errorf("series sums (%d, %d) differ from month totals (%d, %d)",
			incomeSum, expenseSum, monthTotals.Income.Satang, monthTotals.Expense.Satang)
	}
}

func TestDailySeries_FebruaryLengths(t *testing.T) {
	if got := len(DailySeries(nil, 2, 2025)); got != 28 {
		t.Errorf("feb 2025 series length = %d, want 28", got)
	}
	if got := len(DailySeries(nil, 2, 2024)); got != 29 {
		t.Errorf("feb 2024 series length = %d, want 29", got)
	}
}

func TestCashOnlyAndRealExpense(t *testing.T) {
	txs := []core.Transaction{
		expense(core.CategoryFood, 30000, core.PayCash),
		expense(core.CategoryCar, 20000, core.PayTransfer),
		expense(core.CategoryLuxury, 50000, core.PayCreditCard),
		income(core.CategorySalary, 100000),
	}
	if got := CashOnlyExpense(txs); got.Satang != 50000 {
		t.Errorf("CashOnlyExpense = %d, want 50000", got.Satang)
	}
	if got := RealExpense(txs); got.Satang != 100000 {
		t.Errorf("RealExpense = %d, want 100000", got.Satang)
	}

	// Missing payment method counts as cash.
	legacy := expense(core.CategoryHome, 10000, "")
	if got := CashOnlyExpense([]core.Transaction{legacy}); got.Satang != 10000 {
		t.Errorf("CashOnlyExpense with missing method = %d, want 10000", got.Satang)
	}
}

func TestSpendByCategory(t *testing.T) {
	txs := []core.Transaction{
		expense(core.CategoryFood, 50000, core.PayCash),
		expense(core.CategoryFood, 30000, core.PayCreditCard),
		income(core.CategorySalary, 100000),
	}
	got := SpendByCategory(txs)
	if len(got) != 1 {
		t.Fatalf("map has %d keys, want 1", len(got))
	}
	if got[core.CategoryFood].Satang != 80000 {
		t.Errorf("food spend = %d, want 80000", got[core.CategoryFood].Satang)
	}
}
