package report

import (
	"testing"

	"banchi/internal/core"
)

func TestInstallmentContribution(t *testing.T) {
	plans := []core.Installment{
		{Owner: core.OwnerPuri, MonthlyAmount: core.Money{Satang: 20000}, Status: core.InstallmentActive},
		{Owner: core.OwnerPhurita, MonthlyAmount: core.Money{Satang: 15000}, Status: core.InstallmentActive},
		{Owner: core.OwnerPuri, MonthlyAmount: core.Money{Satang: 99999}, Status: core.InstallmentCompleted},
		{Owner: core.OwnerPuri, MonthlyAmount: core.Money{Satang: 88888}, Status: core.InstallmentCanceled},
	}

	tests := []struct {
		name  string
		owner core.Owner
		want  int64
	}{
		{"all owners", core.FilterAll, 35000},
		{"empty owner means all", "", 35000},
		{"single owner", core.OwnerPuri, 20000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstallmentContribution(plans, tt.owner); got.Satang != tt.want {
				t.Errorf("contribution = %d, want %d", got.Satang, tt.want)
			}
		})
	}
}

func TestInstallmentContribution_DropsAfterCompletion(t *testing.T) {
	plan := core.Installment{
		Owner:         core.OwnerPuri,
		Title:         "phone",
		TotalAmount:   core.Money{Satang: 240000},
		MonthlyAmount: core.Money{Satang: 20000},
		TotalMonths:   12,
		PaidMonths:    11,
		Status:        core.InstallmentActive,
	}
	before := InstallmentContribution([]core.Installment{plan}, core.FilterAll)
	if before.Satang != 20000 {
		t.Fatalf("active contribution = %d, want 20000", before.Satang)
	}
	if err := plan.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	after := InstallmentContribution([]core.Installment{plan}, core.FilterAll)
	if after.Satang != 0 {
		t.Errorf("completed contribution = %d, want 0", after.Satang)
	}
}

func TestDuePending(t *testing.T) {
	bills := []core.CreditCardBill{
		{Owner: core.OwnerPuri, Amount: core.Money{Satang: 50000}, DueMonth: 3, DueYear: 2025, Status: core.BillPending},
		{Owner: core.OwnerPhurita, Amount: core.Money{Satang: 30000}, DueMonth: 3, DueYear: 2025, Status: core.BillPending},
		{Owner: core.OwnerPuri, Amount: core.Money{Satang: 70000}, DueMonth: 3, DueYear: 2025, Status: core.BillPaid},
		{Owner: core.OwnerPuri, Amount: core.Money{Satang: 40000}, DueMonth: 4, DueYear: 2025, Status: core.BillPending},
	}

	if got := DuePending(bills, 3, 2025, core.FilterAll); got.Satang != 80000 {
		t.Errorf("all owners = %d, want 80000", got.Satang)
	}
	if got := DuePending(bills, 3, 2025, core.OwnerPhurita); got.Satang != 30000 {
		t.Errorf("phurita = %d, want 30000", got.Satang)
	}
	if got := DuePending(bills, 5, 2025, core.FilterAll); got.Satang != 0 {
		t.Errorf("empty cycle = %d, want 0", got.Satang)
	}
}

func TestMonthlyObligation(t *testing.T) {
	cash := expense(core.CategoryFood, 30000, core.PayCash)
	card := expense(core.CategoryLuxury, 50000, core.PayCreditCard) // excluded from cash leg
	otherMonth := expense(core.CategoryCar, 99999, core.PayCash)
	otherMonth.Month = 4
	txs := []core.Transaction{cash, card, otherMonth, income(core.CategorySalary, 100000)}

	plans := []core.Installment{
		{Owner: core.OwnerPuri, MonthlyAmount: core.Money{Satang: 20000}, Status: core.InstallmentActive},
	}
	bills := []core.CreditCardBill{
		{Owner: core.OwnerPuri, Amount: core.Money{Satang: 45000}, DueMonth: 3, DueYear: 2025, Status: core.BillPending},
	}

	got := MonthlyObligation(txs, plans, bills, 3, 2025, core.FilterAll)
	if got.CashExpense.Satang != 30000 {
		t.Errorf("CashExpense = %d, want 30000", got.CashExpense.Satang)
	}
	if got.InstallmentDue.Satang != 20000 {
		t.Errorf("InstallmentDue = %d, want 20000", got.InstallmentDue.Satang)
	}
	if got.CardDue.Satang != 45000 {
		t.Errorf("CardDue = %d, want 45000", got.CardDue.Satang)
	}
	if got.Total.Satang != 95000 {
		t.Errorf("Total = %d, want 95000", got.Total.Satang)
	}
}
