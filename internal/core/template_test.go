package core

import (
	"errors"
	"testing"
)

func TestRecurringTemplate_Apply(t *testing.T) {
	rt := RecurringTemplate{
		Owner:       OwnerPuri,
		Name:        "rent",
		Type:        Expense,
		Category:    CategoryHome,
		Description: "monthly rent",
		Quantity:    1,
		UnitPrice:   Money{Satang: 1500000},
	}

	tx := rt.Apply(1, 5, 2025)
	if err := tx.Validate(); err != nil {
		t.Fatalf("applied transaction invalid: %v", err)
	}
	if tx.Total.Satang != 1500000 {
		t.Errorf("Total = %d, want 1500000", tx.Total.Satang)
	}
	if tx.PaymentMethod != PayCash {
		t.Errorf("PaymentMethod = %q, want cash default", tx.PaymentMethod)
	}
	if tx.Day != 1 || tx.Month != 5 || tx.Year != 2025 {
		t.Errorf("date = %d/%d/%d, want 1/5/2025", tx.Day, tx.Month, tx.Year)
	}
}

func TestRecurringTemplate_ApplyKeepsSnapshotMethod(t *testing.T) {
	rt := RecurringTemplate{
		Owner:         OwnerPhurita,
		Name:          "netflix",
		Type:          Expense,
		Category:      CategoryLuxury,
		Description:   "subscription",
		Quantity:      1,
		UnitPrice:     Money{Satang: 41900},
		PaymentMethod: PayCreditCard,
	}
	tx := rt.Apply(5, 6, 2025)
	if tx.PaymentMethod != PayCreditCard {
		t.Errorf("PaymentMethod = %q, want credit_card", tx.PaymentMethod)
	}
}

func TestRecurringTemplate_Validate(t *testing.T) {
	valid := RecurringTemplate{
		Owner:       OwnerPuri,
		Name:        "rent",
		Type:        Expense,
		Category:    CategoryHome,
		Description: "monthly rent",
		Quantity:    1,
		UnitPrice:   Money{Satang: 100},
	}

	tests := []struct {
		name    string
		mutate  func(*RecurringTemplate)
		wantErr error
	}{
		{"valid", func(*RecurringTemplate) {}, nil},
		{"empty name", func(rt *RecurringTemplate) { rt.Name = "" }, ErrEmptyName},
		{"category type mismatch", func(rt *RecurringTemplate) { rt.Category = CategorySalary }, ErrInvalidCategory},
		{"empty description", func(rt *RecurringTemplate) { rt.Description = "" }, ErrEmptyDescription},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := valid
			tt.mutate(&rt)
			if err := rt.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
