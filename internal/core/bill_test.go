package core

import (
	"errors"
	"testing"
)

func TestCreditCardBill_MarkPaid(t *testing.T) {
	bill := CreditCardBill{
		Owner:    OwnerPhurita,
		Amount:   Money{Satang: 450000},
		DueMonth: 4,
		DueYear:  2025,
		Status:   BillPending,
	}

	if err := bill.MarkPaid(); err != nil {
		t.Fatalf("MarkPaid() = %v", err)
	}
	if bill.Status != BillPaid {
		t.Fatalf("Status = %q, want paid", bill.Status)
	}

	// Second call must fail and leave the status untouched.
	if err := bill.MarkPaid(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second MarkPaid() = %v, want invalid state", err)
	}
	if bill.Status != BillPaid {
		t.Errorf("Status after rejected call = %q, want paid", bill.Status)
	}

	canceled := CreditCardBill{Status: BillCanceled}
	if err := canceled.MarkPaid(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("MarkPaid() on canceled = %v, want invalid state", err)
	}
}

func TestCreditCardBill_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bill    CreditCardBill
		wantErr error
	}{
		{
			name:    "valid",
			bill:    CreditCardBill{Owner: OwnerPuri, Amount: Money{Satang: 100}, DueMonth: 1, DueYear: 2025},
			wantErr: nil,
		},
		{
			name:    "unknown owner",
			bill:    CreditCardBill{Owner: "nobody", Amount: Money{Satang: 100}, DueMonth: 1, DueYear: 2025},
			wantErr: ErrInvalidOwner,
		},
		{
			name:    "negative amount",
			bill:    CreditCardBill{Owner: OwnerPuri, Amount: Money{Satang: -1}, DueMonth: 1, DueYear: 2025},
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "bad due month",
			bill:    CreditCardBill{Owner: OwnerPuri, Amount: Money{Satang: 100}, DueMonth: 0, DueYear: 2025},
			wantErr: ErrInvalidMonth,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.bill.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNextDueCycle(t *testing.T) {
	tests := []struct {
		name                string
		month, year         int
		wantMonth, wantYear int
	}{
		{"mid year", 5, 2025, 6, 2025},
		{"november", 11, 2025, 12, 2025},
		{"december wraps", 12, 2025, 1, 2026},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, y := NextDueCycle(tt.month, tt.year)
			if m != tt.wantMonth || y != tt.wantYear {
				t.Errorf("NextDueCycle(%d, %d) = (%d, %d), want (%d, %d)",
					tt.month, tt.year, m, y, tt.wantMonth, tt.wantYear)
			}
		})
	}
}
