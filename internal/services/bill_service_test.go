package services

import (
	"context"
	"testing"

	"banchi/internal/core"
	"banchi/internal/storage/memory"
)

func TestBillService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	svc := NewBillService(memory.New())

	created, err := svc.Create(ctx, core.CreditCardBill{
		Owner:    core.OwnerPuri,
		Amount:   core.Money{Satang: 50000},
		DueMonth: 4,
		DueYear:  2025,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != core.BillPending {
		t.Fatalf("new bill status = %v, want pending", created.Status)
	}

	paid, err := svc.MarkPaid(ctx, created.ID)
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if paid.Status != core.BillPaid {
		t.Errorf("status = %v, want paid", paid.Status)
	}

	if _, err := svc.MarkPaid(ctx, created.ID); !core.IsInvalidState(err) {
		t.Errorf("second MarkPaid = %v, want invalid state", err)
	}
	stored, _ := svc.Get(ctx, created.ID)
	if stored.Status != core.BillPaid {
		t.Errorf("stored status after failed transition = %v, want paid", stored.Status)
	}

	if _, err := svc.MarkPaid(ctx, 999); !core.IsNotFound(err) {
		t.Errorf("MarkPaid missing = %v, want not found", err)
	}
}

func TestBillService_DuePending(t *testing.T) {
	ctx := context.Background()
	svc := NewBillService(memory.New())

	seed := []core.CreditCardBill{
		{Owner: core.OwnerPuri, Amount: core.Money{Satang: 50000}, DueMonth: 4, DueYear: 2025},
		{Owner: core.OwnerPhurita, Amount: core.Money{Satang: 30000}, DueMonth: 4, DueYear: 2025},
		{Owner: core.OwnerPuri, Amount: core.Money{Satang: 99999}, DueMonth: 5, DueYear: 2025},
	}
	var first core.CreditCardBill
	for i, b := range seed {
		saved, err := svc.Create(ctx, b)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if i == 0 {
			first = saved
		}
	}

	due, err := svc.DuePending(ctx, 4, 2025, core.FilterAll)
	if err != nil {
		t.Fatalf("DuePending: %v", err)
	}
	if due.Satang != 80000 {
		t.Errorf("due = %d, want 80000", due.Satang)
	}

	if _, err := svc.MarkPaid(ctx, first.ID); err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	due, err = svc.DuePending(ctx, 4, 2025, core.FilterAll)
	if err != nil {
		t.Fatalf("DuePending after payment: %v", err)
	}
	if due.Satang != 30000 {
		t.Errorf("due after payment = %d, want 30000", due.Satang)
	}
}
