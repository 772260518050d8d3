package services

import (
	"context"
	"fmt"

	"banchi/internal/core"
	"banchi/internal/report"
	"banchi/internal/storage"
)

// BillService drives the credit card bill state machine against the
// store.
type BillService struct {
	store storage.Store
}

func NewBillService(store storage.Store) *BillService {
	return &BillService{store: store}
}

func (s *BillService) Create(ctx context.Context, b core.CreditCardBill) (core.CreditCardBill, error) {
	if b.Status == "" {
		b.Status = core.BillPending
	}
	if err := b.Validate(); err != nil {
		return core.CreditCardBill{}, err
	}
	saved, err := s.store.CreateBill(ctx, b)
	if err != nil {
		return core.CreditCardBill{}, fmt.Errorf("create bill: %w", err)
	}
	return saved, nil
}

func (s *BillService) Get(ctx context.Context, id int64) (core.CreditCardBill, error) {
	return s.store.GetBill(ctx, id)
}

func (s *BillService) List(ctx context.Context, month, year int, owner core.Owner, status core.BillStatus) ([]core.CreditCardBill, error) {
	return s.store.ListBills(ctx, month, year, owner, status)
}

// MarkPaid settles a pending bill and persists the transition.
func (s *BillService) MarkPaid(ctx context.Context, id int64) (core.CreditCardBill, error) {
	b, err := s.store.GetBill(ctx, id)
	if err != nil {
		return core.CreditCardBill{}, err
	}
	if err := b.MarkPaid(); err != nil {
		return core.CreditCardBill{}, err
	}
	updated, err := s.store.UpdateBill(ctx, b)
	if err != nil {
		return core.CreditCardBill{}, fmt.Errorf("persist payment: %w", err)
	}
	return updated, nil
}

// DuePending sums the pending bills due in the given cycle.
func (s *BillService) DuePending(ctx context.Context, month, year int, owner core.Owner) (core.Money, error) {
	bills, err := s.store.ListBills(ctx, month, year, owner, core.BillPending)
	if err != nil {
		return core.Money{}, fmt.Errorf("list bills: %w", err)
	}
	return report.DuePending(bills, month, year, owner), nil
}
