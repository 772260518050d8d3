package services

import (
	"context"
	"fmt"
	"log/slog"

	"banchi/internal/core"
	"banchi/internal/storage"
)

// InstallmentService drives the installment plan state machine against
// the store.
type InstallmentService struct {
	store storage.Store
}

func NewInstallmentService(store storage.Store) *InstallmentService {
	return &InstallmentService{store: store}
}

func (s *InstallmentService) Create(ctx context.Context, p core.Installment) (core.Installment, error) {
	p.Normalize()
	if p.Status == "" {
		p.Status = core.InstallmentActive
	}
	if err := p.Validate(); err != nil {
		return core.Installment{}, err
	}
	saved, err := s.store.CreateInstallment(ctx, p)
	if err != nil {
		return core.Installment{}, fmt.Errorf("create installment: %w", err)
	}
	return saved, nil
}

func (s *InstallmentService) Get(ctx context.Context, id int64) (core.Installment, error) {
	return s.store.GetInstallment(ctx, id)
}

func (s *InstallmentService) List(ctx context.Context, owner core.Owner, status core.InstallmentStatus) ([]core.Installment, error) {
	return s.store.ListInstallments(ctx, owner, status)
}

// Advance records one paid month and persists the resulting state.
func (s *InstallmentService) Advance(ctx context.Context, id int64) (core.Installment, error) {
	p, err := s.store.GetInstallment(ctx, id)
	if err != nil {
		return core.Installment{}, err
	}
	if err := p.Advance(); err != nil {
		return core.Installment{}, err
	}
	updated, err := s.store.UpdateInstallment(ctx, p)
	if err != nil {
		return core.Installment{}, fmt.Errorf("persist advance: %w", err)
	}

	if updated.Status == core.InstallmentCompleted {
		slog.InfoContext(ctx, "Installment plan completed",
			"id", updated.ID,
			"title", updated.Title,
			"owner", updated.Owner)
	}
	return updated, nil
}

// Cancel abandons an active plan. Paid months are kept for the record.
func (s *InstallmentService) Cancel(ctx context.Context, id int64) (core.Installment, error) {
	p, err := s.store.GetInstallment(ctx, id)
	if err != nil {
		return core.Installment{}, err
	}
	if err := p.Cancel(); err != nil {
		return core.Installment{}, err
	}
	updated, err := s.store.UpdateInstallment(ctx, p)
	if err != nil {
		return core.Installment{}, fmt.Errorf("persist cancel: %w", err)
	}
	return updated, nil
}
