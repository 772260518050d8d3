package services

import (
	"context"
	"fmt"

	"banchi/internal/core"
	"banchi/internal/storage"
)

// TemplateService manages recurring templates and turns them into
// transactions.
type TemplateService struct {
	store        storage.Store
	transactions *TransactionService
}

func NewTemplateService(store storage.Store, transactions *TransactionService) *TemplateService {
	return &TemplateService{
		store:        store,
		transactions: transactions,
	}
}

func (s *TemplateService) Save(ctx context.Context, t core.RecurringTemplate) (core.RecurringTemplate, error) {
	t.Normalize()
	if err := t.Validate(); err != nil {
		return core.RecurringTemplate{}, err
	}
	saved, err := s.store.CreateTemplate(ctx, t)
	if err != nil {
		return core.RecurringTemplate{}, fmt.Errorf("save template: %w", err)
	}
	return saved, nil
}

func (s *TemplateService) Get(ctx context.Context, id int64) (core.RecurringTemplate, error) {
	return s.store.GetTemplate(ctx, id)
}

func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}

func (s *TemplateService) List(ctx context.Context, owner core.Owner) ([]core.RecurringTemplate, error) {
	return s.store.ListTemplates(ctx, owner)
}

// Apply instantiates the template on the given date and records the
// resulting transaction through the normal create path, so credit card
// templates still feed the bill pipeline.
func (s *TemplateService) Apply(ctx context.Context, id int64, day, month, year int) (core.Transaction, error) {
	t, err := s.store.GetTemplate(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}
	return s.transactions.Create(ctx, t.Apply(day, month, year))
}
