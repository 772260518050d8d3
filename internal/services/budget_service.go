package services

import (
	"context"
	"fmt"

	"banchi/internal/core"
	"banchi/internal/report"
	"banchi/internal/storage"
)

// BudgetService maintains per-category monthly limits and evaluates
// them against actual spend.
type BudgetService struct {
	store storage.Store
}

func NewBudgetService(store storage.Store) *BudgetService {
	return &BudgetService{store: store}
}

// Upsert validates the budget and inserts or replaces the limit keyed
// by (owner, category).
func (s *BudgetService) Upsert(ctx context.Context, b core.Budget) (core.Budget, error) {
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	saved, err := s.store.UpsertBudget(ctx, b)
	if err != nil {
		return core.Budget{}, fmt.Errorf("upsert budget: %w", err)
	}
	return saved, nil
}

func (s *BudgetService) List(ctx context.Context, owner core.Owner) ([]core.Budget, error) {
	return s.store.ListBudgets(ctx, owner)
}

func (s *BudgetService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteBudget(ctx, id); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}

// Evaluate computes the status of every budget for one owner against
// the owner's expense spend in the given cycle.
func (s *BudgetService) Evaluate(ctx context.Context, owner core.Owner, month, year int) ([]report.BudgetStatus, error) {
	budgets, err := s.store.ListBudgets(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	txs, err := s.store.ListTransactions(ctx, core.FilterOptions{
		Month: month,
		Year:  year,
		Owner: owner,
		Type:  core.Expense,
	})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return report.EvaluateBudgets(budgets, report.SpendByCategory(txs)), nil
}
