package services

import (
	"context"
	"fmt"

	"banchi/internal/core"
	"banchi/internal/report"
	"banchi/internal/storage"
)

// MonthOverview is the dashboard payload for one cycle: totals, the
// category breakdown, the dense daily series, the cash and real expense
// views, the obligation rollup, and budget statuses.
type MonthOverview struct {
	Month      int
	Year       int
	Owner      core.Owner
	Totals     report.Totals
	ByCategory []report.CategorySum
	Daily      []report.DayEntry
	CashOnly   core.Money
	Real       core.Money
	Obligation report.Obligation
	Budgets    []report.BudgetStatus
}

// OverviewService assembles the per-month dashboard from the store and
// the pure aggregation functions.
type OverviewService struct {
	store storage.Store
}

func NewOverviewService(store storage.Store) *OverviewService {
	return &OverviewService{store: store}
}

func (s *OverviewService) MonthOverview(ctx context.Context, month, year int, owner core.Owner) (MonthOverview, error) {
	overview := MonthOverview{Month: month, Year: year, Owner: owner}

	txs, err := s.store.ListTransactions(ctx, core.FilterOptions{Month: month, Year: year, Owner: owner})
	if err != nil {
		return overview, fmt.Errorf("list transactions: %w", err)
	}

	overview.Totals = report.Summarize(txs)
	overview.ByCategory = report.CategoryBreakdown(txs)
	overview.Daily = report.DailySeries(txs, month, year)
	overview.CashOnly = report.CashOnlyExpense(txs)
	overview.Real = report.RealExpense(txs)

	plans, err := s.store.ListInstallments(ctx, owner, core.InstallmentActive)
	if err != nil {
		return overview, fmt.Errorf("list installments: %w", err)
	}
	bills, err := s.store.ListBills(ctx, month, year, owner, core.BillPending)
	if err != nil {
		return overview, fmt.Errorf("list bills: %w", err)
	}
	overview.Obligation = report.MonthlyObligation(txs, plans, bills, month, year, owner)

	budgets, err := s.store.ListBudgets(ctx, owner)
	if err != nil {
		return overview, fmt.Errorf("list budgets: %w", err)
	}
	expenses := core.FilterOptions{Type: core.Expense}.Apply(txs)
	overview.Budgets = report.EvaluateBudgets(budgets, report.SpendByCategory(expenses))

	return overview, nil
}
