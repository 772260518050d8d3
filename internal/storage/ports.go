package storage

import (
	"context"

	"banchi/internal/core"
)

// Ports for persistence adapters. Implementations translate backend
// failures into core.ErrStoreUnavailable and missing rows into
// core.ErrNotFound so callers never see driver errors.
type (
	TransactionStore interface {
		CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error)
		GetTransaction(ctx context.Context, id int64) (core.Transaction, error)
		UpdateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error)
		DeleteTransaction(ctx context.Context, id int64) error
		// ListTransactions applies the filter's dimensions and sort order.
		ListTransactions(ctx context.Context, f core.FilterOptions) ([]core.Transaction, error)
	}

	BudgetStore interface {
		// UpsertBudget inserts or replaces the limit keyed by (owner, category).
		UpsertBudget(ctx context.Context, b core.Budget) (core.Budget, error)
		ListBudgets(ctx context.Context, owner core.Owner) ([]core.Budget, error)
		DeleteBudget(ctx context.Context, id int64) error
	}

	InstallmentStore interface {
		CreateInstallment(ctx context.Context, p core.Installment) (core.Installment, error)
		GetInstallment(ctx context.Context, id int64) (core.Installment, error)
		UpdateInstallment(ctx context.Context, p core.Installment) (core.Installment, error)
		ListInstallments(ctx context.Context, owner core.Owner, status core.InstallmentStatus) ([]core.Installment, error)
	}

	BillStore interface {
		CreateBill(ctx context.Context, b core.CreditCardBill) (core.CreditCardBill, error)
		GetBill(ctx context.Context, id int64) (core.CreditCardBill, error)
		UpdateBill(ctx context.Context, b core.CreditCardBill) (core.CreditCardBill, error)
		// ListBills narrows by due cycle when month and year are non-zero.
		ListBills(ctx context.Context, month, year int, owner core.Owner, status core.BillStatus) ([]core.CreditCardBill, error)
	}

	TemplateStore interface {
		CreateTemplate(ctx context.Context, t core.RecurringTemplate) (core.RecurringTemplate, error)
		GetTemplate(ctx context.Context, id int64) (core.RecurringTemplate, error)
		DeleteTemplate(ctx context.Context, id int64) error
		ListTemplates(ctx context.Context, owner core.Owner) ([]core.RecurringTemplate, error)
	}
)

// Store is the full persistence surface the services wire against.
type Store interface {
	TransactionStore
	BudgetStore
	InstallmentStore
	BillStore
	TemplateStore
	Close() error
}
