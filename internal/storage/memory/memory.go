// Package memory holds the in-process Store used by tests and by the
// server when no SQLite path is configured.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"banchi/internal/core"
)

type Store struct {
	mu           sync.Mutex
	nextID       int64
	transactions []core.Transaction
	budgets      []core.Budget
	installments []core.Installment
	bills        []core.CreditCardBill
	templates    []core.RecurringTemplate
}

func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Close() error { return nil }

func (s *Store) nextIDLocked() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) CreateTransaction(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextIDLocked()
	tx.CreatedAt = time.Now().UTC()
	s.transactions = append(s.transactions, tx)
	return tx, nil
}

func (s *Store) GetTransaction(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, core.ErrNotFound)
}

func (s *Store) UpdateTransaction(_ context.Context, tx core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.transactions {
		if existing.ID == tx.ID {
			tx.CreatedAt = existing.CreatedAt
			s.transactions[i] = tx
			return tx, nil
		}
	}
	return core.Transaction{}, fmt.Errorf("update transaction %d: %w", tx.ID, core.ErrNotFound)
}

func (s *Store) DeleteTransaction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.transactions {
		if tx.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete transaction %d: %w", id, core.ErrNotFound)
}

func (s *Store) ListTransactions(_ context.Context, f core.FilterOptions) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f.Apply(s.transactions), nil
}

func (s *Store) UpsertBudget(_ context.Context, b core.Budget) (core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for i, existing := range s.budgets {
		if existing.Owner == b.Owner && existing.Category == b.Category {
			existing.MonthlyLimit = b.MonthlyLimit
			existing.UpdatedAt = now
			s.budgets[i] = existing
			return existing, nil
		}
	}
	b.ID = s.nextIDLocked()
	b.CreatedAt = now
	b.UpdatedAt = now
	s.budgets = append(s.budgets, b)
	return b, nil
}

func (s *Store) ListBudgets(_ context.Context, owner core.Owner) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Budget
	for _, b := range s.budgets {
		if owner != "" && owner != core.FilterAll && b.Owner != owner {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *Store) DeleteBudget(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.budgets {
		if b.ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete budget %d: %w", id, core.ErrNotFound)
}

func (s *Store) CreateInstallment(_ context.Context, p core.Installment) (core.Installment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	p.ID = s.nextIDLocked()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.installments = append(s.installments, p)
	return p, nil
}

func (s *Store) GetInstallment(_ context.Context, id int64) (core.Installment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.installments {
		if p.ID == id {
			return p, nil
		}
	}
	return core.Installment{}, fmt.Errorf("get installment %d: %w", id, core.ErrNotFound)
}

func (s *Store) UpdateInstallment(_ context.Context, p core.Installment) (core.Installment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.installments {
		if existing.ID == p.ID {
			p.CreatedAt = existing.CreatedAt
			p.UpdatedAt = time.Now().UTC()
			s.installments[i] = p
			return p, nil
		}
	}
	return core.Installment{}, fmt.Errorf("update installment %d: %w", p.ID, core.ErrNotFound)
}

func (s *Store) ListInstallments(_ context.Context, owner core.Owner, status core.InstallmentStatus) ([]core.Installment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Installment
	for _, p := range s.installments {
		if owner != "" && owner != core.FilterAll && p.Owner != owner {
			continue
		}
		if status != "" && string(status) != core.FilterAll && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) CreateBill(_ context.Context, b core.CreditCardBill) (core.CreditCardBill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	b.ID = s.nextIDLocked()
	b.CreatedAt = now
	b.UpdatedAt = now
	s.bills = append(s.bills, b)
	return b, nil
}

func (s *Store) GetBill(_ context.Context, id int64) (core.CreditCardBill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return core.CreditCardBill{}, fmt.Errorf("get bill %d: %w", id, core.ErrNotFound)
}

func (s *Store) UpdateBill(_ context.Context, b core.CreditCardBill) (core.CreditCardBill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.bills {
		if existing.ID == b.ID {
			b.CreatedAt = existing.CreatedAt
			b.UpdatedAt = time.Now().UTC()
			s.bills[i] = b
			return b, nil
		}
	}
	return core.CreditCardBill{}, fmt.Errorf("update bill %d: %w", b.ID, core.ErrNotFound)
}

func (s *Store) ListBills(_ context.Context, month, year int, owner core.Owner, status core.BillStatus) ([]core.CreditCardBill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.CreditCardBill
	for _, b := range s.bills {
		if month != 0 && b.DueMonth != month {
			continue
		}
		if year != 0 && b.DueYear != year {
			continue
		}
		if owner != "" && owner != core.FilterAll && b.Owner != owner {
			continue
		}
		if status != "" && string(status) != core.FilterAll && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *Store) CreateTemplate(_ context.Context, t core.RecurringTemplate) (core.RecurringTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextIDLocked()
	t.CreatedAt = time.Now().UTC()
	s.templates = append(s.templates, t)
	return t, nil
}

func (s *Store) GetTemplate(_ context.Context, id int64) (core.RecurringTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return core.RecurringTemplate{}, fmt.Errorf("get template %d: %w", id, core.ErrNotFound)
}

func (s *Store) DeleteTemplate(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete template %d: %w", id, core.ErrNotFound)
}

func (s *Store) ListTemplates(_ context.Context, owner core.Owner) ([]core.RecurringTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.RecurringTemplate
	for _, t := range s.templates {
		if owner != "" && owner != core.FilterAll && t.Owner != owner {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
