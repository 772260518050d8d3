package services

import (
	"context"
	"fmt"
	"log/slog"

	"banchi/internal/amqp"
	"banchi/internal/core"
	"banchi/internal/storage"
)

// BillPublisher emits a bill generation message for a credit card
// expense. Nil publishers are tolerated so the server runs without a
// broker.
type BillPublisher interface {
	PublishBillSync(ctx context.Context, msg *amqp.BillSyncMessage) error
}

// TransactionService orchestrates transaction writes across the store
// and the bill pipeline.
type TransactionService struct {
	store     storage.Store
	publisher BillPublisher
}

func NewTransactionService(store storage.Store, publisher BillPublisher) *TransactionService {
	return &TransactionService{
		store:     store,
		publisher: publisher,
	}
}

// Create normalizes and validates the transaction, persists it, and
// publishes a bill sync message when it was paid by credit card. The
// publish is best effort; the local save already succeeded.
func (s *TransactionService) Create(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	tx.Normalize()
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	saved, err := s.store.CreateTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	if saved.Type == core.Expense && saved.PaymentMethod == core.PayCreditCard {
		if err := s.publishBillSync(ctx, saved); err != nil {
			slog.ErrorContext(ctx, "Failed to publish bill sync message",
				"transaction_id", saved.ID, "error", err)
		}
	}

	return saved, nil
}

func (s *TransactionService) Get(ctx context.Context, id int64) (core.Transaction, error) {
	return s.store.GetTransaction(ctx, id)
}

// Update replaces an existing transaction in place after the same
// normalization and validation as Create. Switching an expense onto a
// credit card does not retroactively generate a bill.
func (s *TransactionService) Update(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	tx.Normalize()
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	updated, err := s.store.UpdateTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	return updated, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (s *TransactionService) List(ctx context.Context, f core.FilterOptions) ([]core.Transaction, error) {
	return s.store.ListTransactions(ctx, f)
}

func (s *TransactionService) publishBillSync(ctx context.Context, tx core.Transaction) error {
	if s.publisher == nil {
		slog.WarnContext(ctx, "Bill publisher not available, skipping sync message")
		return nil
	}
	return s.publisher.PublishBillSync(ctx, amqp.NewBillSyncMessage(tx))
}
