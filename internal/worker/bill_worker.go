package worker

import (
	"context"
	"fmt"
	"log/slog"

	"banchi/internal/amqp"
	"banchi/internal/core"
	"banchi/internal/storage"
)

// BillWorker turns credit card expense messages into pending bills for
// the next cycle. A statement charged in one month is payable in the
// following one, so the due cycle is the expense cycle advanced by one
// month with a December wrap.
type BillWorker struct {
	store storage.Store
}

func NewBillWorker(store storage.Store) *BillWorker {
	return &BillWorker{store: store}
}

// HandleBillSync creates a pending bill for the message's transaction.
// A message for an already billed transaction is dropped so broker
// redeliveries stay idempotent.
func (w *BillWorker) HandleBillSync(ctx context.Context, msg *amqp.BillSyncMessage) error {
	dueMonth, dueYear := core.NextDueCycle(msg.Month, msg.Year)

	if msg.TransactionID != 0 {
		existing, err := w.store.ListBills(ctx, dueMonth, dueYear, msg.Owner, "")
		if err != nil {
			return fmt.Errorf("check existing bills: %w", err)
		}
		for _, b := range existing {
			if b.TransactionID == msg.TransactionID {
				slog.InfoContext(ctx, "Bill already exists for transaction, skipping",
					"transaction_id", msg.TransactionID,
					"bill_id", b.ID)
				return nil
			}
		}
	}

	bill := core.CreditCardBill{
		Owner:         msg.Owner,
		Amount:        core.Money{Satang: msg.AmountSatang},
		DueMonth:      dueMonth,
		DueYear:       dueYear,
		Status:        core.BillPending,
		TransactionID: msg.TransactionID,
		Note:          msg.Description,
	}
	if err := bill.Validate(); err != nil {
		// A malformed message will never become valid; drop it.
		slog.ErrorContext(ctx, "Dropping invalid bill sync message",
			"transaction_id", msg.TransactionID, "error", err)
		return nil
	}

	created, err := w.store.CreateBill(ctx, bill)
	if err != nil {
		return fmt.Errorf("create bill: %w", err)
	}

	slog.InfoContext(ctx, "Generated pending bill",
		"bill_id", created.ID,
		"transaction_id", msg.TransactionID,
		"owner", created.Owner,
		"due_month", created.DueMonth,
		"due_year", created.DueYear,
		"amount_satang", created.Amount.Satang)

	return nil
}
