package core

import "time"

const (
	BillPending  BillStatus = "pending"
	BillPaid     BillStatus = "paid"
	BillCanceled BillStatus = "canceled"
)

type BillStatus string

// CreditCardBill is an amount owed on a card in a (due month, due year)
// bucket. Bills are produced by the bill worker from credit-card expense
// transactions; the engine only consumes them.
type CreditCardBill struct {
	ID            int64
	Owner         Owner
	Amount        Money
	DueMonth      int
	DueYear       int
	Status        BillStatus
	TransactionID int64 // originating transaction, 0 when unknown
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (b CreditCardBill) Validate() error {
	if !b.Owner.Valid() {
		return ErrInvalidOwner
	}
	if b.Amount.Satang < 0 {
		return ErrNegativeAmount
	}
	if b.DueMonth < 1 || b.DueMonth > 12 {
		return ErrInvalidMonth
	}
	if b.DueYear < 2000 || b.DueYear > 3000 {
		return ErrInvalidYear
	}
	return nil
}

// MarkPaid transitions pending -> paid, exactly once. Paid and canceled
// bills reject the call.
func (b *CreditCardBill) MarkPaid() error {
	if b.Status != BillPending {
		return ErrBillNotPending
	}
	b.Status = BillPaid
	return nil
}

// NextDueCycle returns the (month, year) one month after the given date
// parts, wrapping December into January of the next year. Card purchases
// are billed in the following cycle.
func NextDueCycle(month, year int) (int, int) {
	if month >= 12 {
		return 1, year + 1
	}
	return month + 1, year
}
