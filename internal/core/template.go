package core

import (
	"strings"
	"time"
)

// RecurringTemplate is a named snapshot of transaction fields used to
// prefill new entries. It carries no derived state; Apply copies the
// snapshot into a fresh transaction.
type RecurringTemplate struct {
	ID            int64
	Owner         Owner
	Name          string
	Type          TransactionType
	Category      Category
	Description   string
	Quantity      int
	UnitPrice     Money
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
}

func (rt *RecurringTemplate) Normalize() {
	rt.Name = strings.TrimSpace(rt.Name)
	rt.Description = strings.TrimSpace(rt.Description)
	if rt.Type != Expense {
		rt.PaymentMethod = ""
	}
	if rt.Quantity <= 0 {
		rt.Quantity = 1
	}
}

func (rt RecurringTemplate) Validate() error {
	if rt.Name == "" {
		return ErrEmptyName
	}
	if !rt.Owner.Valid() {
		return ErrInvalidOwner
	}
	if !rt.Type.Valid() {
		return ErrInvalidType
	}
	if !rt.Category.ValidFor(rt.Type) {
		return ErrInvalidCategory
	}
	if rt.Description == "" {
		return ErrEmptyDescription
	}
	if rt.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if rt.UnitPrice.Satang < 0 {
		return ErrNegativeAmount
	}
	if rt.Type == Expense && rt.PaymentMethod != "" && !rt.PaymentMethod.Valid() {
		return ErrPaymentRequired
	}
	return nil
}

// Apply builds a new transaction dated day/month/year from the snapshot.
// Expense templates without a payment method default to cash.
func (rt RecurringTemplate) Apply(day, month, year int) Transaction {
	t := Transaction{
		Day:           day,
		Month:         month,
		Year:          year,
		Type:          rt.Type,
		Description:   rt.Description,
		Category:      rt.Category,
		Quantity:      rt.Quantity,
		UnitPrice:     rt.UnitPrice,
		Owner:         rt.Owner,
		PaymentMethod: rt.PaymentMethod,
	}
	if t.Type == Expense && t.PaymentMethod == "" {
		t.PaymentMethod = PayCash
	}
	t.Normalize()
	return t
}
