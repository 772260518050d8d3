package core

import "time"

// Budget caps monthly spending for an (owner, category) pair. The pair is
// unique: saving an existing pair replaces its limit (upsert).
type Budget struct {
	ID           int64
	Owner        Owner
	Category     Category
	MonthlyLimit Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (b Budget) Validate() error {
	if !b.Owner.Valid() {
		return ErrInvalidOwner
	}
	if !b.Category.ValidFor(Expense) {
		return ErrInvalidCategory
	}
	if b.MonthlyLimit.Satang <= 0 {
		return ErrNonPositiveLimit
	}
	return nil
}
