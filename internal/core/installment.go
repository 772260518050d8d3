package core

import (
	"strings"
	"time"
)

const (
	InstallmentActive    InstallmentStatus = "active"
	InstallmentCompleted InstallmentStatus = "completed"
	InstallmentCanceled  InstallmentStatus = "canceled"
)

type InstallmentStatus string

// Installment is a multi-month payment plan. Active is the initial state;
// completed and canceled are terminal. completed holds exactly when
// PaidMonths == TotalMonths, enforced by Advance.
type Installment struct {
	ID            int64
	Owner         Owner
	Title         string
	TotalAmount   Money
	MonthlyAmount Money
	TotalMonths   int
	PaidMonths    int
	StartMonth    int
	StartYear     int
	Status        InstallmentStatus
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Normalize trims text fields and clamps PaidMonths into [0, TotalMonths].
func (i *Installment) Normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Note = strings.TrimSpace(i.Note)
	if i.PaidMonths < 0 {
		i.PaidMonths = 0
	}
	if i.TotalMonths > 0 && i.PaidMonths > i.TotalMonths {
		i.PaidMonths = i.TotalMonths
	}
}

func (i Installment) Validate() error {
	if !i.Owner.Valid() {
		return ErrInvalidOwner
	}
	if i.Title == "" {
		return ErrEmptyTitle
	}
	if i.TotalMonths < 1 {
		return ErrNonPositiveMonths
	}
	if i.TotalAmount.Satang < 0 || i.MonthlyAmount.Satang < 0 {
		return ErrNegativeAmount
	}
	if i.StartMonth < 1 || i.StartMonth > 12 {
		return ErrInvalidMonth
	}
	if i.StartYear < 2000 || i.StartYear > 3000 {
		return ErrInvalidYear
	}
	return nil
}

// Advance records one more paid month. Valid only while active; once the
// paid count reaches the plan length the status flips to completed.
func (i *Installment) Advance() error {
	if i.Status != InstallmentActive {
		return ErrInstallmentFinished
	}
	next := i.PaidMonths + 1
	if next > i.TotalMonths {
		next = i.TotalMonths
	}
	i.PaidMonths = next
	if next >= i.TotalMonths {
		i.Status = InstallmentCompleted
	}
	return nil
}

// Cancel marks the plan canceled. Terminal states stay as they are; paid
// months are untouched.
func (i *Installment) Cancel() error {
	if i.Status == InstallmentCompleted || i.Status == InstallmentCanceled {
		return ErrInstallmentFinished
	}
	i.Status = InstallmentCanceled
	return nil
}

// RemainingMonths returns max(0, total - paid).
func (i Installment) RemainingMonths() int {
	if r := i.TotalMonths - i.PaidMonths; r > 0 {
		return r
	}
	return 0
}

// ProgressPercent is 100*paid/total clamped to [0,100], 0 for a zero-length
// plan.
func (i Installment) ProgressPercent() float64 {
	if i.TotalMonths <= 0 {
		return 0
	}
	p := 100 * float64(i.PaidMonths) / float64(i.TotalMonths)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
