package core

import (
	"errors"
	"fmt"
)

// Error kinds. Specific errors below wrap one of these so callers can
// classify with errors.Is without matching each sentinel individually.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("record not found")
	ErrInvalidState     = errors.New("invalid state transition")
	ErrStoreUnavailable = errors.New("store unavailable")
)

var (
	ErrInvalidDay          = fmt.Errorf("%w: invalid day", ErrValidation)
	ErrInvalidMonth        = fmt.Errorf("%w: invalid month", ErrValidation)
	ErrInvalidYear         = fmt.Errorf("%w: invalid year", ErrValidation)
	ErrEmptyDescription    = fmt.Errorf("%w: empty description", ErrValidation)
	ErrDescriptionTooLong  = fmt.Errorf("%w: description too long (max 200 characters)", ErrValidation)
	ErrEmptyTitle          = fmt.Errorf("%w: empty title", ErrValidation)
	ErrEmptyName           = fmt.Errorf("%w: empty name", ErrValidation)
	ErrInvalidType         = fmt.Errorf("%w: invalid transaction type", ErrValidation)
	ErrInvalidCategory     = fmt.Errorf("%w: category does not match type", ErrValidation)
	ErrInvalidOwner        = fmt.Errorf("%w: unknown owner", ErrValidation)
	ErrInvalidQuantity     = fmt.Errorf("%w: quantity must be positive", ErrValidation)
	ErrNegativeAmount      = fmt.Errorf("%w: amount must not be negative", ErrValidation)
	ErrInvalidAmount       = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrTotalMismatch       = fmt.Errorf("%w: total must equal quantity times unit price", ErrValidation)
	ErrPaymentRequired     = fmt.Errorf("%w: payment method required for expenses", ErrValidation)
	ErrPaymentNotAllowed   = fmt.Errorf("%w: payment method only valid for expenses", ErrValidation)
	ErrNonPositiveLimit    = fmt.Errorf("%w: budget limit must be positive", ErrValidation)
	ErrNonPositiveMonths   = fmt.Errorf("%w: total months must be at least 1", ErrValidation)
	ErrInstallmentFinished = fmt.Errorf("%w: installment is not active", ErrInvalidState)
	ErrBillNotPending      = fmt.Errorf("%w: bill is not pending", ErrInvalidState)
)

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err indicates a missing record.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvalidState reports whether err is a rejected state transition.
func IsInvalidState(err error) bool { return errors.Is(err, ErrInvalidState) }

// IsStoreUnavailable reports whether err means the backend could not
// serve the request.
func IsStoreUnavailable(err error) bool { return errors.Is(err, ErrStoreUnavailable) }
