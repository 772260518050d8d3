package core

import (
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	OwnerPuri    Owner = "puri"
	OwnerPhurita Owner = "phurita"
)

const (
	PayCash       PaymentMethod = "cash"
	PayTransfer   PaymentMethod = "transfer"
	PayCreditCard PaymentMethod = "credit_card"
)

// Expense categories.
const (
	CategoryFood       Category = "food"
	CategoryHousehold  Category = "household"
	CategoryKids       Category = "kids"
	CategoryHome       Category = "home"
	CategoryCar        Category = "car"
	CategoryInvestment Category = "investment"
	CategoryLuxury     Category = "luxury"
)

// Income categories. Disjoint from the expense set.
const (
	CategorySalary      Category = "salary"
	CategoryInterest    Category = "interest"
	CategoryCardCashout Category = "card_cashout"
	CategorySupport     Category = "support"
	CategoryOtherIncome Category = "other_income"
)

type (
	TransactionType string
	Owner           string
	PaymentMethod   string
	Category        string

	Money struct {
		Satang int64
	}

	// Transaction is a single money movement. Total is stored redundantly
	// and must always equal Quantity x UnitPrice.
	Transaction struct {
		ID            int64
		Day           int
		Month         int // 1-12
		Year          int
		Type          TransactionType
		Description   string
		Category      Category
		Quantity      int
		UnitPrice     Money
		Total         Money
		Owner         Owner
		PaymentMethod PaymentMethod // empty unless Type == Expense
		CreatedAt     time.Time
	}
)

var (
	ExpenseCategories = []Category{
		CategoryFood, CategoryHousehold, CategoryKids, CategoryHome,
		CategoryCar, CategoryInvestment, CategoryLuxury,
	}
	IncomeCategories = []Category{
		CategorySalary, CategoryInterest, CategoryCardCashout,
		CategorySupport, CategoryOtherIncome,
	}
	Owners = []Owner{OwnerPuri, OwnerPhurita}

	PaymentMethods = []PaymentMethod{PayCash, PayTransfer, PayCreditCard}
)

// CategoriesFor returns the category set valid for the given type.
func CategoriesFor(t TransactionType) []Category {
	if t == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}

func (t TransactionType) Valid() bool { return t == Income || t == Expense }

func (o Owner) Valid() bool {
	for _, known := range Owners {
		if o == known {
			return true
		}
	}
	return false
}

func (p PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if p == known {
			return true
		}
	}
	return false
}

// ValidFor reports whether the category belongs to the given type's set.
func (c Category) ValidFor(t TransactionType) bool {
	for _, known := range CategoriesFor(t) {
		if c == known {
			return true
		}
	}
	return false
}

// DaysInMonth returns the number of calendar days in month/year,
// or 0 when the month is out of range.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ComputedTotal returns Quantity x UnitPrice.
func (t Transaction) ComputedTotal() Money {
	return Money{Satang: int64(t.Quantity) * t.UnitPrice.Satang}
}

// Normalize trims free-text fields and recomputes the stored total from its
// factors. Call before Validate on any create or update.
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
	if t.Type != Expense {
		t.PaymentMethod = ""
	}
	t.Total = t.ComputedTotal()
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Year < 2000 || t.Year > 3000 {
		return ErrInvalidYear
	}
	if t.Month < 1 || t.Month > 12 {
		return ErrInvalidMonth
	}
	if t.Day < 1 || t.Day > DaysInMonth(t.Month, t.Year) {
		return ErrInvalidDay
	}
	if len(t.Description) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return ErrDescriptionTooLong
	}
	if !t.Category.ValidFor(t.Type) {
		return ErrInvalidCategory
	}
	if t.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if t.UnitPrice.Satang < 0 {
		return ErrNegativeAmount
	}
	if t.Total != t.ComputedTotal() {
		return ErrTotalMismatch
	}
	if !t.Owner.Valid() {
		return ErrInvalidOwner
	}
	if t.Type == Expense {
		if !t.PaymentMethod.Valid() {
			return ErrPaymentRequired
		}
	} else if t.PaymentMethod != "" {
		return ErrPaymentNotAllowed
	}
	return nil
}

// CashLike reports whether the transaction counts toward the cash obligation.
// A missing payment method is treated as cash.
func (t Transaction) CashLike() bool {
	return t.Type == Expense && t.PaymentMethod != PayCreditCard
}
