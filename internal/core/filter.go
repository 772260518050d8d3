package core

import "sort"

// Sort orders for filtered transaction lists.
const (
	SortDateDesc  SortBy = "date_desc"
	SortPriceDesc SortBy = "price_desc"
)

type SortBy string

// FilterOptions selects a transaction subset. Zero Month/Year match any
// month/year (the all-time view); FilterAll or empty string on the enum
// fields disables that dimension. Every set field is matched by equality.
type FilterOptions struct {
	Month    int
	Year     int
	Owner    Owner
	Type     TransactionType
	Category Category
	SortBy   SortBy
}

// FilterAll disables filtering on an enum dimension.
const FilterAll = "all"

// Matches reports whether the transaction satisfies every set filter field.
func (f FilterOptions) Matches(t Transaction) bool {
	if f.Month != 0 && t.Month != f.Month {
		return false
	}
	if f.Year != 0 && t.Year != f.Year {
		return false
	}
	if f.Owner != "" && f.Owner != FilterAll && t.Owner != f.Owner {
		return false
	}
	if f.Type != "" && f.Type != FilterAll && t.Type != f.Type {
		return false
	}
	if f.Category != "" && f.Category != FilterAll && t.Category != f.Category {
		return false
	}
	return true
}

// Apply returns the matching subset of txs in the requested order.
// date_desc orders by creation time, newest first; price_desc by stored
// total. The input slice is never mutated; sorting is stable so ties
// keep their original relative order.
func (f FilterOptions) Apply(txs []Transaction) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	switch f.SortBy {
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Total.Satang > out[j].Total.Satang
		})
	default: // SortDateDesc
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}
