// Package report derives financial state from transaction sets: monthly
// totals, category breakdowns, daily series, budget evaluations and the
// monthly cash obligation. Every function is pure — same inputs, same
// outputs, no store access and no clock reads.
package report

import (
	"sort"

	"banchi/internal/core"
)

// Totals holds the income/expense sums of a transaction set. Net is the
// only signed figure in the engine.
type Totals struct {
	Income  core.Money
	Expense core.Money
	Net     int64 // satang, income minus expense
}

// CategorySum is one slice of the expense breakdown. Share is this
// category's fraction of all expense categories, in [0,1]; zero when the
// overall expense total is zero.
type CategorySum struct {
	Category core.Category
	Total    core.Money
	Share    float64
}

// DayEntry is one calendar day of the daily series.
type DayEntry struct {
	Day     int
	Income  core.Money
	Expense core.Money
}

// Summarize sums the set by type.
func Summarize(txs []core.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case core.Income:
			t.Income.Satang += tx.Total.Satang
		case core.Expense:
			t.Expense.Satang += tx.Total.Satang
		}
	}
	t.Net = t.Income.Satang - t.Expense.Satang
	return t
}

// CategoryBreakdown sums expense transactions by category, sorted by
// descending total. Ties keep first-encountered order. Income rows are
// ignored entirely.
func CategoryBreakdown(txs []core.Transaction) []CategorySum {
	sums := make(map[core.Category]int64)
	var order []core.Category
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] += tx.Total.Satang
	}

	out := make([]CategorySum, 0, len(order))
	var grand int64
	for _, cat := range order {
		out = append(out, CategorySum{Category: cat, Total: core.Money{Satang: sums[cat]}})
		grand += sums[cat]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.Satang > out[j].Total.Satang
	})
	if grand > 0 {
		for i := range out {
			out[i].Share = float64(out[i].Total.Satang) / float64(grand)
		}
	}
	return out
}

// TopCategories returns the first n entries of a breakdown.
func TopCategories(breakdown []CategorySum, n int) []CategorySum {
	if n < 0 {
		n = 0
	}
	if n > len(breakdown) {
		n = len(breakdown)
	}
	return breakdown[:n]
}

// DailySeries produces one entry per calendar day of month/year, dense:
// days without transactions carry zero sums rather than being omitted.
// Rows from other months or years are skipped.
func DailySeries(txs []core.Transaction, month, year int) []DayEntry {
	days := core.DaysInMonth(month, year)
	series := make([]DayEntry, days)
	for i := range series {
		series[i].Day = i + 1
	}
	for _, tx := range txs {
		if tx.Month != month || tx.Year != year {
			continue
		}
		if tx.Day < 1 || tx.Day > days {
			continue
		}
		entry := &series[tx.Day-1]
		switch tx.Type {
		case core.Income:
			entry.Income.Satang += tx.Total.Satang
		case core.Expense:
			entry.Expense.Satang += tx.Total.Satang
		}
	}
	return series
}

// CashOnlyExpense sums expenses settled in cash or by transfer. Card spend
// is excluded because it is billed in a later cycle; a missing payment
// method counts as cash.
func CashOnlyExpense(txs []core.Transaction) core.Money {
	var sum core.Money
	for _, tx := range txs {
		if tx.CashLike() {
			sum.Satang += tx.Total.Satang
		}
	}
	return sum
}

// RealExpense sums every expense regardless of payment method — spend as
// incurred, the behavioral counterpart to CashOnlyExpense.
func RealExpense(txs []core.Transaction) core.Money {
	var sum core.Money
	for _, tx := range txs {
		if tx.Type == core.Expense {
			sum.Satang += tx.Total.Satang
		}
	}
	return sum
}

// SpendByCategory returns expense sums keyed by category, the input shape
// budget evaluation expects.
func SpendByCategory(txs []core.Transaction) map[core.Category]core.Money {
	out := make(map[core.Category]core.Money)
	for _, tx := range txs {
		if tx.Type != core.Expense {
			continue
		}
		m := out[tx.Category]
		m.Satang += tx.Total.Satang
		out[tx.Category] = m
	}
	return out
}
