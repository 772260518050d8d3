package report

import "banchi/internal/core"

// NearLimitThreshold is the consumed percent at which a budget is flagged.
// Fixed by design, not configurable.
const NearLimitThreshold = 80.0

// BudgetStatus is the evaluation of one budget against actual spend.
type BudgetStatus struct {
	Owner     core.Owner
	Category  core.Category
	Limit     core.Money
	Spent     core.Money
	Percent   float64 // in [0,100]
	NearLimit bool
}

// EvaluateBudgets computes consumed percent per budget from category spend
// sums. Percent is capped at 100 and zero limits evaluate to 0 rather than
// dividing. Read-only: neither input is mutated.
func EvaluateBudgets(budgets []core.Budget, spendByCategory map[core.Category]core.Money) []BudgetStatus {
	out := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent := spendByCategory[b.Category]
		var percent float64
		if b.MonthlyLimit.Satang > 0 {
			percent = 100 * float64(spent.Satang) / float64(b.MonthlyLimit.Satang)
			if percent > 100 {
				percent = 100
			}
			if percent < 0 {
				percent = 0
			}
		}
		out = append(out, BudgetStatus{
			Owner:     b.Owner,
			Category:  b.Category,
			Limit:     b.MonthlyLimit,
			Spent:     spent,
			Percent:   percent,
			NearLimit: percent >= NearLimitThreshold,
		})
	}
	return out
}
