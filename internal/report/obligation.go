package report

import "banchi/internal/core"

// Obligation is the cash the household must produce for one month:
// cash-settled expenses plus active installment dues plus pending card
// bills. Recomputed from its three sources on every query cycle.
type Obligation struct {
	CashExpense    core.Money
	InstallmentDue core.Money
	CardDue        core.Money
	Total          core.Money
}

// InstallmentContribution sums the monthly amount of every active plan
// matching the owner filter. An active plan always contributes regardless
// of its start date; only Advance and Cancel stop the contribution.
func InstallmentContribution(plans []core.Installment, owner core.Owner) core.Money {
	var sum core.Money
	for _, p := range plans {
		if p.Status != core.InstallmentActive {
			continue
		}
		if owner != "" && owner != core.FilterAll && p.Owner != owner {
			continue
		}
		sum.Satang += p.MonthlyAmount.Satang
	}
	return sum
}

// DuePending sums pending bills due exactly in month/year, optionally
// narrowed to one owner.
func DuePending(bills []core.CreditCardBill, month, year int, owner core.Owner) core.Money {
	var sum core.Money
	for _, b := range bills {
		if b.Status != core.BillPending {
			continue
		}
		if b.DueMonth != month || b.DueYear != year {
			continue
		}
		if owner != "" && owner != core.FilterAll && b.Owner != owner {
			continue
		}
		sum.Satang += b.Amount.Satang
	}
	return sum
}

// MonthlyObligation combines the three obligation sources for month/year
// under an owner filter. txs, plans and bills may be unfiltered; the
// relevant subsets are selected here.
func MonthlyObligation(txs []core.Transaction, plans []core.Installment, bills []core.CreditCardBill, month, year int, owner core.Owner) Obligation {
	filter := core.FilterOptions{Month: month, Year: year, Owner: owner, Type: core.Expense}
	var ob Obligation
	ob.CashExpense = CashOnlyExpense(filter.Apply(txs))
	ob.InstallmentDue = InstallmentContribution(plans, owner)
	ob.CardDue = DuePending(bills, month, year, owner)
	ob.Total = core.Money{Satang: ob.CashExpense.Satang + ob.InstallmentDue.Satang + ob.CardDue.Satang}
	return ob
}
