package http

import (
	"net/http"

	"banchi/internal/report"
	"banchi/internal/services"
)

type categorySumResponse struct {
	Category    string  `json:"category"`
	TotalSatang int64   `json:"total_satang"`
	Share       float64 `json:"share"`
}

type dayEntryResponse struct {
	Day           int   `json:"day"`
	IncomeSatang  int64 `json:"income_satang"`
	ExpenseSatang int64 `json:"expense_satang"`
}

type obligationResponse struct {
	CashExpenseSatang    int64 `json:"cash_expense_satang"`
	InstallmentDueSatang int64 `json:"installment_due_satang"`
	CardDueSatang        int64 `json:"card_due_satang"`
	TotalSatang          int64 `json:"total_satang"`
}

type budgetStatusResponse struct {
	Owner       string  `json:"owner"`
	Category    string  `json:"category"`
	LimitSatang int64   `json:"limit_satang"`
	SpentSatang int64   `json:"spent_satang"`
	Percent     float64 `json:"percent"`
	NearLimit   bool    `json:"near_limit"`
}

type overviewResponse struct {
	Month             int                    `json:"month"`
	Year              int                    `json:"year"`
	Owner             string                 `json:"owner,omitempty"`
	IncomeSatang      int64                  `json:"income_satang"`
	ExpenseSatang     int64                  `json:"expense_satang"`
	NetSatang         int64                  `json:"net_satang"`
	ByCategory        []categorySumResponse  `json:"by_category"`
	TopCategories     []categorySumResponse  `json:"top_categories"`
	Daily             []dayEntryResponse     `json:"daily"`
	CashOnlySatang    int64                  `json:"cash_only_satang"`
	RealExpenseSatang int64                  `json:"real_expense_satang"`
	Obligation        obligationResponse     `json:"obligation"`
	Budgets           []budgetStatusResponse `json:"budgets"`
}

func toBudgetStatusResponses(statuses []report.BudgetStatus) []budgetStatusResponse {
	out := make([]budgetStatusResponse, len(statuses))
	for i, st := range statuses {
		out[i] = budgetStatusResponse{
			Owner:       string(st.Owner),
			Category:    string(st.Category),
			LimitSatang: st.Limit.Satang,
			SpentSatang: st.Spent.Satang,
			Percent:     st.Percent,
			NearLimit:   st.NearLimit,
		}
	}
	return out
}

func toCategorySumResponses(sums []report.CategorySum) []categorySumResponse {
	out := make([]categorySumResponse, len(sums))
	for i, cs := range sums {
		out[i] = categorySumResponse{
			Category:    string(cs.Category),
			TotalSatang: cs.Total.Satang,
			Share:       cs.Share,
		}
	}
	return out
}

func toOverviewResponse(ov services.MonthOverview) overviewResponse {
	daily := make([]dayEntryResponse, len(ov.Daily))
	for i, d := range ov.Daily {
		daily[i] = dayEntryResponse{
			Day:           d.Day,
			IncomeSatang:  d.Income.Satang,
			ExpenseSatang: d.Expense.Satang,
		}
	}
	return overviewResponse{
		Month:             ov.Month,
		Year:              ov.Year,
		Owner:             string(ov.Owner),
		IncomeSatang:      ov.Totals.Income.Satang,
		ExpenseSatang:     ov.Totals.Expense.Satang,
		NetSatang:         ov.Totals.Net,
		ByCategory:        toCategorySumResponses(ov.ByCategory),
		TopCategories:     toCategorySumResponses(report.TopCategories(ov.ByCategory, 3)),
		Daily:             daily,
		CashOnlySatang:    ov.CashOnly.Satang,
		RealExpenseSatang: ov.Real.Satang,
		Obligation: obligationResponse{
			CashExpenseSatang:    ov.Obligation.CashExpense.Satang,
			InstallmentDueSatang: ov.Obligation.InstallmentDue.Satang,
			CardDueSatang:        ov.Obligation.CardDue.Satang,
			TotalSatang:          ov.Obligation.Total.Satang,
		},
		Budgets: toBudgetStatusResponses(ov.Budgets),
	}
}

func (s *Server) handleMonthOverview(w http.ResponseWriter, r *http.Request) {
	month, year := queryCycle(r)
	owner := queryOwner(r)

	key := overviewCacheKey(month, year, string(owner))
	if cached, ok := s.overviewCache.Get(key); ok {
		writeJSON(w, http.StatusOK, toOverviewResponse(cached))
		return
	}

	ov, err := s.overview.MonthOverview(r.Context(), month, year, owner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.overviewCache.Set(key, ov)
	writeJSON(w, http.StatusOK, toOverviewResponse(ov))
}
