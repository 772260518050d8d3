package http

import (
	"net/http"
	"time"

	"banchi/internal/core"
)

type budgetRequest struct {
	Owner        string `json:"owner"`
	Category     string `json:"category"`
	MonthlyLimit string `json:"monthly_limit"`
}

type budgetResponse struct {
	ID                 int64     `json:"id"`
	Owner              string    `json:"owner"`
	Category           string    `json:"category"`
	MonthlyLimitSatang int64     `json:"monthly_limit_satang"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func toBudgetResponse(b core.Budget) budgetResponse {
	return budgetResponse{
		ID:                 b.ID,
		Owner:              string(b.Owner),
		Category:           string(b.Category),
		MonthlyLimitSatang: b.MonthlyLimit.Satang,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (s *Server) handleUpsertBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	limit, err := core.ParseDecimalToSatang(req.MonthlyLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := s.budgets.Upsert(r.Context(), core.Budget{
		Owner:        core.Owner(req.Owner),
		Category:     core.Category(req.Category),
		MonthlyLimit: core.Money{Satang: limit},
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateCaches()
	writeJSON(w, http.StatusOK, toBudgetResponse(saved))
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.budgets.List(r.Context(), queryOwner(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]budgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = toBudgetResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	month, year := queryCycle(r)
	statuses, err := s.budgets.Evaluate(r.Context(), queryOwner(r), month, year)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBudgetStatusResponses(statuses))
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid budget id"})
		return
	}
	if err := s.budgets.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateCaches()
	w.WriteHeader(http.StatusNoContent)
}
