package http

import (
	"net/http"
	"strings"
	"time"

	"banchi/internal/core"
)

type installmentRequest struct {
	Owner         string `json:"owner"`
	Title         string `json:"title"`
	TotalAmount   string `json:"total_amount"`
	MonthlyAmount string `json:"monthly_amount"`
	TotalMonths   int    `json:"total_months"`
	PaidMonths    int    `json:"paid_months"`
	StartMonth    int    `json:"start_month"`
	StartYear     int    `json:"start_year"`
	Note          string `json:"note,omitempty"`
}

type installmentResponse struct {
	ID                  int64     `json:"id"`
	Owner               string    `json:"owner"`
	Title               string    `json:"title"`
	TotalAmountSatang   int64     `json:"total_amount_satang"`
	MonthlyAmountSatang int64     `json:"monthly_amount_satang"`
	TotalMonths         int       `json:"total_months"`
	PaidMonths          int       `json:"paid_months"`
	StartMonth          int       `json:"start_month"`
	StartYear           int       `json:"start_year"`
	RemainingMonths     int       `json:"remaining_months"`
	ProgressPercent     float64   `json:"progress_percent"`
	Status              string    `json:"status"`
	Note                string    `json:"note,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func toInstallmentResponse(p core.Installment) installmentResponse {
	return installmentResponse{
		ID:                  p.ID,
		Owner:               string(p.Owner),
		Title:               p.Title,
		TotalAmountSatang:   p.TotalAmount.Satang,
		MonthlyAmountSatang: p.MonthlyAmount.Satang,
		TotalMonths:         p.TotalMonths,
		PaidMonths:          p.PaidMonths,
		StartMonth:          p.StartMonth,
		StartYear:           p.StartYear,
		RemainingMonths:     p.RemainingMonths(),
		ProgressPercent:     p.ProgressPercent(),
		Status:              string(p.Status),
		Note:                p.Note,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (s *Server) handleCreateInstallment(w http.ResponseWriter, r *http.Request) {
	var req installmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	total, err := core.ParseDecimalToSatang(req.TotalAmount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	monthly, err := core.ParseDecimalToSatang(req.MonthlyAmount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := s.installments.Create(r.Context(), core.Installment{
		Owner:         core.Owner(req.Owner),
		Title:         sanitizeInput(req.Title),
		TotalAmount:   core.Money{Satang: total},
		MonthlyAmount: core.Money{Satang: monthly},
		TotalMonths:   req.TotalMonths,
		PaidMonths:    req.PaidMonths,
		StartMonth:    req.StartMonth,
		StartYear:     req.StartYear,
		Note:          sanitizeInput(req.Note),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateCaches()
	writeJSON(w, http.StatusCreated, toInstallmentResponse(saved))
}

func (s *Server) handleListInstallments(w http.ResponseWriter, r *http.Request) {
	status := core.InstallmentStatus(strings.TrimSpace(r.URL.Query().Get("status")))
	plans, err := s.installments.List(r.Context(), queryOwner(r), status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]installmentResponse, len(plans))
	for i, p := range plans {
		out[i] = toInstallmentResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAdvanceInstallment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid installment id"})
		return
	}
	plan, err := s.installments.Advance(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateCaches()
	writeJSON(w, http.StatusOK, toInstallmentResponse(plan))
}

func (s *Server) handleCancelInstallment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid installment id"})
		return
	}
	plan, err := s.installments.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateCaches()
	writeJSON(w, http.StatusOK, toInstallmentResponse(plan))
}
