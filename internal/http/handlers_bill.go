package http

import (
	"net/http"
	"strings"
	"time"

	"banchi/internal/core"
)

type billRequest struct {
	Owner         string `json:"owner"`
	Amount        string `json:"amount"`
	DueMonth      int    `json:"due_month"`
	DueYear       int    `json:"due_year"`
	TransactionID int64  `json:"transaction_id,omitempty"`
	Note          string `json:"note,omitempty"`
}

type billResponse struct {
	ID            int64     `json:"id"`
	Owner         string    `json:"owner"`
	AmountSatang  int64     `json:"amount_satang"`
	DueMonth      int       `json:"due_month"`
	DueYear       int       `json:"due_year"`
	Status        string    `json:"status"`
	TransactionID int64     `json:"transaction_id,omitempty"`
	Note          string    `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toBillResponse(b core.CreditCardBill) billResponse {
	return billResponse{
		ID:            b.ID,
		Owner:         string(b.Owner),
		AmountSatang:  b.Amount.Satang,
		DueMonth:      b.DueMonth,
		DueYear:       b.DueYear,
		Status:        string(b.Status),
		TransactionID: b.TransactionID,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	var req billRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	amount, err := core.ParseDecimalToSatang(req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := s.bills.Create(r.Context(), core.CreditCardBill{
		Owner:         core.Owner(req.Owner),
		Amount:        core.Money{Satang: amount},
		DueMonth:      req.DueMonth,
		DueYear:       req.DueYear,
		TransactionID: req.TransactionID,
		Note:          sanitizeInput(req.Note),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateCaches()
	writeJSON(w, http.StatusCreated, toBillResponse(saved))
}

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	status := core.BillStatus(strings.TrimSpace(r.URL.Query().Get("status")))
	month := queryInt(r, "month", 0)
	year := queryInt(r, "year", 0)

	bills, err := s.bills.List(r.Context(), month, year, queryOwner(r), status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]billResponse, len(bills))
	for i, b := range bills {
		out[i] = toBillResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePayBill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid bill id"})
		return
	}
	bill, err := s.bills.MarkPaid(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateCaches()
	writeJSON(w, http.StatusOK, toBillResponse(bill))
}
