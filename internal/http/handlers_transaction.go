package http

import (
	"net/http"
	"strings"
	"time"

	"banchi/internal/core"
)

// transactionRequest is the write payload. The unit price arrives as a
// decimal baht string the way clients type it; the server converts to
// satang.
type transactionRequest struct {
	Day           int    `json:"day"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	Owner         string `json:"owner"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type transactionResponse struct {
	ID              int64     `json:"id"`
	Day             int       `json:"day"`
	Month           int       `json:"month"`
	Year            int       `json:"year"`
	Type            string    `json:"type"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Quantity        int       `json:"quantity"`
	UnitPriceSatang int64     `json:"unit_price_satang"`
	TotalSatang     int64     `json:"total_satang"`
	Owner           string    `json:"owner"`
	PaymentMethod   string    `json:"payment_method,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (req transactionRequest) toDomain() (core.Transaction, error) {
	satang, err := core.ParseDecimalToSatang(req.UnitPrice)
	if err != nil {
		return core.Transaction{}, err
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	return core.Transaction{
		Day:           req.Day,
		Month:         req.Month,
		Year:          req.Year,
		Type:          core.TransactionType(req.Type),
		Description:   sanitizeInput(req.Description),
		Category:      core.Category(req.Category),
		Quantity:      quantity,
		UnitPrice:     core.Money{Satang: satang},
		Owner:         core.Owner(req.Owner),
		PaymentMethod: core.PaymentMethod(req.PaymentMethod),
	}, nil
}

func toTransactionResponse(tx core.Transaction) transactionResponse {
	return transactionResponse{
		ID:              tx.ID,
		Day:             tx.Day,
		Month:           tx.Month,
		Year:            tx.Year,
		Type:            string(tx.Type),
		Description:     tx.Description,
		Category:        string(tx.Category),
		Quantity:        tx.Quantity,
		UnitPriceSatang: tx.UnitPrice.Satang,
		TotalSatang:     tx.Total.Satang,
		Owner:           string(tx.Owner),
		PaymentMethod:   string(tx.PaymentMethod),
		CreatedAt:       tx.CreatedAt,
	}
}

func toTransactionResponses(txs []core.Transaction) []transactionResponse {
	out := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		out[i] = toTransactionResponse(tx)
	}
	return out
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	tx, err := req.toDomain()
	if err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := s.transactions.Create(r.Context(), tx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.accessLog.LogTransactionCreated(r.Context(), saved.ID,
		string(saved.Owner), string(saved.Category), saved.Description, saved.Total.Satang)

	s.invalidateCaches()
	writeJSON(w, http.StatusCreated, toTransactionResponse(saved))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := core.FilterOptions{
		Month:    queryInt(r, "month", 0),
		Year:     queryInt(r, "year", 0),
		Owner:    queryOwner(r),
		Type:     core.TransactionType(strings.TrimSpace(q.Get("type"))),
		Category: core.Category(strings.TrimSpace(q.Get("category"))),
		SortBy:   core.SortBy(strings.TrimSpace(q.Get("sort"))),
	}

	txs, err := s.transactions.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(txs))
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid transaction id"})
		return
	}
	tx, err := s.transactions.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponse(tx))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid transaction id"})
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	tx, err := req.toDomain()
	if err != nil {
		writeError(w, r, err)
		return
	}
	tx.ID = id

	updated, err := s.transactions.Update(r.Context(), tx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateCaches()
	writeJSON(w, http.StatusOK, toTransactionResponse(updated))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid transaction id"})
		return
	}
	if err := s.transactions.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	s.invalidateCaches()
	w.WriteHeader(http.StatusNoContent)
}
