package http

import (
	"net/http"
	"time"

	"banchi/internal/core"
)

type templateRequest struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Category      string `json:"category"`
	Description   string `json:"description,omitempty"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type templateResponse struct {
	ID              int64     `json:"id"`
	Owner           string    `json:"owner"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	Quantity        int       `json:"quantity"`
	UnitPriceSatang int64     `json:"unit_price_satang"`
	PaymentMethod   string    `json:"payment_method,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// applyTemplateRequest pins the concrete date the recurring entry lands
// on. Zero fields default to today.
type applyTemplateRequest struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

func toTemplateResponse(t core.RecurringTemplate) templateResponse {
	return templateResponse{
		ID:              t.ID,
		Owner:           string(t.Owner),
		Name:            t.Name,
		Type:            string(t.Type),
		Category:        string(t.Category),
		Description:     t.Description,
		Quantity:        t.Quantity,
		UnitPriceSatang: t.UnitPrice.Satang,
		PaymentMethod:   string(t.PaymentMethod),
		CreatedAt:       t.CreatedAt,
	}
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	price, err := core.ParseDecimalToSatang(req.UnitPrice)
	if err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := s.templates.Save(r.Context(), core.RecurringTemplate{
		Owner:         core.Owner(req.Owner),
		Name:          sanitizeInput(req.Name),
		Type:          core.TransactionType(req.Type),
		Category:      core.Category(req.Category),
		Description:   sanitizeInput(req.Description),
		Quantity:      req.Quantity,
		UnitPrice:     core.Money{Satang: price},
		PaymentMethod: core.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTemplateResponse(saved))
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.templates.List(r.Context(), queryOwner(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := make([]templateResponse, len(templates))
	for i, t := range templates {
		out[i] = toTemplateResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid template id"})
		return
	}
	if err := s.templates.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid template id"})
		return
	}

	var req applyTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	now := time.Now()
	if req.Day == 0 {
		req.Day = now.Day()
	}
	if req.Month == 0 {
		req.Month = int(now.Month())
	}
	if req.Year == 0 {
		req.Year = now.Year()
	}

	tx, err := s.templates.Apply(r.Context(), id, req.Day, req.Month, req.Year)
	if err != nil {
		writeError(w, r, err)
		return
	}

	s.invalidateCaches()
	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}
