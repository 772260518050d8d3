package http

import (
	"net/http"

	"banchi/internal/core"
)

type insightResponse struct {
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Summary string `json:"summary"`
}

func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	if s.summarizer == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "insight generation is not configured"})
		return
	}

	month, year := queryCycle(r)
	txs, err := s.transactions.List(r.Context(), core.FilterOptions{Month: month, Year: year, Owner: queryOwner(r)})
	if err != nil {
		writeError(w, r, err)
		return
	}

	summary, err := s.summarizer.Summarize(r.Context(), month, year, txs)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, insightResponse{Month: month, Year: year, Summary: summary})
}
