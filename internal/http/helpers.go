package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"banchi/internal/core"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			slog.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps domain error kinds onto HTTP status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsValidation(err):
		status = http.StatusUnprocessableEntity
	case core.IsNotFound(err):
		status = http.StatusNotFound
	case core.IsInvalidState(err):
		status = http.StatusConflict
	case core.IsStoreUnavailable(err):
		status = http.StatusServiceUnavailable
	}

	if status >= 500 {
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "url", r.URL.Path)
	} else {
		slog.WarnContext(r.Context(), "Request rejected", "error", err, "status", status, "url", r.URL.Path)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// queryCycle reads month and year, defaulting to the current cycle.
func queryCycle(r *http.Request) (int, int) {
	now := time.Now()
	month := queryInt(r, "month", int(now.Month()))
	year := queryInt(r, "year", now.Year())
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	return month, year
}

func queryOwner(r *http.Request) core.Owner {
	return core.Owner(strings.TrimSpace(r.URL.Query().Get("owner")))
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
