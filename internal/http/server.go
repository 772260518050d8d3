// Package http exposes the JSON API over the services layer.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"banchi/internal/cache"
	"banchi/internal/insight"
	applog "banchi/internal/log"
	"banchi/internal/services"
)

type Server struct {
	http.Server
	transactions *services.TransactionService
	budgets      *services.BudgetService
	installments *services.InstallmentService
	bills        *services.BillService
	templates    *services.TemplateService
	overview     *services.OverviewService
	summarizer   insight.Summarizer

	rateLimiter *rateLimiter
	accessLog   *applog.StructuredLogger

	// Month overview cache; cleared on every mutating write.
	overviewCache *cache.LRUCache[services.MonthOverview]
	cacheManager  *cache.Manager

	shutdownOnce sync.Once
}

// Options bundles the collaborators the server needs. Summarizer may
// be nil; the insight endpoint then reports unavailability.
type Options struct {
	Addr         string
	Transactions *services.TransactionService
	Budgets      *services.BudgetService
	Installments *services.InstallmentService
	Bills        *services.BillService
	Templates    *services.TemplateService
	Overview     *services.OverviewService
	Summarizer   insight.Summarizer
	CacheTTL     time.Duration
}

// NewServer configures routes and middleware, returning a
// ready-to-run http.Server.
func NewServer(opts Options) *Server {
	mux := http.NewServeMux()

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	// Writes clear the cache anyway; the TTL only bounds staleness from
	// out-of-band database edits.
	if ttl > 5*time.Minute {
		ttl = 5 * time.Minute
	}

	s := &Server{
		Server: http.Server{
			Addr:    opts.Addr,
			Handler: mux,
		},
		transactions: opts.Transactions,
		budgets:      opts.Budgets,
		installments: opts.Installments,
		bills:        opts.Bills,
		templates:    opts.Templates,
		overview:     opts.Overview,
		summarizer:   opts.Summarizer,
		rateLimiter:  newRateLimiter(),
		accessLog: applog.NewStructuredLogger(applog.New(applog.Config{
			Level:     slog.LevelInfo,
			Component: applog.ComponentHTTP,
		})),
		overviewCache: cache.NewLRUCache[services.MonthOverview](100, ttl),
		cacheManager:  cache.NewManager(),
	}
	s.cacheManager.Register(s.overviewCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("POST /api/transactions", s.secured(s.handleCreateTransaction))
	mux.HandleFunc("GET /api/transactions", s.secured(s.handleListTransactions))
	mux.HandleFunc("GET /api/transactions/{id}", s.secured(s.handleGetTransaction))
	mux.HandleFunc("PUT /api/transactions/{id}", s.secured(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.secured(s.handleDeleteTransaction))

	mux.HandleFunc("GET /api/overview", s.secured(s.handleMonthOverview))

	mux.HandleFunc("PUT /api/budgets", s.secured(s.handleUpsertBudget))
	mux.HandleFunc("GET /api/budgets", s.secured(s.handleListBudgets))
	mux.HandleFunc("GET /api/budgets/status", s.secured(s.handleBudgetStatus))
	mux.HandleFunc("DELETE /api/budgets/{id}", s.secured(s.handleDeleteBudget))

	mux.HandleFunc("POST /api/installments", s.secured(s.handleCreateInstallment))
	mux.HandleFunc("GET /api/installments", s.secured(s.handleListInstallments))
	mux.HandleFunc("POST /api/installments/{id}/advance", s.secured(s.handleAdvanceInstallment))
	mux.HandleFunc("POST /api/installments/{id}/cancel", s.secured(s.handleCancelInstallment))

	mux.HandleFunc("POST /api/bills", s.secured(s.handleCreateBill))
	mux.HandleFunc("GET /api/bills", s.secured(s.handleListBills))
	mux.HandleFunc("POST /api/bills/{id}/pay", s.secured(s.handlePayBill))

	mux.HandleFunc("POST /api/templates", s.secured(s.handleCreateTemplate))
	mux.HandleFunc("GET /api/templates", s.secured(s.handleListTemplates))
	mux.HandleFunc("DELETE /api/templates/{id}", s.secured(s.handleDeleteTemplate))
	mux.HandleFunc("POST /api/templates/{id}/apply", s.secured(s.handleApplyTemplate))

	mux.HandleFunc("GET /api/insight", s.secured(s.handleInsight))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// secured adds security headers, rate limiting, and request logging.
func (s *Server) secured(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.Header.Get("X-Real-IP")
		}
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		s.accessLog.LogHTTPStart(ctx, r, clientIP, requestID)

		// Rate limit mutating requests only.
		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Cache-Control", "no-store")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.accessLog.LogHTTPEnd(ctx, r, rw.statusCode, time.Since(start).Milliseconds(), clientIP, requestID)
	}
}

type contextKey string

const requestIDKey contextKey = "request_id"

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func overviewCacheKey(month, year int, owner string) string {
	return strconv.Itoa(year) + "-" + strconv.Itoa(month) + "-" + owner
}

// invalidateCaches drops all cached aggregates. Called after every
// mutating write; a budget or installment change can move any month's
// rollup, so keying the invalidation per cycle is not worth it.
func (s *Server) invalidateCaches() {
	s.overviewCache.Clear()
}
