package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"banchi/internal/amqp"
	"banchi/internal/cli"
	apphttp "banchi/internal/http"
	"banchi/internal/insight"
	"banchi/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting banchi server")

	cfg := cli.LoadAndValidateConfig(logger)
	store := cli.InitStore(logger, cfg)
	defer store.Close()

	// AMQP is optional; without it credit card expenses simply skip the
	// bill sync pipeline.
	var publisher services.BillPublisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, bill sync disabled", "error", err)
		} else {
			defer amqpClient.Close()
			publisher = amqpClient
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}

	var summarizer insight.Summarizer
	if cfg.GeminiAPIKey != "" {
		gemini, err := insight.NewGeminiSummarizer(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Error("Failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		summarizer = gemini
		logger.Info("Gemini insight enabled")
	} else {
		logger.Info("Gemini insight disabled - no GEMINI_API_KEY provided")
	}

	transactions := services.NewTransactionService(store, publisher)
	srv := apphttp.NewServer(apphttp.Options{
		Addr:         ":" + cfg.Port,
		Transactions: transactions,
		Budgets:      services.NewBudgetService(store),
		Installments: services.NewInstallmentService(store),
		Bills:        services.NewBillService(store),
		Templates:    services.NewTemplateService(store, transactions),
		Overview:     services.NewOverviewService(store),
		Summarizer:   summarizer,
		CacheTTL:     cfg.CacheTTL,
	})

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting banchi server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
