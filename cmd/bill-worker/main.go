package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"banchi/internal/amqp"
	"banchi/internal/cli"
	"banchi/internal/core"
	"banchi/internal/services"
	"banchi/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting bill-worker")

	cfg := cli.LoadAndValidateConfig(logger)
	store := cli.InitStore(logger, cfg)
	defer store.Close()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	billWorker := worker.NewBillWorker(store)
	bills := services.NewBillService(store)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := amqpClient.ConsumeBillSync(ctx, billWorker.HandleBillSync); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		return nil
	})

	// Periodic dueness sweep so unpaid bills surface in the logs even
	// when nobody opens the dashboard.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.BillCheckInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				now := time.Now()
				for _, owner := range core.Owners {
					due, err := bills.DuePending(ctx, int(now.Month()), now.Year(), owner)
					if err != nil {
						logger.Error("Dueness check failed", "error", err, "owner", string(owner))
						continue
					}
					if due.Satang > 0 {
						logger.Info("Pending credit card bills due this cycle",
							"owner", string(owner),
							"amount_satang", due.Satang,
							"month", int(now.Month()),
							"year", now.Year())
					}
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error("Worker error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
