// Package cli provides common CLI initialization utilities shared by
// cmd/banchi and cmd/bill-worker.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"banchi/internal/config"
	"banchi/internal/storage"
	"banchi/internal/storage/memory"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore opens the store selected by the configuration.
// Returns the store or exits the process on failure.
func InitStore(logger *slog.Logger, cfg *config.Config) storage.Store {
	if cfg.DataBackend != "sqlite" {
		logger.Info("Using in-memory store", "backend", cfg.DataBackend)
		return memory.New()
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	logger.Info("Using SQLite store", "path", cfg.SQLiteDBPath)
	return repo
}
