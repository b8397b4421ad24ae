// Package cli provides common initialization utilities for cmd/expenzo.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"expenzo/internal/config"
	"expenzo/internal/log"
	"expenzo/internal/storage"
)

// SetupLogger initializes structured logging and sets the default logger.
func SetupLogger(level string) *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ParseLevel(level)
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore builds the persistent store for the configured backend.
// Returns the store or exits the process on failure.
func OpenStore(logger *log.Logger, cfg *config.Config) storage.Store {
	store, err := storage.Open(storage.Config{
		Type:         storage.BackendType(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
		DataDir:      cfg.DataDir,
	}, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize store",
			log.FieldError, err,
			log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return store
}
