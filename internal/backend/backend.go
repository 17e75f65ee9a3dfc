// Package backend selects and wires the Item Store implementation.
package backend

import (
	"fmt"
	"log/slog"

	"finmind/internal/config"
	"finmind/internal/storage"
	"finmind/internal/store"
	"finmind/internal/store/memory"
)

// Result bundles the chosen store with its cleanup function. Cleanup may
// be nil when the backend holds no resources.
type Result struct {
	Store   store.Store
	Cleanup func() error
}

// New builds the Item Store named by the configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.DataBackend {
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil

	case "memory":
		logger.Info("Initialized memory backend")
		return &Result{Store: memory.NewSeeded()}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
