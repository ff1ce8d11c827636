// Package initializer wires the monitoring dependencies: logger,
// snapshot store backend, rate source client and the monitor service.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/mikeoc61/currency-monitor/config"
	"github.com/mikeoc61/currency-monitor/infra/store"
	"github.com/mikeoc61/currency-monitor/pkg/provider"
	"github.com/mikeoc61/currency-monitor/pkg/provider/currencylayer"
	"github.com/mikeoc61/currency-monitor/pkg/service/monitor"
	"github.com/mikeoc61/currency-monitor/pkg/snapshot"
)

// Deps holds the initialized application dependencies.
type Deps struct {
	Logger  *slog.Logger
	Source  provider.RateSource
	Store   snapshot.Store
	Monitor *monitor.Service
}

// InitializeDependencies builds all dependencies from configuration.
// The logger is created first so config loading problems elsewhere can
// reuse it; pass the one returned by SetupLogger.
func InitializeDependencies(cfg *config.AppConfig, logger *slog.Logger) (*Deps, error) {
	st, err := NewSnapshotStore(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	source := currencylayer.New(cfg.CurrencyLayer, logger)
	svc := monitor.New(source, st, logger, cfg.Monitor.Freshness)

	return &Deps{
		Logger:  logger,
		Source:  source,
		Store:   st,
		Monitor: svc,
	}, nil
}

// NewSnapshotStore selects the snapshot store backend from configuration.
func NewSnapshotStore(cfg *config.AppConfig, logger *slog.Logger) (snapshot.Store, error) {
	switch cfg.Store.Backend {
	case "", "memory":
		logger.Info("Using in-memory snapshot store; baselines reset on restart")
		return store.NewMemoryStore(), nil
	case "redis":
		logger.Info("Using Redis snapshot store", "url", cfg.Store.RedisURL)
		return store.NewRedisStore(cfg.Store.RedisURL, cfg.Store.KeyPrefix, logger)
	case "postgres":
		logger.Info("Using Postgres snapshot store")
		db, err := store.NewDBConnection(cfg.Store.DatabaseURL, cfg.Env)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown snapshot store backend %q", cfg.Store.Backend)
	}
}
