// Command seed populates the snapshot store with a baseline for every
// currency the rate source supports, so the first monitoring pass has
// something to compare against. It is a one-shot tool.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/mikeoc61/currency-monitor/config"
	"github.com/mikeoc61/currency-monitor/infra/initializer"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.LoadAppConfig(slog.Default(), ".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := initializer.SetupLogger(cfg.Log)

	deps, err := initializer.InitializeDependencies(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := deps.Monitor.Seed(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed snapshot store: %w", err)
	}
	logger.Info("Snapshot store seeded", "count", n, "store_backend", cfg.Store.Backend)
	return nil
}
