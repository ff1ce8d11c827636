// Command server exposes the rates page over HTTP. Every request
// fetches live rates and compares them against the shared snapshot
// store, so the process itself holds no monitoring state.
package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/mikeoc61/currency-monitor/config"
	"github.com/mikeoc61/currency-monitor/infra/initializer"
	"github.com/mikeoc61/currency-monitor/webapi"
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

	app := webapi.NewApp(cfg, deps.Monitor, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"store_backend", cfg.Store.Backend,
	)
	return app.Listen(addr)
}
