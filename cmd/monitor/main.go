// Command monitor polls exchange rates on a fixed cadence and prints
// each basket currency with its percent change against the stored
// baseline, counting down to the next update between passes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	log "github.com/charmbracelet/log"
	"github.com/mikeoc61/currency-monitor/config"
	"github.com/mikeoc61/currency-monitor/infra/initializer"
	"github.com/mikeoc61/currency-monitor/internal/console"
	"github.com/mikeoc61/currency-monitor/pkg/basket"
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

	b, err := basket.Parse(cfg.Monitor.Basket)
	if err != nil {
		return fmt.Errorf("invalid basket %q: %w", cfg.Monitor.Basket, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Monitoring started",
		"basket", b.String(),
		"interval", cfg.Monitor.Interval,
		"spread", cfg.Monitor.Spread,
	)

	r := console.New(os.Stdout)
	for {
		res, err := deps.Monitor.Check(ctx, b, cfg.Monitor.Spread)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			r.RenderError(err)
		} else {
			r.RenderResult(res)
		}

		r.Countdown(ctx.Done(), cfg.Monitor.Interval)
		if ctx.Err() != nil {
			logger.Info("Monitoring stopped")
			return nil
		}
	}
}
