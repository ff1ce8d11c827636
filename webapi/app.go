// Package webapi is the stateless web variant: each request fetches
// rates, compares them against the external snapshot store and renders a
// single HTML document.
package webapi

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mikeoc61/currency-monitor/config"
	"github.com/mikeoc61/currency-monitor/pkg/service/monitor"
)

// NewApp builds the Fiber application serving the rates page.
func NewApp(cfg *config.AppConfig, svc *monitor.Service, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return c.Status(status).SendString(err.Error())
		},
	})

	app.Use(recover.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/", RatesPage(cfg, svc, logger))

	return app
}
