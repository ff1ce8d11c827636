package webapi

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/mikeoc61/currency-monitor/config"
	"github.com/mikeoc61/currency-monitor/pkg/basket"
	"github.com/mikeoc61/currency-monitor/pkg/currency"
	"github.com/mikeoc61/currency-monitor/pkg/delta"
	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/mikeoc61/currency-monitor/pkg/service/monitor"
)

const sinceLayout = "02 Jan 2006 15:04 MST"

// rateQuery are the request parameters a user may override: the tracked
// basket and the spread threshold.
type rateQuery struct {
	Currencies string  `query:"currencies"`
	Spread     float64 `query:"spread" validate:"omitempty,gte=0.1,lte=2.0"`
}

// RatesPage renders the full currency exchange rates document. Basket
// and spread come from query parameters, falling back to configuration.
func RatesPage(cfg *config.AppConfig, svc *monitor.Service, logger *slog.Logger) fiber.Handler {
	validate := validator.New()

	return func(c *fiber.Ctx) error {
		q := rateQuery{
			Currencies: cfg.Monitor.Basket,
			Spread:     cfg.Monitor.Spread,
		}
		if err := c.QueryParser(&q); err != nil {
			return renderErrorPage(c, fiber.StatusBadRequest, "Invalid query parameters")
		}
		if q.Spread == 0 {
			q.Spread = cfg.Monitor.Spread
		}
		if err := validate.Struct(q); err != nil {
			return renderErrorPage(c, fiber.StatusBadRequest,
				"Spread must be between 0.10 and 2.00")
		}

		b, err := basket.Parse(q.Currencies)
		if err != nil {
			return renderErrorPage(c, fiber.StatusBadRequest,
				fmt.Sprintf("Invalid currency basket %q", q.Currencies))
		}

		res, err := svc.Check(c.Context(), b, q.Spread)
		if err != nil {
			logger.Error("Monitoring pass failed", "basket", b.String(), "error", err)
			return renderErrorPage(c, fiber.StatusBadGateway,
				"Unable to fetch current exchange rates")
		}

		return renderPage(c, buildPage(b, q.Spread, res))
	}
}

// rateRow is one rendered basket currency.
type rateRow struct {
	Currency    string
	Quote       string // preformatted pair columns with spread prices
	Change      string // absolute percent change, e.g. "0.45%"
	Class       string // up, down or flat; empty when no baseline exists
	SinceTitle  string
	Unavailable bool
}

type selectOption struct {
	Code        string
	Description string
}

type legendEntry struct {
	Code        string
	Description string
}

type pageData struct {
	AsOf    string
	Spread  string
	Basket  string
	Rows    []rateRow
	Options []selectOption
	Legend  []legendEntry
	Error   string
}

func buildPage(b *basket.Basket, spread float64, res *monitor.Result) pageData {
	data := pageData{
		AsOf:   res.FetchedAt.Local().Format(sinceLayout),
		Spread: fmt.Sprintf("%3.2f", spread),
		Basket: b.String(),
	}

	for _, d := range res.Deltas {
		data.Rows = append(data.Rows, buildRow(d, spread))
	}

	for _, code := range currency.Codes() {
		desc, _ := currency.Describe(code)
		if !b.Contains(code) {
			data.Options = append(data.Options, selectOption{Code: code, Description: desc})
		}
	}

	for _, code := range b.Codes() {
		desc, ok := currency.Describe(code)
		if !ok {
			desc = "Unknown"
		}
		data.Legend = append(data.Legend, legendEntry{Code: code, Description: desc})
	}

	return data
}

func buildRow(d domain.Delta, spread float64) rateRow {
	row := rateRow{Currency: d.Currency, Unavailable: d.Unavailable}
	if d.Unavailable {
		return row
	}

	q := domain.Quote{Currency: d.Currency, Rate: d.Rate}
	inUSD := fmt.Sprintf("%s/USD: %9.4f (%9.4f)", d.Currency,
		q.Inverse(), delta.AdjustedInverse(d.Rate, spread))
	inFor := fmt.Sprintf("USD/%s: %7.4f (%6.4f)", d.Currency,
		d.Rate, delta.AdjustedRate(d.Rate, spread))

	// Some currencies are conventionally quoted with USD in the
	// denominator, so lead with that column.
	if currency.QuoteUSDFirst(d.Currency) {
		row.Quote = inUSD + "  " + inFor
	} else {
		row.Quote = inFor + "  " + inUSD
	}

	if !d.HasChange() {
		return row
	}

	pct := d.ChangePct
	if pct < 0 {
		pct = -pct
	}
	row.Change = fmt.Sprintf("%3.2f%%", pct)
	row.SinceTitle = "USD % Change since: " + d.Since.Local().Format(sinceLayout)

	switch d.Direction {
	case domain.Up:
		row.Class = "up"
	case domain.Down:
		row.Class = "down"
	default:
		row.Class = "flat"
	}
	return row
}

func renderPage(c *fiber.Ctx, data pageData) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func renderErrorPage(c *fiber.Ctx, status int, message string) error {
	data := pageData{
		AsOf:  time.Now().Local().Format(sinceLayout),
		Error: message,
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
