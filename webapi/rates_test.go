package webapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mikeoc61/currency-monitor/config"
	"github.com/mikeoc61/currency-monitor/infra/store"
	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/mikeoc61/currency-monitor/pkg/service/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	quotes *domain.QuoteSet
	err    error
}

func (f *fakeSource) Live(ctx context.Context, codes []string) (*domain.QuoteSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.quotes, nil
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) IsHealthy(ctx context.Context) bool { return f.err == nil }

func testApp(src *fakeSource) *fiber.App {
	cfg := &config.AppConfig{
		Monitor: config.Monitor{
			Basket:    "EUR,GBP",
			Spread:    1.0,
			Freshness: 24 * time.Hour,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := monitor.New(src, store.NewMemoryStore(), logger, cfg.Monitor.Freshness)
	return NewApp(cfg, svc, logger)
}

func fetchBody(t *testing.T, app *fiber.App, target string, wantStatus int) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, wantStatus, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRatesPageDefaults(t *testing.T) {
	src := &fakeSource{quotes: &domain.QuoteSet{
		Source:    "USD",
		Timestamp: time.Now().UTC(),
		Rates:     map[string]float64{"EUR": 0.8731, "GBP": 0.7892},
	}}

	body := fetchBody(t, testApp(src), "/", fiber.StatusOK)

	assert.Contains(t, body, "Currency Exchange Rates")
	assert.Contains(t, body, "EUR/USD:")
	assert.Contains(t, body, "GBP/USD:")
	assert.Contains(t, body, "Spread: 1.00%")
	assert.Contains(t, body, "EUR = Euro")
	// Basket members are excluded from the add-currency options.
	assert.NotContains(t, body, `<option value="EUR">`)
	assert.Contains(t, body, `<option value="JPY">`)
}

func TestRatesPageQueryOverrides(t *testing.T) {
	src := &fakeSource{quotes: &domain.QuoteSet{
		Source:    "USD",
		Timestamp: time.Now().UTC(),
		Rates:     map[string]float64{"JPY": 110.52},
	}}

	body := fetchBody(t, testApp(src), "/?currencies=JPY&spread=0.5", fiber.StatusOK)

	assert.Contains(t, body, "USD/JPY:")
	assert.Contains(t, body, "Spread: 0.50%")
	assert.NotContains(t, body, "EUR/USD:")
}

func TestRatesPageInvalidSpread(t *testing.T) {
	src := &fakeSource{quotes: &domain.QuoteSet{
		Source:    "USD",
		Timestamp: time.Now().UTC(),
		Rates:     map[string]float64{"EUR": 0.8731},
	}}

	body := fetchBody(t, testApp(src), "/?spread=5.0", fiber.StatusBadRequest)
	assert.Contains(t, body, "Spread must be between")
}

func TestRatesPageInvalidBasket(t *testing.T) {
	src := &fakeSource{quotes: &domain.QuoteSet{
		Source:    "USD",
		Timestamp: time.Now().UTC(),
		Rates:     map[string]float64{"EUR": 0.8731},
	}}

	body := fetchBody(t, testApp(src), "/?currencies=EUR,BOGUS", fiber.StatusBadRequest)
	assert.Contains(t, body, "Invalid currency basket")
}

func TestRatesPageSourceFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("quota exceeded")}

	body := fetchBody(t, testApp(src), "/", fiber.StatusBadGateway)
	assert.Contains(t, body, "Unable to fetch current exchange rates")
}

func TestHealthz(t *testing.T) {
	src := &fakeSource{quotes: &domain.QuoteSet{Source: "USD", Timestamp: time.Now().UTC()}}
	body := fetchBody(t, testApp(src), "/healthz", fiber.StatusOK)
	assert.Equal(t, "ok", body)
}
