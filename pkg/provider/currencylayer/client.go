// Package currencylayer implements the rate source client for the
// CurrencyLayer web service (https://currencylayer.com/documentation).
package currencylayer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mikeoc61/currency-monitor/config"
	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/mikeoc61/currency-monitor/pkg/provider"
)

// APIError is the structured error payload CurrencyLayer returns when a
// request is rejected (bad key, exhausted quota, unknown currency).
type APIError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("currencylayer: code=%d type=%s info=%s", e.Code, e.Type, e.Info)
}

// liveResponse is the CurrencyLayer /live payload. Quotes are keyed by
// source+target, e.g. "USDEUR".
type liveResponse struct {
	Success   bool               `json:"success"`
	Terms     string             `json:"terms"`
	Privacy   string             `json:"privacy"`
	Timestamp int64              `json:"timestamp"`
	Source    string             `json:"source"`
	Quotes    map[string]float64 `json:"quotes"`
	Error     *APIError          `json:"error,omitempty"`
}

// listResponse is the CurrencyLayer /list payload.
type listResponse struct {
	Success    bool              `json:"success"`
	Currencies map[string]string `json:"currencies"`
	Error      *APIError         `json:"error,omitempty"`
}

// Client issues requests against the CurrencyLayer API.
type Client struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a CurrencyLayer client from config.
func New(cfg config.CurrencyLayer, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		accessKey: cfg.AccessKey,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

func (c *Client) endpoint(mode string, params url.Values) string {
	params.Set("access_key", c.accessKey)
	return fmt.Sprintf("%s/%s?%s", c.baseURL, mode, params.Encode())
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Live fetches current quotes for the given currency codes in a single
// request. Codes absent from the response are simply missing from the
// returned set; callers decide how to report them.
func (c *Client) Live(ctx context.Context, codes []string) (*domain.QuoteSet, error) {
	params := url.Values{}
	params.Set("currencies", strings.Join(codes, ","))

	c.logger.Info("Fetching live exchange rates", "provider", c.Name(), "currencies", len(codes))

	var apiResp liveResponse
	if err := c.get(ctx, c.endpoint("live", params), &apiResp); err != nil {
		return nil, err
	}

	if !apiResp.Success {
		if apiResp.Error != nil {
			return nil, apiResp.Error
		}
		return nil, fmt.Errorf("currencylayer: request unsuccessful")
	}

	rates := make(map[string]float64, len(apiResp.Quotes))
	for pair, rate := range apiResp.Quotes {
		// "USDEUR" -> "EUR"
		code := strings.TrimPrefix(pair, apiResp.Source)
		rates[code] = rate
	}

	qs := &domain.QuoteSet{
		Source:    apiResp.Source,
		Timestamp: time.Unix(apiResp.Timestamp, 0).UTC(),
		Rates:     rates,
	}
	c.logger.Info("Live exchange rates fetched",
		"provider", c.Name(), "count", len(rates), "timestamp", qs.Timestamp)
	return qs, nil
}

// List fetches the full map of supported currency codes to descriptions.
func (c *Client) List(ctx context.Context) (map[string]string, error) {
	var apiResp listResponse
	if err := c.get(ctx, c.endpoint("list", url.Values{}), &apiResp); err != nil {
		return nil, err
	}

	if !apiResp.Success {
		if apiResp.Error != nil {
			return nil, apiResp.Error
		}
		return nil, fmt.Errorf("currencylayer: request unsuccessful")
	}
	return apiResp.Currencies, nil
}

// Name returns the provider's name.
func (c *Client) Name() string {
	return "currencylayer"
}

// IsHealthy checks if the provider is currently reachable.
func (c *Client) IsHealthy(ctx context.Context) bool {
	var apiResp listResponse
	if err := c.get(ctx, c.endpoint("list", url.Values{}), &apiResp); err != nil {
		return false
	}
	return apiResp.Success
}

var (
	_ provider.RateSource     = (*Client)(nil)
	_ provider.CurrencyLister = (*Client)(nil)
)
