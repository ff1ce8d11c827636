package currencylayer

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mikeoc61/currency-monitor/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := New(config.CurrencyLayer{
		AccessKey:   "test-key",
		BaseURL:     srv.URL,
		HTTPTimeout: 5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return client, srv
}

func TestClientLive(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/live", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "EUR,JPY", r.URL.Query().Get("currencies"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"timestamp": 1545855246,
			"source": "USD",
			"quotes": {"USDEUR": 0.8731, "USDJPY": 110.52}
		}`))
	})

	qs, err := client.Live(context.Background(), []string{"EUR", "JPY"})
	require.NoError(t, err)

	assert.Equal(t, "USD", qs.Source)
	assert.Equal(t, time.Unix(1545855246, 0).UTC(), qs.Timestamp)

	rate, ok := qs.Rate("EUR")
	require.True(t, ok)
	assert.Equal(t, 0.8731, rate)

	rate, ok = qs.Rate("JPY")
	require.True(t, ok)
	assert.Equal(t, 110.52, rate)

	_, ok = qs.Rate("GBP")
	assert.False(t, ok, "currency not requested should be absent")
}

func TestClientLiveAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": false,
			"error": {"code": 101, "type": "invalid_access_key",
				"info": "You have not supplied a valid API Access Key."}
		}`))
	})

	_, err := client.Live(context.Background(), []string{"EUR"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 101, apiErr.Code)
	assert.Equal(t, "invalid_access_key", apiErr.Type)
}

func TestClientLiveHTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	})

	_, err := client.Live(context.Background(), []string{"EUR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestClientList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/list", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"currencies": {"EUR": "Euro", "JPY": "Japanese Yen"}
		}`))
	})

	currencies, err := client.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Euro", currencies["EUR"])
	assert.Len(t, currencies, 2)
}

func TestClientIsHealthy(t *testing.T) {
	healthy, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "currencies": {}}`))
	})
	assert.True(t, healthy.IsHealthy(context.Background()))

	down, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	assert.False(t, down.IsHealthy(context.Background()))
}
