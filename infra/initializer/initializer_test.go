package initializer

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mikeoc61/currency-monitor/config"
	"github.com/mikeoc61/currency-monitor/infra/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSnapshotStoreBackends(t *testing.T) {
	logger := testLogger()

	t.Run("memory is the default", func(t *testing.T) {
		st, err := NewSnapshotStore(&config.AppConfig{}, logger)
		require.NoError(t, err)
		assert.IsType(t, &store.MemoryStore{}, st)
	})

	t.Run("redis", func(t *testing.T) {
		cfg := &config.AppConfig{Store: config.Store{
			Backend:  "redis",
			RedisURL: "redis://localhost:6379/0",
		}}
		st, err := NewSnapshotStore(cfg, logger)
		require.NoError(t, err)
		assert.IsType(t, &store.RedisStore{}, st)
	})

	t.Run("redis with a bad URL", func(t *testing.T) {
		cfg := &config.AppConfig{Store: config.Store{
			Backend:  "redis",
			RedisURL: "not-a-url",
		}}
		_, err := NewSnapshotStore(cfg, logger)
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := &config.AppConfig{Store: config.Store{Backend: "dynamo"}}
		_, err := NewSnapshotStore(cfg, logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dynamo")
	})
}

func TestInitializeDependencies(t *testing.T) {
	cfg := &config.AppConfig{
		CurrencyLayer: config.CurrencyLayer{
			AccessKey: "test-key",
			BaseURL:   "http://apilayer.net/api",
		},
	}
	deps, err := InitializeDependencies(cfg, testLogger())
	require.NoError(t, err)
	assert.NotNil(t, deps.Source)
	assert.NotNil(t, deps.Store)
	assert.NotNil(t, deps.Monitor)
	assert.Equal(t, "currencylayer", deps.Source.Name())
}
