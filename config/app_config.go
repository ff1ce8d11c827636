package config

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Log configures the console logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"currency-monitor"`
}

// CurrencyLayer configures the rate source client. The access key is the
// one issued with a CurrencyLayer account; CL_KEY is honored as a legacy
// fallback variable name.
type CurrencyLayer struct {
	AccessKey   string        `envconfig:"ACCESS_KEY"`
	BaseURL     string        `envconfig:"BASE_URL" default:"http://apilayer.net/api"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// Monitor configures basket, cadence and delta reporting.
type Monitor struct {
	Basket    string        `envconfig:"BASKET" default:"EUR,GBP,CNY,CAD,AUD,JPY"`
	Interval  time.Duration `envconfig:"INTERVAL" default:"1h"`
	Spread    float64       `envconfig:"SPREAD" default:"1.0"`
	Freshness time.Duration `envconfig:"FRESHNESS" default:"24h"`
}

// Store selects and configures the snapshot store backend.
type Store struct {
	Backend     string `envconfig:"BACKEND" default:"memory"`
	RedisURL    string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	KeyPrefix   string `envconfig:"KEY_PREFIX" default:"currency:snapshot:"`
}

// Server configures the web variant.
type Server struct {
	Host string `envconfig:"HOST" default:""`
	Port int    `envconfig:"PORT" default:"3000"`
}

// AppConfig is the process-wide configuration, loaded once at start and
// passed explicitly to each component.
type AppConfig struct {
	Env           string        `envconfig:"APP_ENV" default:"development"`
	Log           Log           `envconfig:"LOG"`
	CurrencyLayer CurrencyLayer `envconfig:"CURRENCYLAYER"`
	Monitor       Monitor       `envconfig:"MONITOR"`
	Store         Store         `envconfig:"STORE"`
	Server        Server        `envconfig:"SERVER"`
}

// ErrMissingAccessKey is returned when neither CURRENCYLAYER_ACCESS_KEY
// nor CL_KEY is set.
var ErrMissingAccessKey = errors.New("currencylayer access key is not set (export CL_KEY=<key>)")

func maskAccessKey(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}

// LoadAppConfig loads configuration from an optional .env file and the
// process environment.
func LoadAppConfig(logger *slog.Logger, envFilePath ...string) (*AppConfig, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}

	if err != nil {
		logger.Warn("No .env file found or specified, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.CurrencyLayer.AccessKey == "" {
		cfg.CurrencyLayer.AccessKey = os.Getenv("CL_KEY")
	}
	if cfg.CurrencyLayer.AccessKey == "" {
		return nil, ErrMissingAccessKey
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"basket", cfg.Monitor.Basket,
		"interval", cfg.Monitor.Interval,
		"spread", cfg.Monitor.Spread,
		"freshness", cfg.Monitor.Freshness,
		"store_backend", cfg.Store.Backend,
		"currencylayer_base_url", cfg.CurrencyLayer.BaseURL,
		"currencylayer_access_key", maskAccessKey(cfg.CurrencyLayer.AccessKey),
	)
	return &cfg, nil
}
