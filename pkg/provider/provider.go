// Package provider defines the rate source contract implemented by
// exchange-rate services.
package provider

import (
	"context"

	"github.com/mikeoc61/currency-monitor/pkg/domain"
)

// RateSource fetches live exchange rates for a set of currencies, quoted
// against USD.
type RateSource interface {
	// Live issues a single request for the given currency codes and
	// returns one quote per currency plus the response timestamp.
	Live(ctx context.Context, codes []string) (*domain.QuoteSet, error)
	// Name identifies the provider for logging.
	Name() string
	// IsHealthy reports whether the provider is currently reachable.
	IsHealthy(ctx context.Context) bool
}

// CurrencyLister is implemented by providers that can enumerate every
// currency they support with a human-readable description.
type CurrencyLister interface {
	List(ctx context.Context) (map[string]string, error)
}
