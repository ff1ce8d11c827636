// Package monitor ties the rate source, snapshot store and delta
// calculator together: one fetch, one store read and at most one
// conditional store write per tracked currency per invocation.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mikeoc61/currency-monitor/pkg/basket"
	"github.com/mikeoc61/currency-monitor/pkg/currency"
	"github.com/mikeoc61/currency-monitor/pkg/delta"
	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/mikeoc61/currency-monitor/pkg/provider"
	"github.com/mikeoc61/currency-monitor/pkg/snapshot"
)

// DefaultFreshness is the window inside which a stored snapshot is kept
// as the comparison baseline instead of being replaced.
const DefaultFreshness = 24 * time.Hour

// Result is one completed monitoring pass over a basket.
type Result struct {
	FetchedAt time.Time // response timestamp reported by the rate source
	Deltas    []domain.Delta
}

// Service runs monitoring passes.
type Service struct {
	source    provider.RateSource
	store     snapshot.Store
	logger    *slog.Logger
	freshness time.Duration
}

// New creates a monitor service. A non-positive freshness falls back to
// DefaultFreshness.
func New(
	source provider.RateSource,
	store snapshot.Store,
	logger *slog.Logger,
	freshness time.Duration,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return &Service{
		source:    source,
		store:     store,
		logger:    logger,
		freshness: freshness,
	}
}

// Check fetches current rates for the basket and compares each against
// its stored snapshot. Spread is the minimum percentage move reported as
// a direction change.
//
// Snapshot records are written only when absent or older than the
// freshness window; deltas are always computed against the record read
// at the start of the pass, never against the fetch that replaces it.
func (s *Service) Check(ctx context.Context, b *basket.Basket, spread float64) (*Result, error) {
	quotes, err := s.source.Live(ctx, b.Codes())
	if err != nil {
		return nil, fmt.Errorf("fetching rates from %s: %w", s.source.Name(), err)
	}

	deltas := make([]domain.Delta, 0, b.Len())
	for _, code := range b.Codes() {
		d, err := s.checkOne(ctx, quotes, code, spread)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, d)
	}

	return &Result{FetchedAt: quotes.Timestamp, Deltas: deltas}, nil
}

func (s *Service) checkOne(
	ctx context.Context,
	quotes *domain.QuoteSet,
	code string,
	spread float64,
) (domain.Delta, error) {
	d := domain.Delta{Currency: code}
	if desc, ok := currency.Describe(code); ok {
		d.Description = desc
	} else {
		d.Description = code
	}

	rate, ok := quotes.Rate(code)
	if !ok {
		s.logger.Warn("Currency missing from fetch result", "currency", code)
		d.Unavailable = true
		return d, nil
	}
	d.Rate = rate

	prev, err := s.store.Get(ctx, code)
	if err != nil {
		return d, fmt.Errorf("reading snapshot for %s: %w", code, err)
	}

	if prev == nil {
		// First sighting: record a baseline, render the rate without a
		// delta indicator.
		d.FirstSeen = true
		if err := s.writeSnapshot(ctx, code, rate, quotes.Timestamp); err != nil {
			return d, err
		}
		return d, nil
	}

	d.ChangePct, d.Direction = delta.Compute(prev.Rate, rate, spread)
	d.Since = prev.RecordedAt

	if prev.Stale(quotes.Timestamp, s.freshness) {
		s.logger.Info("Snapshot stale, replacing baseline",
			"currency", code, "age", prev.Age(quotes.Timestamp), "freshness", s.freshness)
		if err := s.writeSnapshot(ctx, code, rate, quotes.Timestamp); err != nil {
			return d, err
		}
	}
	return d, nil
}

func (s *Service) writeSnapshot(ctx context.Context, code string, rate float64, ts time.Time) error {
	err := s.store.Put(ctx, domain.Snapshot{
		Currency:   code,
		Rate:       rate,
		RecordedAt: ts,
	})
	if err != nil {
		return fmt.Errorf("writing snapshot for %s: %w", code, err)
	}
	return nil
}

// Seed fetches live quotes for every catalog currency and bulk-writes
// them as snapshot baselines. Run once before the first monitoring pass
// against a persistent store.
func (s *Service) Seed(ctx context.Context) (int, error) {
	quotes, err := s.source.Live(ctx, currency.Codes())
	if err != nil {
		return 0, fmt.Errorf("fetching rates from %s: %w", s.source.Name(), err)
	}

	snaps := make([]domain.Snapshot, 0, len(quotes.Rates))
	for code, rate := range quotes.Rates {
		snaps = append(snaps, domain.Snapshot{
			Currency:   code,
			Rate:       rate,
			RecordedAt: quotes.Timestamp,
		})
	}

	if err := s.store.PutAll(ctx, snaps); err != nil {
		return 0, fmt.Errorf("seeding snapshots: %w", err)
	}
	s.logger.Info("Snapshot store seeded", "count", len(snaps), "timestamp", quotes.Timestamp)
	return len(snaps), nil
}
