// Package snapshot defines the persistent store for last-recorded rates.
package snapshot

import (
	"context"

	"github.com/mikeoc61/currency-monitor/pkg/domain"
)

// Store persists one snapshot record per tracked currency. A missing
// record is reported as (nil, nil), not an error; errors indicate the
// store itself is unavailable.
//
// A single invocation is assumed exclusive; implementations do not
// coordinate concurrent writers.
type Store interface {
	// Get returns the snapshot for a currency code, or nil if absent.
	Get(ctx context.Context, code string) (*domain.Snapshot, error)
	// Put writes or replaces the snapshot for snap.Currency.
	Put(ctx context.Context, snap domain.Snapshot) error
	// PutAll bulk-writes snapshots, used to seed the store.
	PutAll(ctx context.Context, snaps []domain.Snapshot) error
}
