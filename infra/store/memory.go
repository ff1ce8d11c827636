package store

import (
	"context"
	"sync"

	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/mikeoc61/currency-monitor/pkg/snapshot"
)

// MemoryStore implements snapshot.Store with in-process storage. It backs
// the console poller, which only needs baselines for the life of the
// process, and the test suite.
type MemoryStore struct {
	snaps map[string]domain.Snapshot
	mu    sync.RWMutex
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snaps: make(map[string]domain.Snapshot)}
}

// Get returns the snapshot for a currency code, or nil if absent.
func (m *MemoryStore) Get(_ context.Context, code string) (*domain.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap, ok := m.snaps[code]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

// Put writes or replaces the snapshot for snap.Currency.
func (m *MemoryStore) Put(_ context.Context, snap domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snaps[snap.Currency] = snap
	return nil
}

// PutAll bulk-writes snapshots.
func (m *MemoryStore) PutAll(_ context.Context, snaps []domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, snap := range snaps {
		m.snaps[snap.Currency] = snap
	}
	return nil
}

var _ snapshot.Store = (*MemoryStore)(nil)
