package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/mikeoc61/currency-monitor/pkg/snapshot"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements snapshot.Store on Redis. Records are JSON values
// keyed by prefix+code with no TTL; freshness is decided by the monitor
// against the record's own timestamp, not by key expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore creates a snapshot store from a Redis URL such as
// redis://localhost:6379/0.
func NewRedisStore(redisURL, prefix string, logger *slog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStore{
		client: redis.NewClient(opt),
		prefix: prefix,
		logger: logger,
	}, nil
}

// NewRedisStoreWithClient wraps an existing client, used by tests.
func NewRedisStoreWithClient(client *redis.Client, prefix string, logger *slog.Logger) *RedisStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStore{client: client, prefix: prefix, logger: logger}
}

func (r *RedisStore) key(code string) string {
	return r.prefix + code
}

// Get returns the snapshot for a currency code, or nil if absent.
func (r *RedisStore) Get(ctx context.Context, code string) (*domain.Snapshot, error) {
	val, err := r.client.Get(ctx, r.key(code)).Result()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Snapshot miss", "currency", code)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Snapshot get error", "currency", code, "error", err)
		return nil, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		r.logger.Error("Snapshot unmarshal error", "currency", code, "error", err)
		return nil, err
	}
	return &snap, nil
}

// Put writes or replaces the snapshot for snap.Currency.
func (r *RedisStore) Put(ctx context.Context, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		r.logger.Error("Snapshot marshal error", "currency", snap.Currency, "error", err)
		return err
	}
	if err := r.client.Set(ctx, r.key(snap.Currency), data, 0).Err(); err != nil {
		r.logger.Error("Snapshot set error", "currency", snap.Currency, "error", err)
		return err
	}
	r.logger.Debug("Snapshot stored",
		"currency", snap.Currency, "rate", snap.Rate, "recorded_at", snap.RecordedAt)
	return nil
}

// PutAll bulk-writes snapshots in a single pipeline round trip.
func (r *RedisStore) PutAll(ctx context.Context, snaps []domain.Snapshot) error {
	pipe := r.client.Pipeline()
	for _, snap := range snaps {
		data, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		pipe.Set(ctx, r.key(snap.Currency), data, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Snapshot bulk write error", "count", len(snaps), "error", err)
		return err
	}
	r.logger.Info("Snapshots seeded", "count", len(snaps))
	return nil
}

var _ snapshot.Store = (*RedisStore)(nil)
