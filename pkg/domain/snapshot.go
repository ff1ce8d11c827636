package domain

import "time"

// Snapshot is the last-recorded rate for a tracked currency, used as the
// comparison baseline when computing day-over-day change. One record per
// currency; mutated in place only when stale or absent.
type Snapshot struct {
	Currency   string    `json:"currency"`
	Rate       float64   `json:"rate"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Age returns how old the snapshot is relative to the given time.
func (s Snapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.RecordedAt)
}

// Stale reports whether the snapshot is older than the freshness window
// relative to the given time.
func (s Snapshot) Stale(now time.Time, window time.Duration) bool {
	return s.Age(now) > window
}
