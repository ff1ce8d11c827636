package domain

import "time"

// Direction classifies a rate movement against the spread threshold.
// Rates are quoted as foreign units per USD, so Up means the USD has
// strengthened against the currency and Down means it has weakened.
type Direction int

const (
	Unchanged Direction = iota
	Up
	Down
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unchanged"
	}
}

// Delta is the render-ready comparison of a currency's current rate
// against its stored snapshot.
type Delta struct {
	Currency    string
	Description string
	Rate        float64 // current rate, foreign units per USD
	ChangePct   float64 // percent change vs the snapshot baseline
	Direction   Direction
	Since       time.Time // baseline timestamp the change is measured from
	FirstSeen   bool      // no previous snapshot existed; no delta to show
	Unavailable bool      // currency missing from the fetch result
}

// HasChange reports whether the delta carries a comparable baseline, i.e.
// the row should render a change indicator at all.
func (d Delta) HasChange() bool {
	return !d.FirstSeen && !d.Unavailable
}
