// Package delta computes percentage change between a stored baseline rate
// and a freshly fetched rate, classified against a spread threshold.
package delta

import (
	"math"

	"github.com/mikeoc61/currency-monitor/pkg/domain"
)

// Compute returns the percent change from prev to cur and its direction.
// Spread is the minimum percentage move (in percent, e.g. 0.1 for 0.1%)
// required before a change is reported as Up or Down; anything inside the
// band is Unchanged.
//
// prev must be positive; a non-positive baseline yields no delta
// (0, Unchanged), matching the first-run behavior where a freshly added
// currency has no usable baseline yet.
func Compute(prev, cur, spread float64) (float64, domain.Direction) {
	if prev <= 0 || math.IsNaN(prev) || math.IsInf(prev, 0) {
		return 0, domain.Unchanged
	}

	change := (cur - prev) / prev * 100

	switch {
	case change > spread:
		return change, domain.Up
	case change < -spread:
		return change, domain.Down
	default:
		return change, domain.Unchanged
	}
}

// Spread-adjusted prices bracket a quoted rate with the cost of buying and
// selling the foreign currency. spread is in percent, as above.

// AdjustedInverse returns the USD-per-foreign price including spread.
func AdjustedInverse(rate, spread float64) float64 {
	if rate == 0 {
		return 0
	}
	return (1 / rate) * (1 + spread/100)
}

// AdjustedRate returns the foreign-per-USD price including spread.
func AdjustedRate(rate, spread float64) float64 {
	return rate * (1 / (1 + spread/100))
}
