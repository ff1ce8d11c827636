package delta

import (
	"testing"

	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name         string
		prev         float64
		cur          float64
		spread       float64
		expectedPct  float64
		expectedDir  domain.Direction
		pctTolerance float64
	}{
		{
			name:         "small rise above spread",
			prev:         1.1000,
			cur:          1.1050,
			spread:       0.1,
			expectedPct:  0.4545,
			expectedDir:  domain.Up,
			pctTolerance: 0.0001,
		},
		{
			name:         "fall below negative spread",
			prev:         110.50,
			cur:          109.00,
			spread:       0.5,
			expectedPct:  -1.3575,
			expectedDir:  domain.Down,
			pctTolerance: 0.0001,
		},
		{
			name:         "move inside spread band is unchanged",
			prev:         1.3000,
			cur:          1.3005,
			spread:       0.1,
			expectedPct:  0.0385,
			expectedDir:  domain.Unchanged,
			pctTolerance: 0.0001,
		},
		{
			name:        "identical rates",
			prev:        6.8765,
			cur:         6.8765,
			spread:      0.1,
			expectedPct: 0,
			expectedDir: domain.Unchanged,
		},
		{
			name:        "change exactly at spread is unchanged",
			prev:        100,
			cur:         100.1,
			spread:      0.1,
			expectedPct: 0.1,
			expectedDir: domain.Unchanged,
		},
		{
			name:        "zero baseline yields no delta",
			prev:        0,
			cur:         1.25,
			spread:      0.1,
			expectedPct: 0,
			expectedDir: domain.Unchanged,
		},
		{
			name:        "negative baseline yields no delta",
			prev:        -3,
			cur:         1.25,
			spread:      0.1,
			expectedPct: 0,
			expectedDir: domain.Unchanged,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, dir := Compute(tt.prev, tt.cur, tt.spread)
			assert.Equal(t, tt.expectedDir, dir)
			if tt.pctTolerance > 0 {
				assert.InDelta(t, tt.expectedPct, pct, tt.pctTolerance)
			} else {
				assert.Equal(t, tt.expectedPct, pct)
			}
		})
	}
}

func TestAdjustedPrices(t *testing.T) {
	// 1% spread on a 1.25 foreign-per-USD quote
	assert.InDelta(t, (1/1.25)*1.01, AdjustedInverse(1.25, 1.0), 1e-9)
	assert.InDelta(t, 1.25/1.01, AdjustedRate(1.25, 1.0), 1e-9)

	// zero rate guards against division by zero
	assert.Equal(t, 0.0, AdjustedInverse(0, 1.0))
}
