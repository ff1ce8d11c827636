package basket

import (
	"testing"

	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []string
		expectedErr error
	}{
		{
			name:     "simple list",
			input:    "EUR,GBP,JPY",
			expected: []string{"EUR", "GBP", "JPY"},
		},
		{
			name:     "lowercase and whitespace normalized",
			input:    " eur, gbp ,jpy",
			expected: []string{"EUR", "GBP", "JPY"},
		},
		{
			name:     "duplicates keep first occurrence",
			input:    "EUR,GBP,EUR,JPY,GBP",
			expected: []string{"EUR", "GBP", "JPY"},
		},
		{
			name:     "trailing comma tolerated",
			input:    "EUR,GBP,",
			expected: []string{"EUR", "GBP"},
		},
		{
			name:        "unknown code rejected",
			input:       "EUR,XXX",
			expectedErr: domain.ErrInvalidCurrencyCode,
		},
		{
			name:        "malformed code rejected",
			input:       "EURO",
			expectedErr: domain.ErrInvalidCurrencyCode,
		},
		{
			name:        "empty input",
			input:       "",
			expectedErr: domain.ErrEmptyBasket,
		},
		{
			name:        "only separators",
			input:       ",,,",
			expectedErr: domain.ErrEmptyBasket,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.input)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.Codes())
		})
	}
}

func TestBasketAddAndContains(t *testing.T) {
	b := Default()
	require.Equal(t, DefaultCodes, b.Codes())

	assert.True(t, b.Add("CHF"))
	assert.False(t, b.Add("chf"), "case-insensitive duplicate")
	assert.True(t, b.Contains("CHF"))
	assert.True(t, b.Contains("eur"))
	assert.False(t, b.Contains("ZAR"))
}

func TestBasketString(t *testing.T) {
	b := New("EUR", "GBP", "JPY")
	assert.Equal(t, "EUR,GBP,JPY", b.String())
}
