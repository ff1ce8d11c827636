package currency

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	desc, ok := Describe("EUR")
	assert.True(t, ok)
	assert.Equal(t, "Euro", desc)

	_, ok = Describe("XXX")
	assert.False(t, ok)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("USD"))
	assert.True(t, IsSupported("BTC"))
	assert.False(t, IsSupported("usd"), "catalog is uppercase only")
	assert.False(t, IsSupported(""))
}

func TestCodes(t *testing.T) {
	codes := Codes()
	assert.Equal(t, Count(), len(codes))
	assert.True(t, sort.StringsAreSorted(codes))
	assert.Contains(t, codes, "JPY")
}

func TestQuoteUSDFirst(t *testing.T) {
	assert.True(t, QuoteUSDFirst("EUR"))
	assert.True(t, QuoteUSDFirst("GBP"))
	assert.False(t, QuoteUSDFirst("JPY"))
}
