// Package basket holds the ordered set of currency codes a user tracks.
package basket

import (
	"strings"

	"github.com/mikeoc61/currency-monitor/pkg/currency"
	"github.com/mikeoc61/currency-monitor/pkg/domain"
)

// DefaultCodes is the basket monitored when the user supplies none.
var DefaultCodes = []string{"EUR", "GBP", "CNY", "CAD", "AUD", "JPY"}

// Basket is an ordered, de-duplicated set of 3-letter currency codes.
type Basket struct {
	codes []string
	seen  map[string]struct{}
}

// New returns a basket seeded with the given codes, in order. Invalid and
// duplicate codes are dropped silently; use Parse to surface them.
func New(codes ...string) *Basket {
	b := &Basket{seen: make(map[string]struct{})}
	for _, c := range codes {
		b.Add(c)
	}
	return b
}

// Default returns a basket with the default tracked currencies.
func Default() *Basket {
	return New(DefaultCodes...)
}

// Parse builds a basket from a comma-separated list such as "EUR,GBP,JPY".
// Codes are upper-cased and de-duplicated preserving first occurrence.
// Codes not present in the currency catalog are rejected; an input that
// yields no valid codes is an error.
func Parse(csv string) (*Basket, error) {
	b := New()
	for _, raw := range strings.Split(csv, ",") {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "" {
			continue
		}
		if len(code) != 3 || !currency.IsSupported(code) {
			return nil, domain.ErrInvalidCurrencyCode
		}
		b.Add(code)
	}
	if b.Len() == 0 {
		return nil, domain.ErrEmptyBasket
	}
	return b, nil
}

// Add appends a code to the basket if it is not already tracked.
// Returns true when the code was added.
func (b *Basket) Add(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return false
	}
	if _, dup := b.seen[code]; dup {
		return false
	}
	b.seen[code] = struct{}{}
	b.codes = append(b.codes, code)
	return true
}

// Contains reports whether a code is tracked.
func (b *Basket) Contains(code string) bool {
	_, ok := b.seen[strings.ToUpper(code)]
	return ok
}

// Codes returns the tracked codes in insertion order.
func (b *Basket) Codes() []string {
	out := make([]string, len(b.codes))
	copy(out, b.codes)
	return out
}

// Len returns the number of tracked codes.
func (b *Basket) Len() int {
	return len(b.codes)
}

// String renders the basket as the comma-separated form used in request
// parameters and API queries.
func (b *Basket) String() string {
	return strings.Join(b.codes, ",")
}
