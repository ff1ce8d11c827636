package domain

import "time"

// Quote is a single exchange rate quoted against the US dollar, expressed
// as foreign currency units per USD. Immutable once fetched.
type Quote struct {
	Currency  string    // 3-letter code, e.g. "EUR"
	Rate      float64   // foreign units per USD
	Timestamp time.Time // source timestamp reported by the rate service
}

// Inverse returns the rate expressed as USD per foreign currency unit.
func (q Quote) Inverse() float64 {
	if q.Rate == 0 {
		return 0
	}
	return 1 / q.Rate
}

// QuoteSet is the result of a single fetch from the rate service: one
// rate per currency plus the single response timestamp they share.
type QuoteSet struct {
	Source    string // base currency, always "USD"
	Timestamp time.Time
	Rates     map[string]float64
}

// Rate looks up the quoted rate for a currency code.
func (qs *QuoteSet) Rate(code string) (float64, bool) {
	r, ok := qs.Rates[code]
	return r, ok
}

// Quote returns the full quote for a currency code.
func (qs *QuoteSet) Quote(code string) (Quote, bool) {
	r, ok := qs.Rates[code]
	if !ok {
		return Quote{}, false
	}
	return Quote{Currency: code, Rate: r, Timestamp: qs.Timestamp}, true
}
