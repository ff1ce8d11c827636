package domain

import "errors"

var (
	// ErrInvalidCurrencyCode indicates a basket entry that is not a known
	// 3-letter currency code.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	// ErrEmptyBasket indicates a basket with no valid currency codes.
	ErrEmptyBasket = errors.New("basket contains no valid currency codes")
)
