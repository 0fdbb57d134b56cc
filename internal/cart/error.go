package cart

import "errors"

var (
	// ErrQuotaExceeded means the mutation would push sold + cart
	// quantity past the product's daily cap. The cart is unchanged;
	// the caller reflects remaining availability instead of failing.
	ErrQuotaExceeded = errors.New("daily product quota exceeded")
)
