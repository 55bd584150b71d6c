package transforms

import "github.com/shopspring/decimal"

// FiniteDecimal is a finite interval endpoint taken from an exact decimal
// value. The value is converted to float64; digits beyond float64 precision
// are rounded.
func FiniteDecimal(d decimal.Decimal) Endpoint {
	return Finite(d.InexactFloat64())
}

// AsDecimal constructs the bounded transform for the open interval (lo, hi)
// given as exact decimals. Both endpoints are converted to float64 before
// dispatch, so the working precision of the resulting transform is float64.
//
// Example:
//
//	t, err := transforms.AsDecimal(decimal.Zero, decimal.NewFromInt(1))
//	if err != nil {
//	    return fmt.Errorf("build probability transform: %w", err)
//	}
func AsDecimal(lo, hi decimal.Decimal, opts ...Option) (Transform, error) {
	return As(FiniteDecimal(lo), FiniteDecimal(hi), opts...)
}
