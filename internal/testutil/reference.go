package testutil

import "math/big"

// exactPrec covers the full binary64 range (2^-1074 up to 2^1024) plus
// headroom for the carries of very long inputs.
const exactPrec = 4096

// ExactSum adds values in arbitrary precision and rounds the result once to
// the nearest float64, ties to even. Magnitudes at or past the rounding
// boundary above MaxFloat64 yield ±Inf. Values must be finite.
func ExactSum(values []float64) float64 {
	acc := new(big.Float).SetPrec(exactPrec)
	term := new(big.Float).SetPrec(exactPrec)

	for _, v := range values {
		term.SetFloat64(v)
		acc.Add(acc, term)
	}

	f, _ := acc.Float64()
	if f == 0 {
		// big.Float keeps the sign of an exact zero sum of negative zeros;
		// the exact sum of finite values is +0.
		return 0
	}

	return f
}
