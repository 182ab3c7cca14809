package fsum

import "iter"

// Sum returns the float64 nearest to the exact sum of values, with ties
// rounded to even. It returns +0 for an empty slice and ±Inf when the exact
// sum rounds beyond the finite range.
//
// All values must be finite; see [SumChecked] and [SumIEEE] for inputs that
// may contain NaN or infinities.
func Sum(values []float64) float64 {
	var a Accumulator
	a.AddSlice(values)

	return finalize(a.partials, a.overflow)
}

// SumSeq is like [Sum] but consumes an iterator.
func SumSeq(seq iter.Seq[float64]) float64 {
	var a Accumulator
	for v := range seq {
		a.Add(v)
	}

	return finalize(a.partials, a.overflow)
}
