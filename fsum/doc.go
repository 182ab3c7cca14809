// Package fsum computes correctly-rounded sums of float64 values.
//
// The result of [Sum] is the float64 nearest (ties-to-even) to the exact
// mathematical sum of its inputs, as if the addition were carried out with
// unbounded precision and rounded once at the end. Sums whose exact value
// rounds past [math.MaxFloat64] return ±Inf.
//
// # Algorithm
//
// Each input is folded into a list of non-overlapping partials using an
// error-free two-sum transform, so no information is lost during
// accumulation. When an intermediate sum overflows, one unit of 2^1024 is
// moved into an integer overflow counter and the running value is rescaled
// back into the finite range. A final pass collapses the partials from the
// largest down and resolves the half-way cases that decide ties-to-even.
//
// The number of partials is bounded by the binary64 exponent range, not by
// the input length.
//
// # Usage
//
//	s := fsum.Sum([]float64{1e308, 1, -1e308}) // 1
//
// For streaming input, fold values into an [Accumulator]:
//
//	acc := fsum.NewAccumulator()
//	for _, block := range blocks {
//		acc.AddSlice(block)
//	}
//	total := acc.Result()
//
// # Input domain
//
// [Sum] and [Accumulator] assume finite, non-NaN inputs. [SumChecked] rejects
// NaN and ±Inf with [ErrInvalidInput]; [SumIEEE] gives them the usual IEEE 754
// meaning instead.
package fsum
