package fsum

import "math"

// Accumulator folds float64 values into an exact running sum.
//
// The exact value represented is the sum of the partials plus
// overflow × 2^1024. The zero value is an empty accumulator ready for use.
// An Accumulator must not be used from multiple goroutines concurrently.
type Accumulator struct {
	// partials are non-overlapping and non-zero. Later entries were produced
	// by later combinations and carry the larger magnitudes.
	partials []float64
	overflow int

	// scratch is reused by Result so that reading the sum leaves the
	// partials untouched.
	scratch []float64
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add folds v into the running sum. v must be finite.
func (a *Accumulator) Add(v float64) {
	x := v
	used := 0

	for _, y := range a.partials {
		x, y = ordered(x, y)
		hi, lo := twoSum(x, y)

		if math.IsInf(hi, 0) {
			// Move one unit of 2^1024 into the counter. The shift is applied
			// as two halves since 2^1024 itself is not representable.
			shift := math.Copysign(twoPow1023, hi)
			if hi > 0 {
				a.overflow++
			} else {
				a.overflow--
			}

			x = float64(float64(x-shift) - shift)
			x, y = ordered(x, y)
			hi, lo = twoSum(x, y)
		}

		if lo != 0 {
			a.partials[used] = lo
			used++
		}

		x = hi
	}

	a.partials = a.partials[:used]
	if x != 0 {
		a.partials = append(a.partials, x)
	}
}

// AddSlice folds every element of values into the running sum, in order.
func (a *Accumulator) AddSlice(values []float64) {
	for _, v := range values {
		a.Add(v)
	}
}

// Result returns the correctly-rounded sum of all values added so far.
// It does not modify the accumulated state, so more values may be added
// afterwards.
func (a *Accumulator) Result() float64 {
	a.scratch = append(a.scratch[:0], a.partials...)

	return finalize(a.scratch, a.overflow)
}

// Reset clears the accumulator for reuse, keeping its allocated storage.
func (a *Accumulator) Reset() {
	a.partials = a.partials[:0]
	a.overflow = 0
}

// Len returns the number of partials currently held.
func (a *Accumulator) Len() int {
	return len(a.partials)
}

// Overflow returns the signed number of 2^1024 units held outside the
// partials.
func (a *Accumulator) Overflow() int {
	return a.overflow
}

// Partials returns a copy of the current partials, smallest combination
// first.
func (a *Accumulator) Partials() []float64 {
	out := make([]float64, len(a.partials))
	copy(out, a.partials)

	return out
}

// finalize collapses p and the overflow count into the nearest float64.
// p is used as working storage and is clobbered.
func finalize(p []float64, overflow int) float64 {
	n := len(p) - 1

	var hi, lo float64

	if overflow != 0 {
		var next float64
		if n >= 0 {
			next = p[n]
			n--
		}

		// Two or more units, or one unit pushed further out by the largest
		// partial, is beyond any finite rounding.
		if overflow > 1 || overflow < -1 ||
			(overflow > 0 && next > 0) || (overflow < 0 && next < 0) {
			return math.Inf(overflow)
		}

		// Exactly one unit, reduced by next. Work at half scale so the
		// arithmetic stays finite.
		hi, lo = twoSum(float64(overflow)*twoPow1023, next/2)
		lo *= 2

		if math.IsInf(2*hi, 0) {
			return roundAtMax(hi, lo, p[:n+1])
		}

		if lo != 0 {
			n++
			p[n] = lo
			lo = 0
		}

		hi *= 2
	}

	// Add partials from the largest down until a rounding error shows up;
	// anything below it can only matter for a half-way tie.
	for n >= 0 {
		x, y := hi, p[n]
		n--

		hi, lo = twoSum(x, y)
		if lo != 0 {
			break
		}
	}

	// lo may be exactly half an ulp of hi. If the remaining partials push in
	// the same direction the true sum lies past the half-way point, so round
	// away from hi instead of trusting the tie-to-even choice.
	if n >= 0 && ((lo < 0 && p[n] < 0) || (lo > 0 && p[n] > 0)) {
		y := float64(lo * 2)
		x := float64(hi + y)

		if float64(x-hi) == y {
			hi = x
		}
	}

	return hi
}

// roundAtMax resolves a sum within half an overflow unit of 2^1024, given as
// 2*hi + lo with |hi| == 2^1023. The only finite outcome is ±MaxFloat64, when
// the sum sits exactly half an ulp above MaxFloat64 and the remaining
// partials pull it back below that midpoint.
func roundAtMax(hi, lo float64, rest []float64) float64 {
	n := len(rest) - 1

	if hi > 0 {
		if hi == twoPow1023 && lo == -maxULP/2 && n >= 0 && rest[n] < 0 {
			return math.MaxFloat64
		}

		return math.Inf(1)
	}

	if hi == -twoPow1023 && lo == maxULP/2 && n >= 0 && rest[n] > 0 {
		return -math.MaxFloat64
	}

	return math.Inf(-1)
}
