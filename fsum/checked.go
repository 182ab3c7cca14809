package fsum

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for inputs outside the domain of [Sum].
var ErrInvalidInput = errors.New("fsum: invalid input")

// InputError reports the first value rejected by [SumChecked].
type InputError struct {
	Index int
	Value float64
}

func (e *InputError) Error() string {
	return fmt.Sprintf("fsum: invalid input %v at index %d", e.Value, e.Index)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// SumChecked is like [Sum] but rejects NaN and infinite values with an
// [*InputError]. Negative zero is accepted.
//
// An overflowing sum is not an error: the result is ±Inf.
func SumChecked(values []float64) (float64, error) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, &InputError{Index: i, Value: v}
		}
	}

	return Sum(values), nil
}

// SumIEEE sums values with IEEE 754 semantics for special inputs:
//   - NaN if any value is NaN, or if both +Inf and -Inf are present
//   - ±Inf if infinities of a single sign are present
//   - -0 if every value is -0
//
// Otherwise the result is that of [Sum]. An empty slice yields +0.
func SumIEEE(values []float64) float64 {
	var (
		a          Accumulator
		nan        bool
		posInf     bool
		negInf     bool
		allNegZero = len(values) > 0
	)

	for _, v := range values {
		switch {
		case math.IsNaN(v):
			nan = true
		case math.IsInf(v, 1):
			posInf = true
		case math.IsInf(v, -1):
			negInf = true
		default:
			if v != 0 || !math.Signbit(v) {
				allNegZero = false
			}

			if !nan && !posInf && !negInf {
				a.Add(v)
			}
		}
	}

	switch {
	case nan, posInf && negInf:
		return math.NaN()
	case posInf:
		return math.Inf(1)
	case negInf:
		return math.Inf(-1)
	case allNegZero:
		return math.Copysign(0, -1)
	}

	return finalize(a.partials, a.overflow)
}
