package fsum

import "math"

const (
	// twoPow1023 is half of one overflow unit.
	twoPow1023 = 0x1p1023

	// maxULP is the spacing between math.MaxFloat64 and its predecessor.
	maxULP = 0x1p971
)

// twoSum returns hi = fl(x+y) and the rounding error lo, so that hi+lo == x+y
// exactly whenever hi is finite. Requires |x| >= |y|.
//
// The explicit conversions keep the compiler from fusing the expression.
func twoSum(x, y float64) (hi, lo float64) {
	hi = float64(x + y)
	lo = float64(y - float64(hi-x))

	return hi, lo
}

// ordered returns x and y swapped if needed so that |a| >= |b|.
func ordered(x, y float64) (a, b float64) {
	if math.Abs(x) < math.Abs(y) {
		return y, x
	}

	return x, y
}
