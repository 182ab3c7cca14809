package testutil

import (
	"math"
	"testing"
)

func TestExactSum(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
		want float64
	}{
		{name: "empty", x: nil, want: 0},
		{name: "cancellation", x: []float64{1e308, 1, -1e308}, want: 1},
		{name: "tie to even down", x: []float64{1, 0x1p-53}, want: 1},
		{name: "tie to even up", x: []float64{1 + 0x1p-52, 0x1p-53}, want: 1 + 0x1p-51},
		{name: "past tie", x: []float64{1, 0x1p-53, 0x1p-1074}, want: 1 + 0x1p-52},
		{name: "overflow", x: []float64{math.MaxFloat64, math.MaxFloat64}, want: math.Inf(1)},
		{name: "midpoint above max", x: []float64{math.MaxFloat64, 0x1p970}, want: math.Inf(1)},
		{name: "below midpoint", x: []float64{math.MaxFloat64, 0x1p970, -0x1p-1074}, want: math.MaxFloat64},
		{name: "negative zeros", x: []float64{math.Copysign(0, -1), math.Copysign(0, -1)}, want: 0},
		{name: "subnormals", x: []float64{0x1p-1074, 0x1p-1074}, want: 0x1p-1073},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			RequireSameFloat(t, ExactSum(tc.x), tc.want)
		})
	}
}
