package fsum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fsum/internal/testutil"
)

func TestAccumulatorZeroValue(t *testing.T) {
	var a Accumulator
	testutil.RequireSameFloat(t, a.Result(), 0)
	if a.Len() != 0 || a.Overflow() != 0 {
		t.Fatalf("zero value: Len=%d Overflow=%d", a.Len(), a.Overflow())
	}
}

func TestAccumulatorResultIsRepeatable(t *testing.T) {
	x := testutil.FullRange(21, 300)
	acc := NewAccumulator()

	for i, v := range x {
		acc.Add(v)
		if i%37 != 0 {
			continue
		}
		got := acc.Result()
		want := testutil.ExactSum(x[:i+1])
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Fatalf("after %d values: Result = %s, want %s", i+1, testutil.Hex(got), testutil.Hex(want))
		}
		testutil.RequireSameFloat(t, acc.Result(), got)
	}

	testutil.RequireSameFloat(t, acc.Result(), Sum(x))
}

func TestAccumulatorBlocksMatchSum(t *testing.T) {
	x := testutil.Spread(8, 1000, -300, 300)
	acc := NewAccumulator()
	for start := 0; start < len(x); start += 128 {
		end := min(start+128, len(x))
		acc.AddSlice(x[start:end])
	}
	testutil.RequireSameFloat(t, acc.Result(), Sum(x))
}

func TestAccumulatorReset(t *testing.T) {
	acc := NewAccumulator()
	acc.AddSlice([]float64{maxF, maxF, 1})
	if acc.Overflow() == 0 {
		t.Fatal("expected overflow to be recorded")
	}

	acc.Reset()
	if acc.Len() != 0 || acc.Overflow() != 0 {
		t.Fatalf("after Reset: Len=%d Overflow=%d", acc.Len(), acc.Overflow())
	}
	testutil.RequireSameFloat(t, acc.Result(), 0)

	acc.AddSlice([]float64{1e308, 1, -1e308})
	testutil.RequireSameFloat(t, acc.Result(), 1)
}

func TestAccumulatorOverflowCounter(t *testing.T) {
	acc := NewAccumulator()

	acc.AddSlice([]float64{maxF, maxF})
	if acc.Overflow() != 1 {
		t.Fatalf("Overflow = %d, want 1", acc.Overflow())
	}
	testutil.RequireSameFloat(t, acc.Result(), math.Inf(1))

	acc.Add(-maxF)
	if acc.Overflow() != 1 {
		t.Fatalf("Overflow = %d, want 1", acc.Overflow())
	}
	testutil.RequireSameFloat(t, acc.Result(), maxF)

	acc.Add(-maxF)
	if acc.Overflow() != 0 || acc.Len() != 0 {
		t.Fatalf("Overflow = %d Len = %d, want 0 and 0", acc.Overflow(), acc.Len())
	}
	testutil.RequireSameFloat(t, acc.Result(), 0)
}

func TestAccumulatorPartialsInvariant(t *testing.T) {
	x := testutil.Spread(4, 2000, -900, 900)
	acc := NewAccumulator()

	for _, v := range x {
		acc.Add(v)
	}

	parts := acc.Partials()
	if len(parts) != acc.Len() {
		t.Fatalf("len(Partials()) = %d, Len() = %d", len(parts), acc.Len())
	}
	for i, p := range parts {
		if p == 0 {
			t.Fatalf("partial %d is zero", i)
		}
	}
	for i := 1; i < len(parts); i++ {
		if math.Abs(parts[i]) < math.Abs(parts[i-1]) {
			t.Fatalf("partials not ordered by magnitude at %d: %v then %v", i, parts[i-1], parts[i])
		}
	}

	// The partials carry the exact sum.
	testutil.RequireSameFloat(t, testutil.ExactSum(parts), testutil.ExactSum(x))

	parts[0] = 12345
	if acc.Partials()[0] == 12345 {
		t.Fatal("Partials must return a copy")
	}
}

func TestAccumulatorBoundedPartials(t *testing.T) {
	acc := NewAccumulator()
	for seed := int64(0); seed < 20; seed++ {
		acc.AddSlice(testutil.FullRange(seed, 5000))
		if acc.Len() > 2100 {
			t.Fatalf("Len = %d exceeds the exponent range", acc.Len())
		}
	}
}
