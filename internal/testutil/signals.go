package testutil

import (
	"math"
	"math/rand"
)

// FullRange returns n finite float64 values drawn uniformly over bit
// patterns, so every exponent from subnormals up to MaxFloat64 is equally
// likely. NaN, infinities and negative zero are skipped.
func FullRange(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, 0, n)

	for len(out) < n {
		v := math.Float64frombits(rng.Uint64())
		if math.IsNaN(v) || math.IsInf(v, 0) || (v == 0 && math.Signbit(v)) {
			continue
		}
		out = append(out, v)
	}

	return out
}

// Spread returns n values with random sign, random 52-bit mantissa and a
// binary exponent drawn uniformly from [minExp, maxExp].
func Spread(seed int64, n, minExp, maxExp int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)

	for i := range out {
		frac := 1 + float64(rng.Int63n(1<<52))/(1<<52)
		exp := minExp + rng.Intn(maxExp-minExp+1)
		v := math.Ldexp(frac, exp)
		if rng.Intn(2) == 0 {
			v = -v
		}
		out[i] = v
	}

	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// Shuffled returns a copy of values in a seeded random order.
func Shuffled(seed int64, values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}
