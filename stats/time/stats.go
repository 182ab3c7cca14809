package time

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fsum/fsum"
)

// Stats holds time-domain signal statistics. Sums behind DC and Energy are
// exact and rounded once, so they do not depend on signal length or order.
//
//nolint:revive
type Stats struct {
	Length         int
	DC             float64 // mean
	DC_dB          float64
	RMS            float64
	RMS_dB         float64
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
	Peak           float64 // max(|max|, |min|)
	Peak_dB        float64
	Range          float64 // max - min
	Range_dB       float64
	CrestFactor    float64 // peak / RMS (linear)
	CrestFactor_dB float64
	Energy         float64 // sum of squares
	Power          float64 // energy / length
	ZeroCrossings  int
	Variance       float64
	Skewness       float64
	Kurtosis       float64
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// emptyStats returns a zero-valued Stats with -Inf for all dB fields.
func emptyStats() Stats {
	return Stats{
		DC_dB:          math.Inf(-1),
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		Range_dB:       math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// squares writes x[i]*x[i] into dst, growing it as needed.
func squares(dst, x []float64) []float64 {
	if cap(dst) < len(x) {
		dst = make([]float64, len(x))
	}
	dst = dst[:len(x)]
	vecmath.MulBlock(dst, x, x)

	return dst
}

// Calculate computes all time-domain statistics of signal.
func Calculate(signal []float64) Stats {
	if len(signal) == 0 {
		return emptyStats()
	}

	s := NewStreamingStats()
	s.Update(signal)

	return s.Result()
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return fsum.Sum(signal) / float64(len(signal))
}

// Energy returns the sum of squares of the signal.
func Energy(signal []float64) float64 {
	return fsum.Sum(squares(nil, signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(Energy(signal) / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	peak := math.Abs(signal[0])
	for _, x := range signal[1:] {
		a := math.Abs(x)
		if a > peak {
			peak = a
		}
	}

	return peak
}

// CrestFactor returns the crest factor (peak / RMS) of the signal.
// Returns 0 if RMS is zero.
func CrestFactor(signal []float64) float64 {
	r := RMS(signal)
	if r == 0 {
		return 0
	}

	return Peak(signal) / r
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}

// StreamingStats accumulates time-domain statistics across multiple blocks
// of samples. DC and Energy come from exact sums; the central moments use
// Welford's per-sample update. Both are independent of how the signal is
// split, so the result equals [Calculate] on the concatenated blocks.
type StreamingStats struct {
	n     int
	sum   fsum.Accumulator
	sumSq fsum.Accumulator
	sq    []float64

	// Welford accumulators.
	mean float64
	m2   float64
	m3   float64
	m4   float64

	maxVal        float64
	maxPos        int
	minVal        float64
	minPos        int
	zeroCrossings int
	lastSample    float64
	hasData       bool
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats() *StreamingStats {
	return &StreamingStats{}
}

// Update adds a block of samples to the running statistics.
func (s *StreamingStats) Update(samples []float64) {
	s.sum.AddSlice(samples)

	s.sq = squares(s.sq, samples)
	s.sumSq.AddSlice(s.sq)

	for _, x := range samples {
		pos := s.n
		s.n++
		ni := float64(s.n)

		delta := x - s.mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(pos)

		// M4 must be updated before M3, and M3 before M2.
		s.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
		s.m3 += term1*deltaN*(float64(pos)-1) - 3*deltaN*s.m2
		s.m2 += term1
		s.mean += deltaN

		if !s.hasData {
			s.maxVal, s.maxPos = x, pos
			s.minVal, s.minPos = x, pos
			s.lastSample = x
			s.hasData = true

			continue
		}

		if x > s.maxVal {
			s.maxVal, s.maxPos = x, pos
		}

		if x < s.minVal {
			s.minVal, s.minPos = x, pos
		}

		if s.lastSample*x < 0 {
			s.zeroCrossings++
		}

		s.lastSample = x
	}
}

// Result computes the final statistics from accumulated data.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return emptyStats()
	}

	nf := float64(s.n)
	mean := s.sum.Result() / nf
	energy := s.sumSq.Result()
	rms := math.Sqrt(energy / nf)
	peak := math.Max(math.Abs(s.maxVal), math.Abs(s.minVal))
	rangeVal := s.maxVal - s.minVal

	var crest, crestdB float64
	if rms != 0 {
		crest = peak / rms
		crestdB = ampTodB(crest)
	}

	variance := s.m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (s.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (s.m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:         s.n,
		DC:             mean,
		DC_dB:          ampTodB(mean),
		RMS:            rms,
		RMS_dB:         ampTodB(rms),
		Max:            s.maxVal,
		MaxPos:         s.maxPos,
		Min:            s.minVal,
		MinPos:         s.minPos,
		Peak:           peak,
		Peak_dB:        ampTodB(peak),
		Range:          rangeVal,
		Range_dB:       ampTodB(rangeVal),
		CrestFactor:    crest,
		CrestFactor_dB: crestdB,
		Energy:         energy,
		Power:          energy / nf,
		ZeroCrossings:  s.zeroCrossings,
		Variance:       variance,
		Skewness:       skewness,
		Kurtosis:       kurtosis,
	}
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStats) Reset() {
	s.sum.Reset()
	s.sumSq.Reset()
	*s = StreamingStats{sum: s.sum, sumSq: s.sumSq, sq: s.sq[:0]}
}
