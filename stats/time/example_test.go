package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-fsum/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f peak=%.1f\n", s.RMS, s.Peak)

	// Output:
	// rms=1.0 peak=1.0
}

func ExampleStreamingStats() {
	s := timestats.NewStreamingStats()
	s.Update([]float64{1e16, 1})
	s.Update([]float64{-1e16, 1})
	m := s.Result()
	fmt.Printf("len=%d dc=%.2f\n", m.Length, m.DC)

	// Output:
	// len=4 dc=0.50
}
