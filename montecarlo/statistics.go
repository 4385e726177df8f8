package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the sample mean, sample standard deviation, 95%
// confidence interval and range of samples.
//
//   - Empty input: every field is NaN.
//   - One sample: Mean, Min and Max are that sample; StdDev and the
//     confidence bounds are NaN.
//
// Complexity: O(len(samples)).
func Summarize(samples []float64) Summary {
	nan := math.NaN()
	if len(samples) == 0 {
		return Summary{Mean: nan, StdDev: nan, ConfidenceLo: nan, ConfidenceHi: nan, Min: nan, Max: nan}
	}

	s := Summary{
		Mean:   stat.Mean(samples, nil),
		StdDev: nan,
		Min:    floats.Min(samples),
		Max:    floats.Max(samples),
	}
	if len(samples) > 1 {
		s.StdDev = stat.StdDev(samples, nil)
	}
	half := confidenceZ * s.StdDev / math.Sqrt(float64(len(samples)))
	s.ConfidenceLo = s.Mean - half
	s.ConfidenceHi = s.Mean + half

	return s
}
