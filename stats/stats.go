// Package stats keeps running statistics over many solved boards.
package stats

import "math"

const Epsilon = 1e-6

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic accumulates a mean and variance one value at a time
// (Welford's algorithm), along with the extremes seen.
type Statistic struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	if s.n == 1 {
		s.min, s.max = val, val
	} else {
		s.min = math.Min(s.min, val)
		s.max = math.Max(s.max, val)
	}
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

// Variance is the sample variance.
func (s *Statistic) Variance() float64 {
	if s.n <= 1 {
		return 0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) StandardError() float64 {
	if s.n == 0 {
		return 0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}

func (s *Statistic) Count() int {
	return s.n
}

// ConfidenceInterval returns the half-width of the interval around the mean
// at the given confidence, in percent (e.g. 95).
func (s *Statistic) ConfidenceInterval(pct float64) float64 {
	return ZVal(pct) * s.StandardError()
}
