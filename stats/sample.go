// Package stats contains an ordered container for scalar samples and the
// moment statistics computed from it.
package stats

import (
	"errors"
	"fmt"
	"math"
)

// MinStatisticsSize is the smallest sample for which the bias-corrected
// skewness and kurtosis estimators are defined.
const MinStatisticsSize = 4

var ErrNotEnoughPoints = errors.New("not enough points")

// Statistics holds the first four sample moments. Kurtosis is the excess
// kurtosis.
type Statistics struct {
	Mean, Sigma, Skewness, Kurtosis float64
}

// Sample is an insertion-ordered sequence of values.
type Sample struct {
	values []float64
}

// NewSample returns a Sample holding a copy of xs.
func NewSample(xs ...float64) *Sample {
	s := &Sample{}
	s.Append(xs...)
	return s
}

// Append adds values to the end of the sample.
func (s *Sample) Append(xs ...float64) {
	s.values = append(s.values, xs...)
}

// Size returns the number of stored values.
func (s *Sample) Size() int { return len(s.values) }

// Values returns the stored values in insertion order. The slice is owned by
// the Sample and must not be modified.
func (s *Sample) Values() []float64 { return s.values }

// Clear removes every value.
func (s *Sample) Clear() { s.values = s.values[:0] }

// Merge appends every value of other to s.
func (s *Sample) Merge(other *Sample) {
	s.values = append(s.values, other.values...)
}

// Statistics computes the mean, the Bessel-corrected standard deviation and
// the bias-corrected (G1, G2) skewness and excess kurtosis of the sample.
func (s *Sample) Statistics() (Statistics, error) {
	n := len(s.values)
	if n < MinStatisticsSize {
		return Statistics{}, fmt.Errorf(
			"%w: need at least %d values, have %d",
			ErrNotEnoughPoints, MinStatisticsSize, n,
		)
	}

	sum, sum2 := 0.0, 0.0
	lo, hi := s.values[0], s.values[0]
	for _, x := range s.values {
		sum += x
		sum2 += x * x
		if x < lo {
			lo = x
		} else if x > hi {
			hi = x
		}
	}

	// Rounding in sum2 would leave noise in every moment.
	if lo == hi {
		return Statistics{Mean: lo}, nil
	}

	N := float64(n)
	mean := sum / N

	num := sum2 - N*mean*mean
	if num <= 0 {
		return Statistics{Mean: mean}, nil
	}
	sigma := math.Sqrt(num / (N - 1))

	var z2, z3, z4 KahanSum
	for _, x := range s.values {
		z := (x - mean) / sigma
		zz := z * z
		z2.Add(zz)
		z3.Add(zz * z)
		z4.Add(zz * zz)
	}

	skew := N / ((N - 1) * (N - 2)) * z3.Sum
	kurt := N*(N+1)/((N-1)*(N-2)*(N-3))*z4.Sum -
		3*(N-1)*(N-1)/((N-2)*(N-3))

	return Statistics{mean, sigma, skew, kurt}, nil
}
