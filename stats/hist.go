package stats

import (
	"fmt"
)

// HistInfo describes the binning of a histogram. If Min == Max the range is
// taken from the data.
type HistInfo struct {
	Min, Max float64
	Bins     int
}

// Histogram holds bin centers and the number of values in each bin.
type Histogram struct {
	HistInfo
	Centers []float64
	Counts  []int
}

// NewHistogram bins the values of s. Values outside [Min, Max] are dropped;
// a value equal to Max goes in the last bin.
func NewHistogram(info HistInfo, s *Sample) (*Histogram, error) {
	if info.Bins <= 0 {
		return nil, fmt.Errorf("Histogram needs a positive bin count, got %d",
			info.Bins)
	}

	xs := s.Values()
	if info.Min == info.Max {
		if len(xs) == 0 {
			return nil, fmt.Errorf("Cannot infer histogram range of empty sample")
		}
		info.Min, info.Max = xs[0], xs[0]
		for _, x := range xs {
			if x < info.Min {
				info.Min = x
			}
			if x > info.Max {
				info.Max = x
			}
		}
		if info.Min == info.Max {
			info.Min, info.Max = info.Min-0.5, info.Max+0.5
		}
	} else if info.Min > info.Max {
		return nil, fmt.Errorf("Histogram Min = %g is larger than Max = %g",
			info.Min, info.Max)
	}

	h := &Histogram{
		HistInfo: info,
		Centers:  make([]float64, info.Bins),
		Counts:   make([]int, info.Bins),
	}

	dx := (info.Max - info.Min) / float64(info.Bins)
	for i := range h.Centers {
		h.Centers[i] = info.Min + dx*(float64(i)+0.5)
	}

	for _, x := range xs {
		if x < info.Min || x > info.Max {
			continue
		}
		i := int((x - info.Min) / dx)
		if i >= info.Bins {
			i = info.Bins - 1
		}
		h.Counts[i]++
	}

	return h, nil
}

// Total returns the number of binned values.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// Density returns the counts normalized so that the histogram integrates to
// one.
func (h *Histogram) Density() []float64 {
	out := make([]float64, len(h.Counts))
	n := h.Total()
	if n == 0 {
		return out
	}
	dx := (h.Max - h.Min) / float64(h.Bins)
	for i, c := range h.Counts {
		out[i] = float64(c) / (float64(n) * dx)
	}
	return out
}
