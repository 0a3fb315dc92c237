package fuzzy

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"goamb/domain/core"
)

// Sample is an ordered collection of trapezoidal fuzzy observations from
// one experimental group. It is read-only to the test procedure.
type Sample []Trapezoid

// NewSample copies the given observations into a fresh sample.
func NewSample(items ...Trapezoid) (Sample, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: sample needs at least one observation", core.ErrEmptySample)
	}
	s := make(Sample, len(items))
	copy(s, items)
	return s, nil
}

// Ambiguities reduces every observation to its ambiguity scalar,
// preserving order.
func (s Sample) Ambiguities() []float64 {
	out := make([]float64, len(s))
	for i, t := range s {
		out[i] = t.Ambiguity()
	}
	return out
}

// Summary describes the ambiguity distribution of one sample.
type Summary struct {
	Size   int     `json:"size"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Summarize computes ambiguity summary statistics for the sample.
func (s Sample) Summarize() (Summary, error) {
	if len(s) == 0 {
		return Summary{}, fmt.Errorf("%w: cannot summarize", core.ErrEmptySample)
	}

	amb := s.Ambiguities()
	mean, _ := stats.Mean(amb)
	min, _ := stats.Min(amb)
	max, _ := stats.Max(amb)
	median, _ := stats.Median(amb)

	summary := Summary{
		Size:   len(s),
		Mean:   mean,
		Min:    min,
		Max:    max,
		Median: median,
	}
	if len(s) > 1 {
		sd, _ := stats.StandardDeviationSample(amb)
		summary.StdDev = sd
	}
	return summary, nil
}
