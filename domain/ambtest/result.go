package ambtest

import (
	"goamb/domain/core"
)

// NullSummary describes the permutation null distribution that a test
// result was judged against.
type NullSummary struct {
	Mean         float64 `json:"mean"`
	StdDev       float64 `json:"std_dev"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Percentile95 float64 `json:"percentile_95"`
	Percentile99 float64 `json:"percentile_99"`
}

// Result is the immutable outcome of one test invocation.
//
// For the independent test, ObservedStatistic is the signed difference
// mean(ambiguity X) - mean(ambiguity Y); for the paired test it is the
// sum of the pairwise ambiguity differences. PValue is two-sided. Reject
// applies the strict rule p < alpha. PermutationsUsed is zero when a
// degenerate pool made resampling unnecessary.
type Result struct {
	ID                core.TestID    `json:"id"`
	ObservedStatistic float64        `json:"observed_statistic"`
	PValue            float64        `json:"p_value"`
	PermutationsUsed  int            `json:"permutations_used"`
	Mode              Mode           `json:"mode"`
	Paired            bool           `json:"paired"`
	Reject            bool           `json:"reject"`
	Alpha             float64        `json:"alpha"`
	Seed              int64          `json:"seed"`
	SampleSizeX       int            `json:"sample_size_x"`
	SampleSizeY       int            `json:"sample_size_y"`
	Null              NullSummary    `json:"null"`
	ComputedAt        core.Timestamp `json:"computed_at"`
}
