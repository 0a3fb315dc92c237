package ambtest

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"goamb/domain/core"
)

// Mode selects how the permutation null distribution is generated.
type Mode string

const (
	// ModeAuto picks ModeExact when every label assignment can be
	// enumerated under the combinatorial ceiling, ModeMonteCarlo otherwise.
	ModeAuto Mode = "auto"
	// ModeExact enumerates all C(m+n, m) assignments exactly once.
	ModeExact Mode = "exact"
	// ModeMonteCarlo samples assignments uniformly with a fixed budget.
	ModeMonteCarlo Mode = "monte_carlo"
)

// Defaults for two-sample ambiguity tests.
const (
	DefaultAlpha        = 0.05
	DefaultPermutations = 10000
	DefaultSeed         = 42

	// DefaultExactCeiling caps how many label assignments auto mode is
	// willing to enumerate before falling back to Monte Carlo sampling.
	DefaultExactCeiling = 20000

	// maxEnumerablePool is the largest pooled size whose partition count
	// is guaranteed to fit an int64. Beyond it C(m+n, m) is treated as
	// infeasible to enumerate.
	maxEnumerablePool = 62
)

// Params configures a two-sample ambiguity permutation test.
type Params struct {
	Alpha        float64 `json:"alpha"`
	Permutations int     `json:"permutations"` // Monte Carlo resample budget B
	Seed         int64   `json:"seed"`
	Mode         Mode    `json:"mode"`
	ExactCeiling int     `json:"exact_ceiling,omitempty"` // 0 means DefaultExactCeiling
}

// DefaultParams returns the conventional test configuration.
func DefaultParams() Params {
	return Params{
		Alpha:        DefaultAlpha,
		Permutations: DefaultPermutations,
		Seed:         DefaultSeed,
		Mode:         ModeAuto,
		ExactCeiling: DefaultExactCeiling,
	}
}

// Validate checks the parameters against the supported ranges.
func (p Params) Validate() error {
	if p.Alpha <= 0 || p.Alpha >= 1 {
		return core.NewParameterError("alpha", fmt.Sprintf("%v is outside (0, 1)", p.Alpha))
	}
	if p.Permutations <= 0 {
		return core.NewParameterError("permutations", fmt.Sprintf("%d must be positive", p.Permutations))
	}
	if p.ExactCeiling < 0 {
		return core.NewParameterError("exact_ceiling", fmt.Sprintf("%d must not be negative", p.ExactCeiling))
	}
	switch p.Mode {
	case ModeAuto, ModeExact, ModeMonteCarlo, "":
		return nil
	default:
		return core.NewParameterError("mode", fmt.Sprintf("%q is not one of auto, exact, monte_carlo", p.Mode))
	}
}

func (p Params) ceiling() int {
	if p.ExactCeiling > 0 {
		return p.ExactCeiling
	}
	return DefaultExactCeiling
}

// Plan is the resolved resampling strategy for a pair of sample sizes.
type Plan struct {
	Mode      Mode
	Resamples int // partitions to evaluate: C(m+n, m) for exact, B otherwise
}

// ChoosePlan resolves the requested mode against the sample sizes. It is a
// pure function of (m, n, Params), so the exact-versus-sampled policy can
// be tested in isolation.
func ChoosePlan(m, n int, p Params) (Plan, error) {
	if m <= 0 || n <= 0 {
		return Plan{}, core.NewEmptySampleError(m, n)
	}

	return resolvePlan(PartitionCount(m, n), m+n, p)
}

// ChoosePairedPlan resolves the requested mode for a paired test over n
// difference pairs, where the exact null enumerates all 2^n sign
// assignments.
func ChoosePairedPlan(n int, p Params) (Plan, error) {
	if n <= 0 {
		return Plan{}, core.NewEmptySampleError(n, n)
	}
	return resolvePlan(SignAssignmentCount(n), n, p)
}

// resolvePlan applies the mode policy to an enumeration of total exact
// partitions (-1 when uncountable). Forced exact mode is held to the same
// ceiling as auto mode, so a request can never demand an enumeration the
// engine is unwilling to materialize.
func resolvePlan(total, poolSize int, p Params) (Plan, error) {
	switch p.Mode {
	case ModeExact:
		if total < 0 {
			return Plan{}, core.NewParameterError("mode",
				fmt.Sprintf("exact enumeration is infeasible for %d pooled observations", poolSize))
		}
		if total > p.ceiling() {
			return Plan{}, core.NewParameterError("mode",
				fmt.Sprintf("exact enumeration needs %d partitions, above the ceiling of %d", total, p.ceiling()))
		}
		return Plan{Mode: ModeExact, Resamples: total}, nil
	case ModeMonteCarlo:
		return Plan{Mode: ModeMonteCarlo, Resamples: p.Permutations}, nil
	default: // auto
		if total > 0 && total <= p.ceiling() {
			return Plan{Mode: ModeExact, Resamples: total}, nil
		}
		return Plan{Mode: ModeMonteCarlo, Resamples: p.Permutations}, nil
	}
}

// PartitionCount returns C(m+n, m), the number of distinct assignments of
// the pooled observations into groups of size m and n, or -1 when the
// count does not fit an int64.
func PartitionCount(m, n int) int {
	if m+n > maxEnumerablePool {
		return -1
	}
	return combin.Binomial(m+n, m)
}

// SignAssignmentCount returns 2^n, the number of distinct sign assignments
// over n paired differences, or -1 when the count does not fit an int64.
func SignAssignmentCount(n int) int {
	if n > maxEnumerablePool {
		return -1
	}
	return 1 << n
}
