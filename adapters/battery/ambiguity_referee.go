package battery

import (
	"context"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"goamb/domain/ambtest"
	"goamb/domain/core"
	"goamb/domain/fuzzy"
	"goamb/ports"
)

// AmbiguityReferee decides whether two samples of trapezoidal fuzzy
// numbers have statistically indistinguishable ambiguity, using a
// two-sample permutation test on the ambiguity scalars.
type AmbiguityReferee struct {
	rngPort ports.RNGPort
	workers int
}

// NewAmbiguityReferee creates a referee with default worker settings.
func NewAmbiguityReferee(rngPort ports.RNGPort) *AmbiguityReferee {
	return &AmbiguityReferee{
		rngPort: rngPort,
		workers: 4,
	}
}

// SetWorkers bounds the Monte Carlo worker pool (1-16). The budget split
// across workers is part of the reproducibility contract: the same seed,
// budget, and worker count give bit-identical results.
func (r *AmbiguityReferee) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	if n > 16 {
		n = 16
	}
	r.workers = n
}

// Test runs the permutation test for samples x (size m) and y (size n).
//
// Both samples are reduced to ambiguity scalars; the observed statistic is
// mean(x) - mean(y). The null hypothesis of equal ambiguity makes the
// pooled scalars exchangeable, so the null distribution is generated by
// reassigning them into groups of size m and n, either exhaustively
// (exact mode) or by uniform resampling (Monte Carlo mode).
func (r *AmbiguityReferee) Test(ctx context.Context, x, y fuzzy.Sample, params ambtest.Params) (*ambtest.Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	plan, err := ambtest.ChoosePlan(len(x), len(y), params)
	if err != nil {
		return nil, err
	}

	xs := x.Ambiguities()
	ys := y.Ambiguities()
	observed := mean(xs) - mean(ys)

	pooled := make([]float64, 0, len(xs)+len(ys))
	pooled = append(pooled, xs...)
	pooled = append(pooled, ys...)

	result := &ambtest.Result{
		ID:                core.NewTestID(),
		ObservedStatistic: observed,
		Mode:              plan.Mode,
		Alpha:             params.Alpha,
		Seed:              params.Seed,
		SampleSizeX:       len(xs),
		SampleSizeY:       len(ys),
		ComputedAt:        core.Now(),
	}

	if allIdentical(pooled) {
		// Every partition statistic is exactly zero; resampling would
		// only invite float drift. Report no evidence of difference.
		result.ObservedStatistic = 0
		result.PValue = 1.0
		return result, nil
	}

	var null []float64
	switch plan.Mode {
	case ambtest.ModeExact:
		null = r.exactNull(pooled, len(xs))
		result.PValue = exactPValue(null, observed)
	default:
		null, err = r.monteCarloNull(ctx, pooled, len(xs), plan.Resamples, params.Seed)
		if err != nil {
			return nil, err
		}
		result.PValue = monteCarloPValue(null, observed)
	}

	result.PermutationsUsed = len(null)
	result.Reject = result.PValue < params.Alpha
	result.Null = summarizeNull(null)
	return result, nil
}

// exactNull evaluates the statistic for every distinct assignment of m of
// the pooled observations to the first group. The multiset of statistics
// is invariant to the pooled order, so exact-mode output does not depend
// on input order.
func (r *AmbiguityReferee) exactNull(pooled []float64, m int) []float64 {
	n := len(pooled) - m
	total := sum(pooled)

	null := make([]float64, 0, combin.Binomial(len(pooled), m))
	gen := combin.NewCombinationGenerator(len(pooled), m)
	idx := make([]int, m)
	for gen.Next() {
		gen.Combination(idx)
		sumX := 0.0
		for _, i := range idx {
			sumX += pooled[i]
		}
		null = append(null, sumX/float64(m)-(total-sumX)/float64(n))
	}
	return null
}

// monteCarloNull draws resamples uniform random partitions of the pooled
// scalars. Each worker shuffles its own copy of the pool with a seeded
// Fisher-Yates stream and fills a disjoint range of the null slice.
func (r *AmbiguityReferee) monteCarloNull(ctx context.Context, pooled []float64, m, resamples int, seed int64) ([]float64, error) {
	workers := r.workers
	if resamples < workers*64 {
		workers = 1
	}

	null := make([]float64, resamples)
	n := len(pooled) - m
	chunk := (resamples + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, resamples)
		if lo >= hi {
			break
		}
		worker := w
		g.Go(func() error {
			rng, err := r.rngPort.Stream(ctx, "ambiguity-permutation", worker, seed)
			if err != nil {
				return err
			}

			scratch := make([]float64, len(pooled))
			copy(scratch, pooled)

			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rng.Shuffle(len(scratch), func(a, b int) {
					scratch[a], scratch[b] = scratch[b], scratch[a]
				})
				null[i] = sum(scratch[:m])/float64(m) - sum(scratch[m:])/float64(n)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return null, nil
}

// TestPaired runs the dependent-samples variant for matched samples of
// equal size n.
//
// Each pair is reduced to the difference of its ambiguity scalars; the
// observed statistic is the sum of those differences. Under the null
// hypothesis the differences are symmetric about zero, so the null
// distribution is generated by reassigning signs, either over all 2^n
// assignments (exact mode) or by uniform sign flips (Monte Carlo mode).
func (r *AmbiguityReferee) TestPaired(ctx context.Context, x, y fuzzy.Sample, params ambtest.Params) (*ambtest.Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(x) != len(y) {
		return nil, core.NewParameterError("samples",
			fmt.Sprintf("paired test needs matched sizes, got %d and %d", len(x), len(y)))
	}
	plan, err := ambtest.ChoosePairedPlan(len(x), params)
	if err != nil {
		return nil, err
	}

	xs := x.Ambiguities()
	ys := y.Ambiguities()
	diffs := make([]float64, len(xs))
	for i := range xs {
		diffs[i] = xs[i] - ys[i]
	}
	observed := sum(diffs)

	result := &ambtest.Result{
		ID:                core.NewTestID(),
		ObservedStatistic: observed,
		Mode:              plan.Mode,
		Paired:            true,
		Alpha:             params.Alpha,
		Seed:              params.Seed,
		SampleSizeX:       len(xs),
		SampleSizeY:       len(ys),
		ComputedAt:        core.Now(),
	}

	if allZero(diffs) {
		// Every sign assignment yields exactly zero.
		result.PValue = 1.0
		return result, nil
	}

	var null []float64
	switch plan.Mode {
	case ambtest.ModeExact:
		null = exactPairedNull(diffs)
		result.PValue = exactPValue(null, observed)
	default:
		null, err = r.monteCarloPairedNull(ctx, diffs, plan.Resamples, params.Seed)
		if err != nil {
			return nil, err
		}
		result.PValue = monteCarloPValue(null, observed)
	}

	result.PermutationsUsed = len(null)
	result.Reject = result.PValue < params.Alpha
	result.Null = summarizeNull(null)
	return result, nil
}

// exactPairedNull evaluates the statistic for every sign assignment over
// the differences. Assignment k flips the differences whose bit is set in
// k, so each of the 2^n assignments is visited exactly once.
func exactPairedNull(diffs []float64) []float64 {
	total := ambtest.SignAssignmentCount(len(diffs))
	null := make([]float64, total)
	for k := 0; k < total; k++ {
		t := 0.0
		for i, d := range diffs {
			if k&(1<<i) != 0 {
				t -= d
			} else {
				t += d
			}
		}
		null[k] = t
	}
	return null
}

// monteCarloPairedNull draws resamples uniform sign assignments. Each
// worker flips signs with its own seeded stream and fills a disjoint
// range of the null slice, mirroring monteCarloNull.
func (r *AmbiguityReferee) monteCarloPairedNull(ctx context.Context, diffs []float64, resamples int, seed int64) ([]float64, error) {
	workers := r.workers
	if resamples < workers*64 {
		workers = 1
	}

	null := make([]float64, resamples)
	chunk := (resamples + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, resamples)
		if lo >= hi {
			break
		}
		worker := w
		g.Go(func() error {
			rng, err := r.rngPort.Stream(ctx, "paired-sign-flip", worker, seed)
			if err != nil {
				return err
			}

			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				t := 0.0
				for _, d := range diffs {
					if rng.Int63()&1 == 1 {
						t -= d
					} else {
						t += d
					}
				}
				null[i] = t
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return null, nil
}

// monteCarloPValue counts resampled statistics at least as extreme as the
// observed one, two-sided. The add-one correction counts the observed
// labeling as one valid permutation, so p can never reach zero.
func monteCarloPValue(null []float64, observed float64) float64 {
	extreme := 0
	for _, t := range null {
		if math.Abs(t) >= math.Abs(observed) {
			extreme++
		}
	}
	return float64(extreme+1) / float64(len(null)+1)
}

// exactPValue needs no correction: the observed partition is itself one of
// the enumerated assignments and contributes to the extreme count.
func exactPValue(null []float64, observed float64) float64 {
	extreme := 0
	for _, t := range null {
		if math.Abs(t) >= math.Abs(observed) {
			extreme++
		}
	}
	return float64(extreme) / float64(len(null))
}

func summarizeNull(null []float64) ambtest.NullSummary {
	if len(null) == 0 {
		return ambtest.NullSummary{}
	}

	mean, _ := stats.Mean(null)
	min, _ := stats.Min(null)
	max, _ := stats.Max(null)
	p95, _ := stats.Percentile(null, 95)
	p99, _ := stats.Percentile(null, 99)

	summary := ambtest.NullSummary{
		Mean:         mean,
		Min:          min,
		Max:          max,
		Percentile95: p95,
		Percentile99: p99,
	}
	if len(null) > 1 {
		sd, _ := stats.StandardDeviationSample(null)
		summary.StdDev = sd
	}
	return summary
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

func allIdentical(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func mean(values []float64) float64 {
	return sum(values) / float64(len(values))
}
