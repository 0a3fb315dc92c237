package app

import (
	"context"
	"fmt"

	"goamb/adapters/battery"
	"goamb/domain/ambtest"
	"goamb/domain/core"
	"goamb/domain/fuzzy"
	"goamb/ports"
)

// AmbiguityService orchestrates two-sample ambiguity tests end to end:
// reduce both samples, run the permutation referee, and record the result.
type AmbiguityService struct {
	referee *battery.AmbiguityReferee
	results ports.ResultRepository
}

// NewAmbiguityService creates the service. The repository may be nil, in
// which case results are returned but not persisted.
func NewAmbiguityService(referee *battery.AmbiguityReferee, results ports.ResultRepository) *AmbiguityService {
	return &AmbiguityService{
		referee: referee,
		results: results,
	}
}

// RunTest executes the permutation test for the two samples.
func (s *AmbiguityService) RunTest(ctx context.Context, x, y fuzzy.Sample, params ambtest.Params) (*ambtest.Result, error) {
	result, err := s.referee.Test(ctx, x, y, params)
	if err != nil {
		return nil, err
	}

	if s.results != nil {
		if err := s.results.Save(ctx, result); err != nil {
			return nil, fmt.Errorf("failed to record test result: %w", err)
		}
	}
	return result, nil
}

// RunPairedTest executes the dependent-samples sign-flip test for two
// matched samples of equal size.
func (s *AmbiguityService) RunPairedTest(ctx context.Context, x, y fuzzy.Sample, params ambtest.Params) (*ambtest.Result, error) {
	result, err := s.referee.TestPaired(ctx, x, y, params)
	if err != nil {
		return nil, err
	}

	if s.results != nil {
		if err := s.results.Save(ctx, result); err != nil {
			return nil, fmt.Errorf("failed to record test result: %w", err)
		}
	}
	return result, nil
}

// RunTestFromSource loads both samples from the given source and runs the
// independent or paired test on them.
func (s *AmbiguityService) RunTestFromSource(ctx context.Context, source ports.SampleSource, params ambtest.Params, paired bool) (*ambtest.Result, error) {
	x, y, err := source.LoadSamples(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}
	if paired {
		return s.RunPairedTest(ctx, x, y, params)
	}
	return s.RunTest(ctx, x, y, params)
}

// GetResult fetches a previously recorded result.
func (s *AmbiguityService) GetResult(ctx context.Context, id core.TestID) (*ambtest.Result, error) {
	if s.results == nil {
		return nil, core.ErrResultNotFound
	}
	return s.results.Get(ctx, id)
}

// ListResults returns the most recent recorded results, newest first.
func (s *AmbiguityService) ListResults(ctx context.Context, limit int) ([]*ambtest.Result, error) {
	if s.results == nil {
		return nil, nil
	}
	return s.results.List(ctx, limit)
}

// SummarizeSamples computes the per-group ambiguity summaries shown next
// to a test result.
func (s *AmbiguityService) SummarizeSamples(x, y fuzzy.Sample) (fuzzy.Summary, fuzzy.Summary, error) {
	sx, err := x.Summarize()
	if err != nil {
		return fuzzy.Summary{}, fuzzy.Summary{}, fmt.Errorf("sample X: %w", err)
	}
	sy, err := y.Summarize()
	if err != nil {
		return fuzzy.Summary{}, fuzzy.Summary{}, fmt.Errorf("sample Y: %w", err)
	}
	return sx, sy, nil
}
