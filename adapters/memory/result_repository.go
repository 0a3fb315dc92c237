package memory

import (
	"context"
	"sort"
	"sync"

	"goamb/domain/ambtest"
	"goamb/domain/core"
)

// ResultRepository implements ports.ResultRepository in process memory.
// It backs deployments without a configured database as well as tests.
type ResultRepository struct {
	mu      sync.RWMutex
	results map[core.TestID]*ambtest.Result
}

// NewResultRepository creates an empty repository
func NewResultRepository() *ResultRepository {
	return &ResultRepository{results: make(map[core.TestID]*ambtest.Result)}
}

// Save stores a copy of the result
func (r *ResultRepository) Save(ctx context.Context, result *ambtest.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *result
	r.results[result.ID] = &stored
	return nil
}

// Get fetches one result by ID
func (r *ResultRepository) Get(ctx context.Context, id core.TestID) (*ambtest.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[id]
	if !ok {
		return nil, core.ErrResultNotFound
	}
	copied := *result
	return &copied, nil
}

// List returns stored results, newest first
func (r *ResultRepository) List(ctx context.Context, limit int) ([]*ambtest.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*ambtest.Result, 0, len(r.results))
	for _, result := range r.results {
		copied := *result
		results = append(results, &copied)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[j].ComputedAt.Before(results[i].ComputedAt)
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Len reports how many results are stored
func (r *ResultRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.results)
}
