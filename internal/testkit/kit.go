package testkit

import (
	"goamb/adapters/battery"
	"goamb/adapters/memory"
	"goamb/adapters/rng"
	"goamb/app"
	"goamb/ports"
)

// TestKit provides deterministic fixtures for exercising the ambiguity
// engine without external dependencies.
type TestKit struct {
	results *memory.ResultRepository
}

// NewTestKit creates a new test kit instance
func NewTestKit() *TestKit {
	return &TestKit{results: memory.NewResultRepository()}
}

// RNGAdapter returns the deterministic RNG adapter
func (t *TestKit) RNGAdapter() ports.RNGPort {
	return rng.NewAdapter()
}

// ResultRepository returns the shared in-memory result repository
func (t *TestKit) ResultRepository() *memory.ResultRepository {
	return t.results
}

// Referee returns an ambiguity referee wired to the deterministic RNG
func (t *TestKit) Referee() *battery.AmbiguityReferee {
	return battery.NewAmbiguityReferee(t.RNGAdapter())
}

// Service returns a fully wired ambiguity service backed by memory
func (t *TestKit) Service() *app.AmbiguityService {
	return app.NewAmbiguityService(t.Referee(), t.results)
}
