package rng

import (
	"context"
	"math/rand"
)

// Adapter implements ports.RNGPort with deterministic seed derivation, so
// the same (name, worker, seed) triple always yields the same stream.
type Adapter struct{}

// NewAdapter creates a deterministic RNG adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// SeededStream creates a deterministic random number generator for a named operation.
func (a *Adapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(deriveSeed(name, 0, seed))), nil
}

// Stream derives a deterministic generator for one worker within a named
// operation. Distinct workers get disjoint streams from the same base seed.
func (a *Adapter) Stream(ctx context.Context, name string, worker int, baseSeed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(deriveSeed(name, worker, baseSeed))), nil
}

// deriveSeed folds the operation name and worker index into the base seed.
func deriveSeed(name string, worker int, seed int64) int64 {
	return seed + int64(hashString(name)) + int64(worker)*0x9e3779b9
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
