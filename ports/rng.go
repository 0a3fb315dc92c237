package ports

import (
	"context"
	"math/rand"
)

// RNGPort provides seeded random number generation for deterministic resampling
type RNGPort interface {
	// SeededStream creates a deterministic random number generator for a named operation
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// Stream derives a deterministic generator for one worker within a
	// named operation, so concurrent workers draw from disjoint sequences
	// and results stay reproducible for the same base seed
	Stream(ctx context.Context, name string, worker int, baseSeed int64) (*rand.Rand, error)
}
