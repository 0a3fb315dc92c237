package ports

import (
	"context"

	"goamb/domain/fuzzy"
)

// SampleSource loads a pair of fuzzy samples from an external source such
// as a workbook or a request payload.
type SampleSource interface {
	// LoadSamples returns the two groups, X then Y.
	LoadSamples(ctx context.Context) (fuzzy.Sample, fuzzy.Sample, error)
}
