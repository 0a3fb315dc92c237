package ports

import (
	"context"

	"goamb/domain/ambtest"
	"goamb/domain/core"
)

// ResultRepository persists finished test results.
type ResultRepository interface {
	Save(ctx context.Context, result *ambtest.Result) error
	Get(ctx context.Context, id core.TestID) (*ambtest.Result, error)
	// List returns the most recent results, newest first.
	List(ctx context.Context, limit int) ([]*ambtest.Result, error)
}
