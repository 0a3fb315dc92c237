package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"goamb/domain/ambtest"
	"goamb/domain/core"
)

// ResultRepository persists ambiguity test results
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *sqlx.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// EnsureSchema creates the results table when it does not exist yet.
func (r *ResultRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS ambiguity_test_results (
			id UUID PRIMARY KEY,
			observed_statistic DOUBLE PRECISION NOT NULL,
			p_value DOUBLE PRECISION NOT NULL,
			permutations_used INTEGER NOT NULL,
			mode TEXT NOT NULL,
			paired BOOLEAN NOT NULL DEFAULT FALSE,
			reject BOOLEAN NOT NULL,
			alpha DOUBLE PRECISION NOT NULL,
			seed BIGINT NOT NULL,
			sample_size_x INTEGER NOT NULL,
			sample_size_y INTEGER NOT NULL,
			null_summary JSONB NOT NULL,
			computed_at TIMESTAMPTZ NOT NULL
		)`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure results schema: %w", err)
	}
	return nil
}

// resultRow mirrors the ambiguity_test_results table
type resultRow struct {
	ID                uuid.UUID `db:"id"`
	ObservedStatistic float64   `db:"observed_statistic"`
	PValue            float64   `db:"p_value"`
	PermutationsUsed  int       `db:"permutations_used"`
	Mode              string    `db:"mode"`
	Paired            bool      `db:"paired"`
	Reject            bool      `db:"reject"`
	Alpha             float64   `db:"alpha"`
	Seed              int64     `db:"seed"`
	SampleSizeX       int       `db:"sample_size_x"`
	SampleSizeY       int       `db:"sample_size_y"`
	NullSummary       []byte    `db:"null_summary"`
	ComputedAt        time.Time `db:"computed_at"`
}

// Save inserts a finished result. Results are write-once; saving the same
// ID twice is a caller bug and surfaces as a constraint violation.
func (r *ResultRepository) Save(ctx context.Context, result *ambtest.Result) error {
	id, err := uuid.Parse(result.ID.String())
	if err != nil {
		return fmt.Errorf("result ID %q is not a valid UUID: %w", result.ID, err)
	}
	nullJSON, err := json.Marshal(result.Null)
	if err != nil {
		return fmt.Errorf("failed to marshal null summary: %w", err)
	}

	query := `
		INSERT INTO ambiguity_test_results (
			id, observed_statistic, p_value, permutations_used, mode, paired,
			reject, alpha, seed, sample_size_x, sample_size_y, null_summary,
			computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.db.ExecContext(ctx, query,
		id,
		result.ObservedStatistic,
		result.PValue,
		result.PermutationsUsed,
		string(result.Mode),
		result.Paired,
		result.Reject,
		result.Alpha,
		result.Seed,
		result.SampleSizeX,
		result.SampleSizeY,
		nullJSON,
		result.ComputedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save test result %s: %w", result.ID, err)
	}
	return nil
}

// Get fetches one result by ID.
func (r *ResultRepository) Get(ctx context.Context, id core.TestID) (*ambtest.Result, error) {
	var row resultRow
	query := `SELECT * FROM ambiguity_test_results WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", core.ErrResultNotFound, id)
		}
		return nil, fmt.Errorf("failed to load test result %s: %w", id, err)
	}
	return row.toDomain()
}

// List returns the most recent results, newest first.
func (r *ResultRepository) List(ctx context.Context, limit int) ([]*ambtest.Result, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []resultRow
	query := `SELECT * FROM ambiguity_test_results ORDER BY computed_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}

	results := make([]*ambtest.Result, 0, len(rows))
	for _, row := range rows {
		result, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (row resultRow) toDomain() (*ambtest.Result, error) {
	var null ambtest.NullSummary
	if len(row.NullSummary) > 0 {
		if err := json.Unmarshal(row.NullSummary, &null); err != nil {
			return nil, fmt.Errorf("failed to unmarshal null summary for %s: %w", row.ID, err)
		}
	}
	return &ambtest.Result{
		ID:                core.TestID(row.ID.String()),
		ObservedStatistic: row.ObservedStatistic,
		PValue:            row.PValue,
		PermutationsUsed:  row.PermutationsUsed,
		Mode:              ambtest.Mode(row.Mode),
		Paired:            row.Paired,
		Reject:            row.Reject,
		Alpha:             row.Alpha,
		Seed:              row.Seed,
		SampleSizeX:       row.SampleSizeX,
		SampleSizeY:       row.SampleSizeY,
		Null:              null,
		ComputedAt:        core.NewTimestamp(row.ComputedAt),
	}, nil
}
