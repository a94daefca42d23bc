package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/sure/internal/engine"
)

// ErrRunNotFound is returned by ReadRun for an unknown id.
var ErrRunNotFound = errors.New("run not found")

// Run is a recorded scan.
type Run struct {
	ID     string `json:"id"`
	Root   string `json:"root"`
	Counts Counts `json:"counts"`
}

// ReadRuns returns every recorded run, oldest first.
//
// Returns an empty slice (not nil) when nothing was recorded.
func (s *Store) ReadRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, root, counts
		FROM runs
		ORDER BY id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun returns the run with the given id.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, root, counts
		FROM runs
		WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, err
}

// ReadOutcomes returns the outcomes of a run ordered by seq. An empty status
// selects every outcome.
func (s *Store) ReadOutcomes(ctx context.Context, runID string, status engine.Status) ([]engine.Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, status, identifier, message
		FROM outcomes
		WHERE run_id = ? AND (? = '' OR status = ?)
		ORDER BY seq ASC
	`, runID, string(status), string(status))
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	outcomes := []engine.Outcome{}
	for rows.Next() {
		var (
			o      engine.Outcome
			status string
		)
		if err := rows.Scan(&o.Seq, &status, &o.Identifier, &o.Message); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		o.Status = engine.Status(status)
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}
	return outcomes, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run    Run
		counts string
	)
	if err := row.Scan(&run.ID, &run.Root, &counts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	c, err := unmarshalCounts(counts)
	if err != nil {
		return Run{}, err
	}
	run.Counts = c
	return run, nil
}
