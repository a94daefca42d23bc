package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/sure/internal/engine"
)

// WriteRun records res as a new run scanned from root and returns its id.
//
// The run and its outcomes are written in one transaction. Outcomes keep
// their seq, so reading them back restores traversal order.
func (s *Store) WriteRun(ctx context.Context, root string, res *engine.Result) (string, error) {
	counts, err := marshalCounts(CountsOf(res))
	if err != nil {
		return "", fmt.Errorf("write run: %w", err)
	}

	id := s.ids.Generate()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, root, counts)
		VALUES (?, ?, ?)
	`, id, root, counts); err != nil {
		return "", fmt.Errorf("write run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO outcomes (run_id, seq, status, identifier, message)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("write run: prepare: %w", err)
	}
	defer stmt.Close()

	for _, o := range res.Outcomes() {
		if _, err := stmt.ExecContext(ctx, id, o.Seq, string(o.Status), o.Identifier, o.Message); err != nil {
			return "", fmt.Errorf("write outcome %d: %w", o.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("write run: commit: %w", err)
	}

	slog.Debug("run recorded", "run", id, "outcomes", res.Total())
	return id, nil
}
