package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/sure/internal/engine"
)

// Run scans the scenario root with classes from loader and evaluates the
// scenario's assertions.
//
// The error is non-nil only when the scan itself could not run; failed
// assertions are reported through Result.Errors.
func Run(ctx context.Context, scenario *Scenario, loader engine.Loader) (*Result, error) {
	slog.Debug("running scenario", "scenario", scenario.Name, "root", scenario.Root)

	res, err := engine.NewRunner(loader).Run(ctx, scenario.Root)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult()
	result.Outcomes = res.Outcomes()
	result.Summary = res.Summary()

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}

	slog.Debug("scenario finished", "scenario", scenario.Name, "pass", result.Pass, "errors", len(result.Errors))
	return result, nil
}
