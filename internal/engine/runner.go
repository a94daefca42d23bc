package engine

import (
	"context"
	"log/slog"

	"github.com/roach88/sure/internal/contract"
	"github.com/roach88/sure/internal/discover"
	"github.com/roach88/sure/internal/validate"
)

// Runner drives a full scan: resolve packages, discover classes, validate
// fixtures and execute scenarios.
type Runner struct {
	executor   *Executor
	discoverer *discover.Discoverer
	clock      *Clock
}

// NewRunner creates a runner executing against loader.
func NewRunner(loader Loader) *Runner {
	clock := NewClock()
	return &Runner{
		executor:   NewExecutor(loader, clock),
		discoverer: discover.NewDiscoverer(),
		clock:      clock,
	}
}

// Discover resolves root and returns its classes without executing them.
func (r *Runner) Discover(ctx context.Context, root string) (*discover.Units, []contract.ClassRecord, error) {
	units, err := discover.Scan(ctx, root)
	if err != nil {
		return nil, nil, err
	}
	return units, r.discoverer.Classes(units), nil
}

// Run scans root and executes every discovered class.
//
// A root that cannot be resolved is the only error besides cancellation;
// every other problem is recorded as an outcome. When ctx ends the run is
// abandoned and ctx.Err() returned. A scenario already running when ctx ends
// finishes in the background; no further scenario starts after it.
func (r *Runner) Run(ctx context.Context, root string) (*Result, error) {
	units, classes, err := r.Discover(ctx, root)
	if err != nil {
		return nil, err
	}

	slog.Info("scan started", "root", units.Root, "classes", len(classes))

	type done struct{ res *Result }
	ch := make(chan done, 1)

	go func() {
		ch <- done{r.execute(ctx, classes, units.Facility)}
	}()

	select {
	case <-ctx.Done():
		slog.Warn("scan abandoned", "root", units.Root, "error", ctx.Err())
		return nil, ctx.Err()
	case d := <-ch:
		if d.res == nil {
			return nil, ctx.Err()
		}
		slog.Info("scan finished",
			"passed", len(d.res.Passes),
			"failed", len(d.res.Failures),
			"warnings", len(d.res.Warnings),
			"skipped", len(d.res.Skips),
		)
		return d.res, nil
	}
}

// execute runs classes in order. It returns nil when ctx ends between
// classes.
func (r *Runner) execute(ctx context.Context, classes []contract.ClassRecord, types TypeResolver) *Result {
	res := NewResult(r.clock)

	for _, class := range classes {
		if ctx.Err() != nil {
			return nil
		}

		for _, w := range class.Warnings {
			res.warn(class.Name, w)
		}

		if msg, dup := validate.Fixtures(class.Fixtures, class.Name); dup {
			res.fail(class.Name, msg)
			continue
		}

		res.Merge(r.executor.ExecuteClass(ctx, class, types))
	}
	return res
}
