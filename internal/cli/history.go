package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sure/internal/engine"
	"github.com/roach88/sure/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	RunID  string
	Status string
}

// RunReport is the JSON payload of history --run.
type RunReport struct {
	store.Run
	Outcomes []engine.Outcome `json:"outcomes"`
}

var validStatuses = []engine.Status{engine.StatusPass, engine.StatusFail, engine.StatusSkip, engine.StatusWarn}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history <db>",
		Short: "Show runs recorded in a ledger",
		Long: `List the runs recorded with scan --record, oldest first.

With --run, print the outcomes of one run in the order they were produced.
--status narrows those outcomes to pass, fail, skip or warn.

Examples:
  sure history .sure/ledger.db
  sure history .sure/ledger.db --run 019a0c4e-... --status fail`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.RunID, "run", "", "show the outcomes of this run")
	cmd.Flags().StringVar(&opts.Status, "status", "", "filter outcomes by status (pass|fail|skip|warn)")

	return cmd
}

func runHistory(opts *HistoryOptions, dbPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	status := engine.Status(opts.Status)
	if status != "" && !slices.Contains(validStatuses, status) {
		return NewExitError(ExitUsage, fmt.Sprintf("invalid status %q: must be one of %v", opts.Status, validStatuses))
	}
	if status != "" && opts.RunID == "" {
		return NewExitError(ExitUsage, "--status requires --run")
	}

	if _, err := os.Stat(dbPath); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLedger, fmt.Errorf("ledger not found: %s", dbPath))
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLedger, err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing ledger", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.RunID != "" {
		return showRun(ctx, st, opts.RunID, status, formatter)
	}

	runs, err := st.ReadRuns(ctx)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLedger, err)
	}
	if err := formatter.Success(formatRuns(runs), runs); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}

func showRun(ctx context.Context, st *store.Store, id string, status engine.Status, formatter *OutputFormatter) error {
	run, err := st.ReadRun(ctx, id)
	if errors.Is(err, store.ErrRunNotFound) {
		return formatter.Fail(ExitCommandError, ErrCodeRunNotFound, err)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLedger, err)
	}

	outcomes, err := st.ReadOutcomes(ctx, id, status)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLedger, err)
	}

	report := RunReport{Run: run, Outcomes: outcomes}
	if err := formatter.Success(formatRun(report), report); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}

func formatRuns(runs []store.Run) string {
	if len(runs) == 0 {
		return "No runs recorded.\n"
	}
	var b strings.Builder
	for _, r := range runs {
		fmt.Fprintf(&b, "%s  %s  passed=%d failed=%d skipped=%d warnings=%d total=%d\n",
			r.ID, r.Root, r.Counts.Passed, r.Counts.Failed, r.Counts.Skipped, r.Counts.Warnings, r.Counts.Total)
	}
	return b.String()
}

func formatRun(report RunReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Run %s (%s)\n", report.ID, report.Root)
	for _, o := range report.Outcomes {
		fmt.Fprintf(&b, "  %s: %s", strings.ToUpper(string(o.Status)), o.Identifier)
		if o.Message != "" {
			fmt.Fprintf(&b, " - %s", o.Message)
		}
		b.WriteString("\n")
	}
	return b.String()
}
