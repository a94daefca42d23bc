package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/sure/internal/config"
	"github.com/roach88/sure/internal/discover"
	"github.com/roach88/sure/internal/engine"
	"github.com/roach88/sure/internal/store"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	Record  string
	Timeout time.Duration
	Config  string

	// IDs overrides the ledger's run id generator (for testing).
	// If nil, the ledger uses UUIDv7 ids.
	IDs store.IDGenerator
}

// ScanReport is the JSON payload of a scan.
type ScanReport struct {
	Root     string           `json:"root"`
	RunID    string           `json:"run_id,omitempty"`
	Counts   store.Counts     `json:"counts"`
	Outcomes []engine.Outcome `json:"outcomes"`
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Run every scenario found under a path",
		Long: `Discover annotated classes under a directory or .go file, build their
fixtures and run every scenario against the registered code.

Settings are read from sure.cue in the working directory, or from the file
given with --config. Flags override file values.

Exit codes:
  0 - Every scenario passed or was skipped
  2 - Command error (invalid path, bad config, ledger failure, timeout)
  3 - One or more scenarios failed

Examples:
  sure scan ./internal
  sure scan ./calc/calc.go --format json
  sure scan . --record .sure/ledger.db --timeout 30s`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Record, "record", "", "append the run to the SQLite ledger at this path")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "abandon the run after this long (0 = no limit)")
	cmd.Flags().StringVar(&opts.Config, "config", "", "configuration file (default ./"+config.FileName+" if present)")

	return cmd
}

func runScan(opts *ScanOptions, root string, cmd *cobra.Command) error {
	if err := applyConfig(opts, cmd); err != nil {
		return newFormatter(opts.RootOptions, cmd).Fail(ExitCommandError, ErrCodeConfig, err)
	}
	formatter := newFormatter(opts.RootOptions, cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	formatter.VerboseLog("Scanning %s", root)
	res, err := engine.NewRunner(opts.Loader).Run(ctx, root)
	switch {
	case err == nil:
	case discover.IsInvalidPath(err):
		return formatter.Fail(ExitCommandError, ErrCodeInvalidPath, err)
	case errors.Is(err, context.DeadlineExceeded):
		return formatter.Fail(ExitCommandError, ErrCodeTimeout, fmt.Errorf("scan timed out after %s", opts.Timeout))
	default:
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err)
	}

	report := ScanReport{
		Root:     root,
		Counts:   store.CountsOf(res),
		Outcomes: res.Outcomes(),
	}

	if opts.Record != "" {
		id, err := recordRun(ctx, opts, root, res)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeLedger, err)
		}
		report.RunID = id
		formatter.VerboseLog("Recorded run %s in %s", id, opts.Record)
	}

	text := res.Summary()
	if report.RunID != "" {
		text += fmt.Sprintf("\nRecorded run: %s\n", report.RunID)
	}

	if res.HasFailures() {
		if err := formatter.Failure(text, report); err != nil {
			return WrapExitError(ExitCommandError, "write output", err)
		}
		return &ExitError{Code: ExitFailures, Message: "contract failures", reported: true}
	}
	if err := formatter.Success(text, report); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}

// applyConfig loads the configuration file and fills every option the
// command line left unset.
func applyConfig(opts *ScanOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}

	if !cmd.Flag("format").Changed {
		opts.Format = cfg.Format
	}
	if !cmd.Flag("verbose").Changed && cfg.Verbose {
		opts.Verbose = true
		setupLogging(cmd.ErrOrStderr(), true)
	}
	if !cmd.Flag("timeout").Changed {
		opts.Timeout = cfg.Timeout
	}
	if !cmd.Flag("record").Changed {
		opts.Record = cfg.Record
	}
	return nil
}

func recordRun(ctx context.Context, opts *ScanOptions, root string, res *engine.Result) (string, error) {
	if dir := filepath.Dir(opts.Record); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create ledger directory: %w", err)
		}
	}

	st, err := store.Open(opts.Record)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing ledger", "error", closeErr)
		}
	}()
	if opts.IDs != nil {
		st.WithIDs(opts.IDs)
	}

	return st.WriteRun(ctx, root, res)
}
