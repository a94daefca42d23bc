package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sure/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Golden string // golden file directory
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run conformance scenarios",
		Long: `Run harness scenario files. Each scenario scans its root and checks
assertions on the outcomes. With --golden, outcomes and summary are also
compared against golden files named after the scenario.

Exit codes:
  0 - All scenarios passed
  2 - Command error (invalid paths, etc.)
  3 - One or more scenarios failed

Examples:
  sure test ./testdata/scenarios
  sure test ./testdata/scenarios --golden ./testdata/golden
  sure test ./testdata/scenarios --golden ./testdata/golden --update
  sure test ./testdata/scenarios --filter "calc*" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Golden, "golden", "", "directory of golden files")
	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if _, err := os.Stat(scenariosDir); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidPath, fmt.Errorf("scenarios directory not found: %s", scenariosDir))
	}
	if opts.Update && opts.Golden == "" {
		return NewExitError(ExitUsage, "--update requires --golden")
	}

	files, err := findScenarioFiles(scenariosDir, opts.Filter)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeScenario, fmt.Errorf("find scenarios: %w", err))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result := TestResult{
		Scenarios: make([]ScenarioResult, 0, len(files)),
		Total:     len(files),
	}
	for _, file := range files {
		sr := runScenario(ctx, opts, file)
		result.Scenarios = append(result.Scenarios, sr)
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	text := formatTestResult(result)
	if result.Failed > 0 {
		if err := formatter.Failure(text, result); err != nil {
			return WrapExitError(ExitCommandError, "write output", err)
		}
		return &ExitError{Code: ExitFailures, Message: fmt.Sprintf("%d scenario(s) failed", result.Failed), reported: true}
	}
	if err := formatter.Success(text, result); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}

// findScenarioFiles finds all YAML scenario files in a directory, sorted by
// path.
func findScenarioFiles(dir, filter string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			matched, err := filepath.Match(filter, name)
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

// runScenario executes a single scenario file.
func runScenario(ctx context.Context, opts *TestOptions, file string) ScenarioResult {
	scenario, err := harness.LoadScenario(file)
	if err != nil {
		return ScenarioResult{
			Name:   filepath.Base(file),
			Errors: []string{fmt.Sprintf("failed to load scenario: %v", err)},
		}
	}

	result, err := harness.Run(ctx, scenario, opts.Loader)
	if err != nil {
		return ScenarioResult{
			Name:   scenario.Name,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	sr := ScenarioResult{Name: scenario.Name, Pass: result.Pass, Errors: result.Errors}
	if opts.Golden == "" {
		return sr
	}

	files, err := harness.GoldenFiles(scenario.Name, result)
	if err != nil {
		sr.Pass = false
		sr.Errors = append(sr.Errors, fmt.Sprintf("render golden: %v", err))
		return sr
	}

	if opts.Update {
		if err := writeGolden(opts.Golden, files); err != nil {
			sr.Pass = false
			sr.Errors = append(sr.Errors, err.Error())
		}
		return sr
	}

	for _, msg := range compareGolden(opts.Golden, files) {
		sr.Pass = false
		sr.Errors = append(sr.Errors, msg)
	}
	return sr
}

func goldenPath(dir, name string) string {
	return filepath.Join(dir, name+harness.GoldenSuffix)
}

func writeGolden(dir string, files []harness.GoldenFile) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create golden directory: %w", err)
	}
	for _, f := range files {
		if err := os.WriteFile(goldenPath(dir, f.Name), f.Data, 0o644); err != nil {
			return fmt.Errorf("write golden file: %w", err)
		}
	}
	return nil
}

// compareGolden reports every golden file that differs from files. A
// scenario without golden files is checked by its assertions only.
func compareGolden(dir string, files []harness.GoldenFile) []string {
	var mismatches []string
	for _, f := range files {
		want, err := os.ReadFile(goldenPath(dir, f.Name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			mismatches = append(mismatches, fmt.Sprintf("read golden file: %v", err))
			continue
		}
		if !bytes.Equal(want, f.Data) {
			mismatches = append(mismatches, fmt.Sprintf("golden mismatch: %s (run with --update to regenerate)", f.Name))
		}
	}
	return mismatches
}

func formatTestResult(result TestResult) string {
	if result.Total == 0 {
		return "No scenarios found.\n"
	}

	var b strings.Builder
	for _, sr := range result.Scenarios {
		if sr.Pass {
			fmt.Fprintf(&b, "✓ %s\n", sr.Name)
			continue
		}
		fmt.Fprintf(&b, "✗ %s\n", sr.Name)
		for _, e := range sr.Errors {
			fmt.Fprintf(&b, "  %s\n", e)
		}
	}
	fmt.Fprintf(&b, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	return b.String()
}
