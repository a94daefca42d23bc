package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sure/internal/contract"
	"github.com/roach88/sure/internal/discover"
	"github.com/roach88/sure/internal/engine"
	"github.com/roach88/sure/internal/validate"
)

// ClassInfo describes one discovered class.
type ClassInfo struct {
	Name     string       `json:"name"`
	Package  string       `json:"package"`
	Fixtures []string     `json:"fixtures"`
	Methods  []MethodInfo `json:"methods"`
	Warnings []string     `json:"warnings,omitempty"`
	Invalid  string       `json:"invalid,omitempty"`
}

// MethodInfo describes one method carrying scenarios.
type MethodInfo struct {
	Name       string `json:"name"`
	Static     bool   `json:"static"`
	Scenarios  int    `json:"scenarios"`
	Skipped    bool   `json:"skipped,omitempty"`
	SkipReason string `json:"skip_reason,omitempty"`
}

// ListReport is the JSON payload of list.
type ListReport struct {
	Root    string      `json:"root"`
	Classes []ClassInfo `json:"classes"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <path>",
		Short: "List discovered contracts without running them",
		Long: `Discover annotated classes under a directory or .go file and print their
fixtures and scenario counts. Fixture names are validated; nothing is
executed.

Exit codes:
  0 - Every class is runnable
  2 - Command error (invalid path)
  3 - One or more classes have invalid fixtures`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, root string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, classes, err := engine.NewRunner(opts.Loader).Discover(ctx, root)
	if err != nil {
		if discover.IsInvalidPath(err) {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidPath, err)
		}
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err)
	}

	report := ListReport{Root: root, Classes: make([]ClassInfo, 0, len(classes))}
	invalid := 0
	for _, c := range classes {
		info := describeClass(c)
		if info.Invalid != "" {
			invalid++
		}
		report.Classes = append(report.Classes, info)
	}
	formatter.VerboseLog("Discovered %d class(es) in %s", len(classes), root)

	text := formatList(report)
	if invalid > 0 {
		if err := formatter.Failure(text, report); err != nil {
			return WrapExitError(ExitCommandError, "write output", err)
		}
		return &ExitError{Code: ExitFailures, Message: fmt.Sprintf("%d invalid class(es)", invalid), reported: true}
	}
	if err := formatter.Success(text, report); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}
	return nil
}

func describeClass(c contract.ClassRecord) ClassInfo {
	info := ClassInfo{
		Name:     c.Name,
		Package:  c.Package,
		Fixtures: make([]string, 0, len(c.Fixtures)),
		Methods:  make([]MethodInfo, 0, len(c.Methods)),
		Warnings: c.Warnings,
	}
	for _, f := range c.Fixtures {
		info.Fixtures = append(info.Fixtures, f.Name)
	}
	for _, m := range c.Methods {
		info.Methods = append(info.Methods, MethodInfo{
			Name:       m.Name,
			Static:     m.Static,
			Scenarios:  len(m.Scenarios),
			Skipped:    m.IsSkipped(),
			SkipReason: m.SkipReason(),
		})
	}
	if msg, dup := validate.Fixtures(c.Fixtures, c.Name); dup {
		info.Invalid = msg
	}
	return info
}

func formatList(report ListReport) string {
	var b strings.Builder
	if len(report.Classes) == 0 {
		fmt.Fprintf(&b, "No contracts found in %s\n", report.Root)
		return b.String()
	}

	for _, c := range report.Classes {
		fmt.Fprintf(&b, "%s (%s)\n", c.Name, c.Package)
		if len(c.Fixtures) > 0 {
			fmt.Fprintf(&b, "  fixtures: %s\n", strings.Join(c.Fixtures, ", "))
		}
		for _, m := range c.Methods {
			kind := "method"
			if m.Static {
				kind = "func"
			}
			fmt.Fprintf(&b, "  %s %s: %d %s", kind, m.Name, m.Scenarios, plural(m.Scenarios, "scenario"))
			if m.Skipped {
				reason := m.SkipReason
				if reason == "" {
					reason = "no reason given"
				}
				fmt.Fprintf(&b, " (skipped: %s)", reason)
			}
			b.WriteString("\n")
		}
		for _, w := range c.Warnings {
			fmt.Fprintf(&b, "  warning: %s\n", w)
		}
		if c.Invalid != "" {
			fmt.Fprintf(&b, "  invalid: %s\n", c.Invalid)
		}
	}
	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
