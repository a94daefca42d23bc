package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Status classifies an outcome.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
	StatusWarn Status = "warn"
)

// Outcome is one entry in a run's results.
type Outcome struct {
	// Seq orders outcomes across buckets.
	Seq int64 `json:"seq"`

	Status     Status `json:"status"`
	Identifier string `json:"identifier"`

	// Message explains failures, skips and warnings. Empty for passes.
	Message string `json:"message,omitempty"`
}

// Result holds the outcomes of a run, bucketed by status. Each bucket keeps
// traversal order.
type Result struct {
	Passes   []Outcome `json:"passes"`
	Failures []Outcome `json:"failures"`
	Skips    []Outcome `json:"skips"`
	Warnings []Outcome `json:"warnings"`

	clock *Clock
}

// NewResult creates an empty result stamping outcomes from clock. A nil
// clock gets a private one.
func NewResult(clock *Clock) *Result {
	if clock == nil {
		clock = NewClock()
	}
	return &Result{
		Passes:   []Outcome{},
		Failures: []Outcome{},
		Skips:    []Outcome{},
		Warnings: []Outcome{},
		clock:    clock,
	}
}

func (r *Result) pass(id string) {
	r.add(StatusPass, id, "")
}

func (r *Result) fail(id, msg string) {
	r.add(StatusFail, id, msg)
}

func (r *Result) skip(id, msg string) {
	r.add(StatusSkip, id, msg)
}

func (r *Result) warn(id, msg string) {
	r.add(StatusWarn, id, msg)
}

func (r *Result) add(status Status, id, msg string) {
	if r.clock == nil {
		r.clock = NewClock()
	}
	o := Outcome{Seq: r.clock.Next(), Status: status, Identifier: id, Message: msg}
	switch status {
	case StatusPass:
		r.Passes = append(r.Passes, o)
	case StatusFail:
		r.Failures = append(r.Failures, o)
	case StatusSkip:
		r.Skips = append(r.Skips, o)
	case StatusWarn:
		r.Warnings = append(r.Warnings, o)
	}
}

// Merge appends the outcomes of other, keeping their stamps.
func (r *Result) Merge(other *Result) {
	r.Passes = append(r.Passes, other.Passes...)
	r.Failures = append(r.Failures, other.Failures...)
	r.Skips = append(r.Skips, other.Skips...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Total counts every outcome.
func (r *Result) Total() int {
	return len(r.Passes) + len(r.Failures) + len(r.Skips) + len(r.Warnings)
}

// HasFailures reports whether any outcome failed.
func (r *Result) HasFailures() bool {
	return len(r.Failures) > 0
}

// Outcomes returns every outcome in traversal order.
func (r *Result) Outcomes() []Outcome {
	all := make([]Outcome, 0, r.Total())
	all = append(all, r.Passes...)
	all = append(all, r.Failures...)
	all = append(all, r.Skips...)
	all = append(all, r.Warnings...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].Seq < all[j].Seq })
	return all
}

// Summary renders the result as plain text:
//
//	Sure Scan Results:
//	  Passed: 1
//	  Failed: 1
//	  Warnings: 0
//	  Skipped: 0
//	  Total: 2
//
//	Failures:
//	  - FAIL: Calculator.Add - add5 - Expected 999, got 15
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sure Scan Results:\n")
	fmt.Fprintf(&b, "  Passed: %d\n", len(r.Passes))
	fmt.Fprintf(&b, "  Failed: %d\n", len(r.Failures))
	fmt.Fprintf(&b, "  Warnings: %d\n", len(r.Warnings))
	fmt.Fprintf(&b, "  Skipped: %d\n", len(r.Skips))
	fmt.Fprintf(&b, "  Total: %d\n", r.Total())

	section := func(title, label string, outcomes []Outcome) {
		if len(outcomes) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", title)
		for _, o := range outcomes {
			fmt.Fprintf(&b, "  - %s: %s - %s\n", label, o.Identifier, o.Message)
		}
	}
	section("Failures", "FAIL", r.Failures)
	section("Warnings", "WARN", r.Warnings)
	section("Skipped", "SKIP", r.Skips)

	return b.String()
}
