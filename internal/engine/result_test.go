package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Summary(t *testing.T) {
	r := NewResult(nil)
	r.pass("Calculator.Add - add5 - value check passed")
	r.fail("Calculator.Add - wrong", "Expected 999, got 15")
	r.warn("Calculator", "NewCalculator: malformed arguments")
	r.skip("Parser.Parse - scenario for Parse", "WIP")

	want := `Sure Scan Results:
  Passed: 1
  Failed: 1
  Warnings: 1
  Skipped: 1
  Total: 4

Failures:
  - FAIL: Calculator.Add - wrong - Expected 999, got 15

Warnings:
  - WARN: Calculator - NewCalculator: malformed arguments

Skipped:
  - SKIP: Parser.Parse - scenario for Parse - WIP
`
	assert.Equal(t, want, r.Summary())
}

func TestResult_SummaryEmpty(t *testing.T) {
	want := `Sure Scan Results:
  Passed: 0
  Failed: 0
  Warnings: 0
  Skipped: 0
  Total: 0
`
	assert.Equal(t, want, NewResult(nil).Summary())
}

func TestResult_OutcomesKeepTraversalOrder(t *testing.T) {
	r := NewResult(nil)
	r.fail("a", "x")
	r.pass("b")
	r.skip("c", "y")
	r.pass("d")

	var ids []string
	for _, o := range r.Outcomes() {
		ids = append(ids, o.Identifier)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
	assert.Equal(t, 4, r.Total())
	assert.True(t, r.HasFailures())
}

func TestResult_MergeKeepsStamps(t *testing.T) {
	clock := NewClock()
	a := NewResult(clock)
	b := NewResult(clock)

	a.pass("first")
	b.fail("second", "x")
	a.pass("third")
	a.Merge(b)

	outcomes := a.Outcomes()
	assert.Equal(t, "second", outcomes[1].Identifier)
	assert.Equal(t, int64(2), outcomes[1].Seq)
	assert.Equal(t, 3, a.Total())
}

func TestResult_ZeroValueUsable(t *testing.T) {
	var r Result
	r.pass("x")
	assert.Equal(t, int64(1), r.Passes[0].Seq)
	assert.False(t, r.HasFailures())
}
