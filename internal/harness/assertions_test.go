package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/sure/internal/engine"
)

var sampleOutcomes = []engine.Outcome{
	{Seq: 1, Status: engine.StatusWarn, Identifier: "Widget", Message: "NewWidget: malformed arguments"},
	{Seq: 2, Status: engine.StatusPass, Identifier: "Widget.Size - size - value check passed"},
	{Seq: 3, Status: engine.StatusFail, Identifier: "Widget.Size - wrong", Message: "Expected 999, got 3"},
	{Seq: 4, Status: engine.StatusSkip, Identifier: "Widget.Grow - scenario for Grow", Message: "WIP"},
}

func TestAssertOutcome(t *testing.T) {
	tests := []struct {
		name string
		a    Assertion
		ok   bool
	}{
		{"identifier only", Assertion{Identifier: "Widget.Size - wrong"}, true},
		{"status and message", Assertion{Identifier: "Widget.Size - wrong", Status: engine.StatusFail, Message: "Expected 999, got 3"}, true},
		{"contains", Assertion{Identifier: "Widget", Contains: "malformed"}, true},
		{"wrong status", Assertion{Identifier: "Widget.Size - wrong", Status: engine.StatusPass}, false},
		{"wrong message", Assertion{Identifier: "Widget.Size - wrong", Message: "Expected 1, got 3"}, false},
		{"missing", Assertion{Identifier: "Gadget"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := assertOutcome(sampleOutcomes, tt.a)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var ae *AssertionError
			assert.ErrorAs(t, err, &ae)
		})
	}
}

func TestAssertOutcome_ReportsNearMiss(t *testing.T) {
	err := assertOutcome(sampleOutcomes, Assertion{Identifier: "Widget.Size - wrong", Status: engine.StatusPass})
	assert.ErrorContains(t, err, "found with status fail")
}

func TestAssertCount(t *testing.T) {
	assert.NoError(t, assertCount(sampleOutcomes, Assertion{Status: engine.StatusPass, Count: 1}))
	assert.NoError(t, assertCount(sampleOutcomes, Assertion{Status: engine.StatusWarn, Count: 1}))

	err := assertCount(sampleOutcomes, Assertion{Status: engine.StatusFail, Count: 2})
	assert.ErrorContains(t, err, "Expected: 2 fail outcomes")
	assert.ErrorContains(t, err, "Actual: 1 fail outcomes")
}

func TestAssertOrder(t *testing.T) {
	ok := Assertion{Identifiers: []string{"Widget", "Widget.Size - wrong", "Widget.Grow - scenario for Grow"}}
	assert.NoError(t, assertOrder(sampleOutcomes, ok))

	reversed := Assertion{Identifiers: []string{"Widget.Size - wrong", "Widget"}}
	assert.ErrorContains(t, assertOrder(sampleOutcomes, reversed), "should be before")

	missing := Assertion{Identifiers: []string{"Widget", "Gadget"}}
	assert.ErrorContains(t, assertOrder(sampleOutcomes, missing), "missing outcome: Gadget")
}

func TestAssertionError_ListsOutcomes(t *testing.T) {
	err := &AssertionError{Type: AssertCount, Expected: "a", Actual: "b", Outcomes: sampleOutcomes[:2]}

	want := "Assertion failed: count\n" +
		"  Expected: a\n" +
		"  Actual: b\n" +
		"\nOutcomes:\n" +
		"  [1] warn Widget: NewWidget: malformed arguments\n" +
		"  [2] pass Widget.Size - size - value check passed\n"
	assert.Equal(t, want, err.Error())
}

func TestEvaluateAssertions(t *testing.T) {
	result := NewResult()
	result.Outcomes = sampleOutcomes

	errs := EvaluateAssertions(result, []Assertion{
		{Type: AssertCount, Status: engine.StatusSkip, Count: 1},
		{Type: AssertCount, Status: engine.StatusSkip, Count: 3},
		{Type: "final_state"},
	})

	assert.Len(t, errs, 2)
	assert.Contains(t, errs[1], `unknown assertion type "final_state"`)
}
