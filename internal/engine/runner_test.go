package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sure/internal/discover"
	"github.com/roach88/sure/internal/examples"
)

func run(t *testing.T, root string) *Result {
	t.Helper()
	res, err := NewRunner(RegistryLoader(examples.Registry())).Run(context.Background(), root)
	require.NoError(t, err)
	return res
}

func messages(outcomes []Outcome) map[string]string {
	out := make(map[string]string, len(outcomes))
	for _, o := range outcomes {
		out[o.Identifier] = o.Message
	}
	return out
}

func TestRunner_Calculator(t *testing.T) {
	res := run(t, "../examples/calc")

	assert.Empty(t, res.Failures)
	assert.Empty(t, res.Warnings)
	assert.Len(t, res.Passes, 10)
	assert.Contains(t, identifiers(res.Passes), "Calculator.Add - add5 - value check passed")
	assert.Contains(t, identifiers(res.Passes), "Calculator.Multiply - multiply3 - value check passed")
	assert.Contains(t, identifiers(res.Passes), "Calculator.Clone - clone is a calculator - type check passed")
	assert.Contains(t, identifiers(res.Passes), "Calculator.Base - scenario for Base - value check passed")
}

func TestRunner_StaticFactory(t *testing.T) {
	res := run(t, "../examples/money")

	assert.Empty(t, res.Failures)
	assert.Equal(t, []string{
		"Money.FromPence - factory returns money - type check passed",
		"Money.Pounds - pounds - value check passed",
		"Money.Pounds - small pounds - value check passed",
		"Money.Plus - plus - type check passed",
		"Money.Split - three ways - value check passed",
		"Money.String - formatted - value check passed",
	}, identifiers(res.Passes))
}

func TestRunner_FreeFunctions(t *testing.T) {
	res := run(t, "../examples/mathutil")

	assert.Empty(t, res.Failures)
	assert.Len(t, res.Passes, 9)
	assert.Contains(t, identifiers(res.Passes), "mathutil.Greet - scenario for Greet - value check passed")
	assert.Contains(t, identifiers(res.Passes), "mathutil.Lookup - missing key is nil - value check passed")
}

func TestRunner_Skips(t *testing.T) {
	res := run(t, "../examples/skipped")

	assert.Empty(t, res.Passes)
	assert.Empty(t, res.Failures)
	assert.Equal(t, map[string]string{
		"Parser.Parse - parses a word":        "WIP",
		"Parser.Parse - scenario for Parse":   "WIP",
		"Parser.Tokens - scenario for Tokens": "Skipped",
		"Parser.Strict - scenario for Strict": "Skipped",
	}, messages(res.Skips))
}

func TestRunner_DuplicateFixtures(t *testing.T) {
	res := run(t, "../examples/dupes")

	assert.Empty(t, res.Passes)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "Counter", res.Failures[0].Identifier)
	assert.Equal(t, `Duplicate fixture name "default" found 2 times on class "Counter"`, res.Failures[0].Message)
}

func TestRunner_Failures(t *testing.T) {
	res := run(t, "../examples/faulty")

	assert.Empty(t, res.Passes)

	got := messages(res.Failures)
	assert.Equal(t, "Failed to create fixture: negative size -1", got["Widget.broken"])
	assert.Equal(t, "Failed to create fixture: expected 1 argument, got 0", got["Widget.odd"])
	assert.Equal(t, "Expected 999, got 3", got["Widget.Size - wrong expectation"])
	assert.Equal(t, `Fixture "nope" not found for instance method`, got["Widget.Size - missing fixture"])
	assert.Equal(t, "Test execution failed: expected 0 arguments, got 1", got["Widget.Size - too many arguments"])
	assert.Equal(t, "Test execution failed: boom", got["Widget.Explode - explodes"])
	assert.Equal(t, "Test execution failed: widget failed", got["Widget.Fail - errors"])
	assert.Equal(t, "Unsupported type for runtime validation: func() int", got["Widget.Callback - function result"])
	assert.Equal(t, `Class "Ghost" not found in registry`, got["Ghost"])
	assert.Len(t, res.Failures, 9)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Widget", res.Warnings[0].Identifier)
	assert.True(t, strings.HasPrefix(res.Warnings[0].Message, "faulty.go:"), res.Warnings[0].Message)
	assert.Contains(t, res.Warnings[0].Message, "NewWidget: malformed arguments [1, 2, {]")
}

func TestRunner_WholeTree(t *testing.T) {
	res := run(t, "../examples")

	assert.Len(t, res.Passes, 25)
	assert.Len(t, res.Failures, 10)
	assert.Len(t, res.Warnings, 1)
	assert.Len(t, res.Skips, 4)
	assert.Equal(t, 40, res.Total())

	// Classes run in package path order.
	first := res.Outcomes()[0]
	assert.True(t, strings.HasPrefix(first.Identifier, "Calculator."), first.Identifier)
}

func TestRunner_SingleFile(t *testing.T) {
	res := run(t, "../examples/mathutil/mathutil.go")

	assert.Len(t, res.Passes, 9)
}

func TestRunner_InvalidPath(t *testing.T) {
	_, err := NewRunner(RegistryLoader(examples.Registry())).Run(context.Background(), "../examples/does-not-exist")

	require.Error(t, err)
	assert.True(t, discover.IsInvalidPath(err))
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(RegistryLoader(examples.Registry())).Run(ctx, "../examples/calc")

	assert.ErrorIs(t, err, context.Canceled)
}
