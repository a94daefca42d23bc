package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/sure/internal/engine"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Outcomes []engine.Outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nOutcomes:\n")
	for _, o := range e.Outcomes {
		fmt.Fprintf(&buf, "  [%d] %s %s", o.Seq, o.Status, o.Identifier)
		if o.Message != "" {
			fmt.Fprintf(&buf, ": %s", o.Message)
		}
		buf.WriteByte('\n')
	}

	return buf.String()
}

// assertOutcome checks that an outcome with the identifier exists and, when
// given, has the status and message.
func assertOutcome(outcomes []engine.Outcome, a Assertion) error {
	var seen []string
	for _, o := range outcomes {
		if o.Identifier != a.Identifier {
			continue
		}
		if a.Status != "" && o.Status != a.Status {
			seen = append(seen, fmt.Sprintf("status %s", o.Status))
			continue
		}
		if a.Message != "" && o.Message != a.Message {
			seen = append(seen, fmt.Sprintf("message %q", o.Message))
			continue
		}
		if a.Contains != "" && !strings.Contains(o.Message, a.Contains) {
			seen = append(seen, fmt.Sprintf("message %q", o.Message))
			continue
		}
		return nil
	}

	actual := "not found"
	if len(seen) > 0 {
		actual = "found with " + strings.Join(seen, ", ")
	}
	return &AssertionError{
		Type:     AssertOutcome,
		Expected: describeOutcome(a),
		Actual:   actual,
		Outcomes: outcomes,
	}
}

// assertCount checks that exactly Count outcomes have the status.
func assertCount(outcomes []engine.Outcome, a Assertion) error {
	count := 0
	for _, o := range outcomes {
		if o.Status == a.Status {
			count++
		}
	}

	if count != a.Count {
		return &AssertionError{
			Type:     AssertCount,
			Expected: fmt.Sprintf("%d %s outcomes", a.Count, a.Status),
			Actual:   fmt.Sprintf("%d %s outcomes", count, a.Status),
			Outcomes: outcomes,
		}
	}
	return nil
}

// assertOrder checks that the identifiers appear in order. They don't need
// to be consecutive.
func assertOrder(outcomes []engine.Outcome, a Assertion) error {
	positions := make(map[string]int)
	for i, o := range outcomes {
		if _, ok := positions[o.Identifier]; !ok {
			positions[o.Identifier] = i + 1
		}
	}

	for _, id := range a.Identifiers {
		if positions[id] == 0 {
			return &AssertionError{
				Type:     AssertOrder,
				Expected: fmt.Sprintf("all outcomes present: %v", a.Identifiers),
				Actual:   fmt.Sprintf("missing outcome: %s", id),
				Outcomes: outcomes,
			}
		}
	}

	for i := 1; i < len(a.Identifiers); i++ {
		prev, curr := a.Identifiers[i-1], a.Identifiers[i]
		if positions[prev] >= positions[curr] {
			return &AssertionError{
				Type:     AssertOrder,
				Expected: fmt.Sprintf("outcomes in order: %v", a.Identifiers),
				Actual: fmt.Sprintf("%s (pos %d) should be before %s (pos %d)",
					prev, positions[prev], curr, positions[curr]),
				Outcomes: outcomes,
			}
		}
	}
	return nil
}

func describeOutcome(a Assertion) string {
	var b strings.Builder
	b.WriteString(a.Identifier)
	if a.Status != "" {
		fmt.Fprintf(&b, " with status %s", a.Status)
	}
	if a.Message != "" {
		fmt.Fprintf(&b, " and message %q", a.Message)
	}
	if a.Contains != "" {
		fmt.Fprintf(&b, " and message containing %q", a.Contains)
	}
	return b.String()
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errors []string

	for i, a := range assertions {
		var err error

		switch a.Type {
		case AssertOutcome:
			err = assertOutcome(result.Outcomes, a)
		case AssertCount:
			err = assertCount(result.Outcomes, a)
		case AssertOrder:
			err = assertOrder(result.Outcomes, a)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, a.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
