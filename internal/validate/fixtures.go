// Package validate checks discovered metadata before anything runs.
package validate

import (
	"fmt"

	"github.com/roach88/sure/internal/contract"
)

// ValidationError reports metadata that makes a class unrunnable.
type ValidationError struct {
	// Owner is the class the problem was found on.
	Owner string

	// Message is the full, user-facing description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Fixtures reports the first duplicated fixture name on owner.
//
// Names are counted in order of first appearance; unnamed fixtures count as
// contract.DefaultName. Only one duplicate is reported even when several
// names collide.
func Fixtures(fixtures []contract.Fixture, owner string) (string, bool) {
	counts := make(map[string]int, len(fixtures))
	order := make([]string, 0, len(fixtures))

	for _, f := range fixtures {
		name := f.Name
		if name == "" {
			name = contract.DefaultName
		}
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	for _, name := range order {
		if n := counts[name]; n > 1 {
			return fmt.Sprintf("Duplicate fixture name %q found %d times on class %q", name, n, owner), true
		}
	}
	return "", false
}

// FixturesError is Fixtures returning a *ValidationError.
func FixturesError(fixtures []contract.Fixture, owner string) error {
	if msg, found := Fixtures(fixtures, owner); found {
		return &ValidationError{Owner: owner, Message: msg}
	}
	return nil
}
