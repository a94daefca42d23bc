package harness

import (
	"github.com/roach88/sure/internal/engine"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool `json:"pass"`

	// Outcomes are the scan outcomes in traversal order.
	Outcomes []engine.Outcome `json:"outcomes"`

	// Summary is the plain-text report of the scan.
	Summary string `json:"summary"`

	// Errors contains assertion failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outcomes: []engine.Outcome{},
		Errors:   []string{},
	}
}

// AddError adds an assertion failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
