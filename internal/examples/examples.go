// Package examples registers the annotated sample packages.
package examples

import (
	"github.com/roach88/sure"
	"github.com/roach88/sure/internal/examples/calc"
	"github.com/roach88/sure/internal/examples/dupes"
	"github.com/roach88/sure/internal/examples/faulty"
	"github.com/roach88/sure/internal/examples/mathutil"
	"github.com/roach88/sure/internal/examples/money"
	"github.com/roach88/sure/internal/examples/skipped"
)

const base = "github.com/roach88/sure/internal/examples/"

// Registry returns a registry holding every sample class. faulty.Ghost is
// left out on purpose.
func Registry() *sure.Registry {
	return sure.NewRegistry().
		MustRegister(base+"calc.Calculator", calc.NewCalculator).
		MustRegister(base+"money.Money", nil, sure.Func("FromPence", money.FromPence)).
		MustRegister(base+"skipped.Parser", skipped.NewParser).
		MustRegister(base+"mathutil.mathutil", nil,
			sure.Func("Sum", mathutil.Sum),
			sure.Func("Greet", mathutil.Greet),
			sure.Func("Words", mathutil.Words),
			sure.Func("Even", mathutil.Even),
			sure.Func("Lookup", mathutil.Lookup),
		).
		MustRegister(base+"dupes.Counter", dupes.NewCounter).
		MustRegister(base+"faulty.Widget", faulty.NewWidget)
}
