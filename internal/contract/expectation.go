package contract

import "github.com/roach88/sure/internal/literal"

// Expectation says how a scenario's result is judged.
// Only TypeCheckOnly and Literal implement it.
type Expectation interface {
	expectation() // Sealed
}

// TypeCheckOnly checks the result against the declared return type.
type TypeCheckOnly struct{}

func (TypeCheckOnly) expectation() {}

// Literal compares the result to Value with strict equality.
type Literal struct {
	Value literal.Value
}

func (Literal) expectation() {}

// Expect wraps a decoded literal. An undefined (nil) value means no
// expectation was written and yields TypeCheckOnly.
func Expect(v literal.Value) Expectation {
	if v == nil {
		return TypeCheckOnly{}
	}
	return Literal{Value: v}
}

// DescribeExpectation renders e for listings.
func DescribeExpectation(e Expectation) string {
	if lit, ok := e.(Literal); ok {
		return literal.Render(lit.Value)
	}
	return "type check"
}
