package contract

import (
	"slices"

	"github.com/roach88/sure/internal/literal"
)

// DefaultName is the fixture name used when none is given, and the fixture
// a scenario runs against when it names no instance.
const DefaultName = "default"

// Scenario is one call of a method with fixed arguments and an expectation.
type Scenario struct {
	// Description names the scenario in outcome identifiers. Empty means
	// absent.
	Description string

	// Args are passed positionally.
	Args []literal.Value

	Expect Expectation

	// Instance is the fixture the scenario runs against. Ignored for
	// static methods.
	Instance string
}

// NewScenario builds a Scenario, applying defaults: a nil expectation is
// TypeCheckOnly and an empty instance is DefaultName.
func NewScenario(description string, args []literal.Value, expect Expectation, instance string) Scenario {
	if expect == nil {
		expect = TypeCheckOnly{}
	}
	if instance == "" {
		instance = DefaultName
	}
	return Scenario{
		Description: description,
		Args:        copyArgs(args),
		Expect:      expect,
		Instance:    instance,
	}
}

// Fixture is a named recipe for building an instance of a class.
//
// Factory is the function the fixture was declared on. Empty means the
// registered constructor.
type Fixture struct {
	Scenario
	Name    string
	Factory string
}

// NewFixture builds a Fixture. An empty name is DefaultName. The embedded
// scenario targets the fixture itself.
func NewFixture(name string, args []literal.Value) Fixture {
	if name == "" {
		name = DefaultName
	}
	return Fixture{
		Scenario: NewScenario("", args, TypeCheckOnly{}, name),
		Name:     name,
	}
}

// WithDescription returns a copy of f with the scenario description set.
func (f Fixture) WithDescription(description string) Fixture {
	f.Description = description
	f.Args = copyArgs(f.Args)
	return f
}

// WithExpect returns a copy of f with the scenario expectation set.
func (f Fixture) WithExpect(e Expectation) Fixture {
	if e == nil {
		e = TypeCheckOnly{}
	}
	f.Expect = e
	f.Args = copyArgs(f.Args)
	return f
}

// WithFactory returns a copy of f built by the named function.
func (f Fixture) WithFactory(factory string) Fixture {
	f.Factory = factory
	f.Args = copyArgs(f.Args)
	return f
}

func copyArgs(args []literal.Value) []literal.Value {
	if args == nil {
		return []literal.Value{}
	}
	return slices.Clone(args)
}
