package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/roach88/sure"
	"github.com/roach88/sure/internal/conform"
	"github.com/roach88/sure/internal/contract"
	"github.com/roach88/sure/internal/literal"
	"github.com/roach88/sure/internal/typedesc"
)

// TypeResolver answers type questions about declarations.
type TypeResolver interface {
	conform.Resolver

	// ReturnType describes the value produced by calling d.
	ReturnType(d contract.Declaration) (typedesc.Type, error)
}

// Executor runs the scenarios of one class at a time.
//
// Thread-safety: an Executor holds no per-class state and may be reused
// across classes, but each ExecuteClass call runs on the calling goroutine
// and user code is not expected to be concurrency-safe.
type Executor struct {
	loader Loader
	clock  *Clock
}

// NewExecutor creates an executor loading classes from loader. Outcomes are
// stamped from clock; nil gets a private clock.
func NewExecutor(loader Loader, clock *Clock) *Executor {
	if clock == nil {
		clock = NewClock()
	}
	return &Executor{loader: loader, clock: clock}
}

// ExecuteClass loads class, builds its fixtures and runs its scenarios.
//
// Failures never escape: each becomes a Fail outcome scoped to the class,
// the fixture or the scenario it happened in.
func (e *Executor) ExecuteClass(ctx context.Context, class contract.ClassRecord, types TypeResolver) *Result {
	res := NewResult(e.clock)

	live, err := e.loader.Load(class.Name, class.Package)
	if err != nil {
		msg := fmt.Sprintf("Failed to load class: %v", err)
		if errors.Is(err, sure.ErrNotRegistered) {
			msg = fmt.Sprintf("Class %q not found in registry", class.Name)
		}
		slog.Warn("class load failed", "class", class.Name, "package", class.Package, "error", err)
		res.fail(class.Name, msg)
		return res
	}

	instances := e.buildFixtures(class, live, res)
	self := selfType(class, live)

	for _, m := range class.Methods {
		e.executeMethod(ctx, class.Name, m, live, instances, self, types, res)
	}

	slog.Debug("class executed",
		"class", class.Name,
		"passed", len(res.Passes),
		"failed", len(res.Failures),
		"skipped", len(res.Skips),
	)
	return res
}

// buildFixtures constructs every fixture of class. Later fixtures replace
// earlier ones with the same name.
func (e *Executor) buildFixtures(class contract.ClassRecord, live Class, res *Result) map[string]reflect.Value {
	instances := make(map[string]reflect.Value, len(class.Fixtures))

	for _, f := range class.Fixtures {
		id := class.Name + "." + f.Name

		fn, err := factory(live, f)
		if err == nil {
			var instance reflect.Value
			instance, err = invoke(fn, f.Args)
			if err == nil {
				instances[f.Name] = instance
				slog.Debug("fixture built", "fixture", id)
				continue
			}
		}
		res.fail(id, fmt.Sprintf("Failed to create fixture: %v", err))
	}
	return instances
}

func (e *Executor) executeMethod(
	ctx context.Context,
	className string,
	m contract.MethodRecord,
	live Class,
	instances map[string]reflect.Value,
	self reflect.Type,
	types TypeResolver,
	res *Result,
) {
	if m.IsSkipped() {
		reason := m.SkipReason()
		if reason == "" {
			reason = "Skipped"
		}
		for _, s := range m.Scenarios {
			res.skip(identifier(className, m.Name, s), reason)
		}
		return
	}

	for _, s := range m.Scenarios {
		if ctx.Err() != nil {
			return
		}
		id := identifier(className, m.Name, s)

		var fn reflect.Value
		if m.Static {
			fn, _ = live.Static(m.Name)
		} else {
			instance, ok := instances[s.Instance]
			if !ok {
				res.fail(id, fmt.Sprintf("Fixture %q not found for instance method", s.Instance))
				continue
			}
			fn = method(instance, m.Name)
		}
		if !fn.IsValid() || fn.Kind() != reflect.Func {
			res.fail(id, fmt.Sprintf("Method %q not found or not a function", m.Name))
			continue
		}

		slog.Debug("executing scenario", "id", id)

		out, err := invoke(fn, s.Args)
		if err != nil {
			res.fail(id, fmt.Sprintf("Test execution failed: %v", err))
			continue
		}

		e.classify(id, m, s, out, self, types, res)
	}
}

func (e *Executor) classify(
	id string,
	m contract.MethodRecord,
	s contract.Scenario,
	out reflect.Value,
	self reflect.Type,
	types TypeResolver,
	res *Result,
) {
	result := interfaceOf(out)

	switch expect := s.Expect.(type) {
	case contract.Literal:
		got, err := literal.FromGo(result)
		if err != nil {
			res.fail(id, fmt.Sprintf("Expected %s, got %s", literal.Render(expect.Value), describe(out)))
			return
		}
		if !literal.Equal(expect.Value, got) {
			res.fail(id, fmt.Sprintf("Expected %s, got %s", literal.Render(expect.Value), literal.Render(got)))
			return
		}
		res.pass(id + " - value check passed")

	default:
		t, err := types.ReturnType(m.Decl)
		if err != nil {
			res.fail(id, fmt.Sprintf("Test execution failed: %v", err))
			return
		}
		if err := conform.Check(result, t, types, self); err != nil {
			res.fail(id, err.Error())
			return
		}
		res.pass(id + " - type check passed")
	}
}

// factory picks the function that builds f.
func factory(live Class, f contract.Fixture) (reflect.Value, error) {
	if f.Factory != "" {
		fn, ok := live.Static(f.Factory)
		if !ok {
			return reflect.Value{}, fmt.Errorf("factory %q not registered", f.Factory)
		}
		return fn, nil
	}
	ctor := live.Constructor()
	if !ctor.IsValid() {
		return reflect.Value{}, ErrNoConstructor
	}
	return ctor, nil
}

// selfType is the type instances of the class have: the constructor
// result, or failing that the result of the first registered factory.
func selfType(class contract.ClassRecord, live Class) reflect.Type {
	if ctor := live.Constructor(); ctor.IsValid() && ctor.Type().NumOut() > 0 {
		return ctor.Type().Out(0)
	}
	for _, f := range class.Fixtures {
		if f.Factory == "" {
			continue
		}
		if fn, ok := live.Static(f.Factory); ok && fn.Type().NumOut() > 0 {
			return fn.Type().Out(0)
		}
	}
	return nil
}

func identifier(className, methodName string, s contract.Scenario) string {
	desc := s.Description
	if desc == "" {
		desc = "scenario for " + methodName
	}
	return fmt.Sprintf("%s.%s - %s", className, methodName, desc)
}

func describe(v reflect.Value) string {
	if !v.IsValid() {
		return "undefined"
	}
	return v.Type().String()
}
