package sure

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// ErrNotRegistered is returned by Load when no class was registered under the
// requested name.
var ErrNotRegistered = errors.New("class not registered")

var errorType = reflect.TypeFor[error]()

// Static names a package-level function associated with a class.
type Static struct {
	Name string
	Fn   any
}

// Func pairs a function value with the name it is declared under in source.
func Func(name string, fn any) Static {
	return Static{Name: name, Fn: fn}
}

// Class is the live side of a discovered class.
type Class struct {
	name    string
	ctor    reflect.Value
	statics map[string]reflect.Value
}

// Name returns the registered class name.
func (c *Class) Name() string {
	return c.name
}

// Constructor returns the constructor function, or the zero Value when the
// class was registered without one (package-level function groups).
func (c *Class) Constructor() reflect.Value {
	return c.ctor
}

// Static returns the function registered under name.
func (c *Class) Static(name string) (reflect.Value, bool) {
	fn, ok := c.statics[name]
	return fn, ok
}

type registration struct {
	ctor    any
	statics []Static
}

// Registry maps class names to constructors and static functions.
//
// Names may be plain ("Calculator") or qualified by import path
// ("example.com/calc.Calculator"); Load prefers the qualified form.
//
// Thread-safety: Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registration)}
}

// Register adds a class. ctor must be nil or a function returning the
// instance, optionally followed by an error. Registering a name twice is an
// error.
func (r *Registry) Register(name string, ctor any, statics ...Static) error {
	if name == "" {
		return fmt.Errorf("register: empty class name")
	}
	if ctor != nil {
		if err := checkConstructor(reflect.TypeOf(ctor)); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	seen := make(map[string]bool, len(statics))
	for _, s := range statics {
		if s.Name == "" {
			return fmt.Errorf("register %s: static function without a name", name)
		}
		if seen[s.Name] {
			return fmt.Errorf("register %s: static %q registered twice", name, s.Name)
		}
		seen[s.Name] = true
		if s.Fn == nil || reflect.TypeOf(s.Fn).Kind() != reflect.Func {
			return fmt.Errorf("register %s: static %q is not a function", name, s.Name)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("register %s: already registered", name)
	}
	r.entries[name] = registration{ctor: ctor, statics: append([]Static(nil), statics...)}
	return nil
}

// MustRegister is Register that panics on error. Intended for package-level
// registry construction.
func (r *Registry) MustRegister(name string, ctor any, statics ...Static) *Registry {
	if err := r.Register(name, ctor, statics...); err != nil {
		panic(err)
	}
	return r
}

// Load returns a freshly built Class for name. unit is the import path of
// the package the class was discovered in.
//
// Every call builds a new Class value, so no state survives between runs.
func (r *Registry) Load(name, unit string) (*Class, error) {
	r.mu.RLock()
	reg, ok := r.entries[unit+"."+name]
	if !ok {
		reg, ok = r.entries[name]
	}
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}

	c := &Class{
		name:    name,
		statics: make(map[string]reflect.Value, len(reg.statics)),
	}
	if reg.ctor != nil {
		c.ctor = reflect.ValueOf(reg.ctor)
	}
	for _, s := range reg.statics {
		c.statics[s.Name] = reflect.ValueOf(s.Fn)
	}
	return c, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkConstructor(t reflect.Type) error {
	if t.Kind() != reflect.Func {
		return fmt.Errorf("constructor is %s, not a function", t)
	}
	switch t.NumOut() {
	case 1:
		if t.Out(0) == errorType {
			return fmt.Errorf("constructor %s returns only an error", t)
		}
	case 2:
		if t.Out(1) != errorType {
			return fmt.Errorf("constructor %s: second result must be error", t)
		}
	default:
		return fmt.Errorf("constructor %s must return an instance and optionally an error", t)
	}
	return nil
}
