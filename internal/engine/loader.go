package engine

import (
	"reflect"

	"github.com/roach88/sure"
)

// Class is the live side of a discovered class.
type Class interface {
	// Constructor returns the constructor, or the zero Value when the
	// class has none.
	Constructor() reflect.Value

	// Static returns the package-level function registered under name.
	Static(name string) (reflect.Value, bool)
}

// Loader resolves a discovered class to live code.
//
// Every Load must reflect the code as it is now: a Loader never hands out
// state left over from an earlier run.
type Loader interface {
	Load(name, unit string) (Class, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(name, unit string) (Class, error)

// Load implements Loader.
func (f LoaderFunc) Load(name, unit string) (Class, error) {
	return f(name, unit)
}

// RegistryLoader loads classes from a sure.Registry.
func RegistryLoader(r *sure.Registry) Loader {
	return LoaderFunc(func(name, unit string) (Class, error) {
		c, err := r.Load(name, unit)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
