package engine

import (
	"fmt"
	"reflect"

	"github.com/roach88/sure/internal/literal"
)

var errorType = reflect.TypeFor[error]()

// invoke calls fn with args converted to its parameter types.
//
// The returned Value is the first result, or the zero Value for functions
// without results. A trailing error result is not part of the value: when it
// is non-nil it is returned as the error. Several value results come back as
// a []any. Panics are recovered into *PanicError.
func invoke(fn reflect.Value, args []literal.Value) (out reflect.Value, err error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return reflect.Value{}, fmt.Errorf("not a function")
	}

	in, err := convertArgs(fn.Type(), args)
	if err != nil {
		return reflect.Value{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = reflect.Value{}, &PanicError{Value: r}
		}
	}()

	results := fn.Call(in)

	n := len(results)
	if n > 0 && fn.Type().Out(n-1) == errorType {
		if e := results[n-1]; !e.IsNil() {
			return reflect.Value{}, e.Interface().(error)
		}
		results = results[:n-1]
	}

	switch len(results) {
	case 0:
		return reflect.Value{}, nil
	case 1:
		return results[0], nil
	}
	tuple := make([]any, len(results))
	for i, r := range results {
		tuple[i] = r.Interface()
	}
	return reflect.ValueOf(tuple), nil
}

func convertArgs(ft reflect.Type, args []literal.Value) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, &ArityError{Want: fixed, Got: len(args), Variadic: true}
		}
	} else if len(args) != fixed {
		return nil, &ArityError{Want: fixed, Got: len(args)}
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(fixed).Elem()
		}
		v, err := literal.To(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		in[i] = v
	}
	return in, nil
}

// method returns the method name bound to instance. Pointer-receiver
// methods are reachable from value instances through an addressable copy.
// Instances held in an interface are looked up on their dynamic value.
func method(instance reflect.Value, name string) reflect.Value {
	for instance.IsValid() && instance.Kind() == reflect.Interface {
		instance = instance.Elem()
	}
	if !instance.IsValid() {
		return reflect.Value{}
	}
	if m := instance.MethodByName(name); m.IsValid() {
		return m
	}
	if instance.Kind() != reflect.Pointer {
		p := reflect.New(instance.Type())
		p.Elem().Set(instance)
		return p.MethodByName(name)
	}
	return reflect.Value{}
}

// interfaceOf returns the Go value held by v, or nil for the zero Value.
func interfaceOf(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
