package conform

import (
	"fmt"
	"reflect"

	"github.com/roach88/sure/internal/typedesc"
)

// Resolver renders declared types for messages. A nil Resolver falls back
// to the descriptor's own String.
type Resolver interface {
	TypeString(t typedesc.Type) string
}

// Check reports whether value conforms to t.
//
// self is the type produced by the class constructor. When non-nil, Object
// descriptors carrying the Self marker require the value to be of that type;
// pointer and value forms of the same named type are interchangeable.
func Check(value any, t typedesc.Type, r Resolver, self reflect.Type) error {
	return check(reflect.ValueOf(value), t, r, self)
}

func check(v reflect.Value, t typedesc.Type, r Resolver, self reflect.Type) error {
	if isNil(v) {
		if typedesc.Nullable(t) {
			return nil
		}
		return mismatch(fmt.Sprintf("Expected %s, got nil", typeString(r, t)), typeString(r, t), KindNil)
	}

	switch tt := t.(type) {
	case typedesc.Any:
		return nil

	case typedesc.Primitive:
		want := tt.Kind.String()
		got := RuntimeKind(v)
		if got != want {
			return mismatch(fmt.Sprintf("Expected %s, got %s", want, got), want, got)
		}
		return nil

	case typedesc.Union:
		for _, m := range tt.Members {
			if check(v, m, r, self) == nil {
				return nil
			}
		}
		name := typeString(r, t)
		return mismatch(fmt.Sprintf("Value does not match any type in union %s", name), name, RuntimeKind(v))

	case typedesc.Intersection:
		for _, m := range tt.Members {
			if err := check(v, m, r, self); err != nil {
				return err
			}
		}
		return nil

	case typedesc.Object:
		if !objectLike(v, tt.Interface) {
			got := RuntimeKind(v)
			return mismatch(fmt.Sprintf("Expected object, got %s", got), KindObject, got)
		}
		if tt.Self && self != nil {
			if indirect(v.Type()) != indirect(self) {
				want, got := typeName(self), typeName(v.Type())
				return mismatch(fmt.Sprintf("Expected instance of %s, got %s", want, got), want, got)
			}
		}
		return nil
	}

	name := typeString(r, t)
	return &UnsupportedError{
		Message: fmt.Sprintf("Unsupported type for runtime validation: %s", name),
		Type:    name,
	}
}

func mismatch(msg, expected, actual string) *MismatchError {
	return &MismatchError{Message: msg, Expected: expected, Actual: actual}
}

func typeString(r Resolver, t typedesc.Type) string {
	if r != nil {
		return r.TypeString(t)
	}
	return t.String()
}
