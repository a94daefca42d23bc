package conform

import "reflect"

// Runtime kinds, as they appear in mismatch messages.
const (
	KindString   = "string"
	KindNumber   = "number"
	KindBoolean  = "boolean"
	KindObject   = "object"
	KindFunction = "function"
	KindComplex  = "complex"
	KindChannel  = "channel"
	KindNil      = "nil"
)

// RuntimeKind classifies v. Pointers are followed to their referent, so a
// *int is a number.
func RuntimeKind(v reflect.Value) string {
	v = deref(v)
	if isNil(v) {
		return KindNil
	}

	switch v.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Complex64, reflect.Complex128:
		return KindComplex
	case reflect.Func:
		return KindFunction
	case reflect.Chan:
		return KindChannel
	}
	return KindObject
}

// isNil reports whether v is absent: invalid, or a nil pointer, interface,
// slice, map, func or chan.
func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// deref follows non-nil pointers and interfaces.
func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// objectLike reports whether v has structure. Interface objects accept any
// non-nil value.
func objectLike(v reflect.Value, iface bool) bool {
	if isNil(v) {
		return false
	}
	if iface {
		return true
	}
	switch deref(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// typeName is the nominal name of t with pointers removed.
func typeName(t reflect.Type) string {
	t = indirect(t)
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
