package literal

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDepth bounds FromGo recursion. Values nested deeper, including cyclic
// pointer graphs, are rejected.
const MaxDepth = 64

// ErrConvert is wrapped by every conversion failure in To.
var ErrConvert = errors.New("cannot convert literal")

var valueType = reflect.TypeFor[Value]()

// FromGo converts a Go value produced by user code into a literal.
//
// Structs become objects keyed by their json tag or field name; unexported
// fields are ignored. Nil pointers, slices, maps and interfaces become Null.
// Functions, channels and complex numbers have no literal form.
func FromGo(v any) (Value, error) {
	if lit, ok := v.(Value); ok {
		return lit, nil
	}
	return fromReflect(reflect.ValueOf(v), 0)
}

func fromReflect(rv reflect.Value, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("value nested deeper than %d levels", MaxDepth)
	}
	if !rv.IsValid() {
		return Null{}, nil
	}
	if rv.Type().Implements(valueType) && rv.CanInterface() {
		if lit, ok := rv.Interface().(Value); ok && lit != nil {
			return lit, nil
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return fromReflect(rv.Elem(), depth+1)

	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u)), nil
		}
		return Int(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil

	case reflect.String:
		return String(rv.String()), nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null{}, nil
		}
		arr := make(Array, rv.Len())
		for i := range arr {
			elem, err := fromReflect(rv.Index(i), depth+1)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = elem
		}
		return arr, nil

	case reflect.Map:
		if rv.IsNil() {
			return Null{}, nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("map key type %s is not a string", rv.Type().Key())
		}
		obj := make(Object, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			elem, err := fromReflect(iter.Value(), depth+1)
			if err != nil {
				return nil, fmt.Errorf("[%q]: %w", k, err)
			}
			obj[k] = elem
		}
		return obj, nil

	case reflect.Struct:
		obj := make(Object)
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name, ok := fieldName(f)
			if !ok {
				continue
			}
			elem, err := fromReflect(rv.Field(i), depth+1)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
			obj[name] = elem
		}
		return obj, nil
	}

	return nil, fmt.Errorf("%s has no literal form", rv.Type())
}

// fieldName returns the object key for a struct field, honouring json tags.
func fieldName(f reflect.StructField) (string, bool) {
	if !f.IsExported() {
		return "", false
	}
	if tag, ok := f.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
	return f.Name, true
}

// To converts v into a value of type t, suitable for passing as an argument
// to a reflected function.
//
// Conversion is strict: strings never become numbers and numbers never become
// strings. An integral Float converts to integer types. Null converts to the
// zero value of nilable types only. A nil (undefined) Value yields the zero
// value of t.
func To(v Value, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	if t == valueType {
		return reflect.ValueOf(&v).Elem(), nil
	}

	if _, isNull := v.(Null); isNull {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, mismatch(v, t)
	}

	out := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Interface:
		native := reflect.ValueOf(Native(v))
		if !native.Type().AssignableTo(t) {
			return reflect.Value{}, mismatch(v, t)
		}
		out.Set(native)

	case reflect.Pointer:
		elem, err := To(v, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(elem)
		out.Set(p)

	case reflect.Bool:
		b, ok := v.(Bool)
		if !ok {
			return reflect.Value{}, mismatch(v, t)
		}
		out.SetBool(bool(b))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := integral(v)
		if !ok || out.OverflowInt(i) {
			return reflect.Value{}, mismatch(v, t)
		}
		out.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, ok := integral(v)
		if !ok || i < 0 || out.OverflowUint(uint64(i)) {
			return reflect.Value{}, mismatch(v, t)
		}
		out.SetUint(uint64(i))

	case reflect.Float32, reflect.Float64:
		switch n := v.(type) {
		case Int:
			out.SetFloat(float64(n))
		case Float:
			out.SetFloat(float64(n))
		default:
			return reflect.Value{}, mismatch(v, t)
		}

	case reflect.String:
		s, ok := v.(String)
		if !ok {
			return reflect.Value{}, mismatch(v, t)
		}
		out.SetString(string(s))

	case reflect.Slice:
		arr, ok := v.(Array)
		if !ok {
			return reflect.Value{}, mismatch(v, t)
		}
		out = reflect.MakeSlice(t, len(arr), len(arr))
		for i, elem := range arr {
			ev, err := To(elem, t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			out.Index(i).Set(ev)
		}

	case reflect.Array:
		arr, ok := v.(Array)
		if !ok || len(arr) != t.Len() {
			return reflect.Value{}, mismatch(v, t)
		}
		for i, elem := range arr {
			ev, err := To(elem, t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			out.Index(i).Set(ev)
		}

	case reflect.Map:
		obj, ok := v.(Object)
		if !ok || t.Key().Kind() != reflect.String {
			return reflect.Value{}, mismatch(v, t)
		}
		out = reflect.MakeMapWithSize(t, len(obj))
		for _, k := range obj.SortedKeys() {
			ev, err := To(obj[k], t.Elem())
			if err != nil {
				return reflect.Value{}, fmt.Errorf("[%q]: %w", k, err)
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), ev)
		}

	case reflect.Struct:
		obj, ok := v.(Object)
		if !ok {
			return reflect.Value{}, mismatch(v, t)
		}
		if err := fillStruct(out, obj); err != nil {
			return reflect.Value{}, err
		}

	default:
		return reflect.Value{}, mismatch(v, t)
	}

	return out, nil
}

// fillStruct assigns object members to struct fields. Keys match the json
// tag, the field name, or the field name with a lowercased first letter.
// Unknown keys are an error.
func fillStruct(out reflect.Value, obj Object) error {
	t := out.Type()
	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		index[name] = i
		index[f.Name] = i
		index[lowerFirst(f.Name)] = i
	}

	for _, k := range obj.SortedKeys() {
		i, ok := index[k]
		if !ok {
			return fmt.Errorf("%w: %s has no field %q", ErrConvert, t, k)
		}
		fv, err := To(obj[k], t.Field(i).Type)
		if err != nil {
			return fmt.Errorf("%s: %w", t.Field(i).Name, err)
		}
		out.Field(i).Set(fv)
	}
	return nil
}

func integral(v Value) (int64, bool) {
	switch n := v.(type) {
	case Int:
		return int64(n), true
	case Float:
		f := float64(n)
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

func mismatch(v Value, t reflect.Type) error {
	return fmt.Errorf("%w %s to %s", ErrConvert, Render(v), t)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
