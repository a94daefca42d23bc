package literal

import (
	"slices"
	"unicode/utf16"
)

// Value is a sealed interface over literal values.
// Only Null, String, Int, Float, Bool, Array and Object implement it.
//
// A nil Value means "undefined": the literal was absent or could not be
// decoded, and callers fall back to their defaults.
type Value interface {
	literal() // Sealed
}

// Null is the null literal.
type Null struct{}

func (Null) literal() {}

// String is a string literal.
type String string

func (String) literal() {}

// Int is an integer literal.
type Int int64

func (Int) literal() {}

// Float is a non-integer numeric literal.
type Float float64

func (Float) literal() {}

// Bool is a boolean literal.
type Bool bool

func (Bool) literal() {}

// Array is an ordered sequence of values.
type Array []Value

func (Array) literal() {}

// Object maps keys to values. Use SortedKeys for deterministic iteration.
type Object map[string]Value

func (Object) literal() {}

// SortedKeys returns keys ordered by UTF-16 code units, the ordering used
// by canonical JSON. Go's native string order compares UTF-8 bytes, which
// differs for characters outside the BMP.
func (obj Object) SortedKeys() []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)
	return keys
}

func compareUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	}
	return 0
}

// IsNumber reports whether v is an Int or a Float.
func IsNumber(v Value) bool {
	switch v.(type) {
	case Int, Float:
		return true
	}
	return false
}

// Native converts v to plain Go values: nil, string, int, float64, bool,
// []any and map[string]any.
func Native(v Value) any {
	switch val := v.(type) {
	case nil, Null:
		return nil
	case String:
		return string(val)
	case Int:
		return int(val)
	case Float:
		return float64(val)
	case Bool:
		return bool(val)
	case Array:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = Native(elem)
		}
		return out
	case Object:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = Native(elem)
		}
		return out
	}
	return nil
}
