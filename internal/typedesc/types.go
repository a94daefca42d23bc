// Package typedesc describes declared Go types in the small vocabulary the
// conformance checker understands.
//
// A Type is a closed sum: Primitive, Union, Intersection, Object, Any,
// NullLike and Opaque. Descriptors are built once from go/types by a Mapper
// and only inspected afterwards.
package typedesc

import "strings"

// Type is a sealed interface over type descriptors.
type Type interface {
	String() string
	typeDesc() // Sealed
}

// PrimitiveKind selects the runtime category of a Primitive.
type PrimitiveKind int

const (
	String PrimitiveKind = iota
	Number
	Boolean
)

func (k PrimitiveKind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	}
	return "primitive"
}

// Primitive is a string, number or boolean type. Label holds the declared
// name for named basic types (type Celsius float64).
type Primitive struct {
	Kind  PrimitiveKind
	Label string
}

func (Primitive) typeDesc() {}

func (p Primitive) String() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Kind.String()
}

// Union accepts a value matching any member, tried in order.
type Union struct {
	Members []Type
	Label   string
}

func (Union) typeDesc() {}

func (u Union) String() string {
	if u.Label != "" {
		return u.Label
	}
	return join(u.Members, " | ")
}

// Intersection accepts a value matching every member.
type Intersection struct {
	Members []Type
	Label   string
}

func (Intersection) typeDesc() {}

func (i Intersection) String() string {
	if i.Label != "" {
		return i.Label
	}
	return join(i.Members, " & ")
}

// Object is any value with structure: structs, maps, slices, arrays and
// pointers to them.
//
// Symbol is the qualified name of a named type, empty for type literals.
// Self marks the class under test itself, which enables a nominal check.
// Interface objects accept any non-nil value.
type Object struct {
	Symbol    string
	Self      bool
	Interface bool
	Label     string
}

func (Object) typeDesc() {}

func (o Object) String() string {
	switch {
	case o.Label != "":
		return o.Label
	case o.Symbol != "":
		return o.Symbol
	}
	return "object"
}

// Any accepts every value, including nil.
type Any struct{}

func (Any) typeDesc() {}

func (Any) String() string { return "any" }

// NullKind distinguishes the three absent-value types.
type NullKind int

const (
	Null NullKind = iota
	Undefined
	Void
)

// NullLike is the type of nil, or of a function with no results.
type NullLike struct {
	Kind NullKind
}

func (NullLike) typeDesc() {}

func (n NullLike) String() string {
	switch n.Kind {
	case Undefined:
		return "undefined"
	case Void:
		return "void"
	}
	return "null"
}

// Opaque is a type the checker cannot validate at runtime: functions,
// channels, complex numbers, type parameters and multi-value results.
type Opaque struct {
	Name string
}

func (Opaque) typeDesc() {}

func (o Opaque) String() string { return o.Name }

// Nullable reports whether nil conforms to t without further checks.
func Nullable(t Type) bool {
	switch tt := t.(type) {
	case NullLike, Any:
		return true
	case Union:
		for _, m := range tt.Members {
			if _, ok := m.(NullLike); ok {
				return true
			}
		}
	}
	return false
}

func join(members []Type, sep string) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = m.String()
	}
	return strings.Join(parts, sep)
}
