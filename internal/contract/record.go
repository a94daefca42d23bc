package contract

import (
	"go/ast"
	"go/token"
)

// Kind classifies the declaration metadata was read from.
type Kind int

const (
	// KindConstructor is the class constructor (New<Class>).
	KindConstructor Kind = iota

	// KindMethod is a method with the class as receiver.
	KindMethod

	// KindFunction is a package-level function: a static method of a class
	// or a free function.
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindConstructor:
		return "constructor"
	case KindMethod:
		return "method"
	case KindFunction:
		return "function"
	}
	return "unknown"
}

// Declaration is the source handle decoders read from.
type Declaration struct {
	Kind Kind

	// Name is the declared identifier.
	Name string

	// Func is the declaration itself. Doc comments and the result list are
	// read from it.
	Func *ast.FuncDecl

	// File is the file Func was declared in, used to resolve import names.
	File *ast.File

	// Package is the import path of the declaring package.
	Package string

	// Pos locates the declaration for diagnostics.
	Pos token.Position
}

// ClassRecord is a discovered class with its fixtures and the methods that
// carry scenarios.
type ClassRecord struct {
	Name string

	// Package is the import path the class was discovered in; the code
	// loader resolves the class relative to it.
	Package string

	Fixtures []Fixture
	Methods  []MethodRecord

	// Decl is the constructor declaration, or a zero Declaration when the
	// class has none.
	Decl Declaration

	// Warnings are problems found while decoding that did not stop the
	// record from being built, such as malformed literals.
	Warnings []string
}

// MethodRecord is a method or function with at least one scenario.
type MethodRecord struct {
	Name      string
	Scenarios []Scenario
	Decl      Declaration
	Static    bool

	skipReason string
	skipped    bool
}

// NewMethodRecord builds a MethodRecord that is not skipped.
func NewMethodRecord(name string, scenarios []Scenario, decl Declaration, static bool) MethodRecord {
	return MethodRecord{
		Name:      name,
		Scenarios: append([]Scenario(nil), scenarios...),
		Decl:      decl,
		Static:    static,
	}
}

// WithSkip returns a copy of m marked as skipped. An empty reason still
// skips.
func (m MethodRecord) WithSkip(reason string) MethodRecord {
	m.skipReason = reason
	m.skipped = true
	return m
}

// IsSkipped reports whether a skip reason is present, even an empty one.
func (m MethodRecord) IsSkipped() bool {
	return m.skipped
}

// SkipReason returns the reason given for skipping.
func (m MethodRecord) SkipReason() string {
	return m.skipReason
}
