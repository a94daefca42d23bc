package annotate

import (
	"go/ast"
	"reflect"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/roach88/sure/internal/contract"
	"github.com/roach88/sure/internal/literal"
)

// SurePath is the import path of the package declaring Typed.
const SurePath = "github.com/roach88/sure"

const (
	typedName = "Typed"
	tagKey    = "sure"
)

// TypeDecoder reads metadata from the first result type of a function when
// it is written as sure.Typed[T, M].
//
// M must be a struct type literal. It is decoded structurally:
//   - a struct whose fields are all blank (_) is a tuple
//   - a struct with named fields is an object keyed by field name with the
//     first letter lower-cased
//   - a field tagged `sure:"<literal>"` is a literal leaf
//
// Anything else decodes as undefined. Constructors never carry this
// encoding; the decoder returns nothing for them.
//
// A TypeDecoder memoizes decoded metadata per declaration and is not safe
// for concurrent use.
type TypeDecoder struct {
	Warn WarnFunc

	decoded map[*ast.FuncDecl]literal.Object
}

// Fixtures implements Decoder.
func (t *TypeDecoder) Fixtures(d contract.Declaration) []contract.Fixture {
	meta := t.metadata(d)
	items, ok := meta["fixtures"].(literal.Array)
	if !ok {
		return nil
	}

	fixtures := make([]contract.Fixture, 0, len(items))
	for _, item := range items {
		obj, _ := item.(literal.Object)
		f := contract.NewFixture(stringField(obj, "name"), arrayField(obj, "args")).
			WithDescription(stringField(obj, "description")).
			WithExpect(contract.Expect(obj["expect"]))
		fixtures = append(fixtures, f)
	}
	return fixtures
}

// Scenarios implements Decoder.
func (t *TypeDecoder) Scenarios(d contract.Declaration) []contract.Scenario {
	meta := t.metadata(d)
	items, ok := meta["scenarios"].(literal.Array)
	if !ok {
		return nil
	}

	scenarios := make([]contract.Scenario, 0, len(items))
	for _, item := range items {
		obj, _ := item.(literal.Object)
		scenarios = append(scenarios, contract.NewScenario(
			stringField(obj, "description"),
			arrayField(obj, "args"),
			contract.Expect(obj["expect"]),
			stringField(obj, "instance"),
		))
	}
	return scenarios
}

// Skip implements Decoder. true skips with SkipDefault; a non-empty string
// is the reason; false and "" do not skip.
func (t *TypeDecoder) Skip(d contract.Declaration) (string, bool) {
	switch v := t.metadata(d)["skip"].(type) {
	case literal.Bool:
		if v {
			return SkipDefault, true
		}
	case literal.String:
		if v != "" {
			return string(v), true
		}
	}
	return "", false
}

// metadata decodes M, or returns nil when d does not use Typed.
func (t *TypeDecoder) metadata(d contract.Declaration) literal.Object {
	if d.Kind == contract.KindConstructor || d.Func == nil {
		return nil
	}
	if meta, ok := t.decoded[d.Func]; ok {
		return meta
	}
	meta := t.decode(d)
	if t.decoded == nil {
		t.decoded = make(map[*ast.FuncDecl]literal.Object)
	}
	t.decoded[d.Func] = meta
	return meta
}

func (t *TypeDecoder) decode(d contract.Declaration) literal.Object {
	results := d.Func.Type.Results
	if results == nil || len(results.List) == 0 {
		return nil
	}

	idx, ok := results.List[0].Type.(*ast.IndexListExpr)
	if !ok || len(idx.Indices) != 2 || !t.isTyped(d, idx.X) {
		return nil
	}
	st, ok := idx.Indices[1].(*ast.StructType)
	if !ok {
		t.Warn.warnf(d, "metadata of %s must be a struct literal", typedName)
		return nil
	}

	obj, _ := t.decodeStruct(d, st).(literal.Object)
	return obj
}

// isTyped reports whether x names Typed as seen from d's file: qualified by
// the import name of SurePath, or bare inside that package or under a dot
// import.
func (t *TypeDecoder) isTyped(d contract.Declaration, x ast.Expr) bool {
	switch x := x.(type) {
	case *ast.Ident:
		return x.Name == typedName && (d.Package == SurePath || importName(d.File) == ".")
	case *ast.SelectorExpr:
		pkg, ok := x.X.(*ast.Ident)
		return ok && x.Sel.Name == typedName && pkg.Name == importName(d.File)
	}
	return false
}

func importName(f *ast.File) string {
	if f == nil {
		return ""
	}
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != SurePath {
			continue
		}
		if imp.Name != nil {
			return imp.Name.Name
		}
		return tagKey
	}
	return ""
}

func (t *TypeDecoder) decodeStruct(d contract.Declaration, st *ast.StructType) literal.Value {
	fields := st.Fields.List
	if len(fields) == 0 {
		return literal.Array{}
	}

	if allBlank(fields) {
		var tuple literal.Array
		for _, f := range fields {
			v := t.decodeField(d, f)
			for range f.Names {
				tuple = append(tuple, v)
			}
		}
		return tuple
	}

	obj := make(literal.Object)
	for _, f := range fields {
		v := t.decodeField(d, f)
		for _, name := range f.Names {
			if name.Name == "_" || v == nil {
				continue
			}
			obj[lowerFirst(name.Name)] = v
		}
	}
	return obj
}

func (t *TypeDecoder) decodeField(d contract.Declaration, f *ast.Field) literal.Value {
	if f.Tag != nil {
		raw, err := strconv.Unquote(f.Tag.Value)
		if err == nil {
			if src, ok := reflect.StructTag(raw).Lookup(tagKey); ok {
				v, err := literal.Parse(src)
				if err != nil {
					t.Warn.warnf(d, "ignoring malformed literal %q: %v", src, err)
					return nil
				}
				return v
			}
		}
	}
	if st, ok := f.Type.(*ast.StructType); ok {
		return t.decodeStruct(d, st)
	}
	return nil
}

func allBlank(fields []*ast.Field) bool {
	for _, f := range fields {
		if len(f.Names) == 0 {
			return false
		}
		for _, name := range f.Names {
			if name.Name != "_" {
				return false
			}
		}
	}
	return true
}

func stringField(obj literal.Object, key string) string {
	s, _ := obj[key].(literal.String)
	return string(s)
}

func arrayField(obj literal.Object, key string) []literal.Value {
	arr, _ := obj[key].(literal.Array)
	return arr
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
