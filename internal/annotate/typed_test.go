package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sure/internal/contract"
	"github.com/roach88/sure/internal/literal"
)

const typedSrc = `package calc

import s "github.com/roach88/sure"

type Calculator struct{ base int }

func NewCalculator(base int) s.Typed[*Calculator, struct {
	Fixtures struct {
		_ struct {
			Args s.Lit ` + "`sure:\"[1]\"`" + `
		}
	}
}] {
	return &Calculator{base: base}
}

func (c *Calculator) Multiply(value int) s.Typed[int, struct {
	Scenarios struct {
		_ struct {
			Description s.Lit ` + "`sure:\"multiply3\"`" + `
			Args        s.Lit ` + "`sure:\"[3]\"`" + `
			Expect      s.Lit ` + "`sure:\"15\"`" + `
			Instance    s.Lit ` + "`sure:\"base5\"`" + `
		}
		_ struct {
			Args struct {
				_ s.Lit ` + "`sure:\"2\"`" + `
				_ s.Lit ` + "`sure:\"'two'\"`" + `
			}
		}
	}
}] {
	return c.base * value
}

func (c *Calculator) Later(value int) s.Typed[int, struct {
	Scenarios struct {
		_ struct {
			Args s.Lit ` + "`sure:\"[5]\"`" + `
		}
	}
	Skip s.Lit ` + "`sure:\"'Not yet implemented'\"`" + `
}] {
	return value
}

func (c *Calculator) Flagged() s.Typed[int, struct {
	Skip s.Lit ` + "`sure:\"true\"`" + `
}] {
	return 0
}

func (c *Calculator) NotFlagged() s.Typed[int, struct {
	Skip s.Lit ` + "`sure:\"false\"`" + `
}] {
	return 0
}

func (c *Calculator) EmptyReason() s.Typed[int, struct {
	Skip s.Lit ` + "`sure:\"''\"`" + `
}] {
	return 0
}

func FromPence(p int) s.Typed[*Calculator, struct {
	Fixtures struct {
		_ struct {
			Name s.Lit ` + "`sure:\"gbp5\"`" + `
			Args s.Lit ` + "`sure:\"[500]\"`" + `
		}
		_ struct {
			Args s.Lit ` + "`sure:\"[1000]\"`" + `
		}
	}
}] {
	return &Calculator{base: p}
}

func (c *Calculator) Broken() s.Typed[int, struct {
	Scenarios struct {
		_ struct {
			Args   s.Lit ` + "`sure:\"[1, \"`" + `
			Expect int
		}
	}
}] {
	return 0
}

func (c *Calculator) NotStruct() s.Typed[int, int] {
	return 0
}

func (c *Calculator) Plain() int { return 0 }

type Other[T, M any] = T

func (c *Calculator) Lookalike() Other[int, struct {
	Skip s.Lit ` + "`sure:\"true\"`" + `
}] {
	return 0
}
`

func TestTypedScenarios(t *testing.T) {
	decls := parseDecls(t, typedSrc)
	dec := &TypeDecoder{}

	scenarios := dec.Scenarios(decls["Calculator.Multiply"])
	require.Len(t, scenarios, 2)

	assert.Equal(t, "multiply3", scenarios[0].Description)
	assert.Equal(t, []literal.Value{literal.Int(3)}, scenarios[0].Args)
	assert.Equal(t, contract.Literal{Value: literal.Int(15)}, scenarios[0].Expect)
	assert.Equal(t, "base5", scenarios[0].Instance)

	assert.Equal(t, []literal.Value{literal.Int(2), literal.String("two")}, scenarios[1].Args)
	assert.Equal(t, contract.TypeCheckOnly{}, scenarios[1].Expect)
	assert.Equal(t, contract.DefaultName, scenarios[1].Instance)
}

func TestTypedFixtures(t *testing.T) {
	decls := parseDecls(t, typedSrc)
	dec := &TypeDecoder{}

	fixtures := dec.Fixtures(decls["FromPence"])
	require.Len(t, fixtures, 2)
	assert.Equal(t, "gbp5", fixtures[0].Name)
	assert.Equal(t, []literal.Value{literal.Int(500)}, fixtures[0].Args)
	assert.Equal(t, contract.DefaultName, fixtures[1].Name)
}

func TestTypedIgnoresConstructors(t *testing.T) {
	decls := parseDecls(t, typedSrc)
	dec := &TypeDecoder{}

	ctor := decls["NewCalculator"]
	ctor.Kind = contract.KindConstructor
	assert.Empty(t, dec.Fixtures(ctor))

	// The same declaration seen as a plain function does carry fixtures.
	fn := decls["NewCalculator"]
	assert.Len(t, dec.Fixtures(fn), 1)
}

func TestTypedSkip(t *testing.T) {
	decls := parseDecls(t, typedSrc)
	dec := &TypeDecoder{}

	tests := []struct {
		name   string
		reason string
		ok     bool
	}{
		{"Calculator.Later", "Not yet implemented", true},
		{"Calculator.Flagged", SkipDefault, true},
		{"Calculator.NotFlagged", "", false},
		{"Calculator.EmptyReason", "", false},
		{"Calculator.Plain", "", false},
		{"Calculator.Multiply", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ok := dec.Skip(decls[tt.name])
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestTypedMalformed(t *testing.T) {
	decls := parseDecls(t, typedSrc)
	rec := &recorder{}
	dec := &TypeDecoder{Warn: rec.warn}

	scenarios := dec.Scenarios(decls["Calculator.Broken"])
	require.Len(t, scenarios, 1)
	assert.Empty(t, scenarios[0].Args)
	assert.Equal(t, contract.TypeCheckOnly{}, scenarios[0].Expect, "untagged field is undefined")

	// Decoding is memoized, so the warning is reported once.
	dec.Skip(decls["Calculator.Broken"])
	require.Len(t, rec.msgs, 1)
	assert.Contains(t, rec.msgs[0], "malformed literal")

	assert.Empty(t, dec.Scenarios(decls["Calculator.NotStruct"]))
	require.Len(t, rec.msgs, 2)
	assert.Contains(t, rec.msgs[1], "must be a struct literal")
}

func TestTypedRequiresSureImport(t *testing.T) {
	decls := parseDecls(t, typedSrc)
	dec := &TypeDecoder{}

	_, ok := dec.Skip(decls["Calculator.Lookalike"])
	assert.False(t, ok)
}

func TestTypedUnqualifiedInsideSure(t *testing.T) {
	src := `package sure

type Typed[T, M any] = T

func Answer() Typed[int, struct {
	Scenarios struct {
		_ struct {
			Expect Lit ` + "`sure:\"42\"`" + `
		}
	}
}] {
	return 42
}
`
	decls := parseDecls(t, src)
	d := decls["Answer"]
	d.Package = SurePath

	scenarios := (&TypeDecoder{}).Scenarios(d)
	require.Len(t, scenarios, 1)
	assert.Equal(t, contract.Literal{Value: literal.Int(42)}, scenarios[0].Expect)
}
