package literal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected string
	}{
		{"string", String("hello"), `"hello"`},
		{"empty string", String(""), `""`},
		{"int", Int(42), "42"},
		{"negative int", Int(-100), "-100"},
		{"integral float", Float(15), "15"},
		{"fraction", Float(1.5), "1.5"},
		{"small float", Float(1e-7), "1e-7"},
		{"large float", Float(1e21), "1e+21"},
		{"plain large float", Float(1e20), "100000000000000000000"},
		{"negative zero", Float(math.Copysign(0, -1)), "0"},
		{"bool", Bool(true), "true"},
		{"null", Null{}, "null"},
		{"empty array", Array{}, "[]"},
		{"empty object", Object{}, "{}"},
		{"array", Array{Int(1), String("a")}, `[1,"a"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Marshal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestMarshalSortedKeys(t *testing.T) {
	obj := Object{
		"zebra": Int(1),
		"alpha": Int(2),
		"nested": Object{
			"b": Int(1),
			"a": Int(2),
		},
	}

	out, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":2,"nested":{"a":2,"b":1},"zebra":1}`, string(out))
}

func TestMarshalUTF16Ordering(t *testing.T) {
	// U+10000 encodes as a surrogate pair starting 0xD800, before U+E000.
	obj := Object{
		"\uE000":     Int(1),
		"\U00010000": Int(2),
	}

	out, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":2,\"\uE000\":1}", string(out))
}

func TestMarshalNoHTMLEscape(t *testing.T) {
	out, err := Marshal(String("<a&b>"))
	require.NoError(t, err)
	assert.Equal(t, `"<a&b>"`, string(out))
}

func TestMarshalNFC(t *testing.T) {
	out, err := Marshal(String("e\u0301"))
	require.NoError(t, err)
	assert.Equal(t, "\"\u00e9\"", string(out))
}

func TestMarshalLineSeparators(t *testing.T) {
	out, err := Marshal(String("a\u2028b\u2029c"))
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(out))

	// An escaped backslash followed by the text u2028 is not a separator.
	out, err = Marshal(String(`\u2028`))
	require.NoError(t, err)
	assert.Equal(t, `"\\u2028"`, string(out))
}

func TestMarshalRejectsUndefined(t *testing.T) {
	_, err := Marshal(nil)
	assert.Error(t, err)

	_, err = Marshal(Array{Int(1), nil})
	assert.ErrorContains(t, err, "array[1]")

	_, err = Marshal(Float(math.NaN()))
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "undefined", Render(nil))
	assert.Equal(t, "NaN", Render(Float(math.NaN())))
	assert.Equal(t, "Infinity", Render(Float(math.Inf(1))))
	assert.Equal(t, "-Infinity", Render(Float(math.Inf(-1))))
	assert.Equal(t, "15", Render(Int(15)))
	assert.Equal(t, `{"a":[1,2]}`, Render(Object{"a": Array{Int(1), Int(2)}}))
}

func TestRenderDeterministic(t *testing.T) {
	obj := Object{"c": Int(3), "a": Int(1), "b": Int(2)}
	first := Render(obj)
	for range 20 {
		assert.Equal(t, first, Render(obj))
	}
}
