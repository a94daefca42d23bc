package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		input    Type
		expected string
	}{
		{"number", Primitive{Kind: Number}, "number"},
		{"named primitive", Primitive{Kind: Number, Label: "Celsius"}, "Celsius"},
		{"union", Union{Members: []Type{Primitive{Kind: String}, Primitive{Kind: Number}}}, "string | number"},
		{"labeled union", Union{Members: []Type{NullLike{}}, Label: "*Money"}, "*Money"},
		{"intersection", Intersection{Members: []Type{Object{Symbol: "A"}, Object{Symbol: "B"}}}, "A & B"},
		{"object", Object{}, "object"},
		{"symbol", Object{Symbol: "pkg.Money"}, "pkg.Money"},
		{"any", Any{}, "any"},
		{"null", NullLike{Kind: Null}, "null"},
		{"undefined", NullLike{Kind: Undefined}, "undefined"},
		{"void", NullLike{Kind: Void}, "void"},
		{"opaque", Opaque{Name: "func()"}, "func()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.String())
		})
	}
}

func TestNullable(t *testing.T) {
	assert.True(t, Nullable(NullLike{Kind: Void}))
	assert.True(t, Nullable(Any{}))
	assert.True(t, Nullable(Union{Members: []Type{Primitive{}, NullLike{}}}))
	assert.False(t, Nullable(Union{Members: []Type{Primitive{}, Object{}}}))
	assert.False(t, Nullable(Object{}))
	assert.False(t, Nullable(Primitive{Kind: String}))
}
