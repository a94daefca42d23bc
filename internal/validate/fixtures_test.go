package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sure/internal/contract"
	"github.com/roach88/sure/internal/literal"
)

func fixture(name string) contract.Fixture {
	return contract.NewFixture(name, nil)
}

func TestFixturesDuplicateDefault(t *testing.T) {
	msg, found := Fixtures([]contract.Fixture{fixture(""), fixture("")}, "C")
	assert.True(t, found)
	assert.Equal(t, `Duplicate fixture name "default" found 2 times on class "C"`, msg)
}

func TestFixturesUnique(t *testing.T) {
	_, found := Fixtures([]contract.Fixture{fixture("a"), fixture("b")}, "C")
	assert.False(t, found)

	_, found = Fixtures(nil, "C")
	assert.False(t, found)
}

func TestFixturesExplicitDefaultCollides(t *testing.T) {
	msg, found := Fixtures([]contract.Fixture{fixture(""), fixture("default"), fixture("x")}, "Money")
	assert.True(t, found)
	assert.Equal(t, `Duplicate fixture name "default" found 2 times on class "Money"`, msg)
}

func TestFixturesReportsFirstInserted(t *testing.T) {
	fixtures := []contract.Fixture{
		fixture("b"), fixture("a"), fixture("a"), fixture("b"), fixture("b"),
	}
	msg, found := Fixtures(fixtures, "C")
	assert.True(t, found)
	assert.Equal(t, `Duplicate fixture name "b" found 3 times on class "C"`, msg)
}

func TestFixturesIdempotent(t *testing.T) {
	lists := [][]contract.Fixture{
		{fixture("a"), fixture("a")},
		{fixture("a"), fixture("b")},
		{contract.NewFixture("x", []literal.Value{literal.Int(1)}), fixture("x"), fixture("")},
	}
	for _, list := range lists {
		msg1, found1 := Fixtures(list, "C")
		msg2, found2 := Fixtures(list, "C")
		assert.Equal(t, found1, found2)
		assert.Equal(t, msg1, msg2)
	}
}

func TestFixturesError(t *testing.T) {
	err := FixturesError([]contract.Fixture{fixture("a"), fixture("a")}, "C")
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "C", ve.Owner)
	assert.Equal(t, `Duplicate fixture name "a" found 2 times on class "C"`, ve.Error())

	assert.NoError(t, FixturesError([]contract.Fixture{fixture("a")}, "C"))
}
