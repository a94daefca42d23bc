// Package mathutil has package-level functions only.
package mathutil

import (
	"strings"

	"github.com/roach88/sure"
)

// Sum adds values.
//
//sure:scenario description="sum three" args=[1, 2, 3] expect=6
//sure:scenario description="sum nothing" args=[] expect=0
func Sum(values ...int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// Greet greets name.
//
//sure:scenario args=["Ada"] expect="Hello, Ada"
func Greet(name string) string {
	return "Hello, " + name
}

// Words splits s on whitespace.
func Words(s string) sure.Typed[[]string, struct {
	Scenarios struct {
		_ struct {
			Description sure.Lit `sure:"two words"`
			Args        sure.Lit `sure:"[\"a b\"]"`
			Expect      sure.Lit `sure:"[\"a\", \"b\"]"`
		}
		_ struct {
			Description sure.Lit `sure:"words are a list"`
			Args        sure.Lit `sure:"[\"x y z\"]"`
		}
	}
}] {
	return strings.Fields(s)
}

// Even reports whether n is even.
//
// @scenario description="four is even" args=[4] expect=true
// @scenario description="seven is odd" args=[7] expect=false
func Even(n int) bool {
	return n%2 == 0
}

// Lookup finds key in a fixed table.
//
//sure:scenario description="missing key is nil" args=["zz"] expect=null
//sure:scenario description="present key" args=["one"]
func Lookup(key string) *int {
	table := map[string]int{"one": 1}
	if v, ok := table[key]; ok {
		return &v
	}
	return nil
}
