// Package calc is a small calculator annotated in both encodings.
package calc

import (
	"errors"

	"github.com/roach88/sure"
)

// ErrDivideByZero is returned by Divide for a zero divisor.
var ErrDivideByZero = errors.New("divide by zero")

// Calculator computes on top of a base value.
type Calculator struct {
	base int
}

// NewCalculator creates a calculator with a base value.
//
//sure:fixture [10]
//sure:fixture base5 [5]
func NewCalculator(base int) *Calculator {
	return &Calculator{base: base}
}

// Add adds value to the base.
//
//sure:scenario description="add5" args=[5] expect=15
//sure:scenario description="add to base5" args=[1] expect=6 instance="base5"
func (c *Calculator) Add(value int) int {
	return c.base + value
}

// Multiply multiplies the base by value.
func (c *Calculator) Multiply(value int) sure.Typed[int, struct {
	Scenarios struct {
		_ struct {
			Description sure.Lit `sure:"multiply3"`
			Args        sure.Lit `sure:"[3]"`
			Expect      sure.Lit `sure:"15"`
			Instance    sure.Lit `sure:"base5"`
		}
		_ struct {
			Description sure.Lit `sure:"multiply by zero"`
			Args        sure.Lit `sure:"[0]"`
			Expect      sure.Lit `sure:"0"`
		}
	}
}] {
	return c.base * value
}

// Divide divides the base by divisor.
//
//sure:scenario description="halve" args=[2] expect=5
//sure:scenario description="a number comes back" args=[3]
func (c *Calculator) Divide(divisor int) (float64, error) {
	if divisor == 0 {
		return 0, ErrDivideByZero
	}
	return float64(c.base) / float64(divisor), nil
}

// Clone returns an independent copy.
//
//sure:scenario description="clone is a calculator"
func (c *Calculator) Clone() *Calculator {
	cp := *c
	return &cp
}

// Base reports the base value.
//
// @scenario expect=10
// @scenario instance="base5" expect=5
func (c Calculator) Base() int {
	return c.base
}

// Label describes the calculator.
//
//sure:scenario description="label is text"
func (c *Calculator) Label() string {
	return "calculator"
}
