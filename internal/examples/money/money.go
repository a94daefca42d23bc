// Package money has a class built only through a static factory.
package money

import (
	"fmt"

	"github.com/roach88/sure"
)

// Money is an amount in pence.
type Money struct {
	Pence int `json:"pence"`
}

// FromPence creates an amount.
//
//sure:fixture [250]
//sure:fixture small [5]
//sure:scenario description="factory returns money" args=[100]
func FromPence(pence int) Money {
	return Money{Pence: pence}
}

// Pounds converts to pounds.
//
//sure:scenario description="pounds" expect=2.5
//sure:scenario description="small pounds" expect=0.05 instance="small"
func (m Money) Pounds() float64 {
	return float64(m.Pence) / 100
}

// Plus adds another amount.
//
//sure:scenario description="plus" args=[{"pence": 50}]
func (m Money) Plus(other Money) Money {
	return Money{Pence: m.Pence + other.Pence}
}

// Split divides the amount into n parts, returning the part and the
// remainder.
func (m Money) Split(n int) (sure.Typed[Money, struct {
	Scenarios struct {
		_ struct {
			Description sure.Lit `sure:"three ways"`
			Args        sure.Lit `sure:"[3]"`
			Expect      sure.Lit `sure:"[{\"pence\": 83}, {\"pence\": 1}]"`
		}
	}
}], Money) {
	return Money{Pence: m.Pence / n}, Money{Pence: m.Pence % n}
}

// String formats the amount.
//
//sure:scenario description="formatted" expect="GBP 2.50"
func (m Money) String() string {
	return fmt.Sprintf("GBP %d.%02d", m.Pence/100, m.Pence%100)
}
