// Package faulty collects contracts that do not hold.
package faulty

import (
	"errors"
	"fmt"
)

// Widget misbehaves in assorted ways.
type Widget struct {
	size int
}

// NewWidget creates a widget. Negative sizes are rejected.
//
//sure:fixture [3]
//sure:fixture broken [-1]
//sure:fixture odd [1, 2, {]
func NewWidget(size int) (*Widget, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative size %d", size)
	}
	return &Widget{size: size}, nil
}

// Size returns the size.
//
//sure:scenario description="wrong expectation" args=[] expect=999
//sure:scenario description="missing fixture" instance="nope"
//sure:scenario description="too many arguments" args=[1]
func (w *Widget) Size() int {
	return w.size
}

// Explode panics.
//
//sure:scenario description="explodes"
func (w *Widget) Explode() int {
	panic("boom")
}

// Fail returns an error.
//
//sure:scenario description="errors"
func (w *Widget) Fail() (int, error) {
	return 0, errors.New("widget failed")
}

// Callback returns a function, which cannot be validated.
//
//sure:scenario description="function result"
func (w *Widget) Callback() func() int {
	return func() int { return w.size }
}

// Ghost is annotated but never registered.
type Ghost struct{}

// NewGhost creates a ghost.
//
//sure:fixture []
func NewGhost() *Ghost {
	return &Ghost{}
}

// Boo says boo.
//
//sure:scenario expect="boo"
func (g *Ghost) Boo() string {
	return "boo"
}
