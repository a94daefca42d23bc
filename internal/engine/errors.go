package engine

import (
	"errors"
	"fmt"
)

// ErrNoConstructor is returned when a fixture needs the constructor of a
// class that was registered without one.
var ErrNoConstructor = errors.New("class has no constructor")

// PanicError carries a value recovered from a panic in user code.
type PanicError struct {
	Value any
}

// Error implements the error interface. The message is the panic value
// itself, so a panic reads like a returned error in outcomes.
func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// IsPanic reports whether err is, or wraps, a *PanicError.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// ArityError reports a scenario whose argument count does not fit the
// function it calls.
type ArityError struct {
	Want     int
	Got      int
	Variadic bool
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	if e.Variadic {
		return fmt.Sprintf("expected at least %d %s, got %d", e.Want, plural(e.Want, "argument"), e.Got)
	}
	return fmt.Sprintf("expected %d %s, got %d", e.Want, plural(e.Want, "argument"), e.Got)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
