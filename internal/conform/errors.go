package conform

import "errors"

// MismatchError reports a value that does not conform to its declared type.
type MismatchError struct {
	// Message is the full, user-facing description.
	Message string

	// Expected is the declared type as written.
	Expected string

	// Actual is the runtime kind or type name of the value.
	Actual string
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return e.Message
}

// UnsupportedError reports a declared type the checker cannot validate.
type UnsupportedError struct {
	Message string
	Type    string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return e.Message
}

// IsMismatch reports whether err is, or wraps, a *MismatchError.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}

// IsUnsupported reports whether err is, or wraps, an *UnsupportedError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedError
	return errors.As(err, &ue)
}
