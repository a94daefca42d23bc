package discover

import (
	"errors"
	"fmt"
)

// InvalidPathError reports a scan root that is missing or holds no Go
// packages.
type InvalidPathError struct {
	Path   string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *InvalidPathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid path %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying error.
func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// IsInvalidPath reports whether err is, or wraps, an *InvalidPathError.
func IsInvalidPath(err error) bool {
	var ip *InvalidPathError
	return errors.As(err, &ip)
}
