// Package conform checks a runtime value against a declared type descriptor.
//
// Check is the only entry point. It is pure: it inspects the value through
// reflection and never calls methods on it. The result is nil, a
// *MismatchError when the value violates the declared type, or an
// *UnsupportedError when the declared type cannot be checked at runtime.
// The two error kinds are distinct: a mismatch is a contract violation, an
// unsupported type is a gap in the checker.
//
// No coercion happens anywhere. "42" never matches a number and 42 never
// matches a string.
//
// Object checks are nominal only for the class under test (the Self marker).
// Every other object type gets a shape check: the value must be a non-nil
// struct, map, slice, array or pointer. Fields are not inspected.
package conform
