// Package discover turns a directory of Go packages into class records.
//
// Scan loads every package under a root with golang.org/x/tools/go/packages,
// keeping syntax and type information. Discoverer walks the loaded packages
// and groups declarations into classes the way go/doc groups them:
//
//   - every package-level named type that is not an interface is a class
//   - New<Class> is the class constructor
//   - methods with receiver Class or *Class are instance methods
//   - other functions whose first result is Class or *Class are static
//   - the remaining functions form a class named after the package, with
//     every member static and no constructor
//
// Only classes carrying fixtures or scenarios are reported. Facility answers
// type questions about the discovered declarations for the engine.
package discover
