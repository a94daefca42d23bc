// Package literal provides the value model for annotation literals.
//
// Scenario arguments, expectations and fixture arguments are written in
// source as literals (`[5, "x", {a: 1}]`). This package parses them into a
// sealed Value type, renders them in a stable canonical form for messages,
// compares them strictly, and converts between literals and live Go values.
//
// literal imports nothing internal; every other package that handles
// annotation values builds on it.
//
// Key design constraints:
//   - Numbers keep their written form: Int for integers, Float otherwise
//   - Equality never coerces across categories ("42" is not 42)
//   - Rendering is deterministic: sorted object keys, NFC strings
package literal
