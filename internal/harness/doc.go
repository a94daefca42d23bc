// Package harness runs conformance scenarios against the scan engine.
//
// A scenario names a scan root and the outcomes the scan must produce. It
// is how the engine's behaviour on the sample packages is pinned down.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: calculator
//	description: "Every calculator contract holds"
//	root: ../examples/calc
//	assertions:
//	  - type: outcome
//	    status: pass
//	    identifier: "Calculator.Add - add5 - value check passed"
//	  - type: count
//	    status: fail
//	    count: 0
//	  - type: order
//	    identifiers:
//	      - "Calculator.Add - add5 - value check passed"
//	      - "Calculator.Label - label is text - type check passed"
//
// The root is resolved relative to the scenario file.
//
// # Assertion Types
//
//   - outcome: an outcome with the given status and identifier exists; an
//     optional message must match exactly, or contain must be a substring
//   - count: exactly count outcomes have the given status
//   - order: the identifiers appear in the given order
//
// # Deterministic Output
//
// Every scenario runs with a fresh engine clock, so outcome seq values are
// stable and the outcome list can be compared against golden files.
package harness
