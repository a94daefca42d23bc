// Package engine runs discovered scenarios against live code.
//
// The engine is the last stage of a scan. Runner drives a whole run:
//
//  1. discover.Scan loads the packages under the root
//  2. discover.Discoverer builds class records from their annotations
//  3. decoding warnings become Warning outcomes
//  4. validate.Fixtures rejects classes with duplicate fixture names
//  5. Executor runs every remaining class
//
// Executor handles one class at a time: load the class from the Loader,
// build its fixtures, then run each scenario of each method in declaration
// order. A scenario either compares its result to a literal expectation or
// checks it against the declared return type with conform.Check.
//
// ERROR HANDLING:
//
// Everything that goes wrong inside a class becomes a Fail outcome at the
// narrowest scope: a class that cannot be loaded fails once, a fixture that
// cannot be built fails on its own, a scenario that panics fails alone. Only
// an invalid scan root stops a run, together with context cancellation.
//
// DETERMINISM:
//
// Execution is single-threaded. Outcomes are stamped with a logical clock
// and appear in traversal order: classes, then methods, then scenarios.
package engine
