// Package contract holds the metadata model shared by decoding, validation
// and execution: scenarios, fixtures, expectations, and the class and
// method records produced by discovery.
//
// All types are values. Constructors copy the slices they are given, so a
// Scenario or Fixture never changes after it is built.
package contract
