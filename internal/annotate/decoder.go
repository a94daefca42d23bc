// Package annotate reads scenario, fixture and skip metadata from Go
// declarations.
//
// Metadata has two independent encodings. CommentDecoder reads directive
// lines in the doc comment; TypeDecoder reads the struct literal passed as
// the second type argument of sure.Typed in the result position. Combined
// merges them. Decoders never fail: malformed input is reported through the
// optional WarnFunc and decoding carries on with defaults.
package annotate

import (
	"fmt"

	"github.com/roach88/sure/internal/contract"
)

// SkipDefault is the reason used when a skip is requested without one.
const SkipDefault = "Skipped"

// Decoder extracts metadata from one declaration.
type Decoder interface {
	// Fixtures returns fixtures in declaration order.
	Fixtures(d contract.Declaration) []contract.Fixture

	// Scenarios returns scenarios in declaration order.
	Scenarios(d contract.Declaration) []contract.Scenario

	// Skip returns the skip reason and whether one is present.
	Skip(d contract.Declaration) (reason string, ok bool)
}

// WarnFunc receives problems that did not stop decoding.
type WarnFunc func(d contract.Declaration, msg string)

func (w WarnFunc) warnf(d contract.Declaration, format string, args ...any) {
	if w == nil {
		return
	}
	w(d, fmt.Sprintf(format, args...))
}

// Combined merges a comment decoder and a type decoder.
//
// Fixtures and scenarios are concatenated, comment first. The comment skip
// reason wins when both are present.
type Combined struct {
	Comment Decoder
	Type    Decoder
}

// New returns the standard Combined decoder with both encodings reporting
// to warn.
func New(warn WarnFunc) *Combined {
	return &Combined{
		Comment: &CommentDecoder{Warn: warn},
		Type:    &TypeDecoder{Warn: warn},
	}
}

// Fixtures implements Decoder.
func (c *Combined) Fixtures(d contract.Declaration) []contract.Fixture {
	return append(c.Comment.Fixtures(d), c.Type.Fixtures(d)...)
}

// Scenarios implements Decoder.
func (c *Combined) Scenarios(d contract.Declaration) []contract.Scenario {
	return append(c.Comment.Scenarios(d), c.Type.Scenarios(d)...)
}

// Skip implements Decoder.
func (c *Combined) Skip(d contract.Declaration) (string, bool) {
	if reason, ok := c.Comment.Skip(d); ok {
		return reason, true
	}
	return c.Type.Skip(d)
}

// Collector accumulates warnings between Drain calls.
type Collector struct {
	warnings []string
}

// Warn records msg prefixed with the declaration position. It has the
// WarnFunc signature.
func (c *Collector) Warn(d contract.Declaration, msg string) {
	if d.Pos.IsValid() {
		msg = fmt.Sprintf("%s: %s: %s", d.Pos, d.Name, msg)
	} else if d.Name != "" {
		msg = fmt.Sprintf("%s: %s", d.Name, msg)
	}
	c.warnings = append(c.warnings, msg)
}

// Drain returns the collected warnings and resets the collector.
func (c *Collector) Drain() []string {
	out := c.warnings
	c.warnings = nil
	return out
}
