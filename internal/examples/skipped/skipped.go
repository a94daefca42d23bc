// Package skipped holds work in progress that is declared but not run.
package skipped

import "github.com/roach88/sure"

// Parser is unfinished.
type Parser struct {
	strict bool
}

// NewParser creates a parser.
//
//sure:fixture [true]
func NewParser(strict bool) *Parser {
	return &Parser{strict: strict}
}

// Parse is not implemented yet.
//
//sure:skip WIP
//sure:scenario description="parses a word" args=["word"] expect="word"
//sure:scenario args=[""]
func (p *Parser) Parse(src string) string {
	panic("not implemented")
}

// Tokens is skipped through its return type.
func (p *Parser) Tokens(src string) sure.Typed[[]string, struct {
	Skip      sure.Lit `sure:"true"`
	Scenarios struct {
		_ struct {
			Args sure.Lit `sure:"[\"a b\"]"`
		}
	}
}] {
	panic("not implemented")
}

// Strict reports the mode. The comment skip wins over the type.
//
//sure:skip
func (p *Parser) Strict() sure.Typed[bool, struct {
	Skip      sure.Lit `sure:"\"type reason\""`
	Scenarios struct {
		_ struct {
			Expect sure.Lit `sure:"true"`
		}
	}
}] {
	return p.strict
}
