package annotate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/roach88/sure/internal/contract"
	"github.com/roach88/sure/internal/literal"
)

// Directive tags.
const (
	tagFixture  = "fixture"
	tagScenario = "scenario"
	tagSkip     = "skip"
)

var (
	fixturePayload   = regexp.MustCompile(`^(?:(\w+)\s+)?(\[.*\])$`)
	descriptionField = regexp.MustCompile(`description="([^"]*)"`)
	instanceField    = regexp.MustCompile(`instance="([^"]*)"`)
	expectField      = regexp.MustCompile(`expect=(-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?|"[^"]*"|true|false|null)`)
)

// CommentDecoder reads directives from the doc comment of a declaration.
//
// Two spellings are accepted, one directive per line:
//
//	//sure:scenario args=[5] expect=15
//	// @scenario args=[5] expect=15
type CommentDecoder struct {
	Warn WarnFunc
}

type directive struct {
	tag     string
	payload string
}

// Fixtures implements Decoder.
func (c *CommentDecoder) Fixtures(d contract.Declaration) []contract.Fixture {
	var fixtures []contract.Fixture
	for _, dir := range directives(d) {
		if dir.tag != tagFixture {
			continue
		}
		m := fixturePayload.FindStringSubmatch(dir.payload)
		if m == nil {
			c.Warn.warnf(d, "ignoring malformed fixture directive %q", dir.payload)
			continue
		}
		fixtures = append(fixtures, contract.NewFixture(m[1], c.parseArgs(d, m[2])))
	}
	return fixtures
}

// Scenarios implements Decoder.
func (c *CommentDecoder) Scenarios(d contract.Declaration) []contract.Scenario {
	var scenarios []contract.Scenario
	for _, dir := range directives(d) {
		if dir.tag != tagScenario {
			continue
		}
		scenarios = append(scenarios, c.parseScenario(d, dir.payload))
	}
	return scenarios
}

// Skip implements Decoder. Only the first skip directive counts.
func (c *CommentDecoder) Skip(d contract.Declaration) (string, bool) {
	for _, dir := range directives(d) {
		if dir.tag != tagSkip {
			continue
		}
		if dir.payload == "" {
			return SkipDefault, true
		}
		return dir.payload, true
	}
	return "", false
}

func (c *CommentDecoder) parseScenario(d contract.Declaration, payload string) contract.Scenario {
	var (
		description string
		instance    string
		args        []literal.Value
		expect      literal.Value
	)

	if m := descriptionField.FindStringSubmatch(payload); m != nil {
		description = m[1]
	}
	if m := instanceField.FindStringSubmatch(payload); m != nil {
		instance = m[1]
	}
	if src, ok := argsField(payload); ok {
		args = c.parseArgs(d, src)
	}
	if m := expectField.FindStringSubmatch(payload); m != nil {
		v, err := literal.Parse(m[1])
		if err != nil {
			c.Warn.warnf(d, "ignoring malformed expectation %q: %v", m[1], err)
		} else {
			expect = v
		}
	}

	return contract.NewScenario(description, args, contract.Expect(expect), instance)
}

// parseArgs decodes an argument list. Malformed input yields no arguments.
func (c *CommentDecoder) parseArgs(d contract.Declaration, src string) []literal.Value {
	arr, err := literal.ParseArray(src)
	if err != nil {
		c.Warn.warnf(d, "malformed arguments %s, using []: %v", src, err)
		return nil
	}
	return arr
}

// argsField returns the bracketed value of args=[...], honouring nesting
// and quoted strings.
func argsField(payload string) (string, bool) {
	i := strings.Index(payload, "args=[")
	if i < 0 {
		return "", false
	}
	start := i + len("args=")

	depth := 0
	var quote byte
	for j := start; j < len(payload); j++ {
		ch := payload[j]
		switch {
		case quote != 0:
			if ch == '\\' {
				j++
			} else if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '[':
			depth++
		case ch == ']':
			depth--
			if depth == 0 {
				return payload[start : j+1], true
			}
		}
	}
	// Unbalanced: hand the remainder over so the parser reports it.
	return payload[start:], true
}

// directives lists the recognised directive lines of d's doc comment in
// source order.
func directives(d contract.Declaration) []directive {
	if d.Func == nil || d.Func.Doc == nil {
		return nil
	}

	var out []directive
	for _, c := range d.Func.Doc.List {
		text, ok := strings.CutPrefix(c.Text, "//")
		if !ok {
			continue
		}

		var rest string
		if r, ok := strings.CutPrefix(text, "sure:"); ok {
			rest = r
		} else if r, ok := strings.CutPrefix(strings.TrimSpace(text), "@"); ok {
			rest = r
		} else {
			continue
		}

		tag, payload := rest, ""
		if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
			tag, payload = rest[:i], rest[i:]
		}
		switch tag {
		case tagFixture, tagScenario, tagSkip:
			out = append(out, directive{tag: tag, payload: strings.TrimSpace(payload)})
		}
	}
	return out
}
