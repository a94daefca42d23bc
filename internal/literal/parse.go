package literal

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned by Parse for blank input.
var ErrEmpty = errors.New("empty literal")

// Parse decodes a single literal.
//
// The accepted grammar is YAML flow syntax, a superset of JSON: numbers,
// "double" and 'single' quoted strings, true/false, null, [arrays] and
// {objects}. Bare words decode as strings, so `add5` and "add5" are equal.
func Parse(src string) (Value, error) {
	if strings.TrimSpace(src) == "" {
		return nil, ErrEmpty
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		return nil, fmt.Errorf("parse literal %q: %w", src, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse literal %q: %w", src, ErrEmpty)
	}

	v, err := fromNode(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("parse literal %q: %w", src, err)
	}
	return v, nil
}

// ParseArray decodes a literal that must be an array.
func ParseArray(src string) (Array, error) {
	v, err := Parse(src)
	if err != nil {
		return nil, err
	}
	arr, ok := v.(Array)
	if !ok {
		return nil, fmt.Errorf("parse literal %q: not an array", src)
	}
	return arr, nil
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return fromScalar(n)

	case yaml.SequenceNode:
		arr := make(Array, len(n.Content))
		for i, child := range n.Content {
			elem, err := fromNode(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = elem
		}
		return arr, nil

	case yaml.MappingNode:
		obj := make(Object, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: object keys must be scalars", key.Line)
			}
			elem, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("[%q]: %w", key.Value, err)
			}
			obj[key.Value] = elem
		}
		return obj, nil

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: dangling alias", n.Line)
		}
		return fromNode(n.Alias)
	}

	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil

	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil

	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, fmt.Errorf("integer %s out of range", n.Value)
		}
		return Int(i), nil

	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return Float(f), nil
	}

	// !!str and anything YAML would resolve to a richer type
	// (timestamps, binary) stay as written.
	return String(n.Value), nil
}
