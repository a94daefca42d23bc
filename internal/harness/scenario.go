package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/sure/internal/engine"
)

// Scenario defines a conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden files are named after it.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Root is the directory or .go file to scan.
	Root string `yaml:"root"`

	// Assertions validate the outcomes of the scan.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates the outcomes of a scan.
type Assertion struct {
	// Type is one of AssertOutcome, AssertCount or AssertOrder.
	Type string `yaml:"type"`

	// Status selects outcomes (outcome, count).
	Status engine.Status `yaml:"status,omitempty"`

	// Identifier is the outcome identifier (outcome).
	Identifier string `yaml:"identifier,omitempty"`

	// Message must equal the outcome message when set (outcome).
	Message string `yaml:"message,omitempty"`

	// Contains must be a substring of the outcome message when set (outcome).
	Contains string `yaml:"contains,omitempty"`

	// Count is the expected number of outcomes (count).
	Count int `yaml:"count,omitempty"`

	// Identifiers is the expected relative order (order).
	Identifiers []string `yaml:"identifiers,omitempty"`
}

// Assertion type constants.
const (
	AssertOutcome = "outcome"
	AssertCount   = "count"
	AssertOrder   = "order"
)

// LoadScenario reads and parses a scenario YAML file. The root is resolved
// relative to the file.
//
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Reject unknown fields (catches typos like "assertion:" vs "assertions:").
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Root != "" && !filepath.IsAbs(scenario.Root) {
		scenario.Root = filepath.Join(filepath.Dir(path), scenario.Root)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Root == "" {
		return fmt.Errorf("root is required")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(a); err != nil {
			return fmt.Errorf("assertion[%d]: %w", i, err)
		}
	}

	return nil
}

func validateAssertion(a Assertion) error {
	switch a.Type {
	case AssertOutcome:
		if a.Identifier == "" {
			return fmt.Errorf("outcome assertion requires identifier")
		}
		if err := validateStatus(a.Status, false); err != nil {
			return err
		}
	case AssertCount:
		if err := validateStatus(a.Status, true); err != nil {
			return err
		}
		if a.Count < 0 {
			return fmt.Errorf("count must not be negative")
		}
	case AssertOrder:
		if len(a.Identifiers) < 2 {
			return fmt.Errorf("order assertion requires at least 2 identifiers")
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}

func validateStatus(s engine.Status, required bool) error {
	switch s {
	case engine.StatusPass, engine.StatusFail, engine.StatusSkip, engine.StatusWarn:
		return nil
	case "":
		if !required {
			return nil
		}
		return fmt.Errorf("status is required")
	}
	return fmt.Errorf("unknown status %q", s)
}
