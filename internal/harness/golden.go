package harness

import (
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/sure/internal/engine"
	"github.com/roach88/sure/internal/literal"
)

// GoldenSuffix is the extension of golden files.
const GoldenSuffix = ".golden"

// Snapshot captures the outcomes of a scenario execution.
type Snapshot struct {
	ScenarioName string
	Outcomes     []engine.Outcome
}

// canonical converts the snapshot to a literal for canonical JSON
// serialization. Empty messages are left out.
func (s *Snapshot) canonical() literal.Value {
	outcomes := make(literal.Array, len(s.Outcomes))
	for i, o := range s.Outcomes {
		obj := literal.Object{
			"seq":        literal.Int(o.Seq),
			"status":     literal.String(o.Status),
			"identifier": literal.String(o.Identifier),
		}
		if o.Message != "" {
			obj["message"] = literal.String(o.Message)
		}
		outcomes[i] = obj
	}
	return literal.Object{
		"scenario_name": literal.String(s.ScenarioName),
		"outcomes":      outcomes,
	}
}

// RunWithGolden runs a scenario and compares its outcomes against
// testdata/golden/{scenario.Name}.golden, and its summary against
// testdata/golden/{scenario.Name}_summary.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario, loader engine.Loader) (*Result, error) {
	t.Helper()

	result, err := Run(context.Background(), scenario, loader)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GoldenFile is one file of a scenario's golden snapshot. Name has no
// extension.
type GoldenFile struct {
	Name string
	Data []byte
}

// GoldenFiles renders the golden snapshot of result: the canonical outcomes
// under scenarioName and the summary under scenarioName+"_summary".
func GoldenFiles(scenarioName string, result *Result) ([]GoldenFile, error) {
	snapshot := Snapshot{ScenarioName: scenarioName, Outcomes: result.Outcomes}
	data, err := literal.Marshal(snapshot.canonical())
	if err != nil {
		return nil, err
	}
	return []GoldenFile{
		{Name: scenarioName, Data: data},
		{Name: scenarioName + "_summary", Data: []byte(result.Summary)},
	}, nil
}

// AssertGolden compares an existing result against the golden files of
// scenarioName without re-running it.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	files, err := GoldenFiles(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(GoldenSuffix),
	)
	for _, f := range files {
		g.Assert(t, f.Name, f.Data)
	}
	return nil
}
