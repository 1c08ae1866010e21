package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/ontocore/internal/ir"
)

// TraceSnapshot captures the trace of one scenario execution.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Trace        []TraceEvent `json:"trace"`
}

// toCanonical converts the snapshot to an ir.Value for canonical JSON
// serialization.
func (s *TraceSnapshot) toCanonical() ir.Value {
	trace := make(ir.Array, len(s.Trace))
	for i, event := range s.Trace {
		obj := ir.Object{
			"seq":     ir.Int(event.Seq),
			"op":      ir.String(event.Op),
			"outcome": ir.String(event.Outcome),
		}
		if event.Term != nil {
			obj["term"] = event.Term
		}
		if event.Error != "" {
			obj["error"] = ir.String(event.Error)
		}
		if event.Path != "" {
			obj["path"] = ir.String(event.Path)
		}
		if len(event.Foreign) > 0 {
			foreign := make(ir.Array, len(event.Foreign))
			for j, name := range event.Foreign {
				foreign[j] = ir.String(name)
			}
			obj["foreign"] = foreign
		}
		trace[i] = obj
	}

	return ir.Object{
		"scenario_name": ir.String(s.ScenarioName),
		"trace":         trace,
	}
}

// RunWithGolden executes a scenario and compares its trace and final
// ontology against golden files:
//
//	testdata/golden/{scenario.Name}.trace.golden
//	testdata/golden/{scenario.Name}.ontology.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if either output doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against the golden files for
// scenarioName without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	snapshot := TraceSnapshot{
		ScenarioName: scenarioName,
		Trace:        result.Trace,
	}
	traceJSON, err := ir.MarshalCanonical(snapshot.toCanonical())
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName+".trace", traceJSON)
	g.Assert(t, scenarioName+".ontology", result.Snapshot)

	return nil
}
