package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ontocore/internal/ir"
)

func TestGolden_Animals(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/animals.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestGolden_Foreign(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/foreign.yaml")
	require.NoError(t, err)

	result, err := RunWithGolden(t, scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)

	for _, event := range result.Trace[3:] {
		assert.Equal(t, OutcomeRejected, event.Outcome)
	}
}

func TestTraceSnapshot_Canonical(t *testing.T) {
	snapshot := TraceSnapshot{
		ScenarioName: "tiny",
		Trace: []TraceEvent{
			{Seq: 1, Op: StepClass, Outcome: OutcomeInserted, Term: ir.Object{"type": ir.String("class"), "iri": ir.String("A")}},
			{Seq: 2, Op: StepNot, Outcome: OutcomeRejected, Error: ExpectForeignReference, Path: "not.operand", Foreign: []string{"B"}},
		},
	}

	data, err := ir.MarshalCanonical(snapshot.toCanonical())
	require.NoError(t, err)
	assert.Equal(t,
		`{"scenario_name":"tiny","trace":[`+
			`{"op":"class","outcome":"inserted","seq":1,"term":{"iri":"A","type":"class"}},`+
			`{"error":"foreign_reference","foreign":["B"],"op":"not","outcome":"rejected","path":"not.operand","seq":2}]}`,
		string(data))
}
