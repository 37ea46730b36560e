package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/pkg/protocol"
)

func TestFlattenPerspectives(t *testing.T) {
	res := protocol.PerspectivesResult([]protocol.Perspective{
		{Name: "CFO", Response: "hold"},
		{Name: "CTO", Response: "invest"},
	}, "invest carefully")

	records := Flatten(res)
	require.Len(t, records, 2)
	assert.Equal(t, "CFO", records[0].AgentName)
	assert.Equal(t, "invest", records[1].Output)
}

func TestFlattenRoundsCarryRoundNumbers(t *testing.T) {
	res := protocol.RoundsResult([]protocol.Round{
		{Number: 1, Responses: []protocol.Perspective{{Name: "A", Response: "a1"}}},
		{Number: 2, Responses: []protocol.Perspective{{Name: "A", Response: "a2"}, {Name: "B", Response: "b2"}}},
	}, "")

	records := Flatten(res)
	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Round)
	assert.Equal(t, 2, records[1].Round)
	assert.Equal(t, "B", records[2].AgentName)
}

func TestFlattenStagesSetStageField(t *testing.T) {
	res := protocol.StagesResult([]protocol.StageOutput{
		{Name: "conditions", Output: "c"},
		{Name: "verdict", Output: "SURVIVES"},
	}, "")

	records := Flatten(res)
	require.Len(t, records, 2)
	assert.Equal(t, "conditions", records[0].Stage)
	assert.Equal(t, "verdict", records[1].AgentName)
}

func TestFlattenOutputsAreSorted(t *testing.T) {
	res := protocol.OutputsResult(map[string]string{"zeta": "z", "alpha": "a"}, "")

	records := Flatten(res)
	require.Len(t, records, 2)
	assert.Equal(t, "alpha", records[0].AgentName)
	assert.Equal(t, "zeta", records[1].AgentName)
}

func TestFlattenRawSerializesWholeResult(t *testing.T) {
	res := protocol.RawResult(map[string]any{"winner": "amy", "price": 0.7}, "")

	records := Flatten(res)
	require.Len(t, records, 1)
	assert.Equal(t, "_result", records[0].AgentName)
	assert.Contains(t, records[0].Output, `"winner": "amy"`)
}

func TestFlattenNilResult(t *testing.T) {
	assert.Nil(t, Flatten(nil))
}

func TestSynthesisTextPrefersTopLevel(t *testing.T) {
	res := protocol.RawResult(map[string]any{"recommendation": "raw rec"}, "top-level")
	assert.Equal(t, "top-level", SynthesisText(res))
}

func TestSynthesisTextProbesRawKeys(t *testing.T) {
	res := protocol.RawResult(map[string]any{
		"detail":         "ignored",
		"recommendation": "go with option B",
	}, "")
	assert.Equal(t, "go with option B", SynthesisText(res))

	res = protocol.RawResult(map[string]string{"final_output": "done"}, "")
	assert.Equal(t, "done", SynthesisText(res))

	res = protocol.RawResult(map[string]any{"detail": "nothing usable"}, "")
	assert.Equal(t, "", SynthesisText(res))
}
