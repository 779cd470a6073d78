package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineResultMergesAssessment(t *testing.T) {
	result := PipelineResult{
		Assessment: &Assessment{
			IsEmergency: false,
			Assessment:  "Routine drill.",
			Confidence:  0.9,
		},
		Decision: DecisionMetadata{
			Stage1Decision: TriageDecision{IsEmergency: false, EmergencyType: None, Confidence: 0.9},
			Stage1Model:    "fast",
			Stage2Model:    "detailed",
		},
		Procedures: "GENERAL SAFETY",
		Metadata:   RequestEcho{Scenario: "s", Location: "l", EmergencyType: "none"},
	}

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Contains(t, doc, "assessment")
	assert.Contains(t, doc, "is_emergency")
	assert.Contains(t, doc, "decision_metadata")
	assert.Contains(t, doc, "emergency_procedures")
	assert.Contains(t, doc, "metadata")
	assert.NotContains(t, doc, "evacuation_steps")
}

func TestPipelineResultRequiresABranchDocument(t *testing.T) {
	_, err := json.Marshal(PipelineResult{})
	require.Error(t, err)
}

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"fire", "hurricane", "flood", "none"} {
		c, err := ParseCategory(valid)
		require.NoError(t, err)
		assert.Equal(t, Category(valid), c)
	}

	_, err := ParseCategory("earthquake")
	assert.Error(t, err)
	_, err = ParseCategory("")
	assert.Error(t, err)
}

func TestProviderResultDocument(t *testing.T) {
	ok := ProviderResult{Provider: "weather", OK: true, Payload: json.RawMessage(`{"temp": 72}`)}
	assert.JSONEq(t, `{"temp": 72}`, string(ok.Document()))

	failed := ProviderResult{Provider: "news", OK: false, Detail: "timeout"}
	assert.JSONEq(t, `{"error":"timeout"}`, string(failed.Document()))
}
