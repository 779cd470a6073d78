package types

import (
	"encoding/json"
	"fmt"
)

// TriageDecision is the stage-1 output: a quick emergency/false-alarm call.
type TriageDecision struct {
	IsEmergency   bool     `json:"is_emergency"`
	EmergencyType Category `json:"emergency_type"`
	Confidence    float64  `json:"confidence"`
	Reasoning     string   `json:"reasoning"`
}

// DecisionMetadata records the stage-1 decision and which model ran each stage.
type DecisionMetadata struct {
	Stage1Decision TriageDecision `json:"stage1_decision"`
	Stage1Model    string         `json:"stage1_model"`
	Stage2Model    string         `json:"stage2_model"`
}

// RequestEcho repeats the request fields in the final result.
type RequestEcho struct {
	AnalysisID          string   `json:"analysis_id"`
	Scenario            string   `json:"scenario"`
	Location            string   `json:"location"`
	EmergencyType       string   `json:"emergency_type"`
	IntelligenceSources []string `json:"intelligence_sources"`
}

// PipelineResult is the externally returned artifact: the stage-2 document
// (exactly one of Plan or Assessment is set) merged with triage metadata,
// procedures text, and request echo fields.
type PipelineResult struct {
	Plan       *EvacuationPlan
	Assessment *Assessment

	Decision   DecisionMetadata
	Procedures string
	Metadata   RequestEcho
}

// MarshalJSON flattens the branch document into the top level of the result,
// so callers see the plan or assessment fields directly alongside
// decision_metadata, emergency_procedures, and metadata.
func (r PipelineResult) MarshalJSON() ([]byte, error) {
	var branch any
	switch {
	case r.Plan != nil:
		branch = r.Plan
	case r.Assessment != nil:
		branch = r.Assessment
	default:
		return nil, fmt.Errorf("pipeline result has neither plan nor assessment")
	}

	raw, err := json.Marshal(branch)
	if err != nil {
		return nil, err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, err
	}

	for key, value := range map[string]any{
		"decision_metadata":    r.Decision,
		"emergency_procedures": r.Procedures,
		"metadata":             r.Metadata,
	} {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		merged[key] = encoded
	}

	return json.Marshal(merged)
}
