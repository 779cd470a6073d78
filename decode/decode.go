// Package decode turns raw model output into the typed response documents.
// Parsing is a two-step process: strip the code fence the backends like to
// wrap JSON in, then parse against the expected contract. Anything that does
// not match is a loud ContractError, never a silent default.
package decode

import (
	"encoding/json"
	"fmt"
	"strings"

	"crisisvision/types"
)

// previewLen bounds how much offending output a ContractError carries.
const previewLen = 500

// ContractError reports model output that violated the structured-output
// contract. Preview holds a bounded slice of the raw text for diagnosis.
type ContractError struct {
	Reason  string
	Preview string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation: %s\nResponse: %s", e.Reason, e.Preview)
}

func violation(raw, format string, args ...any) *ContractError {
	preview := raw
	if len(preview) > previewLen {
		preview = preview[:previewLen]
	}
	return &ContractError{Reason: fmt.Sprintf(format, args...), Preview: preview}
}

// StripFences removes a leading ```json or ``` marker and a trailing ```
// so the remaining text can be parsed as a document.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// Triage decodes the stage-1 decision. An emergency type outside the known
// category set is a contract violation, not a default, and confidence is
// clamped into [0, 1].
func Triage(raw string) (types.TriageDecision, error) {
	text := StripFences(raw)

	var fields struct {
		IsEmergency   bool    `json:"is_emergency"`
		EmergencyType string  `json:"emergency_type"`
		Confidence    float64 `json:"confidence"`
		Reasoning     string  `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return types.TriageDecision{}, violation(raw, "failed to parse triage decision as JSON: %v", err)
	}

	category, err := types.ParseCategory(fields.EmergencyType)
	if err != nil {
		return types.TriageDecision{}, violation(raw, "triage decision carries %v", err)
	}

	return types.TriageDecision{
		IsEmergency:   fields.IsEmergency,
		EmergencyType: category,
		Confidence:    clamp01(fields.Confidence),
		Reasoning:     fields.Reasoning,
	}, nil
}

// Plan decodes the emergency-branch evacuation plan and enforces the
// five-step shape: exactly 5 steps, numbered 1 through 5, each with
// coordinates.
func Plan(raw string) (types.EvacuationPlan, error) {
	text := StripFences(raw)

	var plan types.EvacuationPlan
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return types.EvacuationPlan{}, violation(raw, "failed to parse evacuation plan as JSON: %v", err)
	}

	if n := len(plan.EvacuationSteps); n != 5 {
		return types.EvacuationPlan{}, violation(raw, "evacuation plan must have exactly 5 steps, got %d", n)
	}
	for i, step := range plan.EvacuationSteps {
		if step.Step != i+1 {
			return types.EvacuationPlan{}, violation(raw, "evacuation step %d is numbered %d", i+1, step.Step)
		}
		if step.Coordinates == nil {
			return types.EvacuationPlan{}, violation(raw, "evacuation step %d is missing coordinates", step.Step)
		}
	}

	return plan, nil
}

// Assessment decodes the false-alarm-branch document.
func Assessment(raw string) (types.Assessment, error) {
	text := StripFences(raw)

	var a types.Assessment
	if err := json.Unmarshal([]byte(text), &a); err != nil {
		return types.Assessment{}, violation(raw, "failed to parse assessment as JSON: %v", err)
	}
	return a, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
