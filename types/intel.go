package types

import (
	"encoding/json"
	"sort"
)

// ProviderResult is the outcome of one provider lookup. A failed lookup is
// data, not an error: OK is false and Detail says what went wrong, so a
// broken provider never aborts the aggregate.
type ProviderResult struct {
	Provider string          `json:"provider"`
	OK       bool            `json:"ok"`
	Payload  json.RawMessage `json:"payload,omitempty"`
	Detail   string          `json:"error,omitempty"`
}

// Document renders the result as the JSON document fed to prompts.
// Failures become {"error": "..."} the same way the upstream services
// report their own errors.
func (r ProviderResult) Document() json.RawMessage {
	if r.OK {
		return r.Payload
	}
	doc, _ := json.Marshal(map[string]string{"error": r.Detail})
	return doc
}

// IntelligenceBundle maps provider name to its result. It always holds
// exactly one entry per configured provider.
type IntelligenceBundle map[string]ProviderResult

// Sources returns the provider names in sorted order so prompt rendering
// and tests are deterministic.
func (b IntelligenceBundle) Sources() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
