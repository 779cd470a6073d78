package prompts

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crisisvision/types"
)

const mapsPayload = `{"current_location":{"name":"Central Library","coordinates":{"lat":37.3496,"lng":-121.9390}},"fire_location":{"coordinates":{"lat":37.3490,"lng":-121.9395}},"safe_zones":[{"name":"Athletic Field","coordinates":{"lat":37.3535,"lng":-121.9345}}],"evacuation_routes":[{"route_id":1,"waypoints":[{"lat":37.3502,"lng":-121.9385,"name":"Alviso Street"}]}]}`

func fixtureBundle() types.IntelligenceBundle {
	bundle := types.IntelligenceBundle{}
	for _, name := range []string{"weather", "news", "social", "resource"} {
		bundle[name] = types.ProviderResult{
			Provider: name,
			OK:       true,
			Payload:  json.RawMessage(`{"source":"` + name + `","detail":"` + strings.Repeat(name+" ", 60) + `"}`),
		}
	}
	bundle["maps"] = types.ProviderResult{Provider: "maps", OK: true, Payload: json.RawMessage(mapsPayload)}
	return bundle
}

func TestTriagePromptTruncatesPayloads(t *testing.T) {
	bundle := fixtureBundle()
	prompt := BuildTriagePrompt("smoke near library", "Central Library", bundle)

	assert.Contains(t, prompt, "Scenario: smoke near library")
	assert.Contains(t, prompt, "Location: Central Library")

	// Each payload appears only as a bounded preview.
	social := string(bundle["social"].Payload)
	assert.NotContains(t, prompt, social)
	assert.Contains(t, prompt, social[:200]+"...")
	assert.Contains(t, prompt, "Weather: ")
	assert.Contains(t, prompt, "Resources: ")
}

func TestFalseAlarmPromptCarriesFullPayloadsAndChecklist(t *testing.T) {
	bundle := fixtureBundle()
	prompt := BuildFalseAlarmPrompt("smell of smoke", "Dorm A", bundle)

	for _, name := range []string{"weather", "maps", "news", "social", "resource"} {
		assert.Contains(t, prompt, string(bundle[name].Payload), "full %s payload missing", name)
	}
	assert.Contains(t, prompt, "=== WEATHER CONDITIONS ===")
	assert.Contains(t, prompt, "Are weather conditions normal or threatening?")
	assert.Contains(t, prompt, "Are emergency services actively responding?")
}

func TestEmergencyPromptReinjectsGeographicFacts(t *testing.T) {
	bundle := fixtureBundle()
	prompt := BuildEmergencyPrompt("smoke near library", "Central Library", types.Fire, bundle)

	assert.Contains(t, prompt, "Emergency Type: FIRE")
	// The nested map facts get surfaced verbatim as top-level fields.
	assert.Contains(t, prompt, `- Current Location: {"lat":37.3496,"lng":-121.9390}`)
	assert.Contains(t, prompt, `- Fire/Hazard Zone: {"lat":37.3490,"lng":-121.9395}`)
	assert.Contains(t, prompt, `- Safe Shelter: {"lat":37.3535,"lng":-121.9345}`)
	assert.Contains(t, prompt, `"name":"Alviso Street"`)
	assert.Contains(t, prompt, "=== GEOGRAPHIC DATA & EVACUATION ROUTES ===")
}

func TestEmergencyPromptHazardFallsBackToStormCenter(t *testing.T) {
	bundle := fixtureBundle()
	bundle["maps"] = types.ProviderResult{
		Provider: "maps",
		OK:       true,
		Payload:  json.RawMessage(`{"current_location":{"coordinates":{"lat":1,"lng":2}},"storm_center":{"coordinates":{"lat":3,"lng":4}}}`),
	}

	prompt := BuildEmergencyPrompt("storm", "Coast", types.Hurricane, bundle)

	assert.Contains(t, prompt, `- Fire/Hazard Zone: {"lat":3,"lng":4}`)
}

func TestEmergencyPromptDefaultsMissingFacts(t *testing.T) {
	bundle := fixtureBundle()
	bundle["maps"] = types.ProviderResult{Provider: "maps", OK: true, Payload: json.RawMessage(`{"status":"All routes clear"}`)}

	prompt := BuildEmergencyPrompt("check", "Campus", types.None, bundle)

	assert.Contains(t, prompt, "- Current Location: {}")
	assert.Contains(t, prompt, "- Safe Shelter: {}")
	assert.Contains(t, prompt, "- Waypoints: []")
}

func TestPromptsRenderFailedProvidersAsErrorDocuments(t *testing.T) {
	bundle := fixtureBundle()
	bundle["news"] = types.ProviderResult{Provider: "news", OK: false, Detail: "service news returned status: 503"}

	prompt := BuildFalseAlarmPrompt("s", "l", bundle)
	require.Contains(t, prompt, `{"error":"service news returned status: 503"}`)
}

func TestSystemPromptSelection(t *testing.T) {
	assert.Equal(t, EmergencySystem, System(true))
	assert.Equal(t, FalseAlarmSystem, System(false))
	assert.Contains(t, EmergencySystem, "Generate EXACTLY 5 evacuation steps")
	assert.Contains(t, FalseAlarmSystem, `"is_emergency": false`)
}
