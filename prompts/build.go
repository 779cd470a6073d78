package prompts

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"crisisvision/types"
)

// triagePreviewLen bounds each provider payload in the stage-1 prompt. The
// fast model gets a glance at every source, not the full documents.
const triagePreviewLen = 200

// sectionOrder fixes the rendering order of provider data in every prompt.
var sectionOrder = []string{"weather", "maps", "news", "social", "resource"}

var sectionLabels = map[string]string{
	"weather":  "WEATHER CONDITIONS",
	"maps":     "GEOGRAPHIC & NAVIGATION DATA",
	"news":     "NEWS & OFFICIAL REPORTS",
	"social":   "SOCIAL MEDIA ANALYSIS",
	"resource": "EMERGENCY RESOURCES",
}

var emergencyLabels = map[string]string{
	"weather":  "WEATHER CONDITIONS",
	"maps":     "GEOGRAPHIC DATA & EVACUATION ROUTES",
	"news":     "OFFICIAL EMERGENCY REPORTS",
	"social":   "SOCIAL MEDIA - LIVE UPDATES",
	"resource": "EMERGENCY RESOURCES AVAILABLE",
}

var triageLabels = map[string]string{
	"weather":  "Weather",
	"maps":     "Maps",
	"news":     "News",
	"social":   "Social",
	"resource": "Resources",
}

// BuildTriagePrompt renders the stage-1 prompt with truncated payload
// previews from every provider.
func BuildTriagePrompt(scenario, location string, bundle types.IntelligenceBundle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "QUICK TRIAGE ASSESSMENT\n\nScenario: %s\nLocation: %s\n\nINTELLIGENCE DATA:\n", scenario, location)
	for _, name := range sectionOrder {
		fmt.Fprintf(&b, "%s: %s...\n", triageLabels[name], preview(bundle[name]))
	}
	b.WriteString("\nIs this a real emergency requiring evacuation? Decide NOW.")
	return b.String()
}

// BuildFalseAlarmPrompt renders the stage-2 false-alarm prompt with the full
// payload of every provider and the analytic checklist.
func BuildFalseAlarmPrompt(scenario, location string, bundle types.IntelligenceBundle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EMERGENCY ANALYSIS REQUEST\n\nScenario: %s\nLocation: %s\n\nDATA FROM INTELLIGENCE SOURCES:\n", scenario, location)
	writeSections(&b, bundle, sectionLabels)
	b.WriteString(`
TASK:
Analyze all the above data to determine if this is a false alarm. Consider:
1. Are weather conditions normal or threatening?
2. Are there any official emergency reports?
3. What is the volume and sentiment of social media posts?
4. Are emergency services actively responding?
5. Is there evidence of an actual emergency?

If the evidence suggests this is a false alarm (e.g., routine fire drill, scheduled test, no corroborating reports), provide a calm, professional assessment with helpful suggested actions.

Generate a complete JSON response following the required format.`)
	return b.String()
}

// BuildEmergencyPrompt renders the stage-2 emergency prompt. Besides the
// full payloads it re-extracts the key geographic facts from the maps
// payload and surfaces them as top-level fields the model must reuse
// verbatim; models are unreliable at locating nested fields inside a large
// embedded document.
func BuildEmergencyPrompt(scenario, location string, category types.Category, bundle types.IntelligenceBundle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ACTIVE EMERGENCY SITUATION\n\nEmergency Type: %s\nLocation: %s\nScenario: %s\n\nREAL-TIME INTELLIGENCE DATA:\n",
		strings.ToUpper(string(category)), location, scenario)
	writeSections(&b, bundle, emergencyLabels)

	facts := extractGeoFacts(bundle["maps"])
	fmt.Fprintf(&b, `
EVACUATION PLANNING TASK:

Based on the above data, you must create a detailed 5-step evacuation plan.

IMPORTANT - Use these EXACT GPS coordinates from the map data:
- Current Location: %s
- Fire/Hazard Zone: %s
- Safe Shelter: %s
- Waypoints: %s

EVACUATION ROUTE REQUIREMENTS:
1. Step 1: Start at current location
2. Steps 2-4: Follow the waypoints provided in the map data
3. Step 5: Arrive at the safe shelter
4. Each step must include specific directions (e.g., "Exit building", "Head north on X street", "Turn left onto Y street")
5. Include distance and time for each step
6. Note any blocked roads from the map data
7. Include specific warnings for each step based on the hazards present

Consider the emergency type (%s) when writing warnings and instructions.

Generate the complete JSON evacuation plan now.`,
		facts.current, facts.hazard, facts.shelter, facts.waypoints, category)
	return b.String()
}

type geoFacts struct {
	current   string
	hazard    string
	shelter   string
	waypoints string
}

// extractGeoFacts pulls the coordinates the plan must anchor to out of the
// maps payload. Absent fields (valid for the "none" category or a failed
// provider) render as empty placeholders rather than failing.
func extractGeoFacts(maps types.ProviderResult) geoFacts {
	doc := string(maps.Document())
	return geoFacts{
		current:   lookup(doc, "{}", "current_location.coordinates"),
		hazard:    lookup(doc, "{}", "fire_location.coordinates", "storm_center.coordinates"),
		shelter:   lookup(doc, "{}", "safe_zones.0.coordinates"),
		waypoints: lookup(doc, "[]", "evacuation_routes.0.waypoints"),
	}
}

// lookup returns the raw JSON at the first path that exists, or the fallback.
func lookup(doc, fallback string, paths ...string) string {
	for _, path := range paths {
		if r := gjson.Get(doc, path); r.Exists() {
			return r.Raw
		}
	}
	return fallback
}

func writeSections(b *strings.Builder, bundle types.IntelligenceBundle, labels map[string]string) {
	for _, name := range sectionOrder {
		fmt.Fprintf(b, "\n=== %s ===\n%s\n", labels[name], string(bundle[name].Document()))
	}
}

func preview(r types.ProviderResult) string {
	doc := string(r.Document())
	if len(doc) > triagePreviewLen {
		return doc[:triagePreviewLen]
	}
	return doc
}
