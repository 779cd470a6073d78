package types

// Coordinates is a GPS point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EvacuationStep is one leg of the five-step plan. Step 1 starts at the
// current location and step 5 ends at the safe shelter.
type EvacuationStep struct {
	Step        int          `json:"step"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Situation   string       `json:"situation"`
	Action      string       `json:"action"`
	Coordinates *Coordinates `json:"coordinates"`
	Distance    string       `json:"distance"`
	Time        string       `json:"time"`
	Warning     string       `json:"warning,omitempty"`
}

// SafeShelter is the single evacuation destination.
type SafeShelter struct {
	Name        string       `json:"name"`
	Coordinates *Coordinates `json:"coordinates"`
	Distance    string       `json:"distance"`
}

// EmergencyContact is one entry of the plan's contact list.
type EmergencyContact struct {
	Service string `json:"service"`
	Number  string `json:"number"`
}

// EvacuationPlan is the emergency-branch response document.
type EvacuationPlan struct {
	IsEmergency       bool               `json:"is_emergency"`
	Severity          string             `json:"severity"`
	ThreatType        string             `json:"threat_type"`
	EvacuationSteps   []EvacuationStep   `json:"evacuation_steps"`
	BlockedRoutes     []string           `json:"blocked_routes"`
	SafeShelter       SafeShelter        `json:"safe_shelter"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
}

// DataSource records one provider consulted during a false-alarm analysis.
type DataSource struct {
	Source   string `json:"source"`
	Query    string `json:"query"`
	Response string `json:"response"`
}

// Assessment is the false-alarm-branch response document.
type Assessment struct {
	IsEmergency      bool         `json:"is_emergency"`
	Assessment       string       `json:"assessment"`
	Confidence       float64      `json:"confidence"`
	Reasoning        string       `json:"reasoning"`
	DataSources      []DataSource `json:"data_sources"`
	SuggestedActions []string     `json:"suggested_actions"`
}
