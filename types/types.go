package types

import "fmt"

// Category is the closed set of situation categories the pipeline understands.
type Category string

const (
	Fire      Category = "fire"
	Hurricane Category = "hurricane"
	Flood     Category = "flood"
	None      Category = "none"
)

// ParseCategory validates a raw category string against the known set.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Fire, Hurricane, Flood, None:
		return Category(s), nil
	}
	return None, fmt.Errorf("unknown emergency type: %q", s)
}

// AnalysisRequest is the inbound request body for /analyze and /test.
// EmergencyType carries the caller's assertion; stage 1 may refine it.
type AnalysisRequest struct {
	Scenario      string `json:"scenario" binding:"required"`
	Location      string `json:"location" binding:"required"`
	EmergencyType string `json:"emergency_type"`
}
