package pipeline

import (
	"log"
	"math"

	"crisisvision/types"
)

const (
	earthRadiusM = 6371000.0

	// Plausible total walking range for an evacuation route, in meters.
	minRouteM = 500.0
	maxRouteM = 1500.0
)

// checkRouteLength logs when a decoded plan's total route falls outside the
// plausible walking range. The plan is still returned; the range is a
// sanity signal, not a contract.
func (p *Controller) checkRouteLength(analysisID string, plan types.EvacuationPlan) {
	total := routeLengthMeters(plan)
	if total < minRouteM || total > maxRouteM {
		log.Printf("[%s] warning: plan route length %.0fm outside plausible walking range (%.0f-%.0fm)",
			analysisID, total, minRouteM, maxRouteM)
	}
}

// routeLengthMeters sums the great-circle distance over consecutive steps.
func routeLengthMeters(plan types.EvacuationPlan) float64 {
	var total float64
	for i := 1; i < len(plan.EvacuationSteps); i++ {
		prev := plan.EvacuationSteps[i-1].Coordinates
		cur := plan.EvacuationSteps[i].Coordinates
		if prev == nil || cur == nil {
			continue
		}
		total += haversineDistance(prev.Lat, prev.Lng, cur.Lat, cur.Lng)
	}
	return total
}

// haversineDistance calculates the great-circle distance in meters between
// two points specified in decimal degrees.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	radLat1 := lat1 * math.Pi / 180
	radLat2 := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}
