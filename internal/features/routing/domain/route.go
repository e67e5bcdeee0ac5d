package domain

// RouteEstimate is a live driving estimate between two points.
type RouteEstimate struct {
	// DistanceKm is the remaining driving distance in kilometers.
	DistanceKm float64 `json:"distance_km"`
	// DurationSeconds is the remaining driving time in seconds.
	DurationSeconds float64 `json:"duration_seconds"`
}
