package domain

import (
	"time"

	forecastdomain "github.com/rahulphari/eye/internal/features/forecast/domain"
)

// AlertKind identifies one notification milestone for a vehicle.
type AlertKind string

const (
	// AlertKindApproach60 fires when a tracked vehicle is within an hour.
	AlertKindApproach60 AlertKind = "APPROACH_60"
	// AlertKindApproach30 fires when a tracked vehicle is within 30 minutes.
	AlertKindApproach30 AlertKind = "APPROACH_30"
	// AlertKindArrived fires once the tracked vehicle's ETA has passed.
	AlertKindArrived AlertKind = "ARRIVED"
)

// Alert is the structured event handed to notifiers.
type Alert struct {
	CenterID       string    `json:"center_id"`
	VehicleID      string    `json:"vehicle_id"`
	Kind           AlertKind `json:"kind"`
	ETA            time.Time `json:"eta"`
	OriginFacility string    `json:"origin_facility"`
	TotalLoad      int       `json:"total_load"`
	FiredAt        time.Time `json:"fired_at"`
}

// DueKinds returns the alert kinds currently due for a vehicle snapshot.
// Only GPS-tracked vehicles alert; a scheduled estimate alone is too
// coarse to page anyone over. Once the vehicle has arrived the approach
// milestones are moot and only the arrival alert remains due.
func DueKinds(v forecastdomain.ProcessedVehicle, now time.Time) []AlertKind {
	if !v.HasGPS || v.EffectiveETA.IsZero() {
		return nil
	}

	remaining := v.EffectiveETA.Sub(now)
	if remaining <= 0 {
		return []AlertKind{AlertKindArrived}
	}

	var due []AlertKind
	if remaining <= 60*time.Minute {
		due = append(due, AlertKindApproach60)
	}
	if remaining <= 30*time.Minute {
		due = append(due, AlertKindApproach30)
	}
	return due
}
