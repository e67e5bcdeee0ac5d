package domain

import "time"

// VehicleStatus classifies whether a vehicle's processing fits inside
// its assigned shift.
type VehicleStatus string

const (
	// VehicleStatusOnTime indicates processing completes within the shift.
	VehicleStatusOnTime VehicleStatus = "ON_TIME"
	// VehicleStatusOvertime indicates processing completes within the
	// shift's grace extension.
	VehicleStatusOvertime VehicleStatus = "OVERTIME"
	// VehicleStatusHandover indicates processing exceeds even the grace
	// extension and must be handed to the next shift.
	VehicleStatusHandover VehicleStatus = "HANDOVER"
)

// VehicleRecord is a stored inbound vehicle as supplied by the data
// source. LiveArrivalTime is set only when a live tracking source
// supplied it; when present it is authoritative over the estimated time.
type VehicleRecord struct {
	// ID is the unique vehicle identifier (registration number).
	ID string `json:"id"`
	// OriginFacility is the facility the vehicle departed from.
	OriginFacility string `json:"origin_facility"`
	// TotalLoad is the total package count on board.
	TotalLoad int `json:"total_load"`
	// MixedBagCount is the number of mixed-bag packages requiring
	// extra sorting after unload.
	MixedBagCount int `json:"mixed_bag_count"`
	// EstimatedArrivalTime is the scheduled arrival estimate. A zero
	// value marks an unparseable upstream timestamp; such records are
	// skipped by the analysis.
	EstimatedArrivalTime time.Time `json:"estimated_arrival_time"`
	// LiveArrivalTime is the GPS-derived arrival estimate, if any.
	LiveArrivalTime *time.Time `json:"live_arrival_time,omitempty"`
	// HasGPS reports whether a live tracking source covered this vehicle.
	HasGPS bool `json:"has_gps"`
	// OriginCoords is the vehicle's last known "lon,lat" position,
	// used for live route estimation.
	OriginCoords string `json:"origin_coords,omitempty"`
	// LiveDistanceKm is the remaining driving distance reported by the
	// live route lookup, when one succeeded.
	LiveDistanceKm float64 `json:"live_distance_km,omitempty"`
	// SavedAt is when the record was last synced.
	SavedAt time.Time `json:"saved_at"`
}

// VehicleInput is one already-parsed vehicle row handed to a sync. A
// zero EstimatedArrivalTime marks an unparseable upstream timestamp;
// the record is stored but excluded from analysis.
type VehicleInput struct {
	ID                   string
	OriginFacility       string
	TotalLoad            int
	MixedBagCount        int
	EstimatedArrivalTime time.Time
	OriginCoords         string
}

// EffectiveETA returns the live arrival time when available, otherwise
// the estimated arrival time. A zero result means the record carries no
// usable timestamp.
func (v VehicleRecord) EffectiveETA() time.Time {
	if v.LiveArrivalTime != nil && !v.LiveArrivalTime.IsZero() {
		return *v.LiveArrivalTime
	}
	return v.EstimatedArrivalTime
}

// ProcessedVehicle is the engine's per-vehicle projection. It is a pure
// view derived from the record, the center config, and the analysis
// instant; it is recomputed on every run and never persisted.
//
// Vehicles in the overflow bucket carry only identity and arrival
// fields: completion times stay zero and Status stays empty, since they
// have no assigned shift context.
//
// Invariant: Status == VehicleStatusOnTime implies SpilloverMinutes == 0.
type ProcessedVehicle struct {
	VehicleRecord

	// EffectiveETA is the arrival estimate the projection was based on.
	EffectiveETA time.Time `json:"effective_eta"`
	// ReadyTime is EffectiveETA plus the center's prep buffer.
	ReadyTime time.Time `json:"ready_time"`
	// UnloadCompletionTime is when the bay is projected to clear.
	UnloadCompletionTime time.Time `json:"unload_completion_time"`
	// FinalCompletionTime is when mixed-bag sorting is projected to finish.
	FinalCompletionTime time.Time `json:"final_completion_time"`
	// Status classifies the projection against the shift window.
	Status VehicleStatus `json:"status,omitempty"`
	// SpilloverMinutes is how far past the shift end processing runs.
	SpilloverMinutes int `json:"spillover_minutes"`
	// IsPastETA reports whether the effective ETA is already behind "now".
	IsPastETA bool `json:"is_past_eta"`
	// HighPriority flags mixed-bag counts above the center threshold.
	HighPriority bool `json:"high_priority"`
}
