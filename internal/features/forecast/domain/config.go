package domain

// CenterConfig holds the operating parameters of a single center.
// It is owned by the caller and never mutated by the engine.
type CenterConfig struct {
	// BaysAvailable is the number of unloading bays at the dock.
	BaysAvailable int `json:"bays_available"`
	// UnloadRatePerHourPerBay is the unload throughput of one bay.
	UnloadRatePerHourPerBay float64 `json:"unload_rate_per_hour_per_bay"`
	// MixBagProcessRatePerHour is the mixed-bag sorting throughput.
	MixBagProcessRatePerHour float64 `json:"mix_bag_process_rate_per_hour"`
	// ShiftBreakHours is the non-working time deducted from each shift.
	ShiftBreakHours float64 `json:"shift_break_hours"`
	// PrepBufferMins is added to a vehicle's arrival before it can
	// occupy a bay (paperwork, positioning).
	PrepBufferMins int `json:"prep_buffer_mins"`
	// ShiftExtensionMins is the grace window past a shift's end within
	// which processing still counts as overtime rather than handover.
	ShiftExtensionMins int `json:"shift_extension_mins"`
	// HighPriorityThreshold flags vehicles whose mixed-bag count
	// exceeds it.
	HighPriorityThreshold int `json:"high_priority_threshold"`
	// Shifts defines the three-shift cycle.
	Shifts ShiftSet `json:"shifts"`
}

// DefaultCenterConfig returns the configuration applied to newly
// registered centers.
func DefaultCenterConfig() CenterConfig {
	return CenterConfig{
		BaysAvailable:            3,
		UnloadRatePerHourPerBay:  350,
		MixBagProcessRatePerHour: 3000,
		ShiftBreakHours:          1,
		PrepBufferMins:           30,
		ShiftExtensionMins:       60,
		HighPriorityThreshold:    1000,
		Shifts: ShiftSet{
			A: ShiftDefinition{Name: "Shift A", StartHour: 7, EndHour: 16, Color: "#007bff"},
			B: ShiftDefinition{Name: "Shift B", StartHour: 13, EndHour: 22, Color: "#28a745"},
			C: ShiftDefinition{Name: "Shift C", StartHour: 22, EndHour: 7, Color: "#dc3545"},
		},
	}
}

// Normalized returns a copy with physically nonsensical negative
// values clamped to zero, so downstream math never divides by or
// accumulates negative capacity.
func (c CenterConfig) Normalized() CenterConfig {
	if c.BaysAvailable < 0 {
		c.BaysAvailable = 0
	}
	if c.UnloadRatePerHourPerBay < 0 {
		c.UnloadRatePerHourPerBay = 0
	}
	if c.MixBagProcessRatePerHour < 0 {
		c.MixBagProcessRatePerHour = 0
	}
	if c.ShiftBreakHours < 0 {
		c.ShiftBreakHours = 0
	}
	if c.PrepBufferMins < 0 {
		c.PrepBufferMins = 0
	}
	if c.ShiftExtensionMins < 0 {
		c.ShiftExtensionMins = 0
	}
	return c
}
