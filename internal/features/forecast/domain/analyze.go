package domain

import (
	"math"
	"sort"
	"time"
)

// ShiftBucket holds the vehicles assigned to one shift window together
// with the shift's projected load and capacity figures.
type ShiftBucket struct {
	// Definition is the shift this bucket belongs to.
	Definition ShiftDefinition `json:"definition"`
	// WindowStart is the absolute start of the shift window.
	WindowStart time.Time `json:"window_start"`
	// WindowEnd is the absolute end of the shift window. Callers compare
	// it against their own "now" to decide whether the shift is completed.
	WindowEnd time.Time `json:"window_end"`
	// Vehicles are the projections bucketed into this shift, in input
	// iteration order. Display sorting is a renderer concern.
	Vehicles []ProcessedVehicle `json:"vehicles"`
	// TotalLoad is the summed load of the bucketed vehicles.
	TotalLoad int `json:"total_load"`
	// TotalMixedBags is the summed mixed-bag count of the bucketed vehicles.
	TotalMixedBags int `json:"total_mixed_bags"`
	// UnloadCapacity is the shift's theoretical unload throughput.
	UnloadCapacity float64 `json:"unload_capacity"`
	// MixBagCapacity is the shift's theoretical mixed-bag throughput.
	MixBagCapacity float64 `json:"mix_bag_capacity"`
	// UnloadStress is TotalLoad over UnloadCapacity (0 when capacity is 0).
	UnloadStress float64 `json:"unload_stress"`
	// MixBagStress is TotalMixedBags over MixBagCapacity (0 when capacity is 0).
	MixBagStress float64 `json:"mix_bag_stress"`
}

// DayForecast groups the three shift buckets of one calendar day.
type DayForecast struct {
	// Date is the calendar date at midnight in the analysis location.
	Date time.Time `json:"date"`

	ShiftA ShiftBucket `json:"shift_a"`
	ShiftB ShiftBucket `json:"shift_b"`
	ShiftC ShiftBucket `json:"shift_c"`
}

// buckets returns the day's buckets in scan order A, B, C.
func (d *DayForecast) buckets() [3]*ShiftBucket {
	return [3]*ShiftBucket{&d.ShiftA, &d.ShiftB, &d.ShiftC}
}

// Totals aggregates every analyzable vehicle, including overflow.
type Totals struct {
	TotalLoad      int `json:"total_load"`
	TotalMixedBags int `json:"total_mixed_bags"`
	VehicleCount   int `json:"vehicle_count"`
}

// AnalysisResult is the engine's sole output: a two-day forecast plus
// the vehicles falling beyond it and the overall totals.
type AnalysisResult struct {
	Day0 DayForecast `json:"day0"`
	Day1 DayForecast `json:"day1"`
	// Overflow holds vehicles whose ready time falls outside both
	// tracked days. They carry no completion projection.
	Overflow []ProcessedVehicle `json:"overflow"`
	Totals   Totals             `json:"totals"`
}

// AllVehicles returns every processed vehicle in the result, bucketed
// and overflow alike.
func (r *AnalysisResult) AllVehicles() []ProcessedVehicle {
	var out []ProcessedVehicle
	for _, day := range []*DayForecast{&r.Day0, &r.Day1} {
		for _, b := range day.buckets() {
			out = append(out, b.Vehicles...)
		}
	}
	return append(out, r.Overflow...)
}

// Analyze buckets every vehicle into the two-day shift forecast and
// projects completion times and statuses. It is a pure function of
// (vehicles, cfg, now): no clock reads, no I/O, no retained state, so
// identical inputs always reproduce an identical result.
//
// Records without a usable arrival timestamp are skipped entirely.
// Zero or negative capacity parameters never cause a panic or an
// infinite value in the output.
func Analyze(vehicles map[string]VehicleRecord, cfg CenterConfig, now time.Time) AnalysisResult {
	cfg = cfg.Normalized()

	day0 := OperationalDay(now, cfg.Shifts)
	day1 := day0.AddDate(0, 0, 1)

	result := AnalysisResult{
		Day0: newDayForecast(day0, cfg),
		Day1: newDayForecast(day1, cfg),
	}
	days := [2]*DayForecast{&result.Day0, &result.Day1}

	// Map iteration order is randomized; sort IDs so bucket contents are
	// reproducible across runs with identical inputs.
	ids := make([]string, 0, len(vehicles))
	for id := range vehicles {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	prepBuffer := time.Duration(cfg.PrepBufferMins) * time.Minute

	for _, id := range ids {
		rec := vehicles[id]
		if rec.ID == "" {
			rec.ID = id
		}

		eta := rec.EffectiveETA()
		if eta.IsZero() {
			continue
		}
		readyTime := eta.Add(prepBuffer)

		bucket := assignBucket(days, readyTime)
		if bucket == nil {
			result.Overflow = append(result.Overflow, ProcessedVehicle{
				VehicleRecord: rec,
				EffectiveETA:  eta,
				ReadyTime:     readyTime,
				IsPastETA:     eta.Before(now),
				HighPriority:  rec.MixedBagCount > cfg.HighPriorityThreshold,
			})
		} else {
			pv := project(rec, cfg, eta, readyTime, bucket.WindowEnd, now)
			bucket.Vehicles = append(bucket.Vehicles, pv)
			bucket.TotalLoad += rec.TotalLoad
			bucket.TotalMixedBags += rec.MixedBagCount
		}

		result.Totals.TotalLoad += rec.TotalLoad
		result.Totals.TotalMixedBags += rec.MixedBagCount
		result.Totals.VehicleCount++
	}

	for _, day := range days {
		for _, b := range day.buckets() {
			b.computeStress(cfg)
		}
	}

	return result
}

// newDayForecast builds the empty buckets for one calendar day.
func newDayForecast(date time.Time, cfg CenterConfig) DayForecast {
	bounds := ComputeBounds(date, cfg.Shifts)
	return DayForecast{
		Date:   date,
		ShiftA: ShiftBucket{Definition: cfg.Shifts.A, WindowStart: bounds.A.Start, WindowEnd: bounds.A.End},
		ShiftB: ShiftBucket{Definition: cfg.Shifts.B, WindowStart: bounds.B.Start, WindowEnd: bounds.B.End},
		ShiftC: ShiftBucket{Definition: cfg.Shifts.C, WindowStart: bounds.C.Start, WindowEnd: bounds.C.End},
	}
}

// assignBucket scans day0 A,B,C then day1 A,B,C and returns the first
// bucket whose window contains readyTime, or nil when none does.
// Windows may overlap; the earlier shift wins.
func assignBucket(days [2]*DayForecast, readyTime time.Time) *ShiftBucket {
	for _, day := range days {
		for _, b := range day.buckets() {
			w := Window{Start: b.WindowStart, End: b.WindowEnd}
			if w.Contains(readyTime) {
				return b
			}
		}
	}
	return nil
}

// project computes the completion timeline and status for one bucketed
// vehicle. Unloading and mixed-bag sorting are sequential stages on the
// same dock timeline: sorting cannot start until the bay is cleared.
func project(rec VehicleRecord, cfg CenterConfig, eta, readyTime, shiftEnd time.Time, now time.Time) ProcessedVehicle {
	unloadRate := float64(cfg.BaysAvailable) * cfg.UnloadRatePerHourPerBay
	var unloadHours float64
	if unloadRate > 0 {
		unloadHours = float64(rec.TotalLoad) / unloadRate
	}
	unloadDone := readyTime.Add(durationHours(unloadHours))

	var mixBagHours float64
	if cfg.MixBagProcessRatePerHour > 0 {
		mixBagHours = float64(rec.MixedBagCount) / cfg.MixBagProcessRatePerHour
	}
	finalCompletion := unloadDone.Add(durationHours(mixBagHours))

	status := VehicleStatusOnTime
	spillover := 0
	if finalCompletion.After(shiftEnd) {
		extendedEnd := shiftEnd.Add(time.Duration(cfg.ShiftExtensionMins) * time.Minute)
		if finalCompletion.After(extendedEnd) {
			status = VehicleStatusHandover
		} else {
			status = VehicleStatusOvertime
		}
		spillover = int(math.Round(finalCompletion.Sub(shiftEnd).Minutes()))
	}

	return ProcessedVehicle{
		VehicleRecord:        rec,
		EffectiveETA:         eta,
		ReadyTime:            readyTime,
		UnloadCompletionTime: unloadDone,
		FinalCompletionTime:  finalCompletion,
		Status:               status,
		SpilloverMinutes:     spillover,
		IsPastETA:            eta.Before(now),
		HighPriority:         rec.MixedBagCount > cfg.HighPriorityThreshold,
	}
}

// computeStress fills in the bucket's capacity and stress figures.
// Zero capacity yields zero stress, never NaN or Inf.
func (b *ShiftBucket) computeStress(cfg CenterConfig) {
	workHours := float64(b.Definition.DurationHours()) - cfg.ShiftBreakHours
	if workHours < 0 {
		workHours = 0
	}

	b.UnloadCapacity = workHours * float64(cfg.BaysAvailable) * cfg.UnloadRatePerHourPerBay
	b.MixBagCapacity = workHours * cfg.MixBagProcessRatePerHour

	if b.UnloadCapacity > 0 {
		b.UnloadStress = float64(b.TotalLoad) / b.UnloadCapacity
	}
	if b.MixBagCapacity > 0 {
		b.MixBagStress = float64(b.TotalMixedBags) / b.MixBagCapacity
	}
}

// durationHours converts fractional hours to a time.Duration.
func durationHours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
