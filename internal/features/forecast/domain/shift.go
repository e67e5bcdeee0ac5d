package domain

import "time"

// ShiftDefinition describes one operational shift by its hours of day.
// A shift whose EndHour is numerically less than or equal to its StartHour
// spans midnight and ends on the following calendar day.
type ShiftDefinition struct {
	// Name is the display name of the shift (e.g. "Shift C").
	Name string `json:"name"`
	// StartHour is the hour of day [0,23] the shift begins.
	StartHour int `json:"start"`
	// EndHour is the hour of day [0,23] the shift ends.
	EndHour int `json:"end"`
	// Color is an opaque display hint carried through to renderers.
	Color string `json:"color"`
}

// DurationHours returns the shift length in hours, applying the
// midnight wraparound rule.
func (s ShiftDefinition) DurationHours() int {
	if s.EndHour <= s.StartHour {
		return s.EndHour + 24 - s.StartHour
	}
	return s.EndHour - s.StartHour
}

// ShiftSet holds the three shifts composing an operational day.
// The model tolerates gaps and overlaps between shifts; it does not
// assume the three cover exactly 24 hours.
type ShiftSet struct {
	A ShiftDefinition `json:"A"`
	B ShiftDefinition `json:"B"`
	C ShiftDefinition `json:"C"`
}

// Window is an absolute [Start, End) time interval.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the window (start inclusive,
// end exclusive).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// ShiftBounds holds the absolute windows of all three shifts for one
// calendar day.
type ShiftBounds struct {
	A Window `json:"A"`
	B Window `json:"B"`
	C Window `json:"C"`
}

// shiftWindow computes the absolute window of a single shift on the
// given calendar date. If the shift wraps past midnight the end lands
// on the next day, so End is always after Start.
func shiftWindow(date time.Time, s ShiftDefinition) Window {
	start := time.Date(date.Year(), date.Month(), date.Day(), s.StartHour, 0, 0, 0, date.Location())

	endDay := date
	if s.EndHour <= s.StartHour {
		endDay = date.AddDate(0, 0, 1)
	}
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), s.EndHour, 0, 0, 0, date.Location())

	return Window{Start: start, End: end}
}

// ComputeBounds computes the absolute shift windows for the given
// calendar date. Pure function of its inputs; it never reads the clock.
func ComputeBounds(date time.Time, shifts ShiftSet) ShiftBounds {
	return ShiftBounds{
		A: shiftWindow(date, shifts.A),
		B: shiftWindow(date, shifts.B),
		C: shiftWindow(date, shifts.C),
	}
}

// OperationalDay returns the calendar date whose shift cycle "now"
// belongs to. While yesterday's night shift is still in progress the
// operational day is yesterday, so vehicles of one night shift are not
// split across two day buckets when viewed after midnight.
func OperationalDay(now time.Time, shifts ShiftSet) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	if shiftWindow(yesterday, shifts.C).Contains(now) {
		return yesterday
	}
	return today
}
