// ABOUTME: Civil date utilities shared by the projector, aggregator, and CLI
// ABOUTME: All date arithmetic uses the device-local calendar, never UTC
package util

import "time"

// CivilDateLayout is the storage and display format for calendar dates
const CivilDateLayout = "2006-01-02"

// ParseCivil parses a YYYY-MM-DD string as a local calendar date (local midnight)
func ParseCivil(s string) (time.Time, error) {
	return time.ParseInLocation(CivilDateLayout, s, time.Local)
}

// FormatCivil formats a time as its local calendar date
func FormatCivil(t time.Time) string {
	return t.In(time.Local).Format(CivilDateLayout)
}

// Midnight truncates a time to its local calendar date
func Midnight(t time.Time) time.Time {
	local := t.In(time.Local)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

// Today returns the current local calendar date
func Today() time.Time {
	return Midnight(time.Now())
}

// DaysBetween returns the whole-day floor between two local calendar dates.
// Both dates are re-anchored in UTC before subtracting so a DST transition
// (a 23- or 25-hour local day) cannot skew the count.
func DaysBetween(from, to time.Time) int {
	f := from.In(time.Local)
	t := to.In(time.Local)
	a := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// IsFuture reports whether t falls on a local calendar date after now's
func IsFuture(t, now time.Time) bool {
	return Midnight(t).After(Midnight(now))
}
