package utils

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayKey formats the calendar day of t.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// SameDay reports whether a and b fall on the same calendar day of a's location.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b.In(a.Location()))
}

// AddDays moves t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// ParseDay accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date and returns
// the start of the matching local day.
func ParseDay(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return StartOfDay(t.In(time.Local)), nil
	}
	t, err := time.ParseInLocation(DayLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC 3339 or %s", raw, DayLayout)
	}
	return t, nil
}
