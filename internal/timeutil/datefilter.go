package timeutil

import "time"

// Clock supplies the current instant. Production code uses time.Now.
type Clock func() time.Time

// DateOf truncates t to its calendar date at midnight UTC, keeping the
// wall-clock day of t's own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the ISO week containing t.
// Handles the Sunday edge case where Go's Weekday() returns 0
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return DateOf(t).AddDate(0, 0, -(weekday - 1))
}

// EndOfWeek returns the Sunday of the ISO week containing t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// StartOfMonth returns the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last calendar day of t's month.
// AddDate handles month lengths and leap years.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// DaysBetween returns the number of whole days from a to b (b - a).
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// DayCount returns the inclusive number of days in [start, end].
func DayCount(start, end time.Time) int {
	return DaysBetween(start, end) + 1
}

// EachDay calls fn for every date in [start, end] in ascending order.
func EachDay(start, end time.Time, fn func(d time.Time)) {
	for d := DateOf(start); !d.After(DateOf(end)); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
