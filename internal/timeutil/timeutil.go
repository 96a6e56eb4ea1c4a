package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactDateLayout matches the upstream provider's packed date format (YYYYMMDD).
const CompactDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NextWeekdayMidnight returns the next occurrence of the given weekday at
// 00:00 in t's location. When t already falls on that weekday the result is
// a full week out, never t's own midnight.
func NextWeekdayMidnight(t time.Time, day time.Weekday) time.Time {
	days := (int(day) - int(t.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	next := t.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, t.Location())
}
