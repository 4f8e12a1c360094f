package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Day is a single calendar day.
const Day = 24 * time.Hour

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatUTCDate formats the UTC calendar day of t as YYYY-MM-DD.
func FormatUTCDate(t time.Time) string {
	return FormatDate(t.UTC())
}

// AddDays shifts t by a signed number of days, keeping the time of day.
func AddDays(t time.Time, days int) time.Time {
	return t.Add(time.Duration(days) * Day)
}
