package valueobject

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat indicates an input that is not an 8-digit YYYYMMDD
// calendar date.
var ErrInvalidDateFormat = errors.New("invalid date format")

const dateLayout = "20060102"

// ParseDate parses an 8-digit YYYYMMDD string into a UTC-midnight date.
// Impossible calendar dates (20230231) are rejected.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(dateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q must be YYYYMMDD", ErrInvalidDateFormat, s)
	}
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q must be a valid YYYYMMDD date", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// FormatDate renders a date as YYYYMMDD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// TruncateToDay strips any time-of-day component, normalizing to UTC midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetweenInclusive counts calendar days in [from, to], both endpoints
// included. Returns 0 if to precedes from.
func DaysBetweenInclusive(from, to time.Time) int {
	f := TruncateToDay(from)
	e := TruncateToDay(to)
	if e.Before(f) {
		return 0
	}
	return int(e.Sub(f).Hours()/24) + 1
}
