package valueobject

import (
	"fmt"
	"time"
)

// StatementPeriod represents a statement month (year + month).
type StatementPeriod struct {
	year  int
	month time.Month
}

func NewStatementPeriod(year int, month time.Month) (StatementPeriod, error) {
	if year < 1900 || year > 2200 {
		return StatementPeriod{}, fmt.Errorf("invalid year %d: must be between 1900 and 2200", year)
	}
	if month < time.January || month > time.December {
		return StatementPeriod{}, fmt.Errorf("invalid month %d", month)
	}
	return StatementPeriod{year: year, month: month}, nil
}

// ParseStatementPeriod parses a 6-digit YYYYMM string.
func ParseStatementPeriod(s string) (StatementPeriod, error) {
	t, err := time.ParseInLocation("200601", s, time.UTC)
	if err != nil || len(s) != 6 {
		return StatementPeriod{}, fmt.Errorf("%w: %q must be YYYYMM", ErrInvalidDateFormat, s)
	}
	return NewStatementPeriod(t.Year(), t.Month())
}

// StatementPeriodOf returns the period containing the given date.
func StatementPeriodOf(t time.Time) StatementPeriod {
	return StatementPeriod{year: t.Year(), month: t.Month()}
}

func (p StatementPeriod) Year() int         { return p.year }
func (p StatementPeriod) Month() time.Month { return p.month }
func (p StatementPeriod) IsZero() bool      { return p.year == 0 }

// String renders the period as YYYYMM.
func (p StatementPeriod) String() string {
	return fmt.Sprintf("%04d%02d", p.year, p.month)
}

// StartDate is the first calendar day of the month, UTC midnight.
func (p StatementPeriod) StartDate() time.Time {
	return time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC)
}

// EndDate is the last calendar day of the month, leap years included.
func (p StatementPeriod) EndDate() time.Time {
	return p.StartDate().AddDate(0, 1, -1)
}
