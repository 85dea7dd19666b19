package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidRateRange indicates a rate outside the open interval (0, 100).
var ErrInvalidRateRange = errors.New("rate must be greater than 0 and less than 100")

var oneHundred = decimal.NewFromInt(100)

// Rate is an immutable annual interest rate expressed in percent,
// e.g. 2.20 means 2.20% per annum.
type Rate struct {
	percent decimal.Decimal
}

// NewRate creates a validated Rate. The percent value must lie strictly
// between 0 and 100.
func NewRate(percent decimal.Decimal) (Rate, error) {
	if percent.LessThanOrEqual(decimal.Zero) || percent.GreaterThanOrEqual(oneHundred) {
		return Rate{}, fmt.Errorf("%w: got %s", ErrInvalidRateRange, percent)
	}
	return Rate{percent: percent}, nil
}

// ParseRate parses a percent string such as "2.20" into a Rate. A value
// that is not a number at all fails with ErrInvalidAmountFormat; a numeric
// value outside (0, 100) fails with ErrInvalidRateRange.
func ParseRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmountFormat, s)
	}
	return NewRate(d)
}

// Percent returns the annual rate in percent.
func (r Rate) Percent() decimal.Decimal {
	return r.percent
}

// Fraction returns the annual rate as a fraction (2.20% -> 0.022).
func (r Rate) Fraction() decimal.Decimal {
	return r.percent.Div(oneHundred)
}

// IsZero reports whether the rate is the zero value.
func (r Rate) IsZero() bool {
	return r.percent.IsZero()
}

// String renders the rate with 2 decimal places.
func (r Rate) String() string {
	return r.percent.StringFixed(2)
}
