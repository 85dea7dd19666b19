package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmountFormat indicates an amount that is not a non-negative
// decimal with at most 2 fractional digits.
var ErrInvalidAmountFormat = errors.New("invalid amount format")

// ParseAmount parses a monetary amount string. Amounts must be non-negative
// and carry at most 2 decimal places; extra precision is rejected, never
// silently rounded.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmountFormat, s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q must not be negative", ErrInvalidAmountFormat, s)
	}
	if d.Exponent() < -2 {
		return decimal.Decimal{}, fmt.Errorf("%w: %q has more than 2 decimal places", ErrInvalidAmountFormat, s)
	}
	return d, nil
}
