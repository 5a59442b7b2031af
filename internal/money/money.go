package money

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// ToMinorUnits converts a user-entered decimal amount (like 12.34) to minor
// units as int64. Negative, NaN and infinite values are rejected; entries
// never carry a negative amount.
func ToMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrInvalidAmount
	}
	if amount < 0 {
		return 0, ErrInvalidAmount
	}
	// int64 max ~9e18, so the decimal value must stay under ~9e16
	if amount > 9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	minor := int64(math.Round(amount * 100.0))
	if minor < 0 {
		return 0, ErrInvalidAmount
	}
	return minor, nil
}

// FormatMinorUnits renders minor units as a plain decimal string, 123.45 style.
func FormatMinorUnits(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	whole := minor / 100
	frac := minor % 100
	return fmt.Sprintf("%s%d.%02d", sign, whole, frac)
}
