package herx

import "errors"

var (
	// ErrDomain is returned when a frequency has no defined logarithm.
	ErrDomain = errors.New("frequency must be a positive finite number")

	// ErrDivisionByZero is returned when the combined denominator is zero.
	ErrDivisionByZero = errors.New("combined denominator is zero")
)
