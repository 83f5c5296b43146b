package temperature

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports input that is not a sequence of finite numbers.
	ErrInvalidInput = errors.New("input is not a sequence of finite numbers")

	// ErrMissingUnit reports that no unit was declared and neither policy
	// flag resolves the ambiguity.
	ErrMissingUnit = errors.New("input unit not specified and cannot be inferred")

	// ErrAmbiguousReadings reports undeclared-unit input that fits both
	// scales (without ConvertMixedValues) or neither, so no conversion
	// policy applies even under ForceConvertIfMismatch.
	ErrAmbiguousReadings = errors.New("readings fit no single scale and no conversion policy applies")

	// ErrOutOfHumanRange reports resolved Fahrenheit values outside the
	// plausible human range.
	ErrOutOfHumanRange = errors.New("reading outside the plausible human temperature range")

	// ErrUnitMismatch is matched by UnitMismatchError via errors.Is.
	ErrUnitMismatch = errors.New("declared unit contradicts the readings")
)

// UnitMismatchError reports that the declared input unit contradicts the only
// scale the readings actually fit, and ForceConvertIfMismatch was not set. It
// wraps ErrUnitMismatch so callers that don't care which unit was declared
// can test with errors.Is.
type UnitMismatchError struct {
	Declared Unit
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("readings do not fit declared unit %q", e.Declared)
}

func (e *UnitMismatchError) Unwrap() error { return ErrUnitMismatch }
