package temperature

import (
	"fmt"
	"strings"
)

// Unit identifies the temperature scale a reading is expressed in.
type Unit int

const (
	// UnitUnspecified means the caller did not declare a scale; Compute
	// infers one from the data and the Options flags.
	UnitUnspecified Unit = iota
	UnitCelsius
	UnitFahrenheit
)

// String returns the single-letter tag used in output and error messages:
// "C", "F", or "" for unspecified.
func (u Unit) String() string {
	switch u {
	case UnitCelsius:
		return "C"
	case UnitFahrenheit:
		return "F"
	default:
		return ""
	}
}

// ParseUnit maps a configuration string to a Unit. It accepts the
// single-letter tags "C" and "F" as well as the full scale names,
// case-insensitively. An empty string parses to UnitUnspecified.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return UnitUnspecified, nil
	case "c", "celsius":
		return UnitCelsius, nil
	case "f", "fahrenheit":
		return UnitFahrenheit, nil
	default:
		return UnitUnspecified, fmt.Errorf("unknown temperature unit %q", s)
	}
}

// Plausible human body-temperature bounds, inclusive on both ends.
// The ranges are fixed and not configurable; see the package documentation
// for why they are not exact conversions of each other.
const (
	FahrenheitMin = 93.0
	FahrenheitMax = 105.0
	CelsiusMin    = 34.0
	CelsiusMax    = 40.5
)

// celsiusToFahrenheit converts exactly, with no rounding.
func celsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func inFahrenheitRange(v float64) bool {
	return v >= FahrenheitMin && v <= FahrenheitMax
}

func inCelsiusRange(v float64) bool {
	return v >= CelsiusMin && v <= CelsiusMax
}
