package temperature

import (
	"fmt"
	"math"
)

// Options control how Compute resolves the scale of its input readings.
// The zero value declares nothing and enables no conversion policy.
type Options struct {
	// InputUnit declares the scale the readings are expressed in.
	// UnitUnspecified asks Compute to infer the scale from the data.
	InputUnit Unit

	// ForceConvertIfMismatch resolves a contradiction between InputUnit and
	// the data in favour of the data instead of failing.
	ForceConvertIfMismatch bool

	// ConvertMixedValues allows batches mixing both scales: readings in the
	// Celsius range are converted, everything else passes through.
	ConvertMixedValues bool
}

// Stats is the reduction of one batch of readings, always denominated in
// Fahrenheit. For an empty batch Average, Min and Max are NaN.
type Stats struct {
	Average float64
	Min     float64
	Max     float64
	Unit    Unit
}

// Compute reduces a batch of body-temperature readings to average, minimum
// and maximum in Fahrenheit, first resolving whether the input was Celsius or
// Fahrenheit per the decision table in the package documentation.
//
// Every reading must be finite; otherwise Compute fails with ErrInvalidInput.
// An empty (or nil) batch is not an error: it returns the NaN sentinel triple
// with the Fahrenheit tag, without consulting opts. After resolution every
// working value must lie in [FahrenheitMin, FahrenheitMax] or the whole batch
// is rejected with ErrOutOfHumanRange.
func Compute(readings []float64, opts Options) (Stats, error) {
	for _, r := range readings {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return Stats{}, fmt.Errorf("%w: non-finite reading %v", ErrInvalidInput, r)
		}
	}

	if len(readings) == 0 {
		return Stats{
			Average: math.NaN(),
			Min:     math.NaN(),
			Max:     math.NaN(),
			Unit:    UnitFahrenheit,
		}, nil
	}

	resolved, err := resolveScale(readings, opts)
	if err != nil {
		return Stats{}, err
	}

	for _, r := range resolved {
		if !inFahrenheitRange(r) {
			return Stats{}, fmt.Errorf("%w: %g°F not in [%g, %g]",
				ErrOutOfHumanRange, r, FahrenheitMin, FahrenheitMax)
		}
	}

	return reduce(resolved), nil
}

// resolveScale applies the scale-resolution decision table: given the
// declared unit and which plausible bands the raw readings populate, produce
// the Fahrenheit-denominated working array. The input slice is never
// modified.
func resolveScale(readings []float64, opts Options) ([]float64, error) {
	var anyF, anyC bool
	for _, r := range readings {
		if inFahrenheitRange(r) {
			anyF = true
		}
		if inCelsiusRange(r) {
			anyC = true
		}
	}

	switch opts.InputUnit {
	case UnitCelsius:
		return resolveDeclaredCelsius(readings, anyF, anyC, opts)
	case UnitFahrenheit:
		return resolveDeclaredFahrenheit(readings, anyF, anyC, opts)
	default:
		return resolveUndeclared(readings, anyF, anyC, opts)
	}
}

func resolveDeclaredCelsius(readings []float64, anyF, anyC bool, opts Options) ([]float64, error) {
	switch {
	case anyF && !anyC:
		// Data fits only the Fahrenheit band despite the declaration.
		// Forcing trusts the data: the values are already Fahrenheit.
		if opts.ForceConvertIfMismatch {
			return copyReadings(readings), nil
		}
		return nil, &UnitMismatchError{Declared: UnitCelsius}
	case anyF && anyC && opts.ConvertMixedValues:
		return convertCelsiusBand(readings), nil
	default:
		return convertAll(readings), nil
	}
}

func resolveDeclaredFahrenheit(readings []float64, anyF, anyC bool, opts Options) ([]float64, error) {
	switch {
	case anyC && !anyF:
		// Data fits only the Celsius band despite the declaration.
		// Forcing trusts the data: convert everything.
		if opts.ForceConvertIfMismatch {
			return convertAll(readings), nil
		}
		return nil, &UnitMismatchError{Declared: UnitFahrenheit}
	case anyC && anyF && opts.ConvertMixedValues:
		return convertCelsiusBand(readings), nil
	default:
		return copyReadings(readings), nil
	}
}

func resolveUndeclared(readings []float64, anyF, anyC bool, opts Options) ([]float64, error) {
	switch {
	case anyC && anyF && opts.ConvertMixedValues:
		return convertCelsiusBand(readings), nil
	case opts.ForceConvertIfMismatch:
		switch {
		case anyC && !anyF:
			return convertAll(readings), nil
		case anyF && !anyC:
			return copyReadings(readings), nil
		default:
			// Both bands populated without ConvertMixedValues, or neither
			// band populated: no conversion policy applies.
			return nil, ErrAmbiguousReadings
		}
	default:
		return nil, ErrMissingUnit
	}
}

func copyReadings(readings []float64) []float64 {
	out := make([]float64, len(readings))
	copy(out, readings)
	return out
}

func convertAll(readings []float64) []float64 {
	out := make([]float64, len(readings))
	for i, r := range readings {
		out[i] = celsiusToFahrenheit(r)
	}
	return out
}

// convertCelsiusBand converts only readings in the Celsius band; readings
// outside it pass through unchanged.
func convertCelsiusBand(readings []float64) []float64 {
	out := make([]float64, len(readings))
	for i, r := range readings {
		if inCelsiusRange(r) {
			out[i] = celsiusToFahrenheit(r)
		} else {
			out[i] = r
		}
	}
	return out
}

// reduce computes sum, running min and running max in a single pass.
func reduce(values []float64) Stats {
	sum, low, high := values[0], values[0], values[0]
	for _, v := range values[1:] {
		sum += v
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	return Stats{
		Average: sum / float64(len(values)),
		Min:     low,
		Max:     high,
		Unit:    UnitFahrenheit,
	}
}
