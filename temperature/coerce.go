package temperature

import (
	"encoding/json"
	"fmt"
)

// ComputeAny is Compute for input whose type is only known at run time, such
// as a value decoded from JSON. It enforces the sequence-of-numbers contract
// explicitly before any unit logic runs: the input must be a slice of numeric
// values, and anything else — nil, a scalar, a string, a map — is rejected
// with ErrInvalidInput.
func ComputeAny(input any, opts Options) (Stats, error) {
	readings, err := coerceReadings(input)
	if err != nil {
		return Stats{}, err
	}
	return Compute(readings, opts)
}

func coerceReadings(input any) ([]float64, error) {
	switch v := input.(type) {
	case nil:
		return nil, fmt.Errorf("%w: no readings provided", ErrInvalidInput)
	case []float64:
		return v, nil
	case []int:
		out := make([]float64, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out, nil
	case []any:
		out := make([]float64, len(v))
		for i, e := range v {
			f, err := coerceReading(e)
			if err != nil {
				return nil, err
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T is not a sequence of numbers", ErrInvalidInput, input)
	}
}

func coerceReading(e any) (float64, error) {
	switch n := e.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidInput, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: element %v (%T) is not numeric", ErrInvalidInput, e, e)
	}
}
