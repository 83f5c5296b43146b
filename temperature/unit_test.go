package temperature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected Unit
	}{
		{"", UnitUnspecified},
		{"  ", UnitUnspecified},
		{"C", UnitCelsius},
		{"c", UnitCelsius},
		{"celsius", UnitCelsius},
		{"Celsius", UnitCelsius},
		{"F", UnitFahrenheit},
		{"f", UnitFahrenheit},
		{"fahrenheit", UnitFahrenheit},
		{" F ", UnitFahrenheit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, err := ParseUnit(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}

	t.Run("unknown unit", func(t *testing.T) {
		_, err := ParseUnit("kelvin")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "kelvin")
	})
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "C", UnitCelsius.String())
	assert.Equal(t, "F", UnitFahrenheit.String())
	assert.Equal(t, "", UnitUnspecified.String())
}

func TestCelsiusBandMapsIntoFahrenheitBand(t *testing.T) {
	// Every value in the Celsius band must convert to a value inside the
	// Fahrenheit band, otherwise a converted batch could never validate.
	for c := CelsiusMin; c <= CelsiusMax; c += 0.1 {
		f := celsiusToFahrenheit(c)
		assert.True(t, inFahrenheitRange(f), "%.1f°C converts to %.2f°F, outside the band", c, f)
	}
}

func TestConversionIsExact(t *testing.T) {
	assert.Equal(t, 32.0, celsiusToFahrenheit(0))
	assert.Equal(t, 98.6, celsiusToFahrenheit(37.0))
	assert.Equal(t, 212.0, celsiusToFahrenheit(100))
}
