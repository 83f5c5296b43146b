// Package temperature computes descriptive statistics (average, minimum,
// maximum) over batches of human body-temperature readings whose scale —
// Celsius or Fahrenheit — may be undeclared or inconsistent within a batch.
//
// # Scale Resolution
//
// Clinical data sources rarely agree on a scale: American devices report
// Fahrenheit, most others Celsius, and merged batches can contain both.
// Rather than require a declared scale, [Compute] classifies each reading
// against two plausible-human ranges:
//
//	Fahrenheit: [93.0, 105.0]
//	Celsius:    [34.0, 40.5]
//
// The two ranges are deliberately not exact conversions of one another
// (93°F ≈ 33.9°C, 105°F ≈ 40.6°C). The asymmetry is inherited from the
// upstream clinical guidance and boundary classification depends on it, so it
// is preserved exactly. Because the ranges sit in disjoint numeric bands, no
// single value can fall in both; a batch populating both bands genuinely
// mixes scales.
//
// Which readings get converted is decided by a table keyed on the declared
// unit, the bands the data populates, and two policy flags:
//
//   - [Options.ForceConvertIfMismatch] resolves a contradiction between the
//     declared unit and the data in favour of the data.
//   - [Options.ConvertMixedValues] allows batches mixing both scales:
//     Celsius-band readings are converted, the rest pass through.
//
// Conversion is the exact affine map f = c×9/5 + 32, never rounded.
//
// # Validation
//
// After resolution every working value must lie in the Fahrenheit range;
// otherwise the whole batch is rejected with [ErrOutOfHumanRange]. A failed
// call salvages nothing — callers either get statistics for the full batch or
// a typed error. The one deliberate exception is the empty batch, which is
// not an error: it reduces to NaN average/min/max with the Fahrenheit tag.
//
// Output is always Fahrenheit.
//
// # Purity
//
// Compute is a pure function of its arguments: no package state, no clock, no
// logging. It is safe to call from any number of goroutines.
package temperature
