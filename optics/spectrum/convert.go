package spectrum

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dispersion/optics/core"
)

// Decreasing reports whether converting from one kind to another reverses
// the order of values. Wavelength is reciprocal to every other kind.
func Decreasing(from, to Kind) bool {
	return (from == Wavelength) != (to == Wavelength)
}

// ConvertValues converts values point by point from one kind/unit to
// another. The element order is preserved; see [Quantity.ConvertTo] for the
// order-normalising conversion.
func ConvertValues(values []float64, fromKind Kind, fromUnit Unit, toKind Kind, toUnit Unit) ([]float64, error) {
	if err := checkUnit(fromKind, fromUnit); err != nil {
		return nil, err
	}
	if err := checkUnit(toKind, toUnit); err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	convertInto(out, values, fromKind, fromUnit, toKind, toUnit)

	return out, nil
}

// convertInto writes the converted values of src to dst. dst and src may
// alias. Units must already be validated.
func convertInto(dst, src []float64, fromKind Kind, fromUnit Unit, toKind Kind, toUnit Unit) {
	if len(src) == 0 {
		return
	}

	if fromKind == toKind {
		vecmath.ScaleBlock(dst, src, fromUnit.Factor()/toUnit.Factor())
		return
	}

	vecmath.ScaleBlock(dst, src, fromUnit.Factor())

	for i, x := range dst {
		dst[i] = fromFrequency(toFrequency(x, fromKind), toKind)
	}

	if toKind == Energy {
		perEV := ElementaryCharge / toUnit.Factor()
		for i, x := range dst {
			dst[i] = core.RoundTo(x/ElementaryCharge, EnergyDecimals) * perEV
		}
		return
	}

	vecmath.ScaleBlockInPlace(dst, 1/toUnit.Factor())
}

// convertPoint converts a single value. Units must already be validated.
func convertPoint(x float64, fromKind Kind, fromUnit Unit, toKind Kind, toUnit Unit) float64 {
	buf := [1]float64{x}
	convertInto(buf[:], buf[:], fromKind, fromUnit, toKind, toUnit)
	return buf[0]
}

// toFrequency maps an SI value of the given kind to frequency in Hz.
func toFrequency(x float64, kind Kind) float64 {
	switch kind {
	case Wavelength:
		return SpeedOfLight / x
	case Energy:
		return x / Planck
	case AngularFrequency:
		return x / twoPi
	case Wavenumber:
		return SpeedOfLight * x
	default:
		return x
	}
}

// fromFrequency maps a frequency in Hz to an SI value of the given kind.
func fromFrequency(f float64, kind Kind) float64 {
	switch kind {
	case Wavelength:
		return SpeedOfLight / f
	case Energy:
		return Planck * f
	case AngularFrequency:
		return twoPi * f
	case Wavenumber:
		return f / SpeedOfLight
	default:
		return f
	}
}
