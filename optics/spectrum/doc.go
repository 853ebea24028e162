// Package spectrum provides spectral coordinates (wavelength, frequency,
// energy, angular frequency and wavenumber) tagged with their physical unit,
// and the conversions between them.
//
// A [Quantity] is an immutable, ordered array of non-negative values. Because
// wavelength is reciprocal to every other kind, an ascending wavelength array
// becomes descending once expressed as frequency or energy. [Quantity.ConvertTo]
// reverses the element order in that case so that a converted quantity stays
// ascending:
//
//	q, _ := spectrum.New([]float64{400, 500, 600}, spectrum.Wavelength, spectrum.Nanometer)
//	e, _ := q.ConvertTo(spectrum.Energy, spectrum.Electronvolt)
//	// e.Values() = [2.066403307 2.479683969 3.099604961]
//
// Energies produced from another kind are rounded to 9 decimal places in eV.
//
// [ConvertValues] converts point by point and never reorders; evaluation
// code uses it so results line up with the caller's ordering.
//
// [Quantity.ConvertValuesInPlace] rewrites the value buffer only and leaves
// the kind and unit fields untouched. It exists for callers that depended on
// that behaviour and is not used anywhere in this module.
package spectrum
