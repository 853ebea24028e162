// Package model implements parametric dispersion models.
//
// A [Family] is a closed set of named formulas. Each family is defined
// against one canonical spectrum kind and unit: the refractive index
// formulas of the refractiveindex.info database take wavelength in µm and
// yield n, while the metal and absorber models (Drude, Drude-Lorentz,
// Tauc-Lorentz) take energy in eV and yield complex permittivity.
//
// A [Model] binds a family to a validated parameter vector and a valid
// range. [Model.Evaluate] converts the caller's spectrum point by point, so
// the result lines up with the caller's ordering.
package model
