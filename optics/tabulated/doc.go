// Package tabulated stores spectral data sampled at discrete coordinates and
// interpolates or extrapolates it.
//
// Two table types exist. [Real] holds one real component (n, k, eps_r or
// eps_i) and can be extrapolated beyond its range. [Complex] holds a jointly
// tabulated complex quantity (n+ik or eps). It has no extrapolation method:
// the real and imaginary parts would be extended by independent fits, so a
// complex table must be split with [Complex.Split] first.
//
// Interpolation orders:
//
//   - 0: piecewise constant, left-continuous
//   - 1: piecewise linear (default)
//   - 3: not-a-knot cubic spline
//   - 2, 4, 5: local Lagrange polynomial through order+1 neighbours
//
// A table with fewer points than an order needs is interpolated with the
// highest order it supports.
package tabulated
