// Package kk checks optical data for Kramers-Kronig consistency.
//
// For a causal response the real part of the permittivity follows from the
// imaginary part:
//
//	eps1(E) - eps∞ = (2/π) P∫₀^∞ E'·eps2(E') / (E'² - E²) dE'
//
// [RealFromImagFFT] evaluates this on a uniform energy grid starting at
// zero with a discrete Hilbert transform of the odd extension of eps2.
// [RealFromImagQuad] evaluates the principal value integral on an
// arbitrary ascending grid by singularity subtraction and the trapezoidal
// rule. [Check] compares a material's eps1 with the transform of its eps2.
//
// Both transforms truncate the integral at the end of the grid, so the
// data should extend well beyond the energies of interest.
package kk
