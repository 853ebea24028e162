// Package ema mixes materials with effective medium approximations.
//
// A [Medium] combines constituents with volume fractions that sum to one.
// Two rules are available:
//
//   - [MaxwellGarnett] treats the first constituent as host and all others
//     as dilute spherical inclusions.
//   - [Bruggeman] treats all constituents symmetrically and solves the
//     self-consistent equation Σ fᵢ(εᵢ − ε)/(εᵢ + 2ε) = 0 for ε.
//
// A Medium evaluates like a [material.Material], so media can be nested as
// constituents of other media.
package ema
