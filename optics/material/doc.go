// Package material defines the optical response of a material and evaluates
// it as complex refractive index or complex permittivity.
//
// A [Material] has six slots: n, k, eps_r and eps_i hold real components,
// nk and eps hold complex ones. Each slot is empty or filled by a fixed
// value, a tabulated data set or a dispersion model. A material is fully
// defined, and can be evaluated, when one of these representations is
// complete:
//
//   - n and k
//   - eps_r and eps_i
//   - nk
//   - eps
//
// When only one half of a real pair is given the other half is set to a
// fixed zero, so a material built with just [WithFixedN] is lossless.
// Filling slots from two representations is rejected at construction.
//
// [Material.EvaluateNK] and [Material.EvaluatePermittivity] convert between
// the representations with eps = (n+ik)² and n+ik = sqrt(eps) on the
// principal branch.
package material
