// Package core holds the evaluation settings and small numeric helpers shared
// by the optics packages.
//
// Every evaluation entry point accepts [EvalOption] values. The zero
// configuration is strict: a spectral point outside a valid range is an
// error. Lenient evaluation has to be requested explicitly with [WithLenient].
package core
