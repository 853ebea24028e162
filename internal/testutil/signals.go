package testutil

import "math"

// LinSpace returns n evenly spaced values from lo to hi inclusive.
func LinSpace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// GeomSpace returns n geometrically spaced values from lo to hi inclusive.
// Both bounds must be positive.
func GeomSpace(lo, hi float64, n int) []float64 {
	out := LinSpace(math.Log(lo), math.Log(hi), n)
	for i, v := range out {
		out[i] = math.Exp(v)
	}
	out[0], out[n-1] = lo, hi
	return out
}

// Lorentz returns the permittivity of a single Lorentz oscillator
// 1 + wp²/(w0² - E² - iγE) at energy e.
func Lorentz(e, w0, gamma, wp float64) complex128 {
	return 1 + complex(wp*wp, 0)/complex(w0*w0-e*e, -gamma*e)
}
