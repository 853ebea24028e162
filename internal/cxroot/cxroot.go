// Package cxroot provides complex root finding used by the effective medium
// solvers: a damped Newton iteration for a single root and Durand-Kerner for
// all roots of a polynomial.
package cxroot

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var (
	// ErrDegeneratePolynomial is returned when a polynomial has a zero
	// leading coefficient or the simultaneous iteration does not settle.
	ErrDegeneratePolynomial = errors.New("cxroot: degenerate polynomial")
	// ErrNoConvergence is returned when Newton iteration exhausts its budget.
	ErrNoConvergence = errors.New("cxroot: no convergence")
)

// Default iteration settings. DefaultResidualTol bounds |f| at an accepted
// root.
const (
	DefaultTol         = 1e-12
	DefaultMaxIter     = 200
	DefaultResidualTol = 1e-9
)

// Func returns the residual and its derivative at z.
type Func func(z complex128) (f, df complex128)

// Newton finds a root of fn starting at guess. Steps that do not reduce the
// residual are halved up to 30 times. Iteration stops once the relative step
// falls below tol; the result is accepted only if |f| is then within
// DefaultResidualTol, otherwise the iteration has stalled and
// ErrNoConvergence is returned. Non-positive tol and maxIter select the
// defaults.
func Newton(fn Func, guess complex128, tol float64, maxIter int) (complex128, error) {
	if tol <= 0 {
		tol = DefaultTol
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	z := guess
	f, df := fn(z)

	for range maxIter {
		if f == 0 {
			return z, nil
		}
		if df == 0 || cmplx.IsNaN(df) {
			return z, ErrNoConvergence
		}

		step := f / df
		res := cmplx.Abs(f)

		next := z - step
		nf, ndf := fn(next)
		for k := 0; k < 30 && !(cmplx.Abs(nf) < res); k++ {
			step /= 2
			next = z - step
			nf, ndf = fn(next)
		}

		z, f, df = next, nf, ndf

		if cmplx.Abs(step) <= tol*math.Max(1, cmplx.Abs(z)) {
			if res := cmplx.Abs(f); !(res <= DefaultResidualTol) {
				return z, fmt.Errorf("%w: stalled with residual %g", ErrNoConvergence, res)
			}
			return z, nil
		}
	}

	return z, ErrNoConvergence
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = cmplx.Rect(r, angle)
	}

	const maxIter = 500

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}

			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < DefaultTol*radius {
			return roots, nil
		}
	}

	for _, r := range roots {
		if cmplx.Abs(PolyEval(norm, r)) > 1e-6*math.Pow(math.Max(1, cmplx.Abs(r)), float64(n)) {
			return nil, ErrDegeneratePolynomial
		}
	}

	return roots, nil
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// PolyMul multiplies two polynomials in descending power order.
func PolyMul(a, b []complex128) []complex128 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]complex128, len(a)+len(b)-1)
	for i, x := range a {
		for j, y := range b {
			out[i+j] += x * y
		}
	}

	return out
}

// PolyAdd adds two polynomials in descending power order.
func PolyAdd(a, b []complex128) []complex128 {
	if len(a) < len(b) {
		a, b = b, a
	}

	out := append([]complex128(nil), a...)
	off := len(a) - len(b)
	for i, y := range b {
		out[off+i] += y
	}

	return out
}

// TrimLeading drops leading coefficients whose magnitude is below tol times
// the largest coefficient.
func TrimLeading(coeff []complex128, tol float64) []complex128 {
	largest := 0.0
	for _, c := range coeff {
		largest = math.Max(largest, cmplx.Abs(c))
	}

	for len(coeff) > 1 && cmplx.Abs(coeff[0]) <= tol*largest {
		coeff = coeff[1:]
	}

	return coeff
}

// Nearest returns the root closest to target among those with a
// non-negative imaginary part. The second result is false if no root
// qualifies.
func Nearest(roots []complex128, target complex128) (complex128, bool) {
	best := complex(0, 0)
	bestDist := math.Inf(1)
	found := false

	for _, r := range roots {
		if imag(r) < -1e-12*math.Max(1, cmplx.Abs(r)) {
			continue
		}
		if d := cmplx.Abs(r - target); d < bestDist {
			best, bestDist, found = r, d, true
		}
	}

	return best, found
}
