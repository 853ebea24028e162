package ema

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-dispersion/internal/cxroot"
	"github.com/cwbudde/algo-dispersion/optics/core"
)

// residualTol bounds the Bruggeman residual accepted as a solution.
const residualTol = cxroot.DefaultResidualTol

// maxwellGarnett mixes inclusions eps[1:] into the host eps[0]. A point on
// the Fröhlich pole has no finite mixture and fails with ErrResonance.
func maxwellGarnett(eps []complex128, f []float64) (complex128, error) {
	host := eps[0]

	filled := -1
	for i := 1; i < len(eps); i++ {
		if f[i] == 0 {
			continue
		}
		if filled >= 0 || f[i] != 1 {
			filled = -2
			break
		}
		filled = i
	}
	switch {
	case filled == -1:
		return host, nil
	case filled > 0:
		return eps[filled], nil
	}

	var s complex128
	for i := 1; i < len(eps); i++ {
		if f[i] == 0 {
			continue
		}
		d := eps[i] + 2*host
		if d == 0 {
			return 0, fmt.Errorf("%w: inclusion %d eps %v, host %v", ErrResonance, i, eps[i], host)
		}
		s += complex(f[i], 0) * (eps[i] - host) / d
	}

	out := host * (1 + 2*s) / (1 - s)
	if !finite(out) {
		return 0, fmt.Errorf("%w: host %v", ErrResonance, host)
	}
	return out, nil
}

// bruggeman solves Σ fᵢ(εᵢ − ε)/(εᵢ + 2ε) = 0 on the physical branch.
// Newton iteration from the linear average is tried first. If it fails or
// lands on a root with Im ε < 0, the equation is cleared of denominators
// and the polynomial root closest to the seed is taken.
func bruggeman(eps []complex128, f []float64, logger zerolog.Logger) (complex128, error) {
	ee := make([]complex128, 0, len(eps))
	ff := make([]complex128, 0, len(f))
	var seed complex128
	for i, v := range f {
		if v == 0 {
			continue
		}
		ee = append(ee, eps[i])
		ff = append(ff, complex(v, 0))
		seed += complex(v, 0) * eps[i]
	}
	if len(ee) == 1 {
		return ee[0], nil
	}

	fn := func(z complex128) (complex128, complex128) {
		var r, dr complex128
		for i, e := range ee {
			d := e + 2*z
			r += ff[i] * (e - z) / d
			dr -= 3 * ff[i] * e / (d * d)
		}
		return r, dr
	}

	z, err := cxroot.Newton(fn, seed, cxroot.DefaultTol, cxroot.DefaultMaxIter)
	if err == nil && physical(fn, z) {
		return z, nil
	}

	logger.Debug().
		Err(err).
		Float64("seedRe", real(seed)).
		Float64("seedIm", imag(seed)).
		Msg("bruggeman newton failed, solving cleared polynomial")

	roots, perr := cxroot.DurandKerner(clearedPolynomial(ee, ff))
	if perr != nil {
		return 0, fmt.Errorf("%w: %w", cxroot.ErrNoConvergence, perr)
	}
	root, ok := cxroot.Nearest(roots, seed)
	if !ok {
		return 0, cxroot.ErrNoConvergence
	}

	if polished, err := cxroot.Newton(fn, root, cxroot.DefaultTol, cxroot.DefaultMaxIter); err == nil && physical(fn, polished) {
		return polished, nil
	}
	if physical(fn, root) {
		return root, nil
	}

	return 0, cxroot.ErrNoConvergence
}

// physical reports whether z solves fn within residualTol with Im z >= 0.
func physical(fn cxroot.Func, z complex128) bool {
	if !finite(z) {
		return false
	}
	if imag(z) < -1e-12*math.Max(1, cmplx.Abs(z)) {
		return false
	}
	r, _ := fn(z)
	return cmplx.Abs(r) <= residualTol
}

func finite(z complex128) bool {
	return core.IsFinite(real(z)) && core.IsFinite(imag(z))
}

// clearedPolynomial returns Σ fᵢ(εᵢ − z)·Πⱼ≠ᵢ(εⱼ + 2z) in descending powers.
func clearedPolynomial(eps, f []complex128) []complex128 {
	var sum []complex128
	for i := range eps {
		term := []complex128{-f[i], f[i] * eps[i]}
		for j := range eps {
			if j != i {
				term = cxroot.PolyMul(term, []complex128{2, eps[j]})
			}
		}
		sum = cxroot.PolyAdd(sum, term)
	}
	return cxroot.TrimLeading(sum, 1e-14)
}
