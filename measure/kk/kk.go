package kk

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
)

var (
	// ErrGrid indicates an energy grid that is too short, not ascending or
	// not uniform where uniformity is required.
	ErrGrid = errors.New("kk: invalid energy grid")
	// ErrLength indicates mismatched slice lengths.
	ErrLength = errors.New("kk: length mismatch")
)

// uniformTol is the relative tolerance on grid spacing for the FFT method.
const uniformTol = 1e-6

// RealFromImagFFT returns eps1 - eps∞ on the grid of eps2. The energies
// must be uniformly spaced and start at zero.
func RealFromImagFFT(energies, eps2 []float64) ([]float64, error) {
	n := len(eps2)
	if len(energies) != n {
		return nil, fmt.Errorf("%w: %d energies, %d values", ErrLength, len(energies), n)
	}
	if n < 2 || energies[0] != 0 {
		return nil, fmt.Errorf("%w: need at least 2 points starting at 0", ErrGrid)
	}

	step := energies[1]
	for i := 1; i < n; i++ {
		if d := energies[i] - energies[i-1]; math.Abs(d-step) > uniformTol*step {
			return nil, fmt.Errorf("%w: spacing %v at index %d, want %v", ErrGrid, d, i, step)
		}
	}

	// Pad to twice the odd extension to keep the circular wrap-around away
	// from the data.
	size := nextPowerOf2(4 * n)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("kk: failed to create FFT plan: %w", err)
	}

	odd := make([]complex128, size)
	odd[0] = complex(eps2[0], 0)
	for k := 1; k < n; k++ {
		odd[k] = complex(eps2[k], 0)
		odd[size-k] = complex(-eps2[k], 0)
	}

	spec := make([]complex128, size)
	if err := plan.Forward(spec, odd); err != nil {
		return nil, fmt.Errorf("kk: forward FFT failed: %w", err)
	}

	half := size / 2
	spec[0], spec[half] = 0, 0
	for j := 1; j < half; j++ {
		spec[j] *= 1i
		spec[size-j] *= -1i
	}

	res := make([]complex128, size)
	if err := plan.Inverse(res, spec); err != nil {
		return nil, fmt.Errorf("kk: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(res[i])
	}
	return out, nil
}

// RealFromImagQuad returns eps1 - eps∞ at the energies in at. The
// integrand's pole at E' = E is removed by subtracting E·eps2(E) and adding
// back its closed form integral; eps2(E) is interpolated linearly.
func RealFromImagQuad(energies, eps2, at []float64) ([]float64, error) {
	n := len(energies)
	if len(eps2) != n {
		return nil, fmt.Errorf("%w: %d energies, %d values", ErrLength, n, len(eps2))
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points", ErrGrid)
	}
	for i := 1; i < n; i++ {
		if energies[i] <= energies[i-1] {
			return nil, fmt.Errorf("%w: not ascending at index %d", ErrGrid, i)
		}
	}
	if energies[0] < 0 {
		return nil, fmt.Errorf("%w: negative energy %v", ErrGrid, energies[0])
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(energies, eps2); err != nil {
		return nil, fmt.Errorf("kk: %w", err)
	}

	lo, hi := energies[0], energies[n-1]
	g := make([]float64, n)
	out := make([]float64, len(at))

	for k, e := range at {
		f := pl.Predict(e)

		pole := -1
		for i, x := range energies {
			if math.Abs(x-e) <= 1e-12*math.Max(1, e) {
				pole = i
				continue
			}
			g[i] = (x*eps2[i] - e*f) / (x*x - e*e)
		}
		if pole >= 0 {
			switch {
			case n == 2:
				g[pole] = g[1-pole]
			case pole == 0:
				g[0] = g[1]
			case pole == n-1:
				g[n-1] = g[n-2]
			default:
				g[pole] = (g[pole-1] + g[pole+1]) / 2
			}
		}

		out[k] = integrate.Trapezoidal(energies, g) + f/2*(logRatio(hi, e)-logRatio(lo, e))
	}

	vecmath.ScaleBlockInPlace(out, 2/math.Pi)
	return out, nil
}

// logRatio returns ln|(x-e)/(x+e)|, with 0 where it is singular.
func logRatio(x, e float64) float64 {
	d := math.Abs(x - e)
	if d == 0 || x+e == 0 {
		return 0
	}
	return math.Log(d / (x + e))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
