package tabulated

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// predictor evaluates an interpolant at x.
type predictor func(x float64) float64

// newPredictor fits an interpolant of the given order through (xs, ys). The
// order is reduced when there are too few points for it.
func newPredictor(xs, ys []float64, order int) (predictor, error) {
	if order < 0 || order > MaxOrder {
		return nil, fmt.Errorf("%w: %d", ErrOrder, order)
	}

	n := len(xs)
	if n == 1 {
		c := ys[0]
		return func(float64) float64 { return c }, nil
	}

	if order > n-1 {
		order = n - 1
	}

	var fitter interp.FittablePredictor
	switch order {
	case 0:
		fitter = &interp.PiecewiseConstant{}
	case 1:
		fitter = &interp.PiecewiseLinear{}
	case 3:
		if n < 4 {
			fitter = &interp.PiecewiseLinear{}
			break
		}
		fitter = &interp.NotAKnotCubic{}
	default:
		return lagrange(xs, ys, order), nil
	}

	if err := fitter.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTable, err)
	}

	return fitter.Predict, nil
}

// lagrange returns a local Lagrange interpolant through the order+1 points
// surrounding x, evaluated with Neville's scheme.
func lagrange(xs, ys []float64, order int) predictor {
	n := len(xs)
	width := order + 1

	return func(x float64) float64 {
		i := sort.SearchFloat64s(xs, x) - 1
		start := i - (width-2)/2
		start = max(0, min(start, n-width))

		p := make([]float64, width)
		copy(p, ys[start:start+width])
		for k := 1; k < width; k++ {
			for j := 0; j < width-k; j++ {
				xa, xb := xs[start+j], xs[start+j+k]
				p[j] = ((x-xb)*p[j] + (xa-x)*p[j+1]) / (xa - xb)
			}
		}
		return p[0]
	}
}
