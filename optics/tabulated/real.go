package tabulated

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// maxGenerated caps the number of points added on each side by Extrapolate.
const maxGenerated = 512

// Real is a table of one real component over ascending coordinates.
type Real struct {
	grid
	y []float64
}

// NewReal builds a table from coordinates x and values y in the given kind
// and unit. Descending tables are reversed and rows that break strict
// monotonicity are dropped.
func NewReal(x, y []float64, kind spectrum.Kind, unit spectrum.Unit) (*Real, error) {
	xs, cols, err := sanitize(x, kind, unit, y)
	if err != nil {
		return nil, err
	}
	return &Real{grid: grid{x: xs, kind: kind, unit: unit}, y: cols[0]}, nil
}

// Y returns a copy of the values.
func (r *Real) Y() []float64 { return slices.Clone(r.y) }

// Interpolate evaluates the table at every point of q, in the order of q.
//
// Points outside the table range fail with spectrum.ErrOutOfRange in strict
// mode. In lenient mode the table is first extrapolated with the configured
// spline order.
func (r *Real) Interpolate(q spectrum.Quantity, order int, opts ...core.EvalOption) ([]float64, error) {
	cfg := core.ApplyEvalOptions(opts...)

	xs, err := q.ValuesIn(r.kind, r.unit)
	if err != nil {
		return nil, err
	}

	src := r
	if count, first := r.outside(xs); count > 0 {
		if cfg.Mode == core.Strict {
			return nil, r.rangeError(q, first)
		}

		cfg.Logger.Warn().
			Int("points", count).
			Str("range", r.Range().String()).
			Int("splineOrder", cfg.SplineOrder).
			Msg("extrapolating tabulated data")

		if src, err = r.Extrapolate(q, cfg.SplineOrder); err != nil {
			return nil, err
		}
	}

	return src.interpolate(xs, order, cfg.Workers)
}

// interpolate evaluates at xs, which are in the table's kind and unit.
func (r *Real) interpolate(xs []float64, order, workers int) ([]float64, error) {
	predict, err := newPredictor(r.x, r.y, order)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	err = core.Parallel(len(xs), workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			out[i] = predict(xs[i])
		}
		return nil
	})

	return out, err
}

// Extrapolate returns a new table whose range also covers every point of q.
// At each side that needs extension the polynomial of degree splineOrder
// through the splineOrder+1 boundary rows is sampled out to the farthest
// requested coordinate, so the extension starts on the edge row. Points of q inside the range add nothing, in which
// case the result equals the receiver. The receiver is not modified.
func (r *Real) Extrapolate(q spectrum.Quantity, splineOrder int) (*Real, error) {
	if splineOrder < 1 || splineOrder > MaxOrder {
		return nil, fmt.Errorf("%w: got %d", ErrSplineOrder, splineOrder)
	}

	xs, err := q.ValuesIn(r.kind, r.unit)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return r, nil
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	rng := r.Range()

	var leftX, leftY, rightX, rightY []float64
	if !rng.Contains(lo) {
		if leftX, leftY, err = r.extend(lo, splineOrder, true); err != nil {
			return nil, err
		}
	}
	if !rng.Contains(hi) {
		if rightX, rightY, err = r.extend(hi, splineOrder, false); err != nil {
			return nil, err
		}
	}

	if leftX == nil && rightX == nil {
		return r, nil
	}

	x := slices.Concat(leftX, r.x, rightX)
	y := slices.Concat(leftY, r.y, rightY)

	return &Real{grid: grid{x: x, kind: r.kind, unit: r.unit}, y: y}, nil
}

// extend samples the boundary fit from the table edge to target. The
// returned coordinates are ascending and exclude the existing edge row.
func (r *Real) extend(target float64, order int, left bool) ([]float64, []float64, error) {
	n := len(r.x)
	window := min(n, order+1)

	var wx, wy []float64
	if left {
		wx, wy = r.x[:window], r.y[:window]
	} else {
		wx, wy = r.x[n-window:], r.y[n-window:]
	}

	poly, err := fitPolynomial(wx, wy, min(order, window-1))
	if err != nil {
		return nil, nil, err
	}

	edge := r.x[n-1]
	if left {
		edge = r.x[0]
	}

	step := meanSpacing(wx)
	dist := math.Abs(target - edge)
	if step == 0 || dist/step > maxGenerated {
		step = dist / maxGenerated
	}
	count := int(math.Ceil(dist/step - 1e-9))

	gx := make([]float64, count)
	gy := make([]float64, count)
	for i := range count {
		d := step * float64(i+1)
		if i == count-1 {
			d = dist
		}
		x := edge + d
		if left {
			x = edge - d
		}
		gx[i] = x
		gy[i] = poly(x)
	}

	if left {
		slices.Reverse(gx)
		slices.Reverse(gy)
	}

	return gx, gy, nil
}

// fitPolynomial returns the least-squares polynomial of the given degree
// through (xs, ys); with degree len(xs)-1 it interpolates every row.
// Coordinates are centred and scaled for conditioning.
func fitPolynomial(xs, ys []float64, degree int) (func(float64) float64, error) {
	if degree == 0 {
		c := floats.Sum(ys) / float64(len(ys))
		return func(float64) float64 { return c }, nil
	}

	center := (xs[0] + xs[len(xs)-1]) / 2
	scale := (xs[len(xs)-1] - xs[0]) / 2
	if scale == 0 {
		scale = 1
	}

	a := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		t := (x - center) / scale
		v := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= t
		}
	}

	var coef mat.VecDense
	if err := coef.SolveVec(a, mat.NewVecDense(len(ys), slices.Clone(ys))); err != nil {
		return nil, fmt.Errorf("%w: boundary fit: %v", ErrTable, err)
	}

	c := coef.RawVector().Data
	return func(x float64) float64 {
		t := (x - center) / scale
		v := 0.0
		for j := len(c) - 1; j >= 0; j-- {
			v = v*t + c[j]
		}
		return v
	}, nil
}

func meanSpacing(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
}
