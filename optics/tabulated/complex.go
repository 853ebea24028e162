package tabulated

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// Complex is a jointly tabulated complex quantity over ascending
// coordinates. It cannot be extrapolated; use Split to obtain two
// extrapolatable real tables.
type Complex struct {
	grid
	re, im []float64
}

// NewComplex builds a complex table from coordinates and the real and
// imaginary value columns.
func NewComplex(x, re, im []float64, kind spectrum.Kind, unit spectrum.Unit) (*Complex, error) {
	xs, cols, err := sanitize(x, kind, unit, re, im)
	if err != nil {
		return nil, err
	}
	return &Complex{grid: grid{x: xs, kind: kind, unit: unit}, re: cols[0], im: cols[1]}, nil
}

// Values returns a copy of the complex values.
func (c *Complex) Values() []complex128 {
	out := make([]complex128, len(c.re))
	for i := range out {
		out[i] = complex(c.re[i], c.im[i])
	}
	return out
}

// Re returns a copy of the real column.
func (c *Complex) Re() []float64 { return slices.Clone(c.re) }

// Im returns a copy of the imaginary column.
func (c *Complex) Im() []float64 { return slices.Clone(c.im) }

// Split returns the real and imaginary columns as independent tables.
func (c *Complex) Split() (re, im *Real) {
	re = &Real{grid: grid{x: slices.Clone(c.x), kind: c.kind, unit: c.unit}, y: slices.Clone(c.re)}
	im = &Real{grid: grid{x: slices.Clone(c.x), kind: c.kind, unit: c.unit}, y: slices.Clone(c.im)}
	return re, im
}

// Interpolate evaluates the table at every point of q, in the order of q.
// Both parts are interpolated with the same order. Points outside the range
// fail with spectrum.ErrOutOfRange in strict mode and with
// ErrComplexExtrapolation in lenient mode.
func (c *Complex) Interpolate(q spectrum.Quantity, order int, opts ...core.EvalOption) ([]complex128, error) {
	cfg := core.ApplyEvalOptions(opts...)

	xs, err := q.ValuesIn(c.kind, c.unit)
	if err != nil {
		return nil, err
	}

	if count, first := c.outside(xs); count > 0 {
		if cfg.Mode == core.Strict {
			return nil, c.rangeError(q, first)
		}
		return nil, fmt.Errorf("%w: %d points outside %v", ErrComplexExtrapolation, count, c.Range())
	}

	re, im := c.Split()

	rv, err := re.interpolate(xs, order, cfg.Workers)
	if err != nil {
		return nil, err
	}
	iv, err := im.interpolate(xs, order, cfg.Workers)
	if err != nil {
		return nil, err
	}

	out := make([]complex128, len(xs))
	for i := range out {
		out[i] = complex(rv[i], iv[i])
	}
	return out, nil
}
