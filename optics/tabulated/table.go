package tabulated

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// MaxOrder is the highest supported interpolation order.
const MaxOrder = 5

// grid holds strictly ascending coordinates with their kind and unit.
type grid struct {
	x    []float64
	kind spectrum.Kind
	unit spectrum.Unit
}

// sanitize validates a table, reverses descending input and drops rows that
// break strict monotonicity. The column slices are copied.
func sanitize(x []float64, kind spectrum.Kind, unit spectrum.Unit, cols ...[]float64) ([]float64, [][]float64, error) {
	if err := spectrum.Validate(kind, unit); err != nil {
		return nil, nil, err
	}
	if len(x) == 0 {
		return nil, nil, fmt.Errorf("%w: no rows", ErrTable)
	}
	for c, col := range cols {
		if len(col) != len(x) {
			return nil, nil, fmt.Errorf("%w: column %d has %d rows, coordinates have %d", ErrTable, c, len(col), len(x))
		}
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, nil, fmt.Errorf("%w: coordinate %d is %v", ErrTable, i, v)
		}
	}

	xs := slices.Clone(x)
	out := make([][]float64, len(cols))
	for c, col := range cols {
		out[c] = slices.Clone(col)
	}

	if len(xs) > 1 && xs[0] > xs[len(xs)-1] {
		slices.Reverse(xs)
		for _, col := range out {
			slices.Reverse(col)
		}
	}

	keep := 1
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[keep-1]) {
			continue
		}
		xs[keep] = xs[i]
		for _, col := range out {
			col[keep] = col[i]
		}
		keep++
	}

	xs = xs[:keep]
	for c := range out {
		out[c] = out[c][:keep]
	}

	return xs, out, nil
}

// Len returns the number of rows.
func (g grid) Len() int { return len(g.x) }

// Kind returns the spectrum kind of the coordinates.
func (g grid) Kind() spectrum.Kind { return g.kind }

// Unit returns the unit of the coordinates.
func (g grid) Unit() spectrum.Unit { return g.unit }

// X returns a copy of the coordinates.
func (g grid) X() []float64 { return slices.Clone(g.x) }

// Range returns [first, last] coordinate.
func (g grid) Range() spectrum.Range {
	return spectrum.Range{Min: g.x[0], Max: g.x[len(g.x)-1], Kind: g.kind, Unit: g.unit}
}

// outside returns the number of xs outside the table range and the index
// of the first one.
func (g grid) outside(xs []float64) (int, int) {
	r := g.Range()
	count, first := 0, -1
	for i, x := range xs {
		if !r.Contains(x) {
			if first < 0 {
				first = i
			}
			count++
		}
	}
	return count, first
}

func (g grid) rangeError(q spectrum.Quantity, first int) error {
	return fmt.Errorf("%w: %v %v (index %d) not in %v",
		spectrum.ErrOutOfRange, q.At(first), q.Unit(), first, g.Range())
}
