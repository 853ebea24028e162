package spectrum

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// rangeTol is the relative slack applied at both ends of a range.
const rangeTol = 1e-8

// Range is a closed spectral interval [Min, Max] in a given kind and unit.
type Range struct {
	Min  float64
	Max  float64
	Kind Kind
	Unit Unit
}

// NewRange returns a validated range. The endpoints are swapped if needed.
func NewRange(min, max float64, kind Kind, unit Unit) (Range, error) {
	if err := checkUnit(kind, unit); err != nil {
		return Range{}, err
	}
	if math.IsNaN(min) || math.IsNaN(max) || min < 0 || max < 0 {
		return Range{}, fmt.Errorf("%w: range [%v, %v]", ErrInvalidValue, min, max)
	}
	if min > max {
		min, max = max, min
	}
	return Range{Min: min, Max: max, Kind: kind, Unit: unit}, nil
}

// Unbounded returns the range [0, +Inf) in the given kind and unit.
func Unbounded(kind Kind, unit Unit) Range {
	return Range{Min: 0, Max: math.Inf(1), Kind: kind, Unit: unit}
}

// IsUnbounded reports whether the range starts at zero or ends at infinity.
func (r Range) IsUnbounded() bool {
	return r.Min == 0 || math.IsInf(r.Max, 1)
}

// In returns the range expressed in another kind and unit.
func (r Range) In(kind Kind, unit Unit) (Range, error) {
	if err := checkUnit(kind, unit); err != nil {
		return Range{}, err
	}
	if err := checkUnit(r.Kind, r.Unit); err != nil {
		return Range{}, err
	}

	lo := convertPoint(r.Min, r.Kind, r.Unit, kind, unit)
	hi := convertPoint(r.Max, r.Kind, r.Unit, kind, unit)
	if lo > hi {
		lo, hi = hi, lo
	}

	return Range{Min: lo, Max: hi, Kind: kind, Unit: unit}, nil
}

// Contains reports whether x, given in the range's own unit, lies inside.
func (r Range) Contains(x float64) bool {
	lo := r.Min - rangeTol*math.Abs(r.Min)
	hi := r.Max + rangeTol*math.Abs(r.Max)
	return x >= lo && x <= hi
}

// Check returns an error wrapping ErrOutOfRange for the first value of q
// outside the range.
func (r Range) Check(q Quantity) error {
	values, err := q.ValuesIn(r.Kind, r.Unit)
	if err != nil {
		return err
	}
	for i, x := range values {
		if !r.Contains(x) {
			return fmt.Errorf("%w: %v %v (index %d) not in [%v, %v] %v",
				ErrOutOfRange, q.values[i], q.unit, i, r.Min, r.Max, r.Unit)
		}
	}
	return nil
}

// Covers reports whether other lies fully inside r.
func (r Range) Covers(other Range) (bool, error) {
	o, err := other.In(r.Kind, r.Unit)
	if err != nil {
		return false, err
	}
	return r.Contains(o.Min) && r.Contains(o.Max), nil
}

// Intersect returns the overlap of r and other, in r's kind and unit.
func (r Range) Intersect(other Range) (Range, error) {
	o, err := other.In(r.Kind, r.Unit)
	if err != nil {
		return Range{}, err
	}
	lo := math.Max(r.Min, o.Min)
	hi := math.Min(r.Max, o.Max)
	if lo > hi {
		return Range{}, fmt.Errorf("%w: [%v, %v] and [%v, %v] %v", ErrEmptyRange, r.Min, r.Max, o.Min, o.Max, r.Unit)
	}
	return Range{Min: lo, Max: hi, Kind: r.Kind, Unit: r.Unit}, nil
}

// Extend returns the smallest range containing r and the values xs, which
// are given in r's unit.
func (r Range) Extend(xs ...float64) Range {
	out := r
	for _, x := range xs {
		out.Min = math.Min(out.Min, x)
		out.Max = math.Max(out.Max, x)
	}
	return out
}

// GeomSpace returns n geometrically spaced values spanning the range.
func (r Range) GeomSpace(n int) (Quantity, error) {
	if r.IsUnbounded() {
		return Quantity{}, fmt.Errorf("%w: [%v, %v]", ErrUnboundedRange, r.Min, r.Max)
	}
	if n < 2 {
		n = 2
	}

	values := floats.LogSpan(make([]float64, n), r.Min, r.Max)
	values[0], values[n-1] = r.Min, r.Max

	return New(values, r.Kind, r.Unit)
}

// String formats the range for diagnostics.
func (r Range) String() string {
	return fmt.Sprintf("[%v, %v] %v", r.Min, r.Max, r.Unit)
}
