package spectrum

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Quantity is an ordered array of spectral values tagged with a kind and a
// unit. The zero value is an empty quantity without kind.
type Quantity struct {
	values []float64
	kind   Kind
	unit   Unit
}

// New validates and copies values into a Quantity.
func New(values []float64, kind Kind, unit Unit) (Quantity, error) {
	if err := checkUnit(kind, unit); err != nil {
		return Quantity{}, err
	}

	for i, v := range values {
		if math.IsNaN(v) || v < 0 {
			return Quantity{}, fmt.Errorf("%w: index %d is %v", ErrInvalidValue, i, v)
		}
	}

	return Quantity{values: slices.Clone(values), kind: kind, unit: unit}, nil
}

// Must panics if err is non-nil and returns q otherwise.
func Must(q Quantity, err error) Quantity {
	if err != nil {
		panic(err)
	}
	return q
}

// Wavelengths is shorthand for New(values, Wavelength, unit).
func Wavelengths(unit Unit, values ...float64) (Quantity, error) {
	return New(values, Wavelength, unit)
}

// Energies is shorthand for New(values, Energy, unit).
func Energies(unit Unit, values ...float64) (Quantity, error) {
	return New(values, Energy, unit)
}

// Frequencies is shorthand for New(values, Frequency, unit).
func Frequencies(unit Unit, values ...float64) (Quantity, error) {
	return New(values, Frequency, unit)
}

// Kind returns the spectrum kind.
func (q Quantity) Kind() Kind { return q.kind }

// Unit returns the unit of the values.
func (q Quantity) Unit() Unit { return q.unit }

// Len returns the number of values.
func (q Quantity) Len() int { return len(q.values) }

// At returns the i-th value.
func (q Quantity) At(i int) float64 { return q.values[i] }

// Values returns a copy of the values.
func (q Quantity) Values() []float64 { return slices.Clone(q.values) }

// Min returns the smallest value, or NaN for an empty quantity.
func (q Quantity) Min() float64 {
	if len(q.values) == 0 {
		return math.NaN()
	}
	return floats.Min(q.values)
}

// Max returns the largest value, or NaN for an empty quantity.
func (q Quantity) Max() float64 {
	if len(q.values) == 0 {
		return math.NaN()
	}
	return floats.Max(q.values)
}

// Slice returns the values in [lo, hi) as a new quantity of the same kind.
func (q Quantity) Slice(lo, hi int) Quantity {
	return Quantity{values: slices.Clone(q.values[lo:hi]), kind: q.kind, unit: q.unit}
}

// IsAscending reports whether the values are strictly increasing.
func (q Quantity) IsAscending() bool {
	for i := 1; i < len(q.values); i++ {
		if !(q.values[i] > q.values[i-1]) {
			return false
		}
	}
	return true
}

// ConvertTo returns the quantity expressed in another kind and unit. When the
// mapping between the kinds is decreasing the element order is reversed, so
// an ascending quantity stays ascending.
func (q Quantity) ConvertTo(kind Kind, unit Unit) (Quantity, error) {
	if err := checkUnit(kind, unit); err != nil {
		return Quantity{}, err
	}
	if err := checkUnit(q.kind, q.unit); err != nil {
		return Quantity{}, err
	}

	out := make([]float64, len(q.values))
	convertInto(out, q.values, q.kind, q.unit, kind, unit)

	if Decreasing(q.kind, kind) {
		slices.Reverse(out)
	}

	return Quantity{values: out, kind: kind, unit: unit}, nil
}

// ValuesIn returns the values converted point by point, without reordering.
func (q Quantity) ValuesIn(kind Kind, unit Unit) ([]float64, error) {
	return ConvertValues(q.values, q.kind, q.unit, kind, unit)
}

// ConvertValuesInPlace overwrites the stored values with their conversion to
// kind and unit, keeping the element order of ConvertTo.
//
// The kind and unit of q are NOT updated: afterwards q reports its old kind
// and unit while holding values in the new ones. Copies of q taken before
// the call keep their values. The receiver must not be shared between
// goroutines while this runs.
func (q *Quantity) ConvertValuesInPlace(kind Kind, unit Unit) error {
	if err := checkUnit(kind, unit); err != nil {
		return err
	}
	if err := checkUnit(q.kind, q.unit); err != nil {
		return err
	}

	// Copies of q share the backing array; only q sees the new values.
	values := slices.Clone(q.values)
	convertInto(values, values, q.kind, q.unit, kind, unit)

	if Decreasing(q.kind, kind) {
		slices.Reverse(values)
	}
	q.values = values

	return nil
}

// Inverse returns a copy with the value order reversed. Kind and unit are
// unchanged.
func (q Quantity) Inverse() Quantity {
	out := slices.Clone(q.values)
	slices.Reverse(out)
	return Quantity{values: out, kind: q.kind, unit: q.unit}
}

// String formats the quantity for diagnostics.
func (q Quantity) String() string {
	return fmt.Sprintf("%v %v %v", q.kind, q.values, q.unit)
}
