package material

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-dispersion/optics/spectrum"
	"github.com/cwbudde/algo-dispersion/optics/tabulated"
)

// DefaultSuggestPoints is the number of points SuggestSpectrum returns
// when asked for n <= 0.
const DefaultSuggestPoints = 1000

// modelSamples is the number of points a model is sampled on before its
// boundary is extended.
const modelSamples = 256

// Extrapolate returns a copy of the material whose slots cover q. Tabulated
// real slots are extended with a boundary fit of the given spline order.
// Model slots whose valid range does not cover q are sampled over that range
// and extended the same way; a complex model output becomes the matching
// pair of real slots. Fixed slots are shared unchanged. A jointly tabulated
// complex slot fails with tabulated.ErrComplexExtrapolation.
func (m *Material) Extrapolate(q spectrum.Quantity, splineOrder int) (*Material, error) {
	out := *m

	for _, s := range m.rep.slots() {
		src := m.slots[s]

		switch src.tag {
		case SourceTabulated:
			if src.cplx != nil {
				return nil, fmt.Errorf("%v: %w", s, tabulated.ErrComplexExtrapolation)
			}
			ext, err := src.real.Extrapolate(q, splineOrder)
			if err != nil {
				return nil, fmt.Errorf("%v: %w", s, err)
			}
			out.slots[s] = source{tag: SourceTabulated, real: ext}
		case SourceModel:
			if err := out.extrapolateModel(s, q, splineOrder); err != nil {
				return nil, fmt.Errorf("%v: %w", s, err)
			}
		}
	}

	return &out, nil
}

// extrapolateModel replaces the model in slot s by an extended table when
// the model's valid range does not cover q.
func (m *Material) extrapolateModel(s Slot, q spectrum.Quantity, splineOrder int) error {
	mod := m.slots[s].model
	r := mod.Range()
	if r.Check(q) == nil {
		return nil
	}

	samples, err := sampleRange(r)
	if err != nil {
		return err
	}
	vals, err := mod.Evaluate(samples)
	if err != nil {
		return err
	}

	x := samples.Values()
	re := make([]float64, len(vals))
	im := make([]float64, len(vals))
	for i, v := range vals {
		re[i], im[i] = real(v), imag(v)
	}

	if !s.IsComplex() {
		ext, err := extendTable(x, re, samples, q, splineOrder)
		if err != nil {
			return err
		}
		m.slots[s] = source{tag: SourceTabulated, real: ext}
		return nil
	}

	pair := RepNK
	if s == SlotEps {
		pair = RepEps
	}

	m.slots[s] = source{}
	for i, part := range pair.slots() {
		ys := re
		if i == 1 {
			ys = im
		}
		ext, err := extendTable(x, ys, samples, q, splineOrder)
		if err != nil {
			return fmt.Errorf("%v: %w", part, err)
		}
		m.slots[part] = source{tag: SourceTabulated, real: ext}
	}
	m.rep = pair

	return nil
}

func extendTable(x, y []float64, samples, q spectrum.Quantity, splineOrder int) (*tabulated.Real, error) {
	t, err := tabulated.NewReal(x, y, samples.Kind(), samples.Unit())
	if err != nil {
		return nil, err
	}
	return t.Extrapolate(q, splineOrder)
}

// sampleRange returns evenly spaced points over r. An open end is replaced
// by a finite one; q can only leave r on its finite side.
func sampleRange(r spectrum.Range) (spectrum.Quantity, error) {
	lo, hi := r.Min, r.Max
	switch {
	case math.IsInf(hi, 1):
		hi = 10 * lo
	case lo == 0:
		lo = hi / modelSamples
	}

	return spectrum.New(floats.Span(make([]float64, modelSamples), lo, hi), r.Kind, r.Unit)
}

// MaxValidRange returns the intersection of the valid ranges of the slots
// in use, in the material's default kind and unit. Fixed slots are valid
// everywhere.
func (m *Material) MaxValidRange() (spectrum.Range, error) {
	if m.rep == RepNone {
		return spectrum.Range{}, ErrUnderDefined
	}

	r := spectrum.Unbounded(m.kind, m.unit)
	for _, s := range m.rep.slots() {
		vr, ok := m.slots[s].validRange()
		if !ok {
			continue
		}
		var err error
		if r, err = r.Intersect(vr); err != nil {
			return spectrum.Range{}, fmt.Errorf("%v: %w", s, err)
		}
	}

	return r, nil
}

// RemoveAbsorption returns a lossless copy: k or eps_i is set to zero.
func (m *Material) RemoveAbsorption() *Material {
	out := *m

	switch m.rep {
	case RepNK:
		out.slots[SlotK] = fixedSource(0)
	case RepEps:
		out.slots[SlotEpsI] = fixedSource(0)
	default:
		out.lossless = true
	}

	return &out
}

// SuggestSpectrum returns n geometrically spaced points over the maximum
// valid range. When that range is unbounded, 100 nm to 2000 nm is used.
func (m *Material) SuggestSpectrum(n int) (spectrum.Quantity, error) {
	if n <= 0 {
		n = DefaultSuggestPoints
	}

	r, err := m.MaxValidRange()
	if err != nil {
		return spectrum.Quantity{}, err
	}

	if r.IsUnbounded() {
		r = spectrum.Range{Min: 100, Max: 2000, Kind: spectrum.Wavelength, Unit: spectrum.Nanometer}
	}

	return r.GeomSpace(n)
}
