package model

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// Model is a dispersion formula bound to its parameters and valid range.
// A Model is immutable after construction.
type Model struct {
	family Family
	params []float64
	valid  spectrum.Range
}

// New validates params for family and returns a model. The valid range may
// be given in any kind and unit; it is stored in the family's canonical
// kind and unit. A zero Range means the model is valid everywhere.
func New(family Family, params []float64, valid spectrum.Range) (*Model, error) {
	d, ok := families[family]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, family)
	}

	if err := d.validate(params); err != nil {
		return nil, fmt.Errorf("%v: %w", family, err)
	}

	r := spectrum.Unbounded(d.kind, d.unit)
	if valid.Kind != 0 {
		var err error
		if r, err = valid.In(d.kind, d.unit); err != nil {
			return nil, fmt.Errorf("%v valid range: %w", family, err)
		}
	}

	return &Model{family: family, params: slices.Clone(params), valid: r}, nil
}

// MustNew is like New but panics on error.
func MustNew(family Family, params []float64, valid spectrum.Range) *Model {
	m, err := New(family, params, valid)
	if err != nil {
		panic(err)
	}
	return m
}

// Family returns the model family.
func (m *Model) Family() Family { return m.family }

// Params returns a copy of the parameter vector.
func (m *Model) Params() []float64 { return slices.Clone(m.params) }

// Range returns the valid range in the canonical kind and unit.
func (m *Model) Range() spectrum.Range { return m.valid }

// Output returns what the model yields.
func (m *Model) Output() Output { return m.family.Output() }

// String formats the model for diagnostics.
func (m *Model) String() string {
	return fmt.Sprintf("%v%v on %v", m.family, m.params, m.valid)
}

// Evaluate returns the model value for every point of q, in the order of q.
// Real outputs are returned with a zero imaginary part.
//
// In strict mode a point outside the valid range fails with an error
// wrapping spectrum.ErrOutOfRange. In lenient mode the model is evaluated
// anyway and a warning is logged.
func (m *Model) Evaluate(q spectrum.Quantity, opts ...core.EvalOption) ([]complex128, error) {
	cfg := core.ApplyEvalOptions(opts...)
	d := families[m.family]

	xs, err := q.ValuesIn(d.kind, d.unit)
	if err != nil {
		return nil, err
	}

	if err := m.checkRange(q, xs, cfg); err != nil {
		return nil, err
	}

	out := make([]complex128, len(xs))
	err = core.Parallel(len(xs), cfg.Workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			out[i] = d.eval(m.params, xs[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// EvaluateReal returns the real part of Evaluate. It is intended for models
// with a real output.
func (m *Model) EvaluateReal(q spectrum.Quantity, opts ...core.EvalOption) ([]float64, error) {
	vals, err := m.Evaluate(q, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = real(v)
	}
	return out, nil
}

func (m *Model) checkRange(q spectrum.Quantity, xs []float64, cfg core.EvalConfig) error {
	outside := 0
	first := -1
	for i, x := range xs {
		if !m.valid.Contains(x) {
			if first < 0 {
				first = i
			}
			outside++
		}
	}

	if outside == 0 {
		return nil
	}

	if cfg.Mode == core.Strict {
		return fmt.Errorf("%v: %w: %v %v (index %d) not in %v",
			m.family, spectrum.ErrOutOfRange, q.At(first), q.Unit(), first, m.valid)
	}

	cfg.Logger.Warn().
		Str("model", m.family.String()).
		Int("points", outside).
		Str("validRange", m.valid.String()).
		Msg("evaluating model outside its valid range")

	return nil
}
