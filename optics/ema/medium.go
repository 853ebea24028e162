package ema

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
	"github.com/cwbudde/algo-dispersion/optics/tabulated"
)

// FractionTol is the tolerance on the sum of volume fractions.
const FractionTol = 1e-9

// Constituent is one component of a medium with its volume fraction.
type Constituent struct {
	Material material.Dispersive
	Fraction float64
}

// Medium is an immutable effective medium.
type Medium struct {
	rule  Rule
	parts []Constituent
}

var _ material.Dispersive = (*Medium)(nil)

// New validates the constituents and returns a medium. For Maxwell-Garnett
// the first constituent is the host.
func New(rule Rule, parts ...Constituent) (*Medium, error) {
	if rule != MaxwellGarnett && rule != Bruggeman {
		return nil, fmt.Errorf("%w: %v", ErrRule, rule)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: none given", ErrConstituents)
	}

	sum := 0.0
	for i, p := range parts {
		if p.Material == nil {
			return nil, fmt.Errorf("%w: constituent %d has no material", ErrConstituents, i)
		}
		if math.IsNaN(p.Fraction) || p.Fraction < 0 || p.Fraction > 1 {
			return nil, fmt.Errorf("%w: constituent %d has fraction %v", ErrFractions, i, p.Fraction)
		}
		sum += p.Fraction
	}
	if !core.NearlyEqual(sum, 1, FractionTol) {
		return nil, fmt.Errorf("%w: fractions sum to %v", ErrFractions, sum)
	}

	return &Medium{rule: rule, parts: append([]Constituent(nil), parts...)}, nil
}

// Rule returns the mixing rule.
func (m *Medium) Rule() Rule { return m.rule }

// Constituents returns a copy of the constituents.
func (m *Medium) Constituents() []Constituent {
	return append([]Constituent(nil), m.parts...)
}

// String describes the medium, e.g. "Bruggeman(0.3, 0.7)".
func (m *Medium) String() string {
	fr := make([]string, len(m.parts))
	for i, p := range m.parts {
		fr[i] = fmt.Sprintf("%g", p.Fraction)
	}
	return fmt.Sprintf("%v(%s)", m.rule, strings.Join(fr, ", "))
}

// EvaluatePermittivity returns the effective permittivity at every point of
// q. Constituents are evaluated with the same options. A Bruggeman point
// that cannot be solved fails the whole call with ErrNoConvergence.
func (m *Medium) EvaluatePermittivity(q spectrum.Quantity, opts ...core.EvalOption) ([]complex128, error) {
	cfg := core.ApplyEvalOptions(opts...)

	eps := make([][]complex128, len(m.parts))
	f := make([]float64, len(m.parts))
	for i, p := range m.parts {
		vals, err := p.Material.EvaluatePermittivity(q, opts...)
		if err != nil {
			return nil, fmt.Errorf("constituent %d: %w", i, err)
		}
		eps[i] = vals
		f[i] = p.Fraction
	}

	out := make([]complex128, q.Len())
	err := core.Parallel(q.Len(), cfg.Workers, func(lo, hi int) error {
		point := make([]complex128, len(m.parts))
		for k := lo; k < hi; k++ {
			for i := range eps {
				point[i] = eps[i][k]
			}

			if m.rule == MaxwellGarnett {
				v, err := maxwellGarnett(point, f)
				if err != nil {
					return fmt.Errorf("index %d (%v %v): %w", k, q.At(k), q.Unit(), err)
				}
				out[k] = v
				continue
			}

			v, err := bruggeman(point, f, cfg.Logger)
			if err != nil {
				return fmt.Errorf("%w at index %d (%v %v): %w", ErrNoConvergence, k, q.At(k), q.Unit(), err)
			}
			out[k] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// EvaluateNK returns the effective complex refractive index.
func (m *Medium) EvaluateNK(q spectrum.Quantity, opts ...core.EvalOption) ([]complex128, error) {
	eps, err := m.EvaluatePermittivity(q, opts...)
	if err != nil {
		return nil, err
	}
	for i, v := range eps {
		eps[i] = material.NKFromEps(v)
	}
	return eps, nil
}

// Tabulate samples the effective permittivity on q and returns it as a
// material with a complex eps table. The result is valid over the range
// of q only and cannot be extrapolated.
func (m *Medium) Tabulate(q spectrum.Quantity, opts ...core.EvalOption) (*material.Material, error) {
	eps, err := m.EvaluatePermittivity(q, opts...)
	if err != nil {
		return nil, err
	}

	re := make([]float64, len(eps))
	im := make([]float64, len(eps))
	for i, v := range eps {
		re[i], im[i] = real(v), imag(v)
	}

	t, err := tabulated.NewComplex(q.Values(), re, im, q.Kind(), q.Unit())
	if err != nil {
		return nil, err
	}

	return material.New(
		material.WithComplexTable(material.SlotEps, t),
		material.WithDefaultSpectrum(q.Kind(), q.Unit()),
		material.WithMetadata(material.Metadata{Name: m.String()}),
	)
}
