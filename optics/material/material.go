package material

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// Dispersive is implemented by anything that can be evaluated as complex
// refractive index and complex permittivity over a spectrum.
type Dispersive interface {
	EvaluateNK(q spectrum.Quantity, opts ...core.EvalOption) ([]complex128, error)
	EvaluatePermittivity(q spectrum.Quantity, opts ...core.EvalOption) ([]complex128, error)
}

// Metadata describes where material data comes from. It is carried along
// without interpretation.
type Metadata struct {
	Name       string
	FullName   string
	Author     string
	Alias      string
	References string
	Comments   string
	Specs      map[string]any
}

// Material is an immutable material definition.
type Material struct {
	slots       [numSlots]source
	rep         Representation
	interpOrder int
	meta        Metadata
	kind        spectrum.Kind
	unit        spectrum.Unit
	lossless    bool
}

var _ Dispersive = (*Material)(nil)

// New builds a material from options. A material without any slot is
// valid but fails evaluation with ErrUnderDefined.
func New(opts ...Option) (*Material, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	rep, err := resolveRepresentation(&cfg.slots)
	if err != nil {
		return nil, err
	}

	return &Material{
		slots:       cfg.slots,
		rep:         rep,
		interpOrder: cfg.interpOrder,
		meta:        cfg.meta,
		kind:        cfg.kind,
		unit:        cfg.unit,
	}, nil
}

// Representation returns the representation the material is defined by.
func (m *Material) Representation() Representation { return m.rep }

// FullyDefined reports whether the material can be evaluated.
func (m *Material) FullyDefined() bool { return m.rep != RepNone }

// Source returns what fills the given slot.
func (m *Material) Source(s Slot) SourceKind {
	if s < 0 || s >= numSlots {
		return SourceNone
	}
	return m.slots[s].tag
}

// InterpOrder returns the interpolation order for tabulated slots.
func (m *Material) InterpOrder() int { return m.interpOrder }

// Metadata returns the descriptive metadata.
func (m *Material) Metadata() Metadata { return m.meta }

// DefaultSpectrum returns the kind and unit used for suggested spectra.
func (m *Material) DefaultSpectrum() (spectrum.Kind, spectrum.Unit) { return m.kind, m.unit }

// EvaluateNK returns n+ik at every point of q, in the order of q.
func (m *Material) EvaluateNK(q spectrum.Quantity, opts ...core.EvalOption) ([]complex128, error) {
	vals, err := m.evaluate(q, opts)
	if err != nil {
		return nil, err
	}
	if m.rep.IsPermittivity() {
		for i, v := range vals {
			vals[i] = NKFromEps(v)
		}
	}
	return vals, nil
}

// EvaluatePermittivity returns eps at every point of q, in the order of q.
func (m *Material) EvaluatePermittivity(q spectrum.Quantity, opts ...core.EvalOption) ([]complex128, error) {
	vals, err := m.evaluate(q, opts)
	if err != nil {
		return nil, err
	}
	if !m.rep.IsPermittivity() {
		for i, v := range vals {
			vals[i] = EpsFromNK(v)
		}
	}
	return vals, nil
}

// NKFromEps returns the principal square root of eps, with n >= 0. A
// negative real permittivity without loss yields a purely imaginary index
// with k > 0.
func NKFromEps(eps complex128) complex128 {
	if imag(eps) == 0 {
		eps = complex(real(eps), 0)
	}
	return cmplx.Sqrt(eps)
}

// EpsFromNK returns (n+ik)².
func EpsFromNK(nk complex128) complex128 {
	return nk * nk
}

// evaluate returns the values of the material's own representation.
func (m *Material) evaluate(q spectrum.Quantity, opts []core.EvalOption) ([]complex128, error) {
	if m.rep == RepNone {
		return nil, ErrUnderDefined
	}

	cfg := core.ApplyEvalOptions(opts...)

	slots, err := m.resolveLenient(q, cfg)
	if err != nil {
		return nil, err
	}

	inner := cfg
	inner.Workers = 1
	innerOpt := inner.Options()

	out := make([]complex128, q.Len())
	err = core.Parallel(q.Len(), cfg.Workers, func(lo, hi int) error {
		sub := q
		if lo != 0 || hi != q.Len() {
			sub = q.Slice(lo, hi)
		}
		vals, err := m.evaluateChunk(&slots, sub, innerOpt)
		if err != nil {
			return err
		}
		copy(out[lo:hi], vals)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (m *Material) evaluateChunk(slots *[numSlots]source, q spectrum.Quantity, opt core.EvalOption) ([]complex128, error) {
	parts := m.rep.slots()

	first, err := slots[parts[0]].evaluate(q, m.interpOrder, opt)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", parts[0], err)
	}

	if len(parts) == 2 {
		second, err := slots[parts[1]].evaluate(q, m.interpOrder, opt)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", parts[1], err)
		}
		for i := range first {
			first[i] = complex(real(first[i]), real(second[i]))
		}
	}

	if m.lossless {
		for i, v := range first {
			first[i] = complex(real(v), 0)
		}
	}

	return first, nil
}

// resolveLenient returns the slots to evaluate. In lenient mode real tables
// that do not cover q are replaced by their extrapolation, so that chunks
// evaluated in parallel see the same data as a serial evaluation.
func (m *Material) resolveLenient(q spectrum.Quantity, cfg core.EvalConfig) ([numSlots]source, error) {
	slots := m.slots
	if cfg.Mode != core.Lenient {
		return slots, nil
	}

	for _, s := range m.rep.slots() {
		src := slots[s]
		if src.tag != SourceTabulated || src.real == nil {
			continue
		}
		if src.real.Range().Check(q) == nil {
			continue
		}

		cfg.Logger.Warn().
			Str("slot", s.String()).
			Str("range", src.real.Range().String()).
			Int("splineOrder", cfg.SplineOrder).
			Msg("extrapolating tabulated data")

		ext, err := src.real.Extrapolate(q, cfg.SplineOrder)
		if err != nil {
			return slots, fmt.Errorf("%v: %w", s, err)
		}
		slots[s] = source{tag: SourceTabulated, real: ext}
	}

	return slots, nil
}
