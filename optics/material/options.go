package material

import (
	"fmt"

	"github.com/cwbudde/algo-dispersion/optics/model"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
	"github.com/cwbudde/algo-dispersion/optics/tabulated"
)

// DefaultInterpOrder is the interpolation order used for tabulated slots.
const DefaultInterpOrder = 1

// Option configures a Material under construction.
type Option func(*config)

type config struct {
	slots       [numSlots]source
	interpOrder int
	meta        Metadata
	kind        spectrum.Kind
	unit        spectrum.Unit
	err         error
}

func defaultConfig() config {
	return config{
		interpOrder: DefaultInterpOrder,
		kind:        spectrum.Wavelength,
		unit:        spectrum.Nanometer,
	}
}

func (c *config) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *config) set(slot Slot, s source) {
	if c.slots[slot].tag != SourceNone {
		c.fail(fmt.Errorf("%w: slot %v defined twice", ErrAmbiguousDefinition, slot))
		return
	}
	c.slots[slot] = s
}

// WithFixedN sets a constant real refractive index.
func WithFixedN(n float64) Option {
	return func(c *config) { c.set(SlotN, fixedSource(complex(n, 0))) }
}

// WithFixedK sets a constant extinction coefficient.
func WithFixedK(k float64) Option {
	return func(c *config) { c.set(SlotK, fixedSource(complex(k, 0))) }
}

// WithFixedNK sets a constant complex refractive index.
func WithFixedNK(nk complex128) Option {
	return func(c *config) { c.set(SlotNK, fixedSource(nk)) }
}

// WithFixedEpsR sets a constant real permittivity.
func WithFixedEpsR(eps float64) Option {
	return func(c *config) { c.set(SlotEpsR, fixedSource(complex(eps, 0))) }
}

// WithFixedEpsI sets a constant imaginary permittivity.
func WithFixedEpsI(eps float64) Option {
	return func(c *config) { c.set(SlotEpsI, fixedSource(complex(eps, 0))) }
}

// WithFixedEps sets a constant complex permittivity.
func WithFixedEps(eps complex128) Option {
	return func(c *config) { c.set(SlotEps, fixedSource(eps)) }
}

// WithTable fills a real slot with a tabulated data set.
func WithTable(slot Slot, t *tabulated.Real) Option {
	return func(c *config) {
		if slot.IsComplex() || slot < 0 || slot >= numSlots {
			c.fail(fmt.Errorf("%w: real table for slot %v", ErrAmbiguousDefinition, slot))
			return
		}
		if t == nil {
			c.fail(fmt.Errorf("%w: nil table for slot %v", ErrUnderDefined, slot))
			return
		}
		c.set(slot, source{tag: SourceTabulated, real: t})
	}
}

// WithComplexTable fills the nk or eps slot with a jointly tabulated set.
func WithComplexTable(slot Slot, t *tabulated.Complex) Option {
	return func(c *config) {
		if !slot.IsComplex() {
			c.fail(fmt.Errorf("%w: complex table for slot %v", ErrAmbiguousDefinition, slot))
			return
		}
		if t == nil {
			c.fail(fmt.Errorf("%w: nil table for slot %v", ErrUnderDefined, slot))
			return
		}
		c.set(slot, source{tag: SourceTabulated, cplx: t})
	}
}

func withRealTable(slot Slot, x, y []float64, kind spectrum.Kind, unit spectrum.Unit) Option {
	return func(c *config) {
		t, err := tabulated.NewReal(x, y, kind, unit)
		if err != nil {
			c.fail(fmt.Errorf("%v table: %w", slot, err))
			return
		}
		WithTable(slot, t)(c)
	}
}

func withComplexTable(slot Slot, x, re, im []float64, kind spectrum.Kind, unit spectrum.Unit) Option {
	return func(c *config) {
		t, err := tabulated.NewComplex(x, re, im, kind, unit)
		if err != nil {
			c.fail(fmt.Errorf("%v table: %w", slot, err))
			return
		}
		WithComplexTable(slot, t)(c)
	}
}

// WithTabulatedN tabulates n over x.
func WithTabulatedN(x, n []float64, kind spectrum.Kind, unit spectrum.Unit) Option {
	return withRealTable(SlotN, x, n, kind, unit)
}

// WithTabulatedK tabulates k over x.
func WithTabulatedK(x, k []float64, kind spectrum.Kind, unit spectrum.Unit) Option {
	return withRealTable(SlotK, x, k, kind, unit)
}

// WithTabulatedEpsR tabulates eps_r over x.
func WithTabulatedEpsR(x, eps []float64, kind spectrum.Kind, unit spectrum.Unit) Option {
	return withRealTable(SlotEpsR, x, eps, kind, unit)
}

// WithTabulatedEpsI tabulates eps_i over x.
func WithTabulatedEpsI(x, eps []float64, kind spectrum.Kind, unit spectrum.Unit) Option {
	return withRealTable(SlotEpsI, x, eps, kind, unit)
}

// WithTabulatedNK jointly tabulates n+ik over x. The result cannot be
// extrapolated; use WithTabulatedN and WithTabulatedK for that.
func WithTabulatedNK(x, n, k []float64, kind spectrum.Kind, unit spectrum.Unit) Option {
	return withComplexTable(SlotNK, x, n, k, kind, unit)
}

// WithTabulatedEps jointly tabulates eps over x.
func WithTabulatedEps(x, epsR, epsI []float64, kind spectrum.Kind, unit spectrum.Unit) Option {
	return withComplexTable(SlotEps, x, epsR, epsI, kind, unit)
}

// WithModel fills the slot matching the model's output.
func WithModel(m *model.Model) Option {
	return func(c *config) {
		if m == nil {
			c.fail(fmt.Errorf("%w: nil model", ErrUnderDefined))
			return
		}
		slot, ok := slotFor(m.Output())
		if !ok {
			c.fail(fmt.Errorf("%w: model output %v", model.ErrUnknownOutput, m.Output()))
			return
		}
		c.set(slot, source{tag: SourceModel, model: m})
	}
}

// WithInterpOrder sets the interpolation order for tabulated slots.
func WithInterpOrder(order int) Option {
	return func(c *config) {
		if order < 0 || order > tabulated.MaxOrder {
			c.fail(fmt.Errorf("%w: %d", tabulated.ErrOrder, order))
			return
		}
		c.interpOrder = order
	}
}

// WithMetadata attaches descriptive metadata.
func WithMetadata(meta Metadata) Option {
	return func(c *config) { c.meta = meta }
}

// WithDefaultSpectrum sets the kind and unit used by SuggestSpectrum and
// MaxValidRange. The default is wavelength in nm.
func WithDefaultSpectrum(kind spectrum.Kind, unit spectrum.Unit) Option {
	return func(c *config) {
		if err := spectrum.Validate(kind, unit); err != nil {
			c.fail(err)
			return
		}
		c.kind, c.unit = kind, unit
	}
}
