package material

import (
	"fmt"

	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/model"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
	"github.com/cwbudde/algo-dispersion/optics/tabulated"
)

// Slot names one component of a material definition.
type Slot int

const (
	SlotN Slot = iota
	SlotK
	SlotEpsR
	SlotEpsI
	SlotNK
	SlotEps
	numSlots
)

var slotNames = [numSlots]string{"n", "k", "eps_r", "eps_i", "nk", "eps"}

// String returns the slot name.
func (s Slot) String() string {
	if s >= 0 && s < numSlots {
		return slotNames[s]
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// IsComplex reports whether the slot holds a complex quantity.
func (s Slot) IsComplex() bool { return s == SlotNK || s == SlotEps }

// slotFor maps a model output to the slot it fills.
func slotFor(o model.Output) (Slot, bool) {
	switch o {
	case model.OutputN:
		return SlotN, true
	case model.OutputK:
		return SlotK, true
	case model.OutputEpsR:
		return SlotEpsR, true
	case model.OutputEpsI:
		return SlotEpsI, true
	case model.OutputNK:
		return SlotNK, true
	case model.OutputEps:
		return SlotEps, true
	}
	return 0, false
}

// SourceKind tags what fills a slot.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceFixed
	SourceTabulated
	SourceModel
)

// String returns the source name.
func (k SourceKind) String() string {
	switch k {
	case SourceNone:
		return "none"
	case SourceFixed:
		return "fixed"
	case SourceTabulated:
		return "tabulated"
	case SourceModel:
		return "model"
	}
	return fmt.Sprintf("SourceKind(%d)", int(k))
}

// source is the content of one slot. Exactly the field matching tag is set;
// tabulated slots use real or cplx depending on the slot.
type source struct {
	tag   SourceKind
	fixed complex128
	real  *tabulated.Real
	cplx  *tabulated.Complex
	model *model.Model
}

func fixedSource(v complex128) source { return source{tag: SourceFixed, fixed: v} }

type evalFunc func(s source, q spectrum.Quantity, order int, opt core.EvalOption) ([]complex128, error)

var evaluators = map[SourceKind]evalFunc{
	SourceFixed:     evalFixed,
	SourceTabulated: evalTabulated,
	SourceModel:     evalModel,
}

func (s source) evaluate(q spectrum.Quantity, order int, opt core.EvalOption) ([]complex128, error) {
	fn, ok := evaluators[s.tag]
	if !ok {
		return nil, ErrUnderDefined
	}
	return fn(s, q, order, opt)
}

func evalFixed(s source, q spectrum.Quantity, _ int, _ core.EvalOption) ([]complex128, error) {
	out := make([]complex128, q.Len())
	for i := range out {
		out[i] = s.fixed
	}
	return out, nil
}

func evalTabulated(s source, q spectrum.Quantity, order int, opt core.EvalOption) ([]complex128, error) {
	if s.cplx != nil {
		return s.cplx.Interpolate(q, order, opt)
	}

	vals, err := s.real.Interpolate(q, order, opt)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(vals))
	for i, v := range vals {
		out[i] = complex(v, 0)
	}
	return out, nil
}

func evalModel(s source, q spectrum.Quantity, _ int, opt core.EvalOption) ([]complex128, error) {
	return s.model.Evaluate(q, opt)
}

// validRange returns the range over which the source is defined.
func (s source) validRange() (spectrum.Range, bool) {
	switch s.tag {
	case SourceTabulated:
		if s.cplx != nil {
			return s.cplx.Range(), true
		}
		return s.real.Range(), true
	case SourceModel:
		return s.model.Range(), true
	}
	return spectrum.Range{}, false
}
