package material

import "fmt"

// Representation names the set of slots a material is defined by.
type Representation int

const (
	RepNone Representation = iota
	RepNK
	RepEps
	RepComplexNK
	RepComplexEps
)

// String returns the representation name.
func (r Representation) String() string {
	switch r {
	case RepNone:
		return "none"
	case RepNK:
		return "n,k"
	case RepEps:
		return "eps_r,eps_i"
	case RepComplexNK:
		return "nk"
	case RepComplexEps:
		return "eps"
	}
	return fmt.Sprintf("Representation(%d)", int(r))
}

// IsPermittivity reports whether the representation describes eps.
func (r Representation) IsPermittivity() bool {
	return r == RepEps || r == RepComplexEps
}

// slots returns the slots that make up the representation.
func (r Representation) slots() []Slot {
	switch r {
	case RepNK:
		return []Slot{SlotN, SlotK}
	case RepEps:
		return []Slot{SlotEpsR, SlotEpsI}
	case RepComplexNK:
		return []Slot{SlotNK}
	case RepComplexEps:
		return []Slot{SlotEps}
	}
	return nil
}

var representations = []Representation{RepNK, RepEps, RepComplexNK, RepComplexEps}

// resolveRepresentation applies the fully-defined rule to the filled
// slots. A half-filled real pair is completed with a fixed zero. Slots from
// more than one representation are ambiguous.
func resolveRepresentation(slots *[numSlots]source) (Representation, error) {
	found := RepNone
	for _, rep := range representations {
		used := false
		for _, s := range rep.slots() {
			if slots[s].tag != SourceNone {
				used = true
			}
		}
		if !used {
			continue
		}
		if found != RepNone {
			return RepNone, fmt.Errorf("%w: both %v and %v are defined", ErrAmbiguousDefinition, found, rep)
		}
		found = rep
	}

	for _, s := range found.slots() {
		if slots[s].tag == SourceNone {
			slots[s] = fixedSource(0)
		}
	}

	return found, nil
}
