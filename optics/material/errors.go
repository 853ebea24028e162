package material

import "errors"

var (
	// ErrUnderDefined indicates a material whose slots do not form a
	// complete representation.
	ErrUnderDefined = errors.New("material: not fully defined")
	// ErrAmbiguousDefinition indicates slots filled from more than one
	// representation, or a slot filled twice.
	ErrAmbiguousDefinition = errors.New("material: ambiguous definition")
	// ErrRecord indicates a material record that cannot be converted.
	ErrRecord = errors.New("material: invalid record")
)
