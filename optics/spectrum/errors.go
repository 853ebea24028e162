package spectrum

import "errors"

var (
	// ErrUnsupportedKind indicates a spectrum kind outside the known set.
	ErrUnsupportedKind = errors.New("spectrum: unsupported spectrum kind")
	// ErrUnsupportedUnit indicates a unit that does not belong to the requested kind.
	ErrUnsupportedUnit = errors.New("spectrum: unsupported unit")
	// ErrInvalidValue indicates a negative or NaN spectral value.
	ErrInvalidValue = errors.New("spectrum: values must be non-negative numbers")
	// ErrOutOfRange indicates a spectral value outside a valid range.
	ErrOutOfRange = errors.New("spectrum: value outside valid range")
	// ErrEmptyRange indicates an intersection of ranges without overlap.
	ErrEmptyRange = errors.New("spectrum: ranges do not overlap")
	// ErrUnboundedRange indicates a range that cannot be sampled geometrically.
	ErrUnboundedRange = errors.New("spectrum: range must be finite and start above zero")
)
