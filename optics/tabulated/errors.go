package tabulated

import "errors"

var (
	// ErrTable indicates coordinate and value slices that cannot form a table.
	ErrTable = errors.New("tabulated: invalid table")
	// ErrOrder indicates an unsupported interpolation order.
	ErrOrder = errors.New("tabulated: unsupported interpolation order")
	// ErrSplineOrder indicates an extrapolation spline order outside 1..5.
	ErrSplineOrder = errors.New("tabulated: spline order must be between 1 and 5")
	// ErrComplexExtrapolation indicates an attempt to extrapolate jointly
	// tabulated complex data.
	ErrComplexExtrapolation = errors.New("tabulated: complex tabulated data cannot be extrapolated")
)
