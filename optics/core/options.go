package core

import "github.com/rs/zerolog"

// Mode selects how evaluation treats spectral points outside a valid range.
type Mode int

const (
	// Strict fails with an out-of-range error. It is the zero value.
	Strict Mode = iota
	// Lenient evaluates anyway: models are evaluated outside their range and
	// real tabulated data is extrapolated. A warning is logged.
	Lenient
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// DefaultSplineOrder is the spline order used for lenient extrapolation.
const DefaultSplineOrder = 2

// EvalConfig defines common evaluation settings.
type EvalConfig struct {
	Mode        Mode
	Logger      zerolog.Logger
	Workers     int
	SplineOrder int
}

// EvalOption mutates an EvalConfig.
type EvalOption func(*EvalConfig)

// DefaultEvalConfig returns strict, serial evaluation with logging disabled.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		Mode:        Strict,
		Logger:      zerolog.Nop(),
		Workers:     1,
		SplineOrder: DefaultSplineOrder,
	}
}

// WithMode sets the range handling mode.
func WithMode(mode Mode) EvalOption {
	return func(cfg *EvalConfig) {
		if mode == Strict || mode == Lenient {
			cfg.Mode = mode
		}
	}
}

// WithLenient is shorthand for WithMode(Lenient).
func WithLenient() EvalOption {
	return WithMode(Lenient)
}

// WithLogger sets the logger used for range warnings.
func WithLogger(logger zerolog.Logger) EvalOption {
	return func(cfg *EvalConfig) {
		cfg.Logger = logger
	}
}

// WithWorkers sets the number of goroutines used for batch evaluation.
func WithWorkers(workers int) EvalOption {
	return func(cfg *EvalConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithSplineOrder sets the spline order used when lenient evaluation has to
// extrapolate tabulated data.
func WithSplineOrder(order int) EvalOption {
	return func(cfg *EvalConfig) {
		if order > 0 {
			cfg.SplineOrder = order
		}
	}
}

// ApplyEvalOptions applies zero or more options to the default config.
func ApplyEvalOptions(opts ...EvalOption) EvalConfig {
	cfg := DefaultEvalConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Options returns cfg as a single option, so a resolved configuration can be
// handed down to nested evaluations unchanged.
func (cfg EvalConfig) Options() EvalOption {
	return func(dst *EvalConfig) {
		*dst = cfg
	}
}
