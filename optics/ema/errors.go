package ema

import "errors"

var (
	// ErrFractions indicates fractions outside [0, 1] or not summing to 1.
	ErrFractions = errors.New("ema: invalid volume fractions")
	// ErrConstituents indicates a missing or nil constituent.
	ErrConstituents = errors.New("ema: invalid constituents")
	// ErrRule indicates an unknown mixing rule.
	ErrRule = errors.New("ema: unknown mixing rule")
	// ErrNoConvergence indicates that the Bruggeman equation could not be
	// solved at some spectral point.
	ErrNoConvergence = errors.New("ema: no convergence")
	// ErrResonance indicates a Maxwell-Garnett point on the Fröhlich pole,
	// where an inclusion has eps = -2·eps_host.
	ErrResonance = errors.New("ema: Maxwell-Garnett resonance")
)
