package kk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// Report summarises a consistency check. Deviations are in units of
// permittivity and are measured after fitting eps∞.
type Report struct {
	EpsInf       float64
	MaxDeviation float64
	RMSDeviation float64
	Points       int
}

// String formats the report for diagnostics.
func (r Report) String() string {
	return fmt.Sprintf("eps∞=%.6g max|Δeps1|=%.3g rms=%.3g over %d points",
		r.EpsInf, r.MaxDeviation, r.RMSDeviation, r.Points)
}

// Check evaluates m over q, transforms eps2 with [RealFromImagQuad] and
// compares the result with eps1 at the points of q inside window. The whole
// of q is used as integration grid and must be ascending in energy. A zero
// window selects every point.
func Check(m material.Dispersive, q spectrum.Quantity, window spectrum.Range, opts ...core.EvalOption) (Report, error) {
	eq, err := q.ConvertTo(spectrum.Energy, spectrum.Electronvolt)
	if err != nil {
		return Report{}, err
	}
	if !eq.IsAscending() {
		return Report{}, fmt.Errorf("%w: spectrum must be monotonic", ErrGrid)
	}

	eps, err := m.EvaluatePermittivity(eq, opts...)
	if err != nil {
		return Report{}, err
	}

	energies := eq.Values()
	eps1 := make([]float64, len(eps))
	eps2 := make([]float64, len(eps))
	for i, v := range eps {
		eps1[i], eps2[i] = real(v), imag(v)
	}

	var at, want []float64
	if window == (spectrum.Range{}) {
		at, want = energies, eps1
	} else {
		w, err := window.In(spectrum.Energy, spectrum.Electronvolt)
		if err != nil {
			return Report{}, err
		}
		for i, e := range energies {
			if w.Contains(e) {
				at = append(at, e)
				want = append(want, eps1[i])
			}
		}
	}
	if len(at) == 0 {
		return Report{}, fmt.Errorf("%w: no points inside %v", ErrGrid, window)
	}

	got, err := RealFromImagQuad(energies, eps2, at)
	if err != nil {
		return Report{}, err
	}

	dev := make([]float64, len(at))
	floats.SubTo(dev, want, got)
	epsInf := floats.Sum(dev) / float64(len(dev))
	floats.AddConst(-epsInf, dev)

	return Report{
		EpsInf:       epsInf,
		MaxDeviation: floats.Norm(dev, math.Inf(1)),
		RMSDeviation: floats.Norm(dev, 2) / math.Sqrt(float64(len(dev))),
		Points:       len(dev),
	}, nil
}
