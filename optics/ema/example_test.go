package ema_test

import (
	"fmt"

	"github.com/cwbudde/algo-dispersion/optics/ema"
	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

func ExampleMedium_EvaluatePermittivity() {
	air, _ := material.New(material.WithFixedEps(1))
	glass, _ := material.New(material.WithFixedEps(4))

	m, _ := ema.New(ema.Bruggeman,
		ema.Constituent{Material: air, Fraction: 0.7},
		ema.Constituent{Material: glass, Fraction: 0.3},
	)
	q, _ := spectrum.Wavelengths(spectrum.Nanometer, 500)

	eps, _ := m.EvaluatePermittivity(q)
	fmt.Printf("%v %.4f\n", m, real(eps[0]))

	// Output:
	// Bruggeman(0.7, 0.3) 1.6000
}
