package material_test

import (
	"fmt"

	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

func ExampleMaterial_EvaluatePermittivity() {
	m, _ := material.New(material.WithFixedN(1.5), material.WithFixedK(0.1))
	q, _ := spectrum.Wavelengths(spectrum.Nanometer, 500)

	eps, _ := m.EvaluatePermittivity(q)
	fmt.Printf("%.2f %.2f\n", real(eps[0]), imag(eps[0]))

	// Output:
	// 2.24 0.30
}

func ExampleNew_underDefined() {
	m, _ := material.New()
	q, _ := spectrum.Wavelengths(spectrum.Nanometer, 500)

	_, err := m.EvaluateNK(q)
	fmt.Println(m.FullyDefined(), err)

	// Output:
	// false material: not fully defined
}
