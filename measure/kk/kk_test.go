package kk

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-dispersion/internal/testutil"
	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/model"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

const (
	w0    = 2.0
	gamma = 0.5
	wp    = 3.0
)

func lorentzGrid(n int, step float64) (energies, eps1, eps2 []float64) {
	energies = make([]float64, n)
	eps1 = make([]float64, n)
	eps2 = make([]float64, n)
	for i := range energies {
		e := float64(i) * step
		v := testutil.Lorentz(e, w0, gamma, wp)
		energies[i], eps1[i], eps2[i] = e, real(v), imag(v)
	}
	return energies, eps1, eps2
}

func TestRealFromImagFFTLorentz(t *testing.T) {
	energies, eps1, eps2 := lorentzGrid(2048, 0.025)

	got, err := RealFromImagFFT(energies, eps2)
	if err != nil {
		t.Fatalf("RealFromImagFFT: %v", err)
	}

	testutil.RequireFinite(t, got)

	// eps∞ = 1 for the oscillator.
	for i := 20; i < 200; i++ {
		if d := math.Abs(got[i] + 1 - eps1[i]); d > 2e-3 {
			t.Fatalf("E=%v: eps1 %v, want %v (|Δ|=%g)", energies[i], got[i]+1, eps1[i], d)
		}
	}
}

func TestRealFromImagQuadLorentz(t *testing.T) {
	energies, _, eps2 := lorentzGrid(5001, 0.01)
	at := []float64{0.5, 1, 1.995, 2, 3.3, 5}

	got, err := RealFromImagQuad(energies, eps2, at)
	if err != nil {
		t.Fatalf("RealFromImagQuad: %v", err)
	}

	for i, e := range at {
		want := real(testutil.Lorentz(e, w0, gamma, wp)) - 1
		if math.Abs(got[i]-want) > 1e-4 {
			t.Fatalf("E=%v: got %v, want %v", e, got[i], want)
		}
	}
}

func TestTransformsAgree(t *testing.T) {
	energies, _, eps2 := lorentzGrid(2048, 0.025)

	fft, err := RealFromImagFFT(energies, eps2)
	if err != nil {
		t.Fatalf("RealFromImagFFT: %v", err)
	}
	quad, err := RealFromImagQuad(energies, eps2, energies[20:200])
	if err != nil {
		t.Fatalf("RealFromImagQuad: %v", err)
	}

	d, err := testutil.MaxAbsDiff(fft[20:200], quad)
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if d > 3e-3 {
		t.Fatalf("FFT and quadrature differ by %g", d)
	}
}

func TestGridErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		err  error
	}{
		{"fft length", func() error {
			_, err := RealFromImagFFT([]float64{0, 1}, []float64{0})
			return err
		}, ErrLength},
		{"fft offset", func() error {
			_, err := RealFromImagFFT([]float64{1, 2, 3}, []float64{0, 0, 0})
			return err
		}, ErrGrid},
		{"fft uneven", func() error {
			_, err := RealFromImagFFT([]float64{0, 1, 3}, []float64{0, 0, 0})
			return err
		}, ErrGrid},
		{"quad descending", func() error {
			_, err := RealFromImagQuad([]float64{2, 1}, []float64{0, 0}, []float64{1})
			return err
		}, ErrGrid},
		{"quad length", func() error {
			_, err := RealFromImagQuad([]float64{1, 2}, []float64{0}, nil)
			return err
		}, ErrLength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestCheckTaucLorentz(t *testing.T) {
	tl := model.MustNew(model.TaucLorentz, []float64{1, 1.5, 100, 3.5, 2}, spectrum.Range{})
	m, err := material.New(material.WithModel(tl))
	if err != nil {
		t.Fatalf("material.New: %v", err)
	}

	q := spectrum.Must(spectrum.New(testutil.GeomSpace(0.01, 100, 8000), spectrum.Energy, spectrum.Electronvolt))
	window, _ := spectrum.NewRange(0.5, 10, spectrum.Energy, spectrum.Electronvolt)

	rep, err := Check(m, q, window, core.WithWorkers(4))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if math.Abs(rep.EpsInf-1) > 1e-3 || rep.MaxDeviation > 1e-3 {
		t.Fatalf("report %v, want eps∞≈1 and small deviation", rep)
	}
	if rep.Points == 0 || rep.Points == q.Len() {
		t.Fatalf("window selected %d of %d points", rep.Points, q.Len())
	}
}

type lorentzMaterial struct{ epsInf float64 }

func (l lorentzMaterial) EvaluatePermittivity(q spectrum.Quantity, _ ...core.EvalOption) ([]complex128, error) {
	es, err := q.ValuesIn(spectrum.Energy, spectrum.Electronvolt)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(es))
	for i, e := range es {
		out[i] = testutil.Lorentz(e, w0, gamma, wp) - 1 + complex(l.epsInf, 0)
	}
	return out, nil
}

func (l lorentzMaterial) EvaluateNK(q spectrum.Quantity, opts ...core.EvalOption) ([]complex128, error) {
	eps, err := l.EvaluatePermittivity(q, opts...)
	for i, v := range eps {
		eps[i] = material.NKFromEps(v)
	}
	return eps, err
}

func TestCheckFitsEpsInf(t *testing.T) {
	energies, _, _ := lorentzGrid(5001, 0.01)
	q := spectrum.Must(spectrum.New(energies[1:], spectrum.Energy, spectrum.Electronvolt))
	window, _ := spectrum.NewRange(0.5, 5, spectrum.Energy, spectrum.Electronvolt)

	rep, err := Check(lorentzMaterial{epsInf: 2.5}, q, window)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if math.Abs(rep.EpsInf-2.5) > 1e-3 || rep.MaxDeviation > 1e-3 {
		t.Fatalf("report %v", rep)
	}

	// Wavelength input is converted to ascending energies.
	wl, _ := q.ConvertTo(spectrum.Wavelength, spectrum.Nanometer)
	rep2, err := Check(lorentzMaterial{epsInf: 2.5}, wl, window)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if math.Abs(rep2.EpsInf-rep.EpsInf) > 1e-6 {
		t.Fatalf("wavelength input eps∞ %v, energy input %v", rep2.EpsInf, rep.EpsInf)
	}
}

func BenchmarkRealFromImagFFT(b *testing.B) {
	energies, _, eps2 := lorentzGrid(4096, 0.01)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = RealFromImagFFT(energies, eps2)
	}
}
