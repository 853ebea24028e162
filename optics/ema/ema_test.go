package ema

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-dispersion/internal/cxroot"
	"github.com/cwbudde/algo-dispersion/internal/testutil"
	"github.com/cwbudde/algo-dispersion/optics/core"
	"github.com/cwbudde/algo-dispersion/optics/material"
	"github.com/cwbudde/algo-dispersion/optics/model"
	"github.com/cwbudde/algo-dispersion/optics/spectrum"
	"github.com/cwbudde/algo-dispersion/optics/tabulated"
)

func fixedEps(t *testing.T, eps complex128) *material.Material {
	t.Helper()
	m, err := material.New(material.WithFixedEps(eps))
	if err != nil {
		t.Fatalf("material.New: %v", err)
	}
	return m
}

func at(values ...float64) spectrum.Quantity {
	return spectrum.Must(spectrum.New(values, spectrum.Wavelength, spectrum.Nanometer))
}

func mustMedium(t *testing.T, rule Rule, parts ...Constituent) *Medium {
	t.Helper()
	m, err := New(rule, parts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewValidation(t *testing.T) {
	air := fixedEps(t, 1)

	tests := []struct {
		name  string
		rule  Rule
		parts []Constituent
		err   error
	}{
		{"no constituents", Bruggeman, nil, ErrConstituents},
		{"nil material", Bruggeman, []Constituent{{nil, 1}}, ErrConstituents},
		{"negative", Bruggeman, []Constituent{{air, 1.2}, {air, -0.2}}, ErrFractions},
		{"sum", MaxwellGarnett, []Constituent{{air, 0.5}, {air, 0.4}}, ErrFractions},
		{"nan", MaxwellGarnett, []Constituent{{air, math.NaN()}}, ErrFractions},
		{"rule", Rule(7), []Constituent{{air, 1}}, ErrRule},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.rule, tc.parts...); !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
		})
	}

	if _, err := New(Bruggeman, Constituent{air, 0.3}, Constituent{air, 0.7 + 1e-12}); err != nil {
		t.Fatalf("sum within tolerance rejected: %v", err)
	}
}

func TestMaxwellGarnettLimits(t *testing.T) {
	host := fixedEps(t, 2.25)
	incl := fixedEps(t, complex(4, 1))
	q := at(500, 600)

	empty := mustMedium(t, MaxwellGarnett, Constituent{host, 1}, Constituent{incl, 0})
	eps, err := empty.EvaluatePermittivity(q)
	if err != nil {
		t.Fatalf("EvaluatePermittivity: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, eps, []complex128{2.25, 2.25}, 0)

	full := mustMedium(t, MaxwellGarnett, Constituent{host, 0}, Constituent{incl, 1})
	eps, err = full.EvaluatePermittivity(q)
	if err != nil {
		t.Fatalf("EvaluatePermittivity: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, eps, []complex128{complex(4, 1), complex(4, 1)}, 0)
}

func TestMaxwellGarnettValue(t *testing.T) {
	m := mustMedium(t, MaxwellGarnett, Constituent{fixedEps(t, 1), 0.9}, Constituent{fixedEps(t, 4), 0.1})

	eps, err := m.EvaluatePermittivity(at(500))
	if err != nil {
		t.Fatalf("EvaluatePermittivity: %v", err)
	}
	// S = 0.1·3/6, eps = (1 + 2S)/(1 - S)
	testutil.RequireComplexNearlyEqual(t, eps, []complex128{1.1 / 0.95}, 1e-14)
}

func TestMaxwellGarnettResonance(t *testing.T) {
	host := fixedEps(t, 1)
	incl := fixedEps(t, -2)

	m := mustMedium(t, MaxwellGarnett, Constituent{host, 0.5}, Constituent{incl, 0.5})
	eps, err := m.EvaluatePermittivity(at(500))
	if !errors.Is(err, ErrResonance) {
		t.Fatalf("err = %v, want ErrResonance", err)
	}
	if eps != nil {
		t.Fatalf("eps = %v, want nil on error", eps)
	}

	// Just off the pole the mixture is finite.
	lossy := mustMedium(t, MaxwellGarnett, Constituent{host, 0.5}, Constituent{fixedEps(t, complex(-2, 0.1)), 0.5})
	eps, err = lossy.EvaluatePermittivity(at(500))
	if err != nil {
		t.Fatalf("EvaluatePermittivity: %v", err)
	}
	testutil.RequireFiniteComplex(t, eps)
}

func TestBruggemanTwoPhase(t *testing.T) {
	a, b := fixedEps(t, 1), fixedEps(t, 4)

	ab := mustMedium(t, Bruggeman, Constituent{a, 0.7}, Constituent{b, 0.3})
	ba := mustMedium(t, Bruggeman, Constituent{b, 0.3}, Constituent{a, 0.7})

	q := at(500)
	got, err := ab.EvaluatePermittivity(q)
	if err != nil {
		t.Fatalf("EvaluatePermittivity: %v", err)
	}
	swapped, err := ba.EvaluatePermittivity(q)
	if err != nil {
		t.Fatalf("EvaluatePermittivity: %v", err)
	}

	// (b + sqrt(b² + 8·eps1·eps2))/4 with b = (3f1-1)eps1 + (3f2-1)eps2.
	testutil.RequireComplexNearlyEqual(t, got, []complex128{1.6}, 1e-12)
	testutil.RequireComplexNearlyEqual(t, swapped, got, 1e-12)
}

func TestBruggemanLimits(t *testing.T) {
	a, b := fixedEps(t, complex(-10, 1.5)), fixedEps(t, 2.25)

	only := mustMedium(t, Bruggeman, Constituent{a, 1}, Constituent{b, 0})
	eps, err := only.EvaluatePermittivity(at(500))
	if err != nil {
		t.Fatalf("EvaluatePermittivity: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, eps, []complex128{complex(-10, 1.5)}, 0)
}

func TestBruggemanMetalDielectric(t *testing.T) {
	eps := []complex128{complex(-10, 1.5), 2.25}

	for _, fm := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		f := []float64{fm, 1 - fm}
		z, err := bruggeman(eps, f, zerolog.Nop())
		if err != nil {
			t.Fatalf("f=%v: %v", fm, err)
		}
		if imag(z) < 0 {
			t.Fatalf("f=%v: unphysical root %v", fm, z)
		}

		var r complex128
		for i := range eps {
			r += complex(f[i], 0) * (eps[i] - z) / (eps[i] + 2*z)
		}
		if cmplx.Abs(r) > 1e-9 {
			t.Fatalf("f=%v: residual %v at %v", fm, r, z)
		}
	}
}

func TestClearedPolynomial(t *testing.T) {
	poly := clearedPolynomial([]complex128{1, 4}, []complex128{0.7, 0.3})
	if len(poly) != 3 {
		t.Fatalf("degree = %d, want 2", len(poly)-1)
	}
	if v := cxroot.PolyEval(poly, 1.6); cmplx.Abs(v) > 1e-12 {
		t.Fatalf("P(1.6) = %v, want 0", v)
	}

	roots, err := cxroot.DurandKerner(poly)
	if err != nil {
		t.Fatalf("DurandKerner: %v", err)
	}
	root, ok := cxroot.Nearest(roots, 1.9)
	if !ok || cmplx.Abs(root-1.6) > 1e-9 {
		t.Fatalf("nearest root = %v, want 1.6", root)
	}
}

func TestBruggemanNoConvergence(t *testing.T) {
	bad := fixedEps(t, complex(math.NaN(), 0))
	m := mustMedium(t, Bruggeman, Constituent{bad, 0.5}, Constituent{fixedEps(t, 2), 0.5})

	out, err := m.EvaluatePermittivity(at(500, 600))
	if !errors.Is(err, ErrNoConvergence) || !errors.Is(err, cxroot.ErrNoConvergence) {
		t.Fatalf("err = %v, want ErrNoConvergence", err)
	}
	if out != nil {
		t.Fatalf("partial result %v", out)
	}
}

func TestNestedMedia(t *testing.T) {
	air, glass := fixedEps(t, 1), fixedEps(t, 2.25)

	inner := mustMedium(t, Bruggeman, Constituent{air, 0.5}, Constituent{glass, 0.5})
	outer := mustMedium(t, MaxwellGarnett, Constituent{air, 0}, Constituent{inner, 1})

	want, err := inner.EvaluateNK(at(500))
	if err != nil {
		t.Fatalf("inner: %v", err)
	}
	got, err := outer.EvaluateNK(at(500))
	if err != nil {
		t.Fatalf("outer: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, got, want, 0)
}

func TestDispersiveConstituents(t *testing.T) {
	gold := model.MustNew(model.Drude, []float64{8.55, 18.4e-3}, spectrum.Range{})
	metal, err := material.New(material.WithModel(gold))
	if err != nil {
		t.Fatalf("material.New: %v", err)
	}
	host := fixedEps(t, 2.25)

	m := mustMedium(t, Bruggeman, Constituent{host, 0.6}, Constituent{metal, 0.4})
	q := spectrum.Must(spectrum.New(testutil.GeomSpace(300, 2000, 600), spectrum.Wavelength, spectrum.Nanometer))

	serial, err := m.EvaluatePermittivity(q)
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	parallel, err := m.EvaluatePermittivity(q, core.WithWorkers(4))
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, parallel, serial, 0)

	for i, v := range serial {
		if imag(v) < 0 {
			t.Fatalf("index %d: unphysical %v", i, v)
		}
	}
}

func TestTabulate(t *testing.T) {
	m := mustMedium(t, MaxwellGarnett, Constituent{fixedEps(t, 1), 0.8}, Constituent{fixedEps(t, complex(4, 1)), 0.2})
	q := at(400, 500, 600, 700)

	tab, err := m.Tabulate(q)
	if err != nil {
		t.Fatalf("Tabulate: %v", err)
	}
	if tab.Representation() != material.RepComplexEps {
		t.Fatalf("representation = %v", tab.Representation())
	}

	want, _ := m.EvaluatePermittivity(q)
	got, err := tab.EvaluatePermittivity(q)
	if err != nil {
		t.Fatalf("EvaluatePermittivity: %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-12)

	if _, err := tab.Extrapolate(at(800), 1); !errors.Is(err, tabulated.ErrComplexExtrapolation) {
		t.Fatalf("Extrapolate err = %v, want ErrComplexExtrapolation", err)
	}
}

func TestParseRule(t *testing.T) {
	for in, want := range map[string]Rule{
		"MG":              MaxwellGarnett,
		"maxwell-garnett": MaxwellGarnett,
		"Bruggeman":       Bruggeman,
	} {
		got, err := ParseRule(in)
		if err != nil || got != want {
			t.Fatalf("ParseRule(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseRule("looyenga"); !errors.Is(err, ErrRule) {
		t.Fatalf("err = %v, want ErrRule", err)
	}
}

func BenchmarkBruggeman(b *testing.B) {
	eps := []complex128{complex(-10, 1.5), 2.25, 1}
	f := []float64{0.3, 0.5, 0.2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bruggeman(eps, f, zerolog.Nop())
	}
}
