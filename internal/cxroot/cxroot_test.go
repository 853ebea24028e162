package cxroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

func TestDurandKerner_Quadratic(t *testing.T) {
	// z^2 - 3z + 2 = (z-1)(z-2), roots at 1 and 2
	roots, err := DurandKerner([]complex128{1, -3, 2})
	if err != nil {
		t.Fatal(err)
	}

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	r := []float64{real(roots[0]), real(roots[1])}
	sort.Float64s(r)

	if math.Abs(r[0]-1) > 1e-10 || math.Abs(r[1]-2) > 1e-10 {
		t.Errorf("expected roots {1,2}, got %v", r)
	}
}

func TestDurandKerner_ComplexCoefficients(t *testing.T) {
	// (z - (1+2i)) (z - (-3+0.5i))
	a, b := complex(1, 2), complex(-3, 0.5)
	coeff := PolyMul([]complex128{1, -a}, []complex128{1, -b})

	roots, err := DurandKerner(coeff)
	if err != nil {
		t.Fatal(err)
	}

	for i, r := range roots {
		if cmplx.Abs(PolyEval(coeff, r)) > 1e-9 {
			t.Errorf("root %d: p(%v) not ~0", i, r)
		}
	}

	got, ok := Nearest(roots, 1+1i)
	if !ok || cmplx.Abs(got-a) > 1e-9 {
		t.Fatalf("Nearest = %v, %v; want %v", got, ok, a)
	}
}

func TestDurandKerner_Degenerate(t *testing.T) {
	if _, err := DurandKerner([]complex128{0, 1, 2}); !errors.Is(err, ErrDegeneratePolynomial) {
		t.Fatalf("zero lead err = %v", err)
	}
	if _, err := DurandKerner([]complex128{1}); !errors.Is(err, ErrDegeneratePolynomial) {
		t.Fatalf("constant err = %v", err)
	}
}

func TestNewton_Sqrt(t *testing.T) {
	target := complex(-3, 4)
	fn := func(z complex128) (complex128, complex128) {
		return z*z - target, 2 * z
	}

	z, err := Newton(fn, 1+1i, 0, 0)
	if err != nil {
		t.Fatalf("Newton: %v", err)
	}
	if cmplx.Abs(z-(1+2i)) > 1e-12 {
		t.Fatalf("Newton = %v, want 1+2i", z)
	}
}

func TestNewton_NoConvergence(t *testing.T) {
	// z^2 + 1 has no real root; from a real seed Newton stays on the real axis.
	fn := func(z complex128) (complex128, complex128) {
		return z*z + 1, 2 * z
	}

	if _, err := Newton(fn, 0.5, 1e-14, 5); !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("err = %v, want ErrNoConvergence", err)
	}
}

func TestNewton_StalledResidual(t *testing.T) {
	// A wrong derivative shrinks every step without reducing the residual.
	fn := func(z complex128) (complex128, complex128) {
		return 1, 1e12
	}

	if _, err := Newton(fn, 0, 0, 0); !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("err = %v, want ErrNoConvergence", err)
	}
}

func TestPolyHelpers(t *testing.T) {
	sum := PolyAdd([]complex128{1, 2, 3}, []complex128{10})
	if sum[2] != 13 || len(sum) != 3 {
		t.Fatalf("PolyAdd = %v", sum)
	}

	trimmed := TrimLeading([]complex128{1e-20, 0, 1, 2}, 1e-14)
	if len(trimmed) != 2 {
		t.Fatalf("TrimLeading = %v", trimmed)
	}

	if _, ok := Nearest([]complex128{-1i, 2 - 3i}, 0); ok {
		t.Fatal("Nearest accepted roots in the lower half plane")
	}
}
