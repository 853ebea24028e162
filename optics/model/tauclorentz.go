package model

import (
	"fmt"
	"math"
)

// taucLorentzParams validates eps∞, Eg, then (A, E0, C) per oscillator.
func taucLorentzParams(p []float64) error {
	if len(p) < 5 || (len(p)-2)%3 != 0 {
		return fmt.Errorf("%w: need 2+3m, got %d", ErrParameters, len(p))
	}
	if p[1] < 0 {
		return fmt.Errorf("%w: band gap %v is negative", ErrParameters, p[1])
	}
	for i := 2; i < len(p); i += 3 {
		e0, c := p[i+1], p[i+2]
		if e0 <= 0 || c <= 0 || c >= 2*e0 {
			return fmt.Errorf("%w: oscillator %d needs 0 < C < 2·E0, got E0=%v C=%v", ErrParameters, (i-2)/3, e0, c)
		}
	}
	return nil
}

func taucLorentz(p []float64, x float64) complex128 {
	eps1, eps2 := p[0], 0.0
	eg := p[1]
	for i := 2; i < len(p); i += 3 {
		e1, e2 := tlOscillator(x, eg, p[i], p[i+1], p[i+2])
		eps1 += e1
		eps2 += e2
	}
	return complex(eps1, eps2)
}

// tlOscillator returns the real part (without eps∞) and the imaginary part
// of one Tauc-Lorentz oscillator (Jellison and Modine, with erratum).
func tlOscillator(e, eg, a, e0, c float64) (float64, float64) {
	if math.Abs(e-eg) < 1e-12 {
		e = eg + 1e-12
	}

	e2 := e * e
	eg2 := eg * eg
	e02 := e0 * e0
	c2 := c * c

	var im float64
	if e > eg {
		im = a * e0 * c * (e - eg) * (e - eg) / ((e2-e02)*(e2-e02) + c2*e2) / e
	}

	alpha := math.Sqrt(4*e02 - c2)
	gamma2 := e02 - c2/2
	zeta4 := (e2-gamma2)*(e2-gamma2) + alpha*alpha*c2/4

	aLn := (eg2-e02)*e2 + eg2*c2 - e02*(e02+3*eg2)
	aAtan := (e2-e02)*(e02+eg2) + eg2*c2

	t1 := a * c * aLn / (2 * math.Pi * zeta4 * alpha * e0) *
		math.Log((e02+eg2+alpha*eg)/(e02+eg2-alpha*eg))
	t2 := -a * aAtan / (math.Pi * zeta4 * e0) *
		(math.Pi - math.Atan((2*eg+alpha)/c) + math.Atan((alpha-2*eg)/c))
	t3 := 2 * a * e0 / (math.Pi * zeta4 * alpha) * eg * (e2 - gamma2) *
		(math.Pi + 2*math.Atan(2*(gamma2-eg2)/(alpha*c)))

	var t4, t5 float64
	if eg > 0 {
		t4 = -a * e0 * c * (e2 + eg2) / (math.Pi * zeta4 * e) * math.Log(math.Abs(e-eg)/(e+eg))
		t5 = 2 * a * e0 * c / (math.Pi * zeta4) * eg *
			math.Log(math.Abs(e-eg)*(e+eg)/math.Sqrt((e02-eg2)*(e02-eg2)+eg2*c2))
	}

	return t1 + t2 + t3 + t4 + t5, im
}
