package model

import "math"

// Refractive index formulas. x is the wavelength in µm.

func sellmeier(p []float64, x float64) complex128 {
	x2 := x * x
	rhs := 1 + p[0]
	for i := 1; i+1 < len(p); i += 2 {
		rhs += p[i] * x2 / (x2 - p[i+1]*p[i+1])
	}
	return complex(math.Sqrt(rhs), 0)
}

func sellmeier2(p []float64, x float64) complex128 {
	x2 := x * x
	rhs := 1 + p[0]
	for i := 1; i+1 < len(p); i += 2 {
		rhs += p[i] * x2 / (x2 - p[i+1])
	}
	return complex(math.Sqrt(rhs), 0)
}

func powerSeries(p []float64, x float64) float64 {
	sum := p[0]
	for i := 1; i+1 < len(p); i += 2 {
		sum += p[i] * math.Pow(x, p[i+1])
	}
	return sum
}

func polynomial(p []float64, x float64) complex128 {
	return complex(math.Sqrt(powerSeries(p, x)), 0)
}

func cauchy(p []float64, x float64) complex128 {
	return complex(powerSeries(p, x), 0)
}

func refractiveIndexInfo(p []float64, x float64) complex128 {
	x2 := x * x
	rhs := p[0]
	for i := 1; i+3 < len(p) && i < 9; i += 4 {
		rhs += p[i] * math.Pow(x, p[i+1]) / (x2 - math.Pow(p[i+2], p[i+3]))
	}
	for i := 9; i+1 < len(p); i += 2 {
		rhs += p[i] * math.Pow(x, p[i+1])
	}
	return complex(math.Sqrt(rhs), 0)
}

func gases(p []float64, x float64) complex128 {
	inv2 := 1 / (x * x)
	rhs := p[0]
	for i := 1; i+1 < len(p); i += 2 {
		rhs += p[i] / (p[i+1] - inv2)
	}
	return complex(1+rhs, 0)
}

func herzberger(p []float64, x float64) complex128 {
	x2 := x * x
	l := 1 / (x2 - 0.028)
	n := p[0] + p[1]*l + p[2]*l*l + p[3]*x2 + p[4]*x2*x2 + p[5]*x2*x2*x2
	return complex(n, 0)
}

// retro inverts the Lorentz-Lorenz relation (n²-1)/(n²+2) = rhs.
func retro(p []float64, x float64) complex128 {
	x2 := x * x
	rhs := p[0] + p[1]*x2/(x2-p[2]) + p[3]*x2
	return complex(math.Sqrt((1+2*rhs)/(1-rhs)), 0)
}

func exotic(p []float64, x float64) complex128 {
	x2 := x * x
	d := x - p[4]
	rhs := p[0] + p[1]*x2/(x2-p[2]) + p[3]*d/(d*d+p[5])
	return complex(math.Sqrt(rhs), 0)
}

// Permittivity models. x is the photon energy in eV.

func drude(p []float64, x float64) complex128 {
	wp, gamma := p[0], p[1]
	return 1 - complex(wp*wp, 0)/complex(x*x, gamma*x)
}

func drudeLorentz(p []float64, x float64) complex128 {
	wp2 := complex(p[0]*p[0], 0)
	if len(p) == 3 {
		return 1 + wp2/complex(p[1]*p[1]-x*x, -p[2]*x)
	}

	eps := complex(1, 0)
	for i := 1; i+2 < len(p); i += 3 {
		f, w0, gamma := p[i], p[i+1], p[i+2]
		eps += complex(f, 0) * wp2 / complex(w0*w0-x*x, -gamma*x)
	}
	return eps
}
