package model

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-dispersion/optics/spectrum"
)

// Family identifies a dispersion formula.
type Family int

const (
	Sellmeier Family = iota + 1
	Sellmeier2
	Polynomial
	RefractiveIndexInfo
	Cauchy
	Gases
	Herzberger
	Retro
	Exotic
	Drude
	DrudeLorentz
	TaucLorentz
)

// evalFunc evaluates a family at x, given in the family's canonical unit.
type evalFunc func(p []float64, x float64) complex128

type descriptor struct {
	name     string
	kind     spectrum.Kind
	unit     spectrum.Unit
	output   Output
	validate func(p []float64) error
	eval     evalFunc
}

var families = map[Family]descriptor{
	Sellmeier:           {"Sellmeier", spectrum.Wavelength, spectrum.Micrometer, OutputN, oddCount(3), sellmeier},
	Sellmeier2:          {"Sellmeier2", spectrum.Wavelength, spectrum.Micrometer, OutputN, oddCount(3), sellmeier2},
	Polynomial:          {"Polynomial", spectrum.Wavelength, spectrum.Micrometer, OutputN, oddCount(1), polynomial},
	RefractiveIndexInfo: {"RefractiveIndexInfo", spectrum.Wavelength, spectrum.Micrometer, OutputN, riiCount, refractiveIndexInfo},
	Cauchy:              {"Cauchy", spectrum.Wavelength, spectrum.Micrometer, OutputN, oddCount(1), cauchy},
	Gases:               {"Gases", spectrum.Wavelength, spectrum.Micrometer, OutputN, oddCount(3), gases},
	Herzberger:          {"Herzberger", spectrum.Wavelength, spectrum.Micrometer, OutputN, exactCount(6), herzberger},
	Retro:               {"Retro", spectrum.Wavelength, spectrum.Micrometer, OutputN, exactCount(4), retro},
	Exotic:              {"Exotic", spectrum.Wavelength, spectrum.Micrometer, OutputN, exactCount(6), exotic},
	Drude:               {"Drude", spectrum.Energy, spectrum.Electronvolt, OutputEps, exactCount(2), drude},
	DrudeLorentz:        {"DrudeLorentz", spectrum.Energy, spectrum.Electronvolt, OutputEps, drudeLorentzCount, drudeLorentz},
	TaucLorentz:         {"TaucLorentz", spectrum.Energy, spectrum.Electronvolt, OutputEps, taucLorentzParams, taucLorentz},
}

// formulaNumbers maps refractiveindex.info formula numbers to families.
var formulaNumbers = map[int]Family{
	1: Sellmeier,
	2: Sellmeier2,
	3: Polynomial,
	4: RefractiveIndexInfo,
	5: Cauchy,
	6: Gases,
	7: Herzberger,
	8: Retro,
	9: Exotic,
}

// Families returns all known families in declaration order.
func Families() []Family {
	out := make([]Family, 0, len(families))
	for f := Sellmeier; f <= TaucLorentz; f++ {
		out = append(out, f)
	}
	return out
}

// String returns the family name.
func (f Family) String() string {
	if d, ok := families[f]; ok {
		return d.name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Formula returns the refractiveindex.info formula number of f, or 0 for
// families outside that database.
func (f Family) Formula() int {
	for n, g := range formulaNumbers {
		if g == f {
			return n
		}
	}
	return 0
}

// Valid reports whether f is a known family.
func (f Family) Valid() bool {
	_, ok := families[f]
	return ok
}

// Kind returns the canonical spectrum kind of the family.
func (f Family) Kind() spectrum.Kind { return families[f].kind }

// Unit returns the canonical unit of the family.
func (f Family) Unit() spectrum.Unit { return families[f].unit }

// Output returns what the family yields.
func (f Family) Output() Output { return families[f].output }

// ParseFamily parses a family name, case-insensitively. Separators are
// ignored, so "drude-lorentz" and "DrudeLorentz" are equivalent. Strings of
// the form "formula N" are accepted as refractiveindex.info formula numbers.
func ParseFamily(s string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	var n int
	if _, err := fmt.Sscanf(key, "formula %d", &n); err == nil {
		return FamilyFromFormula(n)
	}

	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	for f, d := range families {
		if strings.ToLower(d.name) == key {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// FamilyFromFormula maps a refractiveindex.info formula number (1-9).
func FamilyFromFormula(n int) (Family, error) {
	if f, ok := formulaNumbers[n]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: formula %d", ErrUnknownFamily, n)
}

func oddCount(min int) func([]float64) error {
	return func(p []float64) error {
		if len(p) < min || len(p)%2 == 0 {
			return fmt.Errorf("%w: need an odd count of at least %d, got %d", ErrParameters, min, len(p))
		}
		return nil
	}
}

func exactCount(n int) func([]float64) error {
	return func(p []float64) error {
		if len(p) != n {
			return fmt.Errorf("%w: need %d, got %d", ErrParameters, n, len(p))
		}
		return nil
	}
}

// riiCount accepts A, up to two (B, C, D, E) pole terms, then (F, G) pairs.
func riiCount(p []float64) error {
	n := len(p)
	switch {
	case n == 1 || n == 5 || n == 9:
		return nil
	case n > 9 && (n-9)%2 == 0:
		return nil
	}
	return fmt.Errorf("%w: need 1, 5, 9 or 9+2m, got %d", ErrParameters, n)
}

// drudeLorentzCount accepts (ωp, ω0, γ) for a single unit-strength
// oscillator or ωp followed by (f, ω0, γ) triples.
func drudeLorentzCount(p []float64) error {
	n := len(p)
	if n == 3 || (n >= 4 && (n-1)%3 == 0) {
		return nil
	}
	return fmt.Errorf("%w: need 3 or 1+3m, got %d", ErrParameters, n)
}
