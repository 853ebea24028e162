package spectrum

import (
	"fmt"
	"strings"
)

// Kind identifies the physical quantity of a spectral coordinate.
type Kind int

const (
	Wavelength Kind = iota + 1
	Frequency
	Energy
	AngularFrequency
	Wavenumber
)

var kindNames = map[Kind]string{
	Wavelength:       "wavelength",
	Frequency:        "frequency",
	Energy:           "energy",
	AngularFrequency: "angular_frequency",
	Wavenumber:       "wavenumber",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// BaseUnit returns the SI unit of the kind.
func (k Kind) BaseUnit() Unit {
	switch k {
	case Wavelength:
		return Meter
	case Frequency:
		return Hertz
	case Energy:
		return Joule
	case AngularFrequency:
		return RadianPerSecond
	case Wavenumber:
		return PerMeter
	default:
		return 0
	}
}

// Units returns the units that belong to the kind.
func (k Kind) Units() []Unit {
	var out []Unit
	for u := Meter; u <= PerCentimeter; u++ {
		if unitTable[u].kind == k {
			out = append(out, u)
		}
	}
	return out
}

// ParseKind parses a kind name such as "wavelength" or "angular frequency".
func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	switch key {
	case "wavelength", "lambda":
		return Wavelength, nil
	case "frequency", "freq":
		return Frequency, nil
	case "energy":
		return Energy, nil
	case "angular_frequency", "angularfrequency", "omega":
		return AngularFrequency, nil
	case "wavenumber", "wave_number":
		return Wavenumber, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// Unit identifies the measurement unit of a spectral coordinate.
type Unit int

const (
	Meter Unit = iota + 1
	Centimeter
	Millimeter
	Micrometer
	Nanometer
	Angstrom
	Hertz
	Kilohertz
	Megahertz
	Gigahertz
	Terahertz
	Petahertz
	Joule
	Electronvolt
	Millielectronvolt
	RadianPerSecond
	PerMeter
	PerCentimeter
)

type unitInfo struct {
	kind    Kind
	factor  float64 // multiply to obtain the SI base unit of kind
	symbol  string
	aliases []string
}

var unitTable = map[Unit]unitInfo{
	Meter:             {Wavelength, 1, "m", []string{"m", "meter", "meters", "metre", "metres"}},
	Centimeter:        {Wavelength, 1e-2, "cm", []string{"cm", "centimeter", "centimeters", "centimetre"}},
	Millimeter:        {Wavelength, 1e-3, "mm", []string{"mm", "millimeter", "millimeters", "millimetre"}},
	Micrometer:        {Wavelength, 1e-6, "µm", []string{"um", "µm", "μm", "micrometer", "micrometers", "micrometre", "micron", "microns"}},
	Nanometer:         {Wavelength, 1e-9, "nm", []string{"nm", "nanometer", "nanometers", "nanometre"}},
	Angstrom:          {Wavelength, 1e-10, "Å", []string{"a", "å", "angstrom", "angstroms"}},
	Hertz:             {Frequency, 1, "Hz", []string{"hz", "hertz"}},
	Kilohertz:         {Frequency, 1e3, "kHz", []string{"khz", "kilohertz"}},
	Megahertz:         {Frequency, 1e6, "MHz", []string{"mhz", "megahertz"}},
	Gigahertz:         {Frequency, 1e9, "GHz", []string{"ghz", "gigahertz"}},
	Terahertz:         {Frequency, 1e12, "THz", []string{"thz", "terahertz"}},
	Petahertz:         {Frequency, 1e15, "PHz", []string{"phz", "petahertz"}},
	Joule:             {Energy, 1, "J", []string{"j", "joule", "joules"}},
	Electronvolt:      {Energy, ElementaryCharge, "eV", []string{"ev", "electronvolt", "electronvolts", "electron_volt"}},
	Millielectronvolt: {Energy, 1e-3 * ElementaryCharge, "meV", []string{"mev", "millielectronvolt", "millielectronvolts"}},
	RadianPerSecond:   {AngularFrequency, 1, "rad/s", []string{"rad/s", "rad_s-1", "rad*s^-1", "radian_per_second", "radians_per_second", "s-1", "1/s"}},
	PerMeter:          {Wavenumber, 1, "1/m", []string{"1/m", "m-1", "m^-1", "per_meter", "per_metre"}},
	PerCentimeter:     {Wavenumber, 1e2, "1/cm", []string{"1/cm", "cm-1", "cm^-1", "per_centimeter", "per_centimetre"}},
}

// String returns the unit symbol.
func (u Unit) String() string {
	if info, ok := unitTable[u]; ok {
		return info.symbol
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Kind returns the spectrum kind the unit measures, or 0 for unknown units.
func (u Unit) Kind() Kind {
	return unitTable[u].kind
}

// Factor returns the multiplier that converts a value in u to the SI base
// unit of its kind.
func (u Unit) Factor() float64 {
	return unitTable[u].factor
}

// ParseUnit parses a unit symbol or name. Matching is case-insensitive, so
// "MeV" parses as millielectronvolt and "mHz" as megahertz.
func ParseUnit(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "_")
	for u, info := range unitTable {
		for _, alias := range info.aliases {
			if alias == key {
				return u, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, s)
}

// ParseUnitFor parses a unit and checks that it belongs to kind.
func ParseUnitFor(kind Kind, s string) (Unit, error) {
	u, err := ParseUnit(s)
	if err != nil {
		return 0, err
	}
	if err := checkUnit(kind, u); err != nil {
		return 0, err
	}
	return u, nil
}

func checkUnit(kind Kind, unit Unit) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %v", ErrUnsupportedKind, kind)
	}
	info, ok := unitTable[unit]
	if !ok || info.kind != kind {
		return fmt.Errorf("%w: %v is not a %v unit", ErrUnsupportedUnit, unit, kind)
	}
	return nil
}

// Validate returns an error unless kind is known and unit belongs to it.
func Validate(kind Kind, unit Unit) error {
	return checkUnit(kind, unit)
}
