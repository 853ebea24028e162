package spectrum

import "math"

// Physical constants (exact SI values).
const (
	SpeedOfLight     = 299792458.0     // m/s
	Planck           = 6.62607015e-34  // J·s
	ElementaryCharge = 1.602176634e-19 // C, also J per eV
	PlanckEV         = Planck / ElementaryCharge
)

// EnergyDecimals is the number of decimal places, in eV, kept when an energy
// is produced from another spectrum kind.
const EnergyDecimals = 9

const twoPi = 2 * math.Pi
