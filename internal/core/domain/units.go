package domain

import "fmt"

// Physical constants used by the energetics and kinetics pipelines.
// Energies are in MeV and lengths in femtometers unless a name says
// otherwise.
const (
	// AtomicMassUnitMev converts one atomic mass unit to MeV (AME2012).
	AtomicMassUnitMev = 931.494061

	// HBarCMevFm is the reduced Planck constant times c, in MeV·fm.
	HBarCMevFm = 197.327

	// CoulombMevFm is e²/4πε₀ in MeV·fm.
	CoulombMevFm = 1.4399645

	// SpeedOfLightMps is c in meters per second.
	SpeedOfLightMps = 299792458.0

	// AvogadroPerMole is the number of atoms per mole.
	AvogadroPerMole = 6.022140857e23

	// JoulesPerKev converts Q-values to deposited energy.
	JoulesPerKev = 1.602176565e-16

	// KevPerMev converts between the table's keV scale and the MeV scale
	// the barrier formulas use.
	KevPerMev = 1000.0
)

// Power is a wattage with human-oriented formatting.
type Power struct {
	Watts float64
}

// String renders the power in the most readable SI prefix.
func (p Power) String() string {
	w := p.Watts
	switch {
	case w == 0:
		return "0 W"
	case w >= 1e3:
		return fmt.Sprintf("%.3g kW", w/1e3)
	case w >= 1:
		return fmt.Sprintf("%.3g W", w)
	case w >= 1e-3:
		return fmt.Sprintf("%.3g mW", w*1e3)
	case w >= 1e-6:
		return fmt.Sprintf("%.3g µW", w*1e6)
	case w >= 1e-9:
		return fmt.Sprintf("%.3g nW", w*1e9)
	default:
		return fmt.Sprintf("%.3g pW", w*1e12)
	}
}
