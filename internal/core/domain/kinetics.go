package domain

import (
	"fmt"
	"math"
)

// DecayRow is the two-body projection of a reaction used by the decay
// pipeline: a single parent nucleus splitting into a lighter and a
// heavier fragment.
type DecayRow struct {
	// ParentA and ParentZ identify the parent isotope.
	ParentA int
	ParentZ int

	// Isotope is the parent's display label.
	Isotope string

	// LighterA and HeavierA are the fragment mass numbers.
	LighterA int
	HeavierA int

	// LighterLabel and HeavierLabel are the fragment display labels.
	LighterLabel string
	HeavierLabel string

	// HeavierZ is the heavier fragment's charge, which sets the Coulomb
	// barrier seen by the lighter fragment.
	HeavierZ int

	// LighterMassMev and HeavierMassMev are the fragment atomic masses.
	LighterMassMev float64
	HeavierMassMev float64

	// QValueMev is the energy release in MeV.
	QValueMev float64

	// IsotopicAbundance is the parent's natural abundance in percent.
	IsotopicAbundance float64

	// DepositedJoules is the energy released per decay in joules.
	DepositedJoules float64
}

// NewDecayRow derives the two-body projection of a reaction. It reports
// false for reactions that are not a single count-1 parent splitting
// into exactly two fragments with positive Q.
func NewDecayRow(r *Reaction) (DecayRow, bool) {
	if len(r.LeftSide) != 1 || r.LeftSide[0].Count != 1 {
		return DecayRow{}, false
	}
	if r.QValueKev() <= 0 {
		return DecayRow{}, false
	}
	var fragments []*Nuclide
	for _, d := range r.RightSide {
		for i := 0; i < d.Count; i++ {
			fragments = append(fragments, d.Nuclide)
		}
	}
	if len(fragments) != 2 {
		return DecayRow{}, false
	}
	lighter, heavier := fragments[0], fragments[1]
	if heavier.AtomicMassMev() < lighter.AtomicMassMev() {
		lighter, heavier = heavier, lighter
	}
	parent := r.LeftSide[0].Nuclide
	return DecayRow{
		ParentA:           parent.MassNumber,
		ParentZ:           parent.AtomicNumber,
		Isotope:           parent.Label,
		LighterA:          lighter.MassNumber,
		HeavierA:          heavier.MassNumber,
		LighterLabel:      lighter.FullLabel(),
		HeavierLabel:      heavier.FullLabel(),
		HeavierZ:          heavier.AtomicNumber,
		LighterMassMev:    lighter.AtomicMassMev(),
		HeavierMassMev:    heavier.AtomicMassMev(),
		QValueMev:         r.QValueKev() / KevPerMev,
		IsotopicAbundance: parent.IsotopicAbundance,
		DepositedJoules:   r.QValueKev() * JoulesPerKev,
	}, true
}

// Channel renders the breakup as "8Be → 4He + 4He".
func (r DecayRow) Channel() string {
	return fmt.Sprintf("%s → %s + %s", r.Isotope, r.LighterLabel, r.HeavierLabel)
}

// ChannelKinetics are the barrier and tunneling quantities for one decay
// row at a given electron screening.
type ChannelKinetics struct {
	DecayRow

	// ScreenedHeavierZ is the heavier fragment's charge reduced by the
	// screening electron count.
	ScreenedHeavierZ float64

	// NuclearSeparationFm is the touching-spheres separation of the two
	// fragments.
	NuclearSeparationFm float64

	// BarrierHeightMev is the Coulomb barrier at the separation radius.
	BarrierHeightMev float64

	// LighterKeMev is the lighter fragment's share of Q.
	LighterKeMev float64

	// RadiusForKeFm is the radius at which the barrier drops to the
	// lighter fragment's kinetic energy.
	RadiusForKeFm float64

	// BarrierWidthFm is the tunneling distance, floored at zero.
	BarrierWidthFm float64

	// LighterVelocityMps is the lighter fragment's classical speed.
	LighterVelocityMps float64

	// BarrierAssaultHz is how often the fragment presents at the barrier.
	BarrierAssaultHz float64

	// GamowFactor is the WKB barrier integral; zero above the barrier.
	GamowFactor float64

	// TunnelingProbability is exp(-2G); 1 above the barrier.
	TunnelingProbability float64

	// PartialDecayConstant is tunneling probability times assault
	// frequency, in 1/s.
	PartialDecayConstant float64

	// IsotopeDecayConstant is the sum of partial constants over all rows
	// sharing this parent. Filled in by GroupIsotopeConstants.
	IsotopeDecayConstant float64

	// PartialHalfLifeS is ln2 over the partial constant, +Inf when the
	// channel is fully suppressed.
	PartialHalfLifeS float64
}

// Kinetics computes the barrier and tunneling quantities for one row.
// Screening is the number of electrons reducing the effective charge; a
// barrier at or below zero means no suppression.
func Kinetics(row DecayRow, screening float64) ChannelKinetics {
	k := ChannelKinetics{DecayRow: row}
	k.ScreenedHeavierZ = float64(row.HeavierZ) - screening
	k.NuclearSeparationFm = 1.2 * (math.Cbrt(float64(row.LighterA)) + math.Cbrt(float64(row.HeavierA)))
	k.BarrierHeightMev = 2 * k.ScreenedHeavierZ * CoulombMevFm / k.NuclearSeparationFm
	k.LighterKeMev = row.QValueMev / (1 + row.LighterMassMev/row.HeavierMassMev)
	k.RadiusForKeFm = 2 * k.ScreenedHeavierZ * CoulombMevFm / k.LighterKeMev
	if k.RadiusForKeFm > k.NuclearSeparationFm {
		k.BarrierWidthFm = k.RadiusForKeFm - k.NuclearSeparationFm
	}
	k.LighterVelocityMps = math.Sqrt(2*k.LighterKeMev/row.LighterMassMev) * SpeedOfLightMps
	k.BarrierAssaultHz = k.LighterVelocityMps * 1e15 / (2 * k.NuclearSeparationFm)

	if k.BarrierHeightMev <= 0 || k.LighterKeMev >= k.BarrierHeightMev {
		// At or above the barrier there is nothing to tunnel through.
		k.GamowFactor = 0
		k.TunnelingProbability = 1
	} else {
		x := k.LighterKeMev / k.BarrierHeightMev
		ph := math.Sqrt(2 * row.LighterMassMev / (HBarCMevFm * HBarCMevFm * k.LighterKeMev))
		k.GamowFactor = ph * 2 * k.ScreenedHeavierZ * CoulombMevFm *
			(math.Acos(math.Sqrt(x)) - math.Sqrt(x*(1-x)))
		k.TunnelingProbability = math.Exp(-2 * k.GamowFactor)
	}
	k.PartialDecayConstant = k.TunnelingProbability * k.BarrierAssaultHz
	if k.PartialDecayConstant > 0 {
		k.PartialHalfLifeS = math.Ln2 / k.PartialDecayConstant
	} else {
		k.PartialHalfLifeS = math.Inf(1)
	}
	return k
}

// GroupIsotopeConstants sums partial decay constants over rows sharing a
// parent and writes the total back to every member. Channels decay in
// parallel, so the parent's total constant is the plain sum.
func GroupIsotopeConstants(rows []ChannelKinetics) {
	totals := make(map[Pair]float64)
	for _, k := range rows {
		parent := Pair{A: k.ParentA, Z: k.ParentZ}
		totals[parent] += k.PartialDecayConstant
	}
	for i := range rows {
		parent := Pair{A: rows[i].ParentA, Z: rows[i].ParentZ}
		rows[i].IsotopeDecayConstant = totals[parent]
	}
}
