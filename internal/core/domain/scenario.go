package domain

import "math"

// ScenarioOptions configure a decay simulation over a set of rows.
type ScenarioOptions struct {
	// MolarQuantity is the moles of elemental starting material.
	MolarQuantity float64

	// ElapsedSeconds is the time since the starting inventory was set.
	ElapsedSeconds float64

	// Screening is the electron screening applied to every channel.
	Screening float64

	// IsotopicFraction overrides the per-row natural abundance fraction
	// when set.
	IsotopicFraction *float64

	// ActiveFraction is the portion of the inventory that participates.
	// Defaults to 1.
	ActiveFraction *float64
}

func (o ScenarioOptions) equal(other ScenarioOptions) bool {
	if o.MolarQuantity != other.MolarQuantity ||
		o.ElapsedSeconds != other.ElapsedSeconds ||
		o.Screening != other.Screening {
		return false
	}
	if !floatPtrEqual(o.IsotopicFraction, other.IsotopicFraction) {
		return false
	}
	return floatPtrEqual(o.ActiveFraction, other.ActiveFraction)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// ScenarioRow is one decay channel evolved to the scenario's elapsed
// time.
type ScenarioRow struct {
	ChannelKinetics

	// IsotopicFraction is the fraction of the starting material that is
	// this row's parent isotope.
	IsotopicFraction float64

	// ActiveFraction is the participating portion of that inventory.
	ActiveFraction float64

	// StartingActiveAtoms is the initial atom count for this channel's
	// parent.
	StartingActiveAtoms float64

	// RemainingActiveAtoms is the atom count after the elapsed time,
	// depleted by the parent's total decay constant.
	RemainingActiveAtoms float64

	// PartialActivity is this channel's decay rate in becquerels.
	PartialActivity float64

	// Watts is the channel's power output.
	Watts float64
}

// DecayScenario evolves a set of decay rows under one set of options.
// Scenarios are immutable; Recalculate builds a new one from the same
// base rows.
type DecayScenario struct {
	// Rows are the evolved channels.
	Rows []ScenarioRow

	base []DecayRow
	opts ScenarioOptions
}

// NewDecayScenario computes kinetics and time evolution for every row.
func NewDecayScenario(base []DecayRow, opts ScenarioOptions) *DecayScenario {
	kinetics := make([]ChannelKinetics, len(base))
	for i, row := range base {
		kinetics[i] = Kinetics(row, opts.Screening)
	}
	GroupIsotopeConstants(kinetics)

	rows := make([]ScenarioRow, len(kinetics))
	for i, k := range kinetics {
		fraction := k.IsotopicAbundance / 100
		if opts.IsotopicFraction != nil {
			fraction = *opts.IsotopicFraction
		}
		active := 1.0
		if opts.ActiveFraction != nil {
			active = *opts.ActiveFraction
		}
		starting := opts.MolarQuantity * fraction * active * AvogadroPerMole
		remaining := starting * math.Exp(-k.IsotopeDecayConstant*opts.ElapsedSeconds)
		activity := k.PartialDecayConstant * remaining
		rows[i] = ScenarioRow{
			ChannelKinetics:      k,
			IsotopicFraction:     fraction,
			ActiveFraction:       active,
			StartingActiveAtoms:  starting,
			RemainingActiveAtoms: remaining,
			PartialActivity:      activity,
			Watts:                activity * k.DepositedJoules,
		}
	}
	return &DecayScenario{Rows: rows, base: base, opts: opts}
}

// Options returns the options the scenario was computed with.
func (s *DecayScenario) Options() ScenarioOptions {
	return s.opts
}

// Recalculate derives a new scenario from the same base rows. The
// receiver is returned unchanged when the options are identical.
func (s *DecayScenario) Recalculate(opts ScenarioOptions) *DecayScenario {
	if s.opts.equal(opts) {
		return s
	}
	return NewDecayScenario(s.base, opts)
}

// Activity sums the per-channel decay rates, in becquerels.
func (s *DecayScenario) Activity() float64 {
	var sum float64
	for _, row := range s.Rows {
		sum += row.PartialActivity
	}
	return sum
}

// Power sums the per-channel output.
func (s *DecayScenario) Power() Power {
	var watts float64
	for _, row := range s.Rows {
		watts += row.Watts
	}
	return Power{Watts: watts}
}

// RemainingActiveAtoms sums the surviving inventory over all channels.
func (s *DecayScenario) RemainingActiveAtoms() float64 {
	var sum float64
	for _, row := range s.Rows {
		sum += row.RemainingActiveAtoms
	}
	return sum
}
