package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// poloniumAlphaRow builds the 212Po → 208Pb + 4He decay row.
func poloniumAlphaRow(t *testing.T) DecayRow {
	t.Helper()
	r := testRegistry()
	reaction := NewReaction(
		[]Reactant{
			{Count: 1, Nuclide: mustGet(t, r, "212Po", GroundState)},
		},
		[]Reactant{
			{Count: 1, Nuclide: mustGet(t, r, "208Pb", GroundState)},
			{Count: 1, Nuclide: mustGet(t, r, "4He", GroundState)},
		},
	)
	row, ok := NewDecayRow(reaction)
	require.True(t, ok)
	return row
}

// TestNewDecayRow_AlphaDecay tests the two-body projection of an alpha
// decay
func TestNewDecayRow_AlphaDecay(t *testing.T) {
	row := poloniumAlphaRow(t)

	assert.Equal(t, 212, row.ParentA)
	assert.Equal(t, 84, row.ParentZ)
	assert.Equal(t, "212Po", row.Isotope)
	assert.Equal(t, 4, row.LighterA)
	assert.Equal(t, 208, row.HeavierA)
	assert.Equal(t, 82, row.HeavierZ)
	assert.InDelta(t, 3728.40115961, row.LighterMassMev, 1e-6)
	assert.InDelta(t, 193729.016188, row.HeavierMassMev, 1e-6)
	assert.InDelta(t, 8.94248439, row.QValueMev, 1e-9)
	assert.InEpsilon(t, 1.432743892253632e-12, row.DepositedJoules, 1e-9)
	assert.Zero(t, row.IsotopicAbundance)
}

// TestNewDecayRow_OrdersFragmentsByMass tests that the lighter fragment
// is identified regardless of the side order
func TestNewDecayRow_OrdersFragmentsByMass(t *testing.T) {
	r := testRegistry()
	reaction := NewReaction(
		[]Reactant{
			{Count: 1, Nuclide: mustGet(t, r, "212Po", GroundState)},
		},
		[]Reactant{
			{Count: 1, Nuclide: mustGet(t, r, "4He", GroundState)},
			{Count: 1, Nuclide: mustGet(t, r, "208Pb", GroundState)},
		},
	)

	row, ok := NewDecayRow(reaction)
	require.True(t, ok)
	assert.Equal(t, 4, row.LighterA)
	assert.Equal(t, 208, row.HeavierA)
}

// TestNewDecayRow_RejectsMultipleParents tests that two-body capture
// reactions are not decay rows
func TestNewDecayRow_RejectsMultipleParents(t *testing.T) {
	r := testRegistry()
	reaction := NewReaction(
		[]Reactant{
			{Count: 1, Nuclide: mustGet(t, r, "p", GroundState)},
			{Count: 1, Nuclide: mustGet(t, r, "7Li", GroundState)},
		},
		[]Reactant{
			{Count: 2, Nuclide: mustGet(t, r, "4He", GroundState)},
		},
	)

	_, ok := NewDecayRow(reaction)
	assert.False(t, ok)
}

// TestNewDecayRow_RejectsCountedParent tests that a doubled parent is
// not a decay row
func TestNewDecayRow_RejectsCountedParent(t *testing.T) {
	r := testRegistry()
	reaction := NewReaction(
		[]Reactant{
			{Count: 2, Nuclide: mustGet(t, r, "6Li", GroundState)},
		},
		[]Reactant{
			{Count: 3, Nuclide: mustGet(t, r, "4He", GroundState)},
		},
	)

	_, ok := NewDecayRow(reaction)
	assert.False(t, ok)
}

// TestNewDecayRow_RejectsEndothermic tests that a negative Q value is
// not a decay row
func TestNewDecayRow_RejectsEndothermic(t *testing.T) {
	r := testRegistry()
	reaction := NewReaction(
		[]Reactant{
			{Count: 1, Nuclide: mustGet(t, r, "7Li", GroundState)},
		},
		[]Reactant{
			{Count: 1, Nuclide: mustGet(t, r, "t", GroundState)},
			{Count: 1, Nuclide: mustGet(t, r, "4He", GroundState)},
		},
	)

	_, ok := NewDecayRow(reaction)
	assert.False(t, ok)
}

// TestNewDecayRow_RejectsThreeFragments tests that three-body splits
// are not decay rows
func TestNewDecayRow_RejectsThreeFragments(t *testing.T) {
	r := testRegistry()
	reaction := NewReaction(
		[]Reactant{
			{Count: 1, Nuclide: mustGet(t, r, "8Be", "j")},
		},
		[]Reactant{
			{Count: 2, Nuclide: mustGet(t, r, "d", GroundState)},
			{Count: 1, Nuclide: mustGet(t, r, "4He", GroundState)},
		},
	)

	require.Greater(t, reaction.QValueKev(), 0.0)
	_, ok := NewDecayRow(reaction)
	assert.False(t, ok)
}

// TestKinetics_AlphaDecay tests the barrier chain for unscreened 212Po
func TestKinetics_AlphaDecay(t *testing.T) {
	k := Kinetics(poloniumAlphaRow(t), 0)

	assert.InEpsilon(t, 9.014871826539528, k.NuclearSeparationFm, 1e-9)
	assert.InEpsilon(t, 26.196066072150774, k.BarrierHeightMev, 1e-9)
	assert.InEpsilon(t, 8.773631937570848, k.LighterKeMev, 1e-9)
	assert.InEpsilon(t, 26.916353419013372, k.RadiusForKeFm, 1e-9)
	assert.InEpsilon(t, 17.901481592473843, k.BarrierWidthFm, 1e-9)
	assert.InEpsilon(t, 20566675.188206535, k.LighterVelocityMps, 1e-9)
	assert.InEpsilon(t, 1.1407081311826768e21, k.BarrierAssaultHz, 1e-9)
	assert.InEpsilon(t, 16.80525524084072, k.GamowFactor, 1e-9)
	assert.InEpsilon(t, 2.530117927287545e-15, k.TunnelingProbability, 1e-9)
	assert.InEpsilon(t, 2886126.092507963, k.PartialDecayConstant, 1e-9)
	assert.InEpsilon(t, 2.4016524515656893e-7, k.PartialHalfLifeS, 1e-9)
}

// TestKinetics_Screening tests that screening electrons lower the
// barrier and raise the tunneling probability
func TestKinetics_Screening(t *testing.T) {
	row := poloniumAlphaRow(t)
	bare := Kinetics(row, 0)
	screened := Kinetics(row, 21)

	assert.InEpsilon(t, 19.48731744391704, screened.BarrierHeightMev, 1e-9)
	assert.InEpsilon(t, 2.4323729105537562e-8, screened.TunnelingProbability, 1e-9)
	assert.Greater(t, screened.TunnelingProbability, bare.TunnelingProbability)
	assert.Less(t, screened.PartialHalfLifeS, bare.PartialHalfLifeS)
}

// TestKinetics_AboveBarrier tests that a fragment over the barrier is
// not suppressed
func TestKinetics_AboveBarrier(t *testing.T) {
	row := poloniumAlphaRow(t)
	row.QValueMev = 30

	k := Kinetics(row, 0)

	assert.Zero(t, k.GamowFactor)
	assert.Equal(t, 1.0, k.TunnelingProbability)
	assert.Zero(t, k.BarrierWidthFm)
	assert.Equal(t, k.BarrierAssaultHz, k.PartialDecayConstant)
}

// TestKinetics_FullyScreened tests a barrier screened down to nothing
func TestKinetics_FullyScreened(t *testing.T) {
	k := Kinetics(poloniumAlphaRow(t), 84)

	assert.LessOrEqual(t, k.BarrierHeightMev, 0.0)
	assert.Zero(t, k.GamowFactor)
	assert.Equal(t, 1.0, k.TunnelingProbability)
}

// TestKinetics_TunnelingFallsWithQ tests that lower release energies
// tunnel exponentially less often
func TestKinetics_TunnelingFallsWithQ(t *testing.T) {
	row := poloniumAlphaRow(t)

	previous := math.Inf(1)
	for _, q := range []float64{8, 7, 6, 5} {
		row.QValueMev = q
		k := Kinetics(row, 0)
		assert.Less(t, k.TunnelingProbability, previous)
		previous = k.TunnelingProbability
	}
}

// TestGroupIsotopeConstants tests summing channel constants per parent
func TestGroupIsotopeConstants(t *testing.T) {
	rows := []ChannelKinetics{
		{DecayRow: DecayRow{ParentA: 212, ParentZ: 84}, PartialDecayConstant: 3},
		{DecayRow: DecayRow{ParentA: 212, ParentZ: 84}, PartialDecayConstant: 5},
		{DecayRow: DecayRow{ParentA: 90, ParentZ: 38}, PartialDecayConstant: 7},
	}

	GroupIsotopeConstants(rows)

	assert.Equal(t, 8.0, rows[0].IsotopeDecayConstant)
	assert.Equal(t, 8.0, rows[1].IsotopeDecayConstant)
	assert.Equal(t, 7.0, rows[2].IsotopeDecayConstant)
}

// TestKinetics_SingleChannelHalfLife tests the half-life of a lone
// channel before grouping
func TestKinetics_SingleChannelHalfLife(t *testing.T) {
	k := Kinetics(poloniumAlphaRow(t), 0)

	assert.InEpsilon(t, math.Ln2/k.PartialDecayConstant, k.PartialHalfLifeS, 1e-12)
}
