package mcp

import (
	"context"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// mockEnumerationService is a mock implementation of driving.EnumerationService.
type mockEnumerationService struct {
	enumeration *domain.Enumeration
	err         error

	spec string
	opts domain.EnumerationOptions
}

func (m *mockEnumerationService) Resolve(_ string) ([][]domain.Reactant, error) {
	return nil, m.err
}

func (m *mockEnumerationService) Enumerate(
	_ context.Context,
	spec string,
	opts domain.EnumerationOptions,
) (*domain.Enumeration, error) {
	m.spec = spec
	m.opts = opts
	return m.enumeration, m.err
}

// mockDecayService is a mock implementation of driving.DecayService.
type mockDecayService struct {
	scenario *domain.DecayScenario
	err      error

	spec string
	opts domain.ScenarioOptions
	enum domain.EnumerationOptions
}

func (m *mockDecayService) Scenario(
	_ context.Context,
	spec string,
	opts domain.ScenarioOptions,
	enum domain.EnumerationOptions,
) (*domain.DecayScenario, error) {
	m.spec = spec
	m.opts = opts
	m.enum = enum
	return m.scenario, m.err
}

// mockNuclideCatalog is a mock implementation of driving.NuclideCatalog.
type mockNuclideCatalog struct {
	nuclide  *domain.Nuclide
	isotopes []*domain.Nuclide
	err      error
}

func (m *mockNuclideCatalog) Lookup(_, _ string) (*domain.Nuclide, bool) {
	return m.nuclide, m.nuclide != nil
}

func (m *mockNuclideCatalog) Isotopes(_ string, _ bool) ([]*domain.Nuclide, error) {
	return m.isotopes, m.err
}

func (m *mockNuclideCatalog) SkippedRecords() int {
	return 0
}

// mockStudiesService is a mock implementation of driving.StudiesService.
type mockStudiesService struct {
	studies []domain.Study
	err     error
}

func (m *mockStudiesService) All(_ context.Context) ([]domain.Study, error) {
	return m.studies, m.err
}

func (m *mockStudiesService) ByLabel(_ context.Context, _ []string) ([]domain.Study, error) {
	return m.studies, m.err
}

func (m *mockStudiesService) Add(_ context.Context, study domain.Study) (domain.Study, error) {
	return study, m.err
}

func (m *mockStudiesService) Index(_ context.Context) (map[string][]domain.Study, error) {
	return nil, m.err
}

func (m *mockStudiesService) Path() string {
	return ":memory:"
}

// Fixture nuclides with mass excesses from the 2016 table.
var (
	testProton = &domain.Nuclide{
		Label: "p", ExcitationLevel: "0", MassNumber: 1, AtomicNumber: 1,
		MassExcessKev: 7288.97061, IsotopicAbundance: 99.9885, Stable: true,
		SpinParity: "1/2+",
	}
	testLithium7 = &domain.Nuclide{
		Label: "7Li", ExcitationLevel: "0", MassNumber: 7, AtomicNumber: 3,
		MassExcessKev: 14907.105, IsotopicAbundance: 92.41, Stable: true,
		SpinParity: "3/2-",
	}
	testHelium4 = &domain.Nuclide{
		Label: "4He", ExcitationLevel: "0", MassNumber: 4, AtomicNumber: 2,
		MassExcessKev: 2424.91561, IsotopicAbundance: 99.999866, Stable: true,
		SpinParity: "0+",
	}
	testBeryllium8 = &domain.Nuclide{
		Label: "8Be", ExcitationLevel: "0", MassNumber: 8, AtomicNumber: 4,
		MassExcessKev: 4941.67, SpinParity: "0+",
	}
)

// protonLithiumEnumeration builds a two-reaction enumeration of p + 7Li:
// the alpha breakup and the radiative capture onto unstable 8Be. Display
// order puts the photon channel second.
func protonLithiumEnumeration() *domain.Enumeration {
	left := []domain.Reactant{
		{Count: 1, Nuclide: testProton},
		{Count: 1, Nuclide: testLithium7},
	}
	alphas := domain.NewReaction(left, []domain.Reactant{{Count: 2, Nuclide: testHelium4}})
	capture := domain.NewReaction(left, []domain.Reactant{{Count: 1, Nuclide: testBeryllium8}})
	return &domain.Enumeration{
		Spec: "p+7Li",
		Systems: []domain.System{{
			Reactants: left,
			Reactions: []*domain.Reaction{capture, alphas},
		}},
	}
}

// berylliumScenario evolves the 8Be alpha breakup for one mole of pure
// parent material.
func berylliumScenario() *domain.DecayScenario {
	breakup := domain.NewReaction(
		[]domain.Reactant{{Count: 1, Nuclide: testBeryllium8}},
		[]domain.Reactant{{Count: 2, Nuclide: testHelium4}},
	)
	row, ok := domain.NewDecayRow(breakup)
	if !ok {
		panic("fixture reaction is not a valid decay row")
	}
	fraction := 1.0
	return domain.NewDecayScenario([]domain.DecayRow{row}, domain.ScenarioOptions{
		MolarQuantity:    1,
		IsotopicFraction: &fraction,
	})
}
