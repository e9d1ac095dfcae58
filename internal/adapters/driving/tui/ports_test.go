package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// MockEnumerationService implements driving.EnumerationService for testing.
type MockEnumerationService struct {
	ResolveFunc   func(spec string) ([][]domain.Reactant, error)
	EnumerateFunc func(
		ctx context.Context, spec string, opts domain.EnumerationOptions,
	) (*domain.Enumeration, error)
}

func (m *MockEnumerationService) Resolve(spec string) ([][]domain.Reactant, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(spec)
	}
	return nil, nil
}

func (m *MockEnumerationService) Enumerate(
	ctx context.Context, spec string, opts domain.EnumerationOptions,
) (*domain.Enumeration, error) {
	if m.EnumerateFunc != nil {
		return m.EnumerateFunc(ctx, spec, opts)
	}
	return nil, nil
}

// MockStudiesService implements driving.StudiesService for testing.
type MockStudiesService struct {
	AllFunc     func(ctx context.Context) ([]domain.Study, error)
	ByLabelFunc func(ctx context.Context, labels []string) ([]domain.Study, error)
	AddFunc     func(ctx context.Context, study domain.Study) (domain.Study, error)
	IndexFunc   func(ctx context.Context) (map[string][]domain.Study, error)
	PathFunc    func() string
}

func (m *MockStudiesService) All(ctx context.Context) ([]domain.Study, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, nil
}

func (m *MockStudiesService) ByLabel(ctx context.Context, labels []string) ([]domain.Study, error) {
	if m.ByLabelFunc != nil {
		return m.ByLabelFunc(ctx, labels)
	}
	return nil, nil
}

func (m *MockStudiesService) Add(ctx context.Context, study domain.Study) (domain.Study, error) {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, study)
	}
	return study, nil
}

func (m *MockStudiesService) Index(ctx context.Context) (map[string][]domain.Study, error) {
	if m.IndexFunc != nil {
		return m.IndexFunc(ctx)
	}
	return nil, nil
}

func (m *MockStudiesService) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
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
)

// alphaBreakupReactions builds the p + 7Li alpha channel for display tests.
func alphaBreakupReactions() []*domain.Reaction {
	left := []domain.Reactant{
		{Count: 1, Nuclide: testProton},
		{Count: 1, Nuclide: testLithium7},
	}
	right := []domain.Reactant{{Count: 2, Nuclide: testHelium4}}
	return []*domain.Reaction{domain.NewReaction(left, right)}
}

// alphaBreakupEnumeration wraps the alpha channel in an enumeration.
func alphaBreakupEnumeration() *domain.Enumeration {
	reactions := alphaBreakupReactions()
	return &domain.Enumeration{
		Spec: "p+7Li",
		Systems: []domain.System{{
			Reactants: []domain.Reactant{
				{Count: 1, Nuclide: testProton},
				{Count: 1, Nuclide: testLithium7},
			},
			Reactions: reactions,
		}},
	}
}

func TestNewPorts(t *testing.T) {
	enumeration := &MockEnumerationService{}
	studies := &MockStudiesService{}

	ports := NewPorts(enumeration, studies)

	require.NotNil(t, ports)
	assert.Equal(t, enumeration, ports.Enumeration)
	assert.Equal(t, studies, ports.Studies)
}

func TestPorts_Validate_AllSet(t *testing.T) {
	ports := &Ports{
		Enumeration: &MockEnumerationService{},
		Studies:     &MockStudiesService{},
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_StudiesOptional(t *testing.T) {
	ports := &Ports{
		Enumeration: &MockEnumerationService{},
		Studies:     nil,
	}

	err := ports.Validate()

	assert.NoError(t, err)
}

func TestPorts_Validate_MissingEnumeration(t *testing.T) {
	ports := &Ports{
		Enumeration: nil,
		Studies:     &MockStudiesService{},
	}

	err := ports.Validate()

	assert.ErrorIs(t, err, ErrMissingEnumerationService)
}
