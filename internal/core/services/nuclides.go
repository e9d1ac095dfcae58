package services

import (
	"fmt"
	"strconv"

	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
	"github.com/emwalker/lenrmc/internal/core/ports/driving"
)

// Ensure NuclideService implements the interface.
var _ driving.NuclideCatalog = (*NuclideService)(nil)

// NuclideService answers lookups against the indexed nuclide table.
type NuclideService struct {
	source driven.NuclideSource
}

// NewNuclideService creates a new nuclide catalog service.
func NewNuclideService(source driven.NuclideSource) *NuclideService {
	return &NuclideService{source: source}
}

// Lookup finds a nuclide by label and excitation level. Level "0" or
// empty means the ground state.
func (s *NuclideService) Lookup(label, level string) (*domain.Nuclide, bool) {
	reg, _, err := s.source.Registry()
	if err != nil {
		return nil, false
	}
	if level == "" {
		level = domain.GroundState
	}
	return reg.Get(domain.Signature{Label: label, Level: level})
}

// Isotopes lists the isotopes of an element given by symbol or atomic
// number, optionally restricted to naturally occurring ones.
func (s *NuclideService) Isotopes(element string, stableOnly bool) ([]*domain.Nuclide, error) {
	reg, _, err := s.source.Registry()
	if err != nil {
		return nil, err
	}

	z, ok := domain.AtomicNumberOf(element)
	if !ok {
		parsed, err := strconv.Atoi(element)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", element, domain.ErrUnresolvedSpecies)
		}
		if _, known := domain.ElementSymbol(parsed); !known {
			return nil, fmt.Errorf("atomic number %d: %w", parsed, domain.ErrUnresolvedSpecies)
		}
		z = parsed
	}

	if stableOnly {
		return reg.StableByAtomicNumber(z), nil
	}
	return reg.ByAtomicNumber(z), nil
}

// SkippedRecords reports how many table records failed to parse.
func (s *NuclideService) SkippedRecords() int {
	_, skipped, err := s.source.Registry()
	if err != nil {
		return 0
	}
	return skipped
}
