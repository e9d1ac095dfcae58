package services

import (
	"context"

	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driving"
	"github.com/emwalker/lenrmc/internal/logger"
)

// Ensure DecayService implements the interface.
var _ driving.DecayService = (*DecayService)(nil)

// DecayService evolves parent nuclides through their two-body decay
// channels.
type DecayService struct {
	enumerations driving.EnumerationService
}

// NewDecayService creates a new decay service.
func NewDecayService(enumerations driving.EnumerationService) *DecayService {
	return &DecayService{enumerations: enumerations}
}

// Scenario enumerates the decay channels of the parents named in the
// specification and evolves them under the given options. Channels that
// are not exothermic two-body breakups of a single parent are dropped.
func (s *DecayService) Scenario(ctx context.Context, spec string, opts domain.ScenarioOptions, enum domain.EnumerationOptions) (*domain.DecayScenario, error) {
	logger.Section("Decay Scenario")
	logger.Debug("Spec: %q", spec)

	enumeration, err := s.enumerations.Enumerate(ctx, spec, enum)
	if err != nil {
		return nil, err
	}

	var rows []domain.DecayRow
	for _, r := range enumeration.Reactions() {
		row, ok := domain.NewDecayRow(r)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	logger.Info("Kept %d decay channels of %d enumerated reactions",
		len(rows), len(enumeration.Reactions()))

	return domain.NewDecayScenario(rows, opts), nil
}
