package driving

import (
	"context"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// DecayService evolves parent nuclides through their two-body decay
// channels.
type DecayService interface {
	// Scenario enumerates the decay channels of the parents named in
	// the specification and evolves them under the given options.
	Scenario(ctx context.Context, spec string, opts domain.ScenarioOptions, enum domain.EnumerationOptions) (*domain.DecayScenario, error)
}
