package driving

import (
	"context"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// EnumerationService turns reactant specifications into candidate
// reaction sets.
type EnumerationService interface {
	// Resolve parses a specification such as "p+7Li" or "H+Li" into
	// one reactant multiset per system. Element shorthands expand to
	// the cartesian product of their naturally occurring isotopes.
	Resolve(spec string) ([][]domain.Reactant, error)

	// Enumerate resolves a specification and enumerates the reactions
	// of every system, consulting the reaction cache when available.
	Enumerate(ctx context.Context, spec string, opts domain.EnumerationOptions) (*domain.Enumeration, error)
}
