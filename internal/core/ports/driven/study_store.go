package driven

import (
	"context"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// StudyStore persists experimentally observed isotopic changes.
// Backed by a TOML file seeded with the built-in catalogue.
type StudyStore interface {
	// All returns every study entry.
	All(ctx context.Context) ([]domain.Study, error)

	// ByLabel returns the entries concerning any of the given isotope
	// labels.
	ByLabel(ctx context.Context, labels []string) ([]domain.Study, error)

	// Add persists a new entry, assigning an ID when empty.
	Add(ctx context.Context, study domain.Study) (domain.Study, error)

	// Path returns the backing file location.
	Path() string
}
