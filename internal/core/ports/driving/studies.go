package driving

import (
	"context"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// StudiesService manages experimental observations and matches them
// against enumerated reactions.
type StudiesService interface {
	// All returns every recorded study.
	All(ctx context.Context) ([]domain.Study, error)

	// ByLabel returns studies concerning any of the given isotopes.
	ByLabel(ctx context.Context, labels []string) ([]domain.Study, error)

	// Add records a new observation.
	Add(ctx context.Context, study domain.Study) (domain.Study, error)

	// Index groups every study by isotope label for annotation.
	Index(ctx context.Context) (map[string][]domain.Study, error)

	// Path returns the studies file location.
	Path() string
}
