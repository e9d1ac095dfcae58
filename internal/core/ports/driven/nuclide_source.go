package driven

import (
	"github.com/emwalker/lenrmc/internal/core/domain"
)

// NuclideSource loads the nuclide evaluation table.
// Backed by the fixed-width NUBASE text format.
type NuclideSource interface {
	// Registry parses the table and indexes it. Malformed records are
	// skipped; the count of skipped records is returned alongside.
	Registry() (*domain.Registry, int, error)

	// Path returns the table location, or "embedded" for the bundled
	// excerpt.
	Path() string
}
