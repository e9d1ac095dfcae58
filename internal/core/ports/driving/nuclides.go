package driving

import (
	"github.com/emwalker/lenrmc/internal/core/domain"
)

// NuclideCatalog answers lookups against the indexed nuclide table.
type NuclideCatalog interface {
	// Lookup finds a nuclide by label and excitation level. Level "0"
	// or empty means the ground state.
	Lookup(label, level string) (*domain.Nuclide, bool)

	// Isotopes lists the isotopes of an element given by symbol or
	// atomic number, optionally restricted to naturally occurring ones.
	Isotopes(element string, stableOnly bool) ([]*domain.Nuclide, error)

	// SkippedRecords reports how many table records failed to parse.
	SkippedRecords() int
}
