package mcp

import (
	"github.com/emwalker/lenrmc/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Enumeration turns reactant specifications into reaction sets.
	Enumeration driving.EnumerationService

	// Decay models the decay kinetics of parent nuclides.
	Decay driving.DecayService

	// Nuclides answers lookups against the nuclide table.
	Nuclides driving.NuclideCatalog

	// Studies lists recorded experimental observations.
	Studies driving.StudiesService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Enumeration == nil {
		return ErrMissingEnumerationService
	}
	// The remaining ports are optional; the tools and resources they
	// back report the gap when invoked.
	return nil
}
