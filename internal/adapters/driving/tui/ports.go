// Package tui provides an interactive terminal user interface for lenrmc.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/emwalker/lenrmc/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Enumeration turns reactant specifications into reaction sets.
	Enumeration driving.EnumerationService

	// Studies provides the experimental record used to annotate
	// reactions. Optional; without it reactions render unannotated.
	Studies driving.StudiesService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(enumeration driving.EnumerationService, studies driving.StudiesService) *Ports {
	return &Ports{
		Enumeration: enumeration,
		Studies:     studies,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Enumeration == nil {
		return ErrMissingEnumerationService
	}
	return nil
}
