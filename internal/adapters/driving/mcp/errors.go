// Package mcp provides an MCP (Model Context Protocol) server adapter for lenrmc.
// It enables AI assistants like Claude to enumerate nuclear reactions, model
// decay kinetics and query the nuclide table.
package mcp

import "errors"

var (
	// ErrMissingEnumerationService is returned when the enumeration service is not provided.
	ErrMissingEnumerationService = errors.New("mcp: enumeration service is required")

	// ErrMissingDecayService is returned when the decay tool is invoked without a decay service.
	ErrMissingDecayService = errors.New("mcp: decay service is not configured")

	// ErrMissingNuclideCatalog is returned when the lookup tool is invoked without a nuclide catalog.
	ErrMissingNuclideCatalog = errors.New("mcp: nuclide catalog is not configured")
)
