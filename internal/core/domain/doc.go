// Package domain defines the core business entities for lenrmc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Nuclide: A tabulated nuclear state with its mass excess
//   - Registry: The immutable index of known nuclides
//   - Reaction: A candidate transmutation with its Q value
//   - DecayRow: The barrier-tunneling kinetics of a two-body channel
//   - Study: An experimental observation of an isotopic change
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
