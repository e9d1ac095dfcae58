package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedRecord indicates a nuclide table row that cannot be parsed.
	// Readers skip and count these rather than failing the whole load.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnresolvedSpecies indicates a reactant token that matches neither a
	// known nuclide label nor an element symbol.
	ErrUnresolvedSpecies = errors.New("unresolved species")

	// ErrHalfLifeUnit indicates a half-life stored in a unit with no
	// conversion to seconds.
	ErrHalfLifeUnit = errors.New("unconvertible half-life unit")

	// ErrCacheUnavailable indicates the reaction cache backend cannot be
	// reached. Enumeration degrades to uncached computation.
	ErrCacheUnavailable = errors.New("reaction cache unavailable")

	// ErrUnsupportedEngine indicates a cache DSN whose scheme matches no
	// registered storage backend.
	ErrUnsupportedEngine = errors.New("unsupported storage engine")
)
