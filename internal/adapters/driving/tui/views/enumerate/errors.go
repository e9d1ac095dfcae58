package enumerate

import "errors"

// Error definitions for the enumerate view.
var (
	// ErrNoEnumerationService indicates that no enumeration service was provided.
	ErrNoEnumerationService = errors.New("enumeration service is required")
)
