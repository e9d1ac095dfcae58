package tui

import "errors"

// ErrMissingEnumerationService is returned when the enumeration service is not provided.
var ErrMissingEnumerationService = errors.New("tui: enumeration service is required")
