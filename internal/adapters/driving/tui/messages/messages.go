// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/emwalker/lenrmc/internal/core/domain"
)

// SpecChanged is sent when the reactant specification input changes.
type SpecChanged struct {
	Spec string
}

// EnumerationRequested is a command to enumerate a specification.
type EnumerationRequested struct {
	Spec    string
	Options domain.EnumerationOptions
}

// EnumerationCompleted carries enumerated reactions back to the model.
type EnumerationCompleted struct {
	Spec      string
	Reactions []*domain.Reaction
	Err       error
}

// ReactionSelected is sent when a reaction is selected.
type ReactionSelected struct {
	Index int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEnumerate is the spec input and reaction list view.
	ViewEnumerate ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEnumerate:
		return "enumerate"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// StudiesLoaded carries the experimental record grouped by isotope.
type StudiesLoaded struct {
	Index map[string][]domain.Study
	Err   error
}

// StudiesChanged signals the studies file was modified on disk.
type StudiesChanged struct{}
