package domain

// Change is the direction an isotope's quantity moved in an experiment.
type Change string

const (
	// ChangeIncrease means the isotope was produced.
	ChangeIncrease Change = "increase"

	// ChangeDecrease means the isotope was consumed.
	ChangeDecrease Change = "decrease"
)

// IsValid reports whether the change direction is known.
func (c Change) IsValid() bool {
	switch c {
	case ChangeIncrease, ChangeDecrease:
		return true
	}
	return false
}

// Mark renders the agreement symbol used when annotating reactions: a
// produced daughter confirms an increase, a consumed one contradicts it.
func (c Change) Mark() string {
	switch c {
	case ChangeIncrease:
		return "✓"
	case ChangeDecrease:
		return "✗"
	}
	return "?"
}

// Study records an experimentally observed isotopic change from the
// published literature.
type Study struct {
	// ID is the unique identifier for the entry.
	ID string

	// Label is the isotope the observation concerns, e.g. "6Li".
	Label string

	// Change is the observed direction.
	Change Change

	// Reference is the short citation tag rendered as [L15].
	Reference string

	// Description is the one-line summary of the experiment.
	Description string
}
