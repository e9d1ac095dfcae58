package domain

// EnumerationOptions narrow the reactions an enumeration keeps.
type EnumerationOptions struct {
	// LowerBoundKev drops reactions whose Q value is not strictly above
	// the bound. Nil keeps everything.
	LowerBoundKev *float64

	// DaughterCount keeps only reactions with exactly this many
	// fragments counting multiplicity. Zero keeps everything.
	DaughterCount int

	// SkipCache bypasses the reaction cache for this call.
	SkipCache bool
}

// System is one reactant multiset and the reactions it can produce.
type System struct {
	// Reactants is the parent multiset.
	Reactants []Reactant

	// Reactions are the enumerated outcomes, in enumeration order.
	Reactions []*Reaction
}

// Enumeration is the result of resolving and enumerating a reactant
// specification such as "p+7Li" or "H+Li, d+d".
type Enumeration struct {
	// Spec is the specification text the enumeration was built from.
	Spec string

	// Systems holds one entry per resolved reactant multiset.
	Systems []System
}

// Reactions returns every reaction across all systems, in system order.
func (e *Enumeration) Reactions() []*Reaction {
	var out []*Reaction
	for _, s := range e.Systems {
		out = append(out, s.Reactions...)
	}
	return out
}
