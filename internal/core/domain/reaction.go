package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Symbolic annotation notes attached to reactions.
const (
	NoteAlpha           = "α"
	NoteNeutron         = "n"
	NoteTriton          = "t"
	NoteNeutronTransfer = "n-transfer"
	NoteStable          = "stable"
	NoteGamma           = "γ"
)

// noteworthy maps daughter labels to their symbolic notes.
var noteworthy = map[string]string{
	"4He": NoteAlpha,
	"n":   NoteNeutron,
	"t":   NoteTriton,
}

// Reactant pairs a count with a nuclide on one side of a reaction.
type Reactant struct {
	// Count is the multiplicity, at least 1.
	Count int

	// Nuclide is the species.
	Nuclide *Nuclide
}

// Numbers returns the reactant's total (massNumber, atomicNumber).
func (r Reactant) Numbers() Pair {
	return r.Nuclide.Numbers().Scale(r.Count)
}

// String renders the reactant with its multiplicity, e.g. "2·4He" or
// "7Li (i)".
func (r Reactant) String() string {
	if r.Count > 1 {
		return fmt.Sprintf("%d·%s", r.Count, r.Nuclide.FullLabel())
	}
	return r.Nuclide.FullLabel()
}

// SortSide returns a copy of the side in display order: ascending mass
// number, ties broken by label. The photon sorts first.
func SortSide(side []Reactant) []Reactant {
	out := make([]Reactant, len(side))
	copy(out, side)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Nuclide, out[j].Nuclide
		if a.MassNumber != b.MassNumber {
			return a.MassNumber < b.MassNumber
		}
		return a.Label < b.Label
	})
	return out
}

// FormatSide joins a side's reactants in display order.
func FormatSide(side []Reactant) string {
	parts := make([]string, 0, len(side))
	for _, r := range SortSide(side) {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, " + ")
}

// SideTotal sums mass and charge over one side of a reaction.
func SideTotal(side []Reactant) Pair {
	var total Pair
	for _, r := range side {
		total = total.Add(r.Numbers())
	}
	return total
}

// Reaction is a candidate transformation between two reactant sets.
// Mass and charge are conserved by construction: the enumerator only
// pairs sides with identical totals. Q-value may be positive (energy
// released) or negative (endothermic).
type Reaction struct {
	// LeftSide is the reactant multiset.
	LeftSide []Reactant

	// RightSide is the daughter multiset. Never mutated after
	// construction; the photon-augmented view lives in DisplaySide.
	RightSide []Reactant

	qValueKev float64
	stable    bool

	derived bool
	notes   []string
	display []Reactant
}

// NewReaction builds a reaction and computes its derived quantities.
func NewReaction(left, right []Reactant) *Reaction {
	r := &Reaction{
		LeftSide:  left,
		RightSide: right,
	}
	r.qValueKev = sideMassExcessKev(left) - sideMassExcessKev(right)
	r.stable = true
	for _, d := range right {
		if !d.Nuclide.Stable {
			r.stable = false
			break
		}
	}
	return r
}

func sideMassExcessKev(side []Reactant) float64 {
	var sum float64
	for _, r := range side {
		sum += float64(r.Count) * r.Nuclide.MassExcessKev
	}
	return sum
}

// QValueKev is the net energy release in keV.
func (r *Reaction) QValueKev() float64 {
	return r.qValueKev
}

// Stable reports whether every daughter occurs naturally.
func (r *Reaction) Stable() bool {
	return r.stable
}

// DaughterCount is the number of fragments counting multiplicity.
func (r *Reaction) DaughterCount() int {
	var n int
	for _, d := range r.RightSide {
		n += d.Count
	}
	return n
}

// Notes returns the sorted annotation set. Derivation runs once; the
// synthesized photon is never appended twice.
func (r *Reaction) Notes() []string {
	r.derive()
	return r.notes
}

// DisplaySide returns the right side augmented with the synthesized
// photon when the reaction implies one. The underlying RightSide is
// left untouched.
func (r *Reaction) DisplaySide() []Reactant {
	r.derive()
	return r.display
}

// HasGamma reports whether the right side is a single de-exciting
// fragment, which the model takes to imply photon emission.
func (r *Reaction) HasGamma() bool {
	return len(r.RightSide) == 1 && r.RightSide[0].Count == 1
}

// String renders the reaction as "p + 7Li → 2·4He + 17346 keV". The
// right side is the photon-augmented display view.
func (r *Reaction) String() string {
	return fmt.Sprintf("%s → %s + %.0f keV",
		FormatSide(r.LeftSide), FormatSide(r.DisplaySide()), r.qValueKev)
}

func (r *Reaction) derive() {
	if r.derived {
		return
	}
	notes := make(map[string]struct{})
	display := make([]Reactant, len(r.RightSide), len(r.RightSide)+1)
	copy(display, r.RightSide)

	for _, d := range r.RightSide {
		if note, ok := noteworthy[d.Nuclide.Label]; ok {
			notes[note] = struct{}{}
		}
		for _, p := range r.LeftSide {
			if d.Nuclide.Numbers() == p.Nuclide.Numbers().Add(Pair{A: 1}) {
				notes[NoteNeutronTransfer] = struct{}{}
			}
		}
	}
	if r.stable {
		notes[NoteStable] = struct{}{}
	}
	if r.HasGamma() {
		notes[NoteGamma] = struct{}{}
		display = append(display, Reactant{Count: 1, Nuclide: GammaPhoton()})
	}
	for _, d := range display {
		for _, note := range d.Nuclide.Notes {
			notes[note] = struct{}{}
		}
	}

	r.notes = make([]string, 0, len(notes))
	for note := range notes {
		r.notes = append(r.notes, note)
	}
	sort.Strings(r.notes)
	r.display = display
	r.derived = true
}

// SortReactionsForDisplay orders reactions for presentation: exothermic
// before endothermic, neutron and photon channels pushed down, then
// stable, neutron-transfer and alpha channels first, descending Q
// breaking ties. The sort is stable over enumeration order.
func SortReactionsForDisplay(reactions []*Reaction) []*Reaction {
	out := make([]*Reaction, len(reactions))
	copy(out, reactions)
	sort.SliceStable(out, func(i, j int) bool {
		return displayRankLess(out[i], out[j])
	})
	return out
}

func displayRankLess(a, b *Reaction) bool {
	ka, kb := displayRank(a), displayRank(b)
	for i := range ka {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
	}
	return false
}

func displayRank(r *Reaction) [7]float64 {
	notes := make(map[string]bool, 6)
	for _, note := range r.Notes() {
		notes[note] = true
	}
	return [7]float64{
		boolRank(r.QValueKev() <= 0),
		boolRank(notes[NoteNeutron] || notes[NoteGamma]),
		boolRank(!notes[NoteStable]),
		boolRank(!notes[NoteNeutronTransfer]),
		boolRank(!notes[NoteAlpha]),
		boolRank(!notes[NoteGamma]),
		-r.QValueKev(),
	}
}

func boolRank(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
