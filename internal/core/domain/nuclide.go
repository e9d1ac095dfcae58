package domain

import (
	"fmt"
	"strconv"
)

// Signature uniquely identifies a nuclide row: the normalised label plus
// the excitation level ("0" for ground states).
type Signature struct {
	// Label is the normalised display label (p, d, t, 4He, 7Li, ...).
	Label string

	// Level is "0" for ground states or the table's single-letter level
	// suffix (i, j, m, n, p, q, r, x).
	Level string
}

// String renders the signature for logs and cache keys.
func (s Signature) String() string {
	if s.Level == GroundState {
		return s.Label
	}
	return s.Label + "/" + s.Level
}

// GroundState is the excitation level of an unexcited nuclide.
const GroundState = "0"

// HalfLife is a raw half-life reading from the nuclide table. The value
// stays textual: many table entries carry limits or estimate flags that
// do not convert cleanly to a number.
type HalfLife struct {
	// Value is the textual magnitude, e.g. "12.32" or "stbl".
	Value string

	// Unit is the table's unit token, e.g. "s", "y", "ms".
	Unit string
}

// Seconds converts the half-life to seconds. Only entries already in
// seconds convert; anything else is ErrHalfLifeUnit.
func (h HalfLife) Seconds() (float64, error) {
	if h.Unit != "s" {
		return 0, fmt.Errorf("converting half-life %q: %w", h.Unit, ErrHalfLifeUnit)
	}
	v, err := strconv.ParseFloat(h.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing half-life value %q: %w", h.Value, ErrMalformedRecord)
	}
	return v, nil
}

func (h HalfLife) String() string {
	if h.Value == "" {
		return ""
	}
	return h.Value + " " + h.Unit
}

// Nuclide is one row of the nuclide table: a ground state or an excited
// isomer of a particular (massNumber, atomicNumber).
type Nuclide struct {
	// Label is the normalised display label (p, d, t, 4He, 7Li, ...).
	Label string

	// ExcitationLevel is "0" for ground states or the single-letter
	// isomer suffix from the table.
	ExcitationLevel string

	// MassNumber is the nucleon count A.
	MassNumber int

	// AtomicNumber is the proton count Z.
	AtomicNumber int

	// MassExcessKev is the mass excess in keV.
	MassExcessKev float64

	// IsotopicAbundance is the natural abundance in percent, 0 when the
	// nuclide does not occur naturally.
	IsotopicAbundance float64

	// Stable reports whether the table lists a natural abundance.
	Stable bool

	// SpinParity is the whitespace-collapsed spin/parity column.
	SpinParity string

	// HalfLife is the raw half-life reading.
	HalfLife HalfLife

	// Notes are intrinsic decay-mode annotations (→β-, →β+).
	Notes []string

	// Reference is the table's literature reference token.
	Reference string

	// DiscoveryYear is the year-of-discovery column.
	DiscoveryYear string
}

// Signature returns the unique (label, level) identity.
func (n *Nuclide) Signature() Signature {
	return Signature{Label: n.Label, Level: n.ExcitationLevel}
}

// Numbers returns the (massNumber, atomicNumber) pair.
func (n *Nuclide) Numbers() Pair {
	return Pair{A: n.MassNumber, Z: n.AtomicNumber}
}

// Excited reports whether this row is an isomer above the ground state.
func (n *Nuclide) Excited() bool {
	return n.ExcitationLevel != GroundState
}

// FullLabel renders the label with the excitation level, e.g. "7Li (i)".
func (n *Nuclide) FullLabel() string {
	if !n.Excited() {
		return n.Label
	}
	return fmt.Sprintf("%s (%s)", n.Label, n.ExcitationLevel)
}

// AtomicMassMev is the atomic mass in MeV.
func (n *Nuclide) AtomicMassMev() float64 {
	return float64(n.MassNumber)*AtomicMassUnitMev + n.MassExcessKev/KevPerMev
}

// GammaPhoton synthesizes the photon pseudo-nuclide appended to
// single-fragment reaction sides.
func GammaPhoton() *Nuclide {
	return &Nuclide{
		Label:           "γ",
		ExcitationLevel: GroundState,
		SpinParity:      "1-",
		Notes:           []string{NoteGamma},
	}
}
