// Package nubase loads the NUBASE 2012 nuclide evaluation into the domain
// registry. The evaluation is a fixed-width text table; an excerpt ships
// embedded so every command works without downloading the full table.
package nubase

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.NuclideSource = (*Source)(nil)

//go:embed data/nubtab12.asc
var embedded embed.FS

// embeddedPath is the table excerpt bundled with the binary.
const embeddedPath = "data/nubtab12.asc"

// columnEnds are the exclusive end offsets of the fixed-width columns, in
// runes. The final column, decay modes and intensities, runs to the end of
// the line.
var columnEnds = [...]int{4, 7, 9, 18, 39, 61, 69, 71, 79, 93, 96, 105, 110}

// Column indices into the slice produced by columns.
const (
	colMassNumber = iota
	colAtomicNumber
	colAtomicNumberExtra
	colLabel
	colMassExcess
	colExcitationEnergy
	colHalfLife
	colHalfLifeUnit
	colHalfLifeUncertainty
	colSpinParity
	colEnsdfYear
	colReference
	colDiscoveryYear
	colDecayModes
)

var (
	atomicNumberRe = regexp.MustCompile(`\d+`)
	massExcessRe   = regexp.MustCompile(`[\d.\-]+`)
	abundanceRe    = regexp.MustCompile(`IS=([\d.]+)`)
)

// alternateLabels normalises the evaluation's names for the light
// particles to the symbols used everywhere else.
var alternateLabels = map[string]string{
	"1 n":  "n",
	"1H":   "p",
	"2H":   "d",
	"3H":   "t",
	"12Cx": "12C",
	"10Bx": "10B",
}

// groundLabels are rows whose label happens to end in a level-suffix
// letter but which are ground states all the same.
var groundLabels = map[string]struct{}{
	"1 n":  {},
	"3Li":  {},
	"4H":   {},
	"4Li":  {},
	"5H":   {},
	"5He":  {},
	"5Li":  {},
	"6He":  {},
	"8Be":  {},
	"59Ni": {},
}

// levelSuffixes are the single-letter isomer markers the evaluation
// appends to a label.
const levelSuffixes = "ijmnpqrx"

// decayNotes maps decay-mode tokens to the intrinsic notes carried on the
// nuclide. Matching is by substring so intensity qualifiers do not matter.
var decayNotes = []struct {
	token string
	note  string
}{
	{"B-", "→β-"},
	{"B+", "→β+"},
}

// Source reads the evaluation table from a file, or from the embedded
// excerpt when no path is configured. The table is parsed once and the
// registry reused across calls.
type Source struct {
	path string

	once     sync.Once
	registry *domain.Registry
	skipped  int
	err      error
}

// NewSource creates a nuclide source. An empty path selects the embedded
// excerpt.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Registry parses the table and indexes it. Malformed records are skipped
// and counted rather than failing the load.
func (s *Source) Registry() (*domain.Registry, int, error) {
	s.once.Do(func() {
		var r io.ReadCloser
		var err error
		if s.path == "" {
			f, ferr := embedded.Open(embeddedPath)
			r, err = f, ferr
		} else {
			r, err = os.Open(s.path)
		}
		if err != nil {
			s.err = fmt.Errorf("opening nuclide table: %w", err)
			return
		}
		defer r.Close()

		nuclides, skipped, err := Parse(r)
		if err != nil {
			s.err = fmt.Errorf("reading nuclide table: %w", err)
			return
		}
		s.registry = domain.NewRegistry(nuclides)
		s.skipped = skipped
	})
	return s.registry, s.skipped, s.err
}

// Path returns the table location, or "embedded" for the bundled excerpt.
func (s *Source) Path() string {
	if s.path == "" {
		return "embedded"
	}
	return s.path
}

// Parse reads the fixed-width table, returning the parsed rows and the
// count of malformed records that were skipped.
func Parse(r io.Reader) ([]*domain.Nuclide, int, error) {
	var nuclides []*domain.Nuclide
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		n, err := parseRecord(line)
		if err != nil {
			skipped++
			continue
		}
		nuclides = append(nuclides, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return nuclides, skipped, nil
}

// parseRecord parses a single table row. Rows without a readable mass
// excess or mass number are malformed.
func parseRecord(line string) (*domain.Nuclide, error) {
	f := columns(line)

	massNumber, err := strconv.Atoi(strings.TrimSpace(f[colMassNumber]))
	if err != nil {
		return nil, fmt.Errorf("parsing mass number %q: %w", f[colMassNumber], domain.ErrMalformedRecord)
	}

	digits := atomicNumberRe.FindString(f[colAtomicNumber])
	if digits == "" {
		return nil, fmt.Errorf("parsing atomic number %q: %w", f[colAtomicNumber], domain.ErrMalformedRecord)
	}
	atomicNumber, err := strconv.Atoi(digits)
	if err != nil {
		return nil, fmt.Errorf("parsing atomic number %q: %w", f[colAtomicNumber], domain.ErrMalformedRecord)
	}

	raw := massExcessRe.FindString(f[colMassExcess])
	if raw == "" {
		return nil, fmt.Errorf("row %d%s has no mass excess: %w", massNumber, strings.TrimSpace(f[colLabel]), domain.ErrMalformedRecord)
	}
	massExcess, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing mass excess %q: %w", raw, domain.ErrMalformedRecord)
	}

	decay := strings.TrimSpace(f[colDecayModes])

	abundance := 0.0
	if m := abundanceRe.FindStringSubmatch(decay); m != nil {
		abundance, err = strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing abundance %q: %w", m[1], domain.ErrMalformedRecord)
		}
	}

	var notes []string
	for _, d := range decayNotes {
		if strings.Contains(decay, d.token) {
			notes = append(notes, d.note)
		}
	}

	rawLabel := strings.TrimSpace(f[colLabel])
	excitation := strings.TrimSpace(f[colExcitationEnergy])
	label, level := splitLevel(rawLabel, excitation, abundance)

	return &domain.Nuclide{
		Label:             label,
		ExcitationLevel:   level,
		MassNumber:        massNumber,
		AtomicNumber:      atomicNumber,
		MassExcessKev:     massExcess,
		IsotopicAbundance: abundance,
		Stable:            abundance > 0,
		SpinParity:        strings.Join(strings.Fields(f[colSpinParity]), " "),
		HalfLife: domain.HalfLife{
			Value: strings.TrimSpace(f[colHalfLife]),
			Unit:  strings.TrimSpace(f[colHalfLifeUnit]),
		},
		Notes:         notes,
		Reference:     strings.TrimSpace(f[colReference]),
		DiscoveryYear: strings.TrimSpace(f[colDiscoveryYear]),
	}, nil
}

// splitLevel separates an isomer suffix from the label and normalises
// alternate particle names. A suffix letter only marks an isomer when the
// row carries an excitation energy and no natural abundance; some ground
// states, 63Ni for one, would otherwise read as excited 63N.
func splitLevel(rawLabel, excitation string, abundance float64) (label, level string) {
	label, level = rawLabel, domain.GroundState

	if excitation != "" && abundance == 0 {
		if _, ground := groundLabels[rawLabel]; !ground {
			runes := []rune(rawLabel)
			if len(runes) > 0 && strings.ContainsRune(levelSuffixes, runes[len(runes)-1]) {
				label = string(runes[:len(runes)-1])
				level = string(runes[len(runes)-1])
			}
		}
	}

	if alt, ok := alternateLabels[label]; ok {
		label = alt
	}
	return label, level
}

// columns splits a row at the fixed column boundaries. Offsets are in
// runes; a few labels carry non-ASCII symbols.
func columns(line string) []string {
	runes := []rune(line)
	fields := make([]string, 0, len(columnEnds)+1)
	prev := 0
	for _, end := range columnEnds {
		if end > len(runes) {
			end = len(runes)
		}
		fields = append(fields, string(runes[prev:end]))
		prev = end
	}
	fields = append(fields, string(runes[prev:]))
	return fields
}
