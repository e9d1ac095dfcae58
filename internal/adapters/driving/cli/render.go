package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// Column layout for the reaction tables. Offsets are in runes; widths
// line the columns up at 56/82/103 for the spins view and 56/84 for the
// references view.
const (
	reactionColWidth      = 56
	notesColWidth         = 26
	notesColWidthStudies  = 28
	leftSpinsColWidth     = 21
)

// printTable writes table lines, cut to the terminal width when stdout
// is one. Pipes and files always receive full lines.
func printTable(cmd *cobra.Command, lines []string) {
	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	for _, line := range lines {
		cmd.Println(fitLine(line, width))
	}
}

// fitLine cuts a line to width runes. Width 0 disables cutting.
func fitLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width])
}

// displayNotes maps symbolic notes to their table rendering. Intrinsic
// decay-mode notes such as "→β-" stay off the table.
var displayNotes = map[string]string{
	domain.NoteAlpha:           "4He",
	domain.NoteNeutron:         domain.NoteNeutron,
	domain.NoteTriton:          domain.NoteTriton,
	domain.NoteNeutronTransfer: domain.NoteNeutronTransfer,
	domain.NoteStable:          domain.NoteStable,
	domain.NoteGamma:           domain.NoteGamma,
}

// notesColumn renders the sorted symbolic notes of a reaction.
func notesColumn(r *domain.Reaction) string {
	var notes []string
	for _, note := range r.Notes() {
		mapped, ok := displayNotes[note]
		if !ok {
			continue
		}
		notes = append(notes, mapped)
	}
	sort.Strings(notes)
	return strings.Join(notes, ", ")
}

// spinsColumn renders the spin/parity assignments of one side, one per
// fragment counting multiplicity, sorted. Fragments without an
// assignment are left out.
func spinsColumn(side []domain.Reactant) string {
	var spins []string
	for _, r := range side {
		if r.Nuclide.SpinParity == "" {
			continue
		}
		for i := 0; i < r.Count; i++ {
			spins = append(spins, r.Nuclide.SpinParity)
		}
	}
	sort.Strings(spins)
	return strings.Join(spins, ", ")
}

// reactionTable renders the default view: one line per reaction with
// the notes column at a fixed offset.
func reactionTable(reactions []*domain.Reaction) []string {
	lines := make([]string, 0, len(reactions))
	for _, r := range domain.SortReactionsForDisplay(reactions) {
		line := fmt.Sprintf("%-*s%s", reactionColWidth, r.String(), notesColumn(r))
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// spinsTable renders the spins view: notes plus the spin/parity columns
// of both sides.
func spinsTable(reactions []*domain.Reaction) []string {
	lines := make([]string, 0, len(reactions))
	for _, r := range domain.SortReactionsForDisplay(reactions) {
		line := fmt.Sprintf("%-*s%-*s%-*s%s",
			reactionColWidth, r.String(),
			notesColWidth, notesColumn(r),
			leftSpinsColWidth, spinsColumn(r.LeftSide),
			spinsColumn(r.DisplaySide()))
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

// studiesTable renders the references view: reactions matched against
// the experimental record. Neutron and photon channels are hidden, and
// lines group confirmed observations first, contradicted ones last.
// A legend of the cited references follows the table.
func studiesTable(reactions []*domain.Reaction, index map[string][]domain.Study) []string {
	type annotated struct {
		reaction *domain.Reaction
		marks    string
		rank     int
	}

	var rows []annotated
	references := make(map[string]string)
	for _, r := range reactions {
		notes := r.Notes()
		if containsNote(notes, domain.NoteNeutron) || containsNote(notes, domain.NoteGamma) {
			continue
		}
		marks, rank := studyMarks(r, index, references)
		rows = append(rows, annotated{reaction: r, marks: marks, rank: rank})
	}

	// Stable sort keeps enumeration order within each group.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].rank < rows[j].rank
	})

	lines := make([]string, 0, len(rows)+len(references)+1)
	for _, row := range rows {
		line := fmt.Sprintf("%-*s%-*s%s",
			reactionColWidth, row.reaction.String(),
			notesColWidthStudies, notesColumn(row.reaction),
			row.marks)
		lines = append(lines, strings.TrimRight(line, " "))
	}

	if len(references) > 0 {
		lines = append(lines, "")
		tags := make([]string, 0, len(references))
		for tag := range references {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			lines = append(lines, fmt.Sprintf("[%s] %s", tag, references[tag]))
		}
	}
	return lines
}

// studyMarks renders the agreement marks for a reaction's daughters and
// reports the grouping rank: confirmed increases first, lines with no
// matching study in the middle, contradicted decreases last. Cited
// references accumulate into refs for the legend.
func studyMarks(r *domain.Reaction, index map[string][]domain.Study, refs map[string]string) (string, int) {
	var marks []string
	rank := 1
	sawIncrease, sawDecrease := false, false
	seen := make(map[string]bool)
	for _, d := range domain.SortSide(r.DisplaySide()) {
		label := d.Nuclide.Label
		if seen[label] {
			continue
		}
		seen[label] = true
		for _, study := range index[label] {
			marks = append(marks, fmt.Sprintf("%s %s [%s]", study.Change.Mark(), label, study.Reference))
			refs[study.Reference] = study.Description
			switch study.Change {
			case domain.ChangeIncrease:
				sawIncrease = true
			case domain.ChangeDecrease:
				sawDecrease = true
			}
		}
	}
	if sawIncrease {
		rank = 0
	} else if sawDecrease {
		rank = 2
	}
	return strings.Join(marks, ", "), rank
}

func containsNote(notes []string, note string) bool {
	for _, n := range notes {
		if n == note {
			return true
		}
	}
	return false
}
