// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/styles"
	"github.com/emwalker/lenrmc/internal/core/domain"
)

// ReactionList displays enumerated reactions in a navigable list.
type ReactionList struct {
	reactions []*domain.Reaction
	index     map[string][]domain.Study
	selected  int
	styles    *styles.Styles
	width     int
	height    int
}

// NewReactionList creates a new reaction list component.
func NewReactionList(s *styles.Styles) *ReactionList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ReactionList{
		reactions: nil,
		selected:  0,
		styles:    s,
		width:     80,
		height:    10,
	}
}

// Init initialises the reaction list.
func (r *ReactionList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ReactionList) Update(msg tea.Msg) (*ReactionList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			r.MoveUp()
		case tea.KeyDown:
			r.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			r.MoveUp()
		case "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the reaction list.
func (r *ReactionList) View() string {
	if len(r.reactions) == 0 {
		return r.styles.Muted.Render("No reactions")
	}

	lines := make([]string, 0, len(r.reactions)*3+2)

	// Header
	header := r.styles.Subtitle.Render(fmt.Sprintf("Reactions (%d)", len(r.reactions)))
	lines = append(lines, header, "")

	// Each reaction takes 2-3 lines (equation + notes + optional marks),
	// so divide the available height by 3.
	visibleCount := (r.height - 4) / 3
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.reactions) {
		end = len(r.reactions)
	}

	for i := start; i < end; i++ {
		line := r.renderReaction(i, r.reactions[i])
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderReaction formats a single reaction with its notes and any
// matching study marks.
func (r *ReactionList) renderReaction(index int, reaction *domain.Reaction) string {
	// Indicator for selected item
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	equation := truncate(reaction.String(), r.maxLineLen())

	var equationLine string
	if index == r.selected {
		equationLine = r.styles.Selected.Render(indicator + equation)
	} else {
		equationLine = r.styles.Normal.Render(indicator + equation)
	}

	notes := strings.Join(reaction.Notes(), ", ")
	notesLine := r.styles.Muted.Render("    " + truncate(notes, r.maxLineLen()))

	// Study marks line (if the record mentions any daughter)
	var marksLine string
	if marks := r.marks(reaction); marks != "" {
		marksLine = "\n" + r.styles.Annotation.Render("    "+truncate(marks, r.maxLineLen()))
	}

	return equationLine + "\n" + notesLine + marksLine
}

// marks renders the study agreement marks for a reaction's daughters.
func (r *ReactionList) marks(reaction *domain.Reaction) string {
	if len(r.index) == 0 {
		return ""
	}

	var marks []string
	seen := make(map[string]bool)
	for _, d := range domain.SortSide(reaction.DisplaySide()) {
		label := d.Nuclide.Label
		if seen[label] {
			continue
		}
		seen[label] = true
		for _, study := range r.index[label] {
			marks = append(marks, fmt.Sprintf("%s %s [%s]", study.Change.Mark(), label, study.Reference))
		}
	}
	return strings.Join(marks, ", ")
}

// maxLineLen reports how many runes fit on one list line.
func (r *ReactionList) maxLineLen() int {
	max := r.width - 6
	if max < 20 {
		max = 20
	}
	return max
}

// truncate shortens a line to at most max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// SetReactions updates the reaction list.
func (r *ReactionList) SetReactions(reactions []*domain.Reaction) {
	r.reactions = reactions
	r.selected = 0
}

// Reactions returns the current reactions.
func (r *ReactionList) Reactions() []*domain.Reaction {
	return r.reactions
}

// SetStudies updates the study index used for annotation.
func (r *ReactionList) SetStudies(index map[string][]domain.Study) {
	r.index = index
}

// Selected returns the index of the selected reaction.
func (r *ReactionList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ReactionList) SetSelected(index int) {
	if index >= 0 && index < len(r.reactions) {
		r.selected = index
	}
}

// SelectedReaction returns the currently selected reaction, or nil if none.
func (r *ReactionList) SelectedReaction() *domain.Reaction {
	if len(r.reactions) == 0 || r.selected < 0 || r.selected >= len(r.reactions) {
		return nil
	}
	return r.reactions[r.selected]
}

// MoveUp moves selection up.
func (r *ReactionList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ReactionList) MoveDown() {
	if r.selected < len(r.reactions)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ReactionList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ReactionList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ReactionList) Height() int {
	return r.height
}

// Count returns the number of reactions.
func (r *ReactionList) Count() int {
	return len(r.reactions)
}

// IsEmpty returns whether the list is empty.
func (r *ReactionList) IsEmpty() bool {
	return len(r.reactions) == 0
}
