// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/styles"
)

// SpecInput wraps a bubbles textinput for reactant specifications.
type SpecInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewSpecInput creates a new specification input component.
func NewSpecInput(s *styles.Styles) *SpecInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "p+7Li, H+Li, d+d ..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &SpecInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the spec input.
func (s *SpecInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SpecInput) Update(msg tea.Msg) (*SpecInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the spec input.
func (s *SpecInput) View() string {
	label := s.styles.Title.Render("Spec: ")
	input := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (s *SpecInput) Value() string {
	return s.textinput.Value()
}

// SetValue sets the input value.
func (s *SpecInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (s *SpecInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SpecInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SpecInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *SpecInput) SetWidth(width int) {
	s.width = width
	// Account for label and padding
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.textinput.Width = inputWidth
}

// Width returns the current width.
func (s *SpecInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SpecInput) Reset() {
	s.textinput.Reset()
}
