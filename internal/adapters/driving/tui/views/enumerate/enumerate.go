// Package enumerate provides the main reaction view for the TUI.
package enumerate

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/components/input"
	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/components/list"
	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/components/status"
	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/keymap"
	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/messages"
	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/styles"
	"github.com/emwalker/lenrmc/internal/core/domain"
	"github.com/emwalker/lenrmc/internal/core/ports/driving"
)

// View represents the enumerate view with spec input, reaction list,
// and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SpecInput
	list      *list.ReactionList
	statusbar *status.Bar

	enumerationService driving.EnumerationService
	studiesService     driving.StudiesService
	ctx                context.Context

	width      int
	height     int
	ready      bool
	err        error
	focusInput bool // true = input mode (typing), false = list mode (navigating)
}

// NewView creates a new enumerate view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	enumerationService driving.EnumerationService,
	studiesService driving.StudiesService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:             s,
		keymap:             km,
		input:              input.NewSpecInput(s),
		list:               list.NewReactionList(s),
		statusbar:          status.NewBar(s, km),
		enumerationService: enumerationService,
		studiesService:     studiesService,
		ctx:                context.Background(),
		width:              80,
		height:             24,
		ready:              false,
		focusInput:         true, // Start in input mode
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads the experimental record.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadStudies())
}

// Update handles messages for the enumerate view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.EnumerationCompleted:
		v.handleEnumerationCompleted(msg)
		return v, nil

	case messages.StudiesChanged:
		return v, v.loadStudies()

	case messages.StudiesLoaded:
		v.handleStudiesLoaded(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward to input component
	var inputCmd tea.Cmd
	v.input, inputCmd = v.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	// Forward to list component
	var listCmd tea.Cmd
	v.list, listCmd = v.list.Update(msg)
	if listCmd != nil {
		cmds = append(cmds, listCmd)
	}

	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	// Esc always signals to quit
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}

	// Tab toggles focus between the input and the list
	if msg.Type == tea.KeyTab {
		if v.focusInput {
			v.focusInput = false
			v.input.Blur()
		} else {
			v.focusInput = true
			return v, v.input.Focus()
		}
		return v, nil
	}

	// Enter in input mode submits the specification
	if msg.Type == tea.KeyEnter && v.focusInput {
		spec := v.input.Value()
		if spec == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateEnumerating)
		v.focusInput = false // Move to list mode after enumerating
		v.input.Blur()
		cmd := v.performEnumeration(spec)
		return v, cmd
	}

	// Input mode: all keys go to input
	if v.focusInput {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	// List mode: handle navigation
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyUp:
		v.list.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.list.MoveDown()
		return v, nil
	}

	switch msg.String() {
	case "k":
		v.list.MoveUp()
		return v, nil
	case "j":
		v.list.MoveDown()
		return v, nil
	case "n":
		// New spec: clear input and focus it
		v.focusInput = true
		v.input.SetValue("")
		return v, v.input.Focus()
	case "?":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	case "q":
		return v, func() tea.Msg {
			return messages.Quit{}
		}
	}

	return v, nil
}

// performEnumeration enumerates a specification and returns the
// reactions in display order.
func (v *View) performEnumeration(spec string) tea.Cmd {
	return func() tea.Msg {
		if v.enumerationService == nil {
			return messages.ErrorOccurred{Err: ErrNoEnumerationService}
		}

		enumeration, err := v.enumerationService.Enumerate(v.ctx, spec, domain.EnumerationOptions{})
		if err != nil {
			return messages.EnumerationCompleted{Spec: spec, Err: err}
		}
		return messages.EnumerationCompleted{
			Spec:      spec,
			Reactions: domain.SortReactionsForDisplay(enumeration.Reactions()),
		}
	}
}

// loadStudies reads the experimental record for annotation.
func (v *View) loadStudies() tea.Cmd {
	return func() tea.Msg {
		if v.studiesService == nil {
			return nil
		}

		index, err := v.studiesService.Index(v.ctx)
		return messages.StudiesLoaded{Index: index, Err: err}
	}
}

// handleEnumerationCompleted processes enumerated reactions.
func (v *View) handleEnumerationCompleted(msg messages.EnumerationCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.list.SetReactions(msg.Reactions)
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetReactionCount(len(msg.Reactions))

	// Switch to list mode after a successful enumeration
	v.focusInput = false
	v.input.Blur()
}

// handleStudiesLoaded refreshes the annotation index.
func (v *View) handleStudiesLoaded(msg messages.StudiesLoaded) {
	if msg.Err != nil {
		v.statusbar.SetMessage("Studies: " + msg.Err.Error())
		return
	}
	v.list.SetStudies(msg.Index)
}

// View renders the enumerate view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	// Header
	header := v.styles.Title.Render("lenrmc")
	sections = append(sections, header, "")

	// Spec input
	inputView := v.input.View()
	sections = append(sections, inputView, "")

	// Error display
	if v.err != nil {
		errView := v.styles.Error.Render("Error: " + v.err.Error())
		sections = append(sections, errView, "")
	}

	// Reaction list
	listView := v.list.View()
	sections = append(sections, listView)

	// Status bar at bottom
	sections = append(sections, "")
	statusView := v.statusbar.View()
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Allocate space to components
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Spec returns the current specification text.
func (v *View) Spec() string {
	return v.input.Value()
}

// SetSpec sets the specification text.
func (v *View) SetSpec(spec string) {
	v.input.SetValue(spec)
}

// Reactions returns the current reactions.
func (v *View) Reactions() []*domain.Reaction {
	return v.list.Reactions()
}

// SelectedIndex returns the index of the selected reaction.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedReaction returns the currently selected reaction.
func (v *View) SelectedReaction() *domain.Reaction {
	return v.list.SelectedReaction()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset resets the view to initial input mode.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.list.SetReactions(nil)
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
