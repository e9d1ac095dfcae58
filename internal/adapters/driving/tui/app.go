package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/keymap"
	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/messages"
	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/styles"
	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/views/enumerate"
	"github.com/emwalker/lenrmc/internal/core/domain"
)

// App is the root bubbletea model for the terminal UI. It routes
// messages to the enumerate view and owns the studies file watcher.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	enumerateView *enumerate.View
	watcher       *StudiesWatcher

	currentView messages.ViewType
	width       int
	height      int
	ready       bool
}

// NewApp creates the application model from the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		ports = &Ports{}
	}
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	app := &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		enumerateView: enumerate.NewView(s, km, ports.Enumeration, ports.Studies),
		currentView:   messages.ViewEnumerate,
		width:         80,
		height:        24,
	}

	// Watch the studies file so edits refresh the annotations in
	// place. A store without a real file is not watched.
	if ports.Studies != nil {
		if path := ports.Studies.Path(); path != "" && path != ":memory:" {
			if watcher, err := NewStudiesWatcher(path); err == nil {
				app.watcher = watcher
			}
		}
	}

	return app, nil
}

// WithContext sets the context used for enumeration and studies calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.enumerateView = a.enumerateView.WithContext(ctx)
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("lenrmc"),
		a.enumerateView.Init(),
	}
	if a.watcher != nil {
		cmds = append(cmds, a.watcher.WaitForChange())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and routes them to the active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.enumerateView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit works regardless of the active view
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		return a, a.quit()

	case messages.StudiesChanged:
		// Reload the annotation index, then re-arm the watcher
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.enumerateView, cmd = a.enumerateView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if a.watcher != nil {
			cmds = append(cmds, a.watcher.WaitForChange())
		}
		return a, tea.Batch(cmds...)

	case messages.EnumerationCompleted, messages.StudiesLoaded, messages.ErrorOccurred:
		var cmd tea.Cmd
		a.enumerateView, cmd = a.enumerateView.Update(msg)
		return a, cmd
	}

	if a.currentView == messages.ViewEnumerate {
		var cmd tea.Cmd
		a.enumerateView, cmd = a.enumerateView.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKeyMsg routes keyboard input to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.currentView {
	case messages.ViewHelp:
		// Any key returns to the enumerate view
		a.currentView = messages.ViewEnumerate
		return a, nil

	case messages.ViewEnumerate:
		var cmd tea.Cmd
		a.enumerateView, cmd = a.enumerateView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// quit closes the watcher and terminates the program.
func (a *App) quit() tea.Cmd {
	if a.watcher != nil {
		_ = a.watcher.Close()
		a.watcher = nil
	}
	return tea.Quit
}

// View renders the active view.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewEnumerate:
		return a.enumerateView.View()
	}

	return a.enumerateView.View()
}

// viewHelp renders the help screen.
func (a *App) viewHelp() string {
	lines := []string{
		a.styles.Title.Render("lenrmc help"),
		"",
		a.styles.Subtitle.Render("Controls"),
		"",
		"  enter      Enumerate the typed spec",
		"  tab        Toggle focus between spec and reactions",
		"  ↑/k ↓/j    Navigate reactions",
		"  n          Start a new spec",
		"  ?          Toggle this help",
		"  q          Quit",
		"",
		a.styles.Muted.Render("Edits to the studies file refresh the annotations in place."),
		"",
		a.styles.Muted.Render("Press any key to return"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the application has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the application dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.enumerateView.SetDimensions(width, height)
}

// Spec returns the current specification text.
func (a *App) Spec() string {
	return a.enumerateView.Spec()
}

// Reactions returns the reactions currently on display.
func (a *App) Reactions() []*domain.Reaction {
	return a.enumerateView.Reactions()
}

// SelectedIndex returns the index of the selected reaction.
func (a *App) SelectedIndex() int {
	return a.enumerateView.SelectedIndex()
}

// Err returns the current error, if any.
func (a *App) Err() error {
	return a.enumerateView.Err()
}

// Watching returns whether the studies file is being watched.
func (a *App) Watching() bool {
	return a.watcher != nil
}
