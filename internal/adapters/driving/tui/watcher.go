package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/emwalker/lenrmc/internal/adapters/driving/tui/messages"
)

// StudiesWatcher watches the studies file for edits so the annotations
// can be refreshed in place while the UI is running.
type StudiesWatcher struct {
	watcher *fsnotify.Watcher
	path    string
}

// NewStudiesWatcher creates a watcher for the given studies file. The
// containing directory is watched rather than the file itself, which
// survives editors that replace the file on save.
func NewStudiesWatcher(path string) (*StudiesWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &StudiesWatcher{
		watcher: watcher,
		path:    path,
	}, nil
}

// WaitForChange blocks until the studies file is written, created or
// renamed, then reports the change. The caller re-arms the watcher by
// invoking it again after handling the message.
func (w *StudiesWatcher) WaitForChange() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != filepath.Clean(w.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				return messages.StudiesChanged{}
			case _, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// Path returns the watched file path.
func (w *StudiesWatcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *StudiesWatcher) Close() error {
	return w.watcher.Close()
}
