// Package watch reloads the settings file when it changes on disk, so a
// running picker picks up new bounds, pattern, and messages without a
// restart.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"stint/internal/config"
	"stint/internal/logger"
)

// SettingsEvent carries a freshly reloaded settings file.
type SettingsEvent struct {
	Settings config.Settings
}

// Watcher watches the settings file for changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	changes chan SettingsEvent
	done    chan struct{}

	// mu guards the debounce state shared between the watch goroutine
	// and the timer callback.
	mu            sync.Mutex
	debounceTimer *time.Timer
	pending       bool
}

// NewWatcher creates a watcher for the settings file at path.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		path:    path,
		changes: make(chan SettingsEvent, 1),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching. The settings file's directory is watched, not
// the file itself, so editors that replace the file still notify.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch settings directory: %w", err)
	}
	go w.watch()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	w.watcher.Close()
}

// Changes returns the channel of settings reload events.
func (w *Watcher) Changes() <-chan SettingsEvent {
	return w.changes
}

func (w *Watcher) watch() {
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}

			w.mu.Lock()
			w.pending = true
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch: settings watcher error", "error", err)
		}
	}
}

// reload re-reads the settings after the debounce window and publishes
// them. Invalid files are logged and skipped; the picker keeps its
// current settings.
func (w *Watcher) reload() {
	w.mu.Lock()
	pending := w.pending
	w.pending = false
	w.mu.Unlock()
	if !pending {
		return
	}

	settings, err := config.LoadSettings(w.path)
	if err != nil {
		logger.Warn("watch: ignoring invalid settings file", "path", w.path, "error", err)
		return
	}

	select {
	case w.changes <- SettingsEvent{Settings: settings}:
	case <-w.done:
	}
}
