package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stint/internal/config"
)

func TestNewWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	watcher, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	if watcher.watcher == nil {
		t.Fatal("underlying fsnotify watcher should not be nil")
	}
	if watcher.changes == nil {
		t.Fatal("changes channel should not be nil")
	}

	watcher.Stop()
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	s := config.DefaultSettings()
	if err := s.Save(path); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	watcher, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	s.Pattern = "DD/MM/YYYY"
	if err := s.Save(path); err != nil {
		t.Fatalf("failed to rewrite settings: %v", err)
	}

	select {
	case event := <-watcher.Changes():
		if event.Settings.Pattern != "DD/MM/YYYY" {
			t.Errorf("expected reloaded pattern DD/MM/YYYY, got %q", event.Settings.Pattern)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for settings reload")
	}
}

func TestWatcherDebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	s := config.DefaultSettings()
	if err := s.Save(path); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	watcher, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	// A burst of rewrites races the timer callback against new events;
	// the last write must still come through.
	patterns := []string{"DD/MM/YYYY", "MM/DD/YYYY", "DD.MM.YYYY"}
	for i := 0; i < 10; i++ {
		s.Pattern = patterns[i%len(patterns)]
		if err := s.Save(path); err != nil {
			t.Fatalf("failed to rewrite settings: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	deadline := time.After(3 * time.Second)
	got := ""
	for got != s.Pattern {
		select {
		case event := <-watcher.Changes():
			got = event.Settings.Pattern
		case <-deadline:
			t.Fatalf("timed out waiting for the final pattern, last saw %q", got)
		}
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	if err := config.DefaultSettings().Save(path); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	watcher, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write unrelated file: %v", err)
	}

	select {
	case <-watcher.Changes():
		t.Fatal("unrelated file should not trigger a reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSkipsInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	if err := config.DefaultSettings().Save(path); err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	watcher, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	if err := os.WriteFile(path, []byte("pattern: NOPE\n"), 0644); err != nil {
		t.Fatalf("failed to write broken settings: %v", err)
	}

	select {
	case <-watcher.Changes():
		t.Fatal("invalid settings should not be published")
	case <-time.After(300 * time.Millisecond):
	}
}
