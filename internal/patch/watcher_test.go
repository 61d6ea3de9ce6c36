package patch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePatch(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write patch: %v", err)
	}
}

func TestWatcherStartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.yaml")
	writePatch(t, path, twoWaves)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Stop()

	if err := w.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	if err := w.Start(); err == nil {
		t.Error("Expected error when starting watcher twice")
	}
}

func TestWatcherDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.yaml")
	writePatch(t, path, twoWaves)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	writePatch(t, path, "sampleRate: 8000\nwaves:\n  - frequency: 440\n")

	timeout := time.After(2 * time.Second)
	for {
		select {
		case e := <-w.Events():
			if e.Err != nil || len(e.Patch.Waves) == 0 {
				continue
			}
			if e.Patch.SampleRate != 8000 || len(e.Patch.Waves) != 1 {
				t.Errorf("unexpected patch: %+v", e.Patch)
			}
			return
		case <-timeout:
			t.Fatal("Timeout waiting for patch change event")
		}
	}
}

func TestWatcherReportsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patch.yaml")
	writePatch(t, path, twoWaves)

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("Failed to create watcher: %v", err)
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}

	writePatch(t, path, "waves: [")

	select {
	case e := <-w.Events():
		if e.Err == nil {
			t.Errorf("expected a parse error, got %+v", e.Patch)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for error event")
	}
}
