package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDiscard(t *testing.T) {
	logger, closer, err := New("", "info")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if logger == nil {
		t.Fatal("expected a logger")
	}
	logger.Info("dropped")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.log")

	logger, closer, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Debug("mode change", "to", "playing")
	logger.Info("score saved", "score", 7)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	out := string(data)
	for _, want := range []string{Prefix, "mode change", "to=playing", "score saved", "score=7"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.log")

	logger, closer, err := New(path, "warn")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud") {
		t.Error("warn line should be written")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, _, err := New("", "shouty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNewUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "flappy.log")
	if _, _, err := New(path, "info"); err == nil {
		t.Error("expected error for a path in a missing directory")
	}
}
