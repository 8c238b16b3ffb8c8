package statedir

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDir_UsesXDGStateHomeWhenSet(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_STATE_HOME", td)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if want := filepath.Join(td, "boxoverlay"); got != want {
		t.Fatalf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_FallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if want := filepath.Join(home, ".local", "state", "boxoverlay"); got != want {
		t.Fatalf("Dir() = %q, want %q", got, want)
	}
}

func TestWindowStatePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	path, err := WindowStatePath()
	if err != nil {
		t.Fatalf("WindowStatePath() error: %v", err)
	}
	if !strings.HasSuffix(path, "/boxoverlay/window.json") {
		t.Fatalf("WindowStatePath() = %q, missing suffix", path)
	}
}
