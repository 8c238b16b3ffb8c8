package windowstate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_LoadMissing(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "window.json"))

	_, ok, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if ok {
		t.Fatalf("expected no saved state")
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nested", "window.json"))
	want := Geometry{X: -20, Y: 40, Width: 640, Height: 120}

	if err := s.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, ok, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("Load() = %+v, %v; want %+v", got, ok, want)
	}
	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be gone, stat err=%v", err)
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, _, err := NewStore(path).Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestDefaultStore_UsesStateDir(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_STATE_HOME", td)

	s, err := DefaultStore()
	if err != nil {
		t.Fatalf("DefaultStore() error: %v", err)
	}
	if want := filepath.Join(td, "boxoverlay", "window.json"); s.Path() != want {
		t.Fatalf("Path() = %q, want %q", s.Path(), want)
	}
}

func TestGeometry_Valid(t *testing.T) {
	tests := []struct {
		g    Geometry
		want bool
	}{
		{Geometry{Width: 400, Height: 100}, true},
		{Geometry{Width: 99, Height: 100}, false},
		{Geometry{Width: 400, Height: 0}, false},
	}
	for _, tt := range tests {
		if got := tt.g.Valid(100, 100); got != tt.want {
			t.Errorf("%+v.Valid = %v, want %v", tt.g, got, tt.want)
		}
	}
}
