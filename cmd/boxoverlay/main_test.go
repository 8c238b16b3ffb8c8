package main

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/1broseidon/boxoverlay/internal/config"
	"github.com/1broseidon/boxoverlay/internal/windowstate"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFormatSource(t *testing.T) {
	got := formatSource(config.Source{Kind: config.SourceFile, File: "/c.yaml", Line: 3, Column: 7})
	if got != "file:/c.yaml:3:7" {
		t.Fatalf("unexpected %q", got)
	}
	if got := formatSource(config.Source{Kind: config.SourceDefault}); got != "default" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestRestorePlacement(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	cfg := config.DefaultConfig()
	store := windowstate.NewStore(filepath.Join(t.TempDir(), "window.json"))

	if p := restorePlacement(store, cfg, logger); p != nil {
		t.Fatalf("expected no placement without saved state, got %+v", p)
	}

	if err := store.Save(windowstate.Geometry{X: 10, Y: 20, Width: 50, Height: 50}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if p := restorePlacement(store, cfg, logger); p != nil {
		t.Fatalf("expected undersized geometry to be ignored, got %+v", p)
	}

	if err := store.Save(windowstate.Geometry{X: 10, Y: 20, Width: 500, Height: 150}); err != nil {
		t.Fatalf("save: %v", err)
	}
	p := restorePlacement(store, cfg, logger)
	if p == nil || p.X != 10 || p.Y != 20 || p.Width != 500 || p.Height != 150 {
		t.Fatalf("unexpected placement %+v", p)
	}
}
