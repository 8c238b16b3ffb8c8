package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at a YAML path such as
// "opacity.min" or "window.width", together with where it came from.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	values := map[string]any{
		"display":                  cfg.Display,
		"log_level":                cfg.LogLevel,
		"window.title":             cfg.Window.Title,
		"window.width":             cfg.Window.Width,
		"window.height":            cfg.Window.Height,
		"window.min_width":         cfg.Window.MinWidth,
		"window.min_height":        cfg.Window.MinHeight,
		"window.always_on_top":     cfg.Window.AlwaysOnTop,
		"window.transparent":       cfg.Window.Transparent,
		"window.remember_geometry": cfg.Window.RememberGeometry,
		"appearance.fill":          cfg.Appearance.Fill,
		"appearance.alpha":         cfg.Appearance.Alpha,
		"opacity.min":              cfg.Opacity.Min,
		"opacity.max":              cfg.Opacity.Max,
		"opacity.drag_range":       cfg.Opacity.DragRange,
		"cursor.start_hidden":      cfg.Cursor.StartHidden,
		"cursor.hide_after_ms":     cfg.Cursor.HideAfterMS,
		"input.drag_threshold":     cfg.Input.DragThreshold,
		"keys.quit":                cfg.Keys.Quit,
	}
	value, ok := values[strings.TrimSpace(path)]
	if !ok {
		return nil, fmt.Errorf("unknown path: %s", path)
	}
	return value, nil
}

// ExplainPaths lists the paths Explain understands, sorted.
func ExplainPaths() []string {
	return []string{
		"appearance.alpha",
		"appearance.fill",
		"cursor.hide_after_ms",
		"cursor.start_hidden",
		"display",
		"input.drag_threshold",
		"keys.quit",
		"log_level",
		"opacity.drag_range",
		"opacity.max",
		"opacity.min",
		"window.always_on_top",
		"window.height",
		"window.min_height",
		"window.min_width",
		"window.remember_geometry",
		"window.title",
		"window.transparent",
		"window.width",
	}
}
