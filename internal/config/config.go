package config

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Defaults for the overlay window.
const (
	DefaultTitle         = "Box Overlay"
	DefaultWidth         = 400
	DefaultHeight        = 100
	DefaultMinWidth      = 100
	DefaultMinHeight     = 100
	DefaultFill          = "#000000"
	DefaultAlpha         = 1.0
	DefaultMinAlpha      = 0.5
	DefaultMaxAlpha      = 1.0
	DefaultDragRange     = 100.0
	DefaultHideAfterMS   = 200
	DefaultDragThreshold = 6.0
	DefaultLogLevel      = "info"
)

// WindowConfig controls how the overlay window is created.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
	// AlwaysOnTop keeps the window above normal windows.
	AlwaysOnTop bool `yaml:"always_on_top"`
	// Transparent requests an ARGB visual so the fill alpha blends with
	// the desktop. Without a compositor visual the window opacity hint is used.
	Transparent bool `yaml:"transparent"`
	// RememberGeometry restores the last position and size on start.
	RememberGeometry bool `yaml:"remember_geometry"`
}

// AppearanceConfig sets the window fill.
type AppearanceConfig struct {
	Fill  string  `yaml:"fill"`  // "#rrggbb"
	Alpha float64 `yaml:"alpha"` // starting opacity
}

// OpacityConfig bounds the secondary-button opacity drag.
type OpacityConfig struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	DragRange float64 `yaml:"drag_range"` // pointer travel covering min..max
}

// CursorConfig configures the auto-hide cursor.
type CursorConfig struct {
	StartHidden bool `yaml:"start_hidden"`
	HideAfterMS int  `yaml:"hide_after_ms"`
}

// InputConfig tunes pointer gesture recognition.
type InputConfig struct {
	DragThreshold float64 `yaml:"drag_threshold"`
}

// KeysConfig lists keysym names bound to actions.
type KeysConfig struct {
	Quit []string `yaml:"quit"`
}

// Config is the effective overlay configuration.
type Config struct {
	Display    string           `yaml:"display"`
	LogLevel   string           `yaml:"log_level"`
	Window     WindowConfig     `yaml:"window"`
	Appearance AppearanceConfig `yaml:"appearance"`
	Opacity    OpacityConfig    `yaml:"opacity"`
	Cursor     CursorConfig     `yaml:"cursor"`
	Input      InputConfig      `yaml:"input"`
	Keys       KeysConfig       `yaml:"keys"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Window: WindowConfig{
			Title:            DefaultTitle,
			Width:            DefaultWidth,
			Height:           DefaultHeight,
			MinWidth:         DefaultMinWidth,
			MinHeight:        DefaultMinHeight,
			AlwaysOnTop:      true,
			Transparent:      true,
			RememberGeometry: true,
		},
		Appearance: AppearanceConfig{
			Fill:  DefaultFill,
			Alpha: DefaultAlpha,
		},
		Opacity: OpacityConfig{
			Min:       DefaultMinAlpha,
			Max:       DefaultMaxAlpha,
			DragRange: DefaultDragRange,
		},
		Cursor: CursorConfig{
			HideAfterMS: DefaultHideAfterMS,
		},
		Input: InputConfig{
			DragThreshold: DefaultDragThreshold,
		},
		Keys: KeysConfig{
			Quit: []string{"Escape", "q"},
		},
	}
}

// HideAfter returns the cursor hide delay as a duration.
func (c *Config) HideAfter() time.Duration {
	return time.Duration(c.Cursor.HideAfterMS) * time.Millisecond
}

// FillColor parses the configured fill as an opaque colour.
func (c *Config) FillColor() (color.RGBA, error) {
	return parseColor(c.Appearance.Fill)
}

func parseColor(s string) (color.RGBA, error) {
	col, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	w := c.Window
	if w.Width < 1 || w.Height < 1 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)}
	}
	if w.MinWidth < 1 {
		return &ValidationError{Path: "window.min_width", Err: fmt.Errorf("must be >= 1, got %d", w.MinWidth)}
	}
	if w.MinHeight < 1 {
		return &ValidationError{Path: "window.min_height", Err: fmt.Errorf("must be >= 1, got %d", w.MinHeight)}
	}
	if w.Width < w.MinWidth {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("must be >= min_width (%d), got %d", w.MinWidth, w.Width)}
	}
	if w.Height < w.MinHeight {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("must be >= min_height (%d), got %d", w.MinHeight, w.Height)}
	}

	if _, err := c.FillColor(); err != nil {
		return &ValidationError{Path: "appearance.fill", Err: err}
	}

	o := c.Opacity
	if o.Min <= 0 || o.Min > 1 {
		return &ValidationError{Path: "opacity.min", Err: fmt.Errorf("must be in (0, 1], got %v", o.Min)}
	}
	if o.Max <= o.Min || o.Max > 1 {
		return &ValidationError{Path: "opacity.max", Err: fmt.Errorf("must be in (opacity.min, 1], got %v", o.Max)}
	}
	if o.DragRange <= 0 {
		return &ValidationError{Path: "opacity.drag_range", Err: fmt.Errorf("must be > 0, got %v", o.DragRange)}
	}
	if a := c.Appearance.Alpha; a < o.Min || a > o.Max {
		return &ValidationError{Path: "appearance.alpha", Err: fmt.Errorf("must be within opacity range [%v, %v], got %v", o.Min, o.Max, a)}
	}

	if c.Cursor.HideAfterMS < 1 {
		return &ValidationError{Path: "cursor.hide_after_ms", Err: fmt.Errorf("must be >= 1, got %d", c.Cursor.HideAfterMS)}
	}
	if c.Input.DragThreshold <= 0 {
		return &ValidationError{Path: "input.drag_threshold", Err: fmt.Errorf("must be > 0, got %v", c.Input.DragThreshold)}
	}

	if len(c.Keys.Quit) == 0 {
		return &ValidationError{Path: "keys.quit", Err: fmt.Errorf("at least one quit key is required")}
	}
	for _, key := range c.Keys.Quit {
		if strings.TrimSpace(key) == "" {
			return &ValidationError{Path: "keys.quit", Err: fmt.Errorf("quit keys must not be empty")}
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("invalid log level %q (expected debug|info|warn|error)", c.LogLevel)}
	}

	return nil
}
