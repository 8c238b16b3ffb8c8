package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig applies raw over DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	setString(&cfg.Display, raw.Display)
	setString(&cfg.LogLevel, raw.LogLevel)

	if w := raw.Window; w != nil {
		setString(&cfg.Window.Title, w.Title)
		setInt(&cfg.Window.Width, w.Width)
		setInt(&cfg.Window.Height, w.Height)
		setInt(&cfg.Window.MinWidth, w.MinWidth)
		setInt(&cfg.Window.MinHeight, w.MinHeight)
		setBool(&cfg.Window.AlwaysOnTop, w.AlwaysOnTop)
		setBool(&cfg.Window.Transparent, w.Transparent)
		setBool(&cfg.Window.RememberGeometry, w.RememberGeometry)
	}
	if a := raw.Appearance; a != nil {
		setString(&cfg.Appearance.Fill, a.Fill)
		setFloat(&cfg.Appearance.Alpha, a.Alpha)
	}
	if o := raw.Opacity; o != nil {
		setFloat(&cfg.Opacity.Min, o.Min)
		setFloat(&cfg.Opacity.Max, o.Max)
		setFloat(&cfg.Opacity.DragRange, o.DragRange)
	}
	if c := raw.Cursor; c != nil {
		setBool(&cfg.Cursor.StartHidden, c.StartHidden)
		setInt(&cfg.Cursor.HideAfterMS, c.HideAfterMS)
	}
	if in := raw.Input; in != nil {
		setFloat(&cfg.Input.DragThreshold, in.DragThreshold)
	}
	if k := raw.Keys; k != nil && k.Quit != nil {
		cfg.Keys.Quit = append([]string(nil), k.Quit...)
	}

	return cfg
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
