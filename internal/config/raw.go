package config

// Raw* mirror the effective config with pointer fields so that keys left
// out of a file keep their defaults.

type RawWindow struct {
	Title            *string `yaml:"title"`
	Width            *int    `yaml:"width"`
	Height           *int    `yaml:"height"`
	MinWidth         *int    `yaml:"min_width"`
	MinHeight        *int    `yaml:"min_height"`
	AlwaysOnTop      *bool   `yaml:"always_on_top"`
	Transparent      *bool   `yaml:"transparent"`
	RememberGeometry *bool   `yaml:"remember_geometry"`
}

type RawAppearance struct {
	Fill  *string  `yaml:"fill"`
	Alpha *float64 `yaml:"alpha"`
}

type RawOpacity struct {
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	DragRange *float64 `yaml:"drag_range"`
}

type RawCursor struct {
	StartHidden *bool `yaml:"start_hidden"`
	HideAfterMS *int  `yaml:"hide_after_ms"`
}

type RawInput struct {
	DragThreshold *float64 `yaml:"drag_threshold"`
}

type RawKeys struct {
	Quit []string `yaml:"quit"`
}

type RawConfig struct {
	Display    *string        `yaml:"display"`
	LogLevel   *string        `yaml:"log_level"`
	Window     *RawWindow     `yaml:"window"`
	Appearance *RawAppearance `yaml:"appearance"`
	Opacity    *RawOpacity    `yaml:"opacity"`
	Cursor     *RawCursor     `yaml:"cursor"`
	Input      *RawInput      `yaml:"input"`
	Keys       *RawKeys       `yaml:"keys"`
}
