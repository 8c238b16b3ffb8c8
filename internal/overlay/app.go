// Package overlay implements the interaction state machine of the box
// overlay: zone hit-testing for window move/resize, the secondary-button
// opacity drag, and the middle-click cursor auto-hide.
//
// The package is host-agnostic. A windowing backend feeds one Input per
// frame into App.Update, carries out the commands issued on its Host, and
// paints the returned Frame.
package overlay

import (
	"image/color"
	"log/slog"
	"time"
)

// Host receives the commands produced by an update pass.
type Host interface {
	// BeginResize hands an interactive resize in dir to the window manager.
	BeginResize(dir ResizeDirection)
	// BeginMove hands an interactive move to the window manager.
	BeginMove()
	// SetCursorIcon sets the hover cursor for zone.
	SetCursorIcon(zone Zone, icon CursorIcon)
	// RequestRepaint asks for another frame soon, even without new input.
	RequestRepaint()
	// Close closes the overlay window.
	Close()
}

// Frame is what the host paints after an update pass.
type Frame struct {
	// Fill is the alpha-premultiplied window fill.
	Fill  color.RGBA
	Alpha float64
	// Indicator is set while an opacity drag is active.
	Indicator *Indicator
}

// Options configures a new App.
type Options struct {
	// BaseColor is the opaque fill colour; its alpha channel is ignored.
	BaseColor color.RGBA
	// Alpha is the starting opacity, clamped to Opacity.
	Alpha   float64
	Opacity OpacityScale
	// HideAfter is the auto-hide trailing window.
	HideAfter time.Duration
	// StartHidden starts the cursor in auto-hide mode.
	StartHidden bool
	// QuitKeys are keysym names that close the window.
	QuitKeys []string
	Logger   *slog.Logger
}

// DefaultOptions returns the stock overlay: black, fully opaque,
// 0.5..1.0 opacity drag and a 200ms cursor hide delay.
func DefaultOptions() Options {
	return Options{
		BaseColor: color.RGBA{A: 0xff},
		Alpha:     DefaultMaxAlpha,
		Opacity:   DefaultOpacityScale(),
		HideAfter: DefaultHideAfter,
		QuitKeys:  []string{"Escape", "q"},
	}
}

// App is the single owner of all interaction state.
type App struct {
	base     color.RGBA
	fill     color.RGBA
	alpha    float64
	scale    OpacityScale
	drag     *OpacityDrag
	cursor   *Cursor
	quitKeys []string
	logger   *slog.Logger
}

// New creates an App from opts.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	scale := opts.Opacity
	if scale.Length <= 0 || scale.MaxAlpha <= scale.MinAlpha {
		scale = DefaultOpacityScale()
	}

	a := &App{
		base:     opts.BaseColor,
		alpha:    scale.Clamp(opts.Alpha),
		scale:    scale,
		cursor:   NewCursor(opts.HideAfter),
		quitKeys: append([]string(nil), opts.QuitKeys...),
		logger:   logger,
	}
	if opts.StartHidden {
		a.cursor.Toggle()
	}
	a.fill = fillFor(a.base, a.alpha)
	return a
}

// Alpha returns the current window opacity.
func (a *App) Alpha() float64 { return a.alpha }

// Fill returns the current premultiplied fill colour.
func (a *App) Fill() color.RGBA { return a.fill }

// Cursor returns the cursor visibility state machine.
func (a *App) Cursor() *Cursor { return a.cursor }

// OpacityDrag returns the active opacity drag, if any.
func (a *App) OpacityDrag() (OpacityDrag, bool) {
	if a.drag == nil {
		return OpacityDrag{}, false
	}
	return *a.drag, true
}

// Update runs one frame: cursor visibility, then the opacity drag, then
// zone move/resize and hover cursors, then the quit keys.
func (a *App) Update(in Input, host Host) Frame {
	p := in.Pointer

	repaint := a.cursor.Tick(p.Moving, in.Now)

	if p.ButtonClicked(ButtonMiddle) {
		a.cursor.Toggle()
		a.logger.Debug("cursor mode toggled", "auto_hide", a.cursor.AutoHide())
	}

	if p.ButtonReleased(ButtonSecondary) && a.drag != nil {
		a.logger.Debug("opacity drag ended", "alpha", a.alpha)
		a.drag = nil
	}

	if p.ButtonDown(ButtonSecondary) {
		if a.drag == nil && p.HasPos {
			d := BeginOpacityDrag(p.Pos, a.alpha, a.scale)
			a.drag = &d
			a.logger.Debug("opacity drag started", "x", p.Pos.X, "y", p.Pos.Y, "alpha", a.alpha, "offset", d.Offset)
		}
		if a.drag != nil && p.HasPos {
			a.alpha = a.drag.Alpha(p.Pos, a.scale)
		}
		a.fill = fillFor(a.base, a.alpha)
	}

	if repaint {
		host.RequestRepaint()
	}

	frame := Frame{Fill: a.fill, Alpha: a.alpha}

	if a.drag != nil {
		ind := a.drag.Indicator(a.alpha, a.scale)
		frame.Indicator = &ind
	} else {
		a.updateZones(in, host)
	}

	a.checkQuit(in, host)
	return frame
}

func (a *App) updateZones(in Input, host Host) {
	layout := LayoutZones(in.Window)
	p := in.Pointer

	// A drag first seen on the release event has nothing left for the
	// window manager to follow.
	if p.DragStartedBy(ButtonPrimary) && p.ButtonDown(ButtonPrimary) {
		if origin, ok := p.PressOrigin(ButtonPrimary); ok {
			if zone, ok := layout.HitTest(origin); ok {
				if dir, ok := zone.ResizeDirection(); ok {
					a.logger.Debug("begin resize", "zone", zone.String(), "direction", dir.String())
					host.BeginResize(dir)
				} else {
					a.logger.Debug("begin move")
					host.BeginMove()
				}
			}
		}
	}

	show := a.cursor.Visible()
	for _, region := range layout {
		icon := CursorNone
		if show {
			icon = region.Zone.CursorIcon()
		}
		host.SetCursorIcon(region.Zone, icon)
	}
}

func (a *App) checkQuit(in Input, host Host) {
	for _, key := range a.quitKeys {
		if in.KeyPressed(key) {
			a.logger.Debug("quit key pressed", "key", key)
			host.Close()
			return
		}
	}
}

// fillFor scales an opaque base colour by alpha, premultiplied.
func fillFor(base color.RGBA, alpha float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(float64(v)*alpha + 0.5)
	}
	return color.RGBA{
		R: scale(base.R),
		G: scale(base.G),
		B: scale(base.B),
		A: scale(0xff),
	}
}
