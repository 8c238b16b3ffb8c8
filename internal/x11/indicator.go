package x11

import (
	"github.com/BurntSushi/xgb/xproto"
)

// Indicator colors
const (
	ColorIndicatorTrack = 0x1f2933 // Dark track
	ColorIndicatorLevel = 0x3498db // Blue fill
)

// Indicator is a vertical level meter made of two override-redirect
// windows: the track and the filled part stacked on top of it.
type Indicator struct {
	conn    *Connection
	track   xproto.Window
	level   xproto.Window
	created bool
	mapped  bool
}

// NewIndicator returns an indicator whose windows are created on first Show.
func NewIndicator(conn *Connection) *Indicator {
	return &Indicator{conn: conn}
}

// Show places the track at the given root-relative rectangle and fills its
// lower levelHeight pixels.
func (ind *Indicator) Show(x, y, width, height, levelHeight int) error {
	if !ind.created {
		if err := ind.create(); err != nil {
			return err
		}
	}

	levelHeight = min(max(levelHeight, 0), height)

	ind.updateWindow(ind.track, x, y, width, height, ColorIndicatorTrack)
	if levelHeight > 0 {
		ind.updateWindow(ind.level, x, y+height-levelHeight, width, levelHeight, ColorIndicatorLevel)
		xproto.MapWindow(ind.conn.XUtil.Conn(), ind.level)
	} else {
		xproto.UnmapWindow(ind.conn.XUtil.Conn(), ind.level)
	}
	xproto.MapWindow(ind.conn.XUtil.Conn(), ind.track)

	ind.mapped = true
	return nil
}

// Hide unmaps the indicator windows (but doesn't destroy them)
func (ind *Indicator) Hide() {
	if !ind.mapped {
		return
	}
	xproto.UnmapWindow(ind.conn.XUtil.Conn(), ind.level)
	xproto.UnmapWindow(ind.conn.XUtil.Conn(), ind.track)
	ind.mapped = false
}

// Destroy destroys the indicator windows
func (ind *Indicator) Destroy() {
	if ind.track != 0 {
		xproto.DestroyWindow(ind.conn.XUtil.Conn(), ind.track)
	}
	if ind.level != 0 {
		xproto.DestroyWindow(ind.conn.XUtil.Conn(), ind.level)
	}
	ind.track = 0
	ind.level = 0
	ind.created = false
	ind.mapped = false
}

func (ind *Indicator) create() error {
	var err error

	ind.track, err = ind.createOverrideRedirectWindow()
	if err != nil {
		return err
	}

	ind.level, err = ind.createOverrideRedirectWindow()
	if err != nil {
		xproto.DestroyWindow(ind.conn.XUtil.Conn(), ind.track)
		ind.track = 0
		return err
	}

	ind.created = true
	return nil
}

// createOverrideRedirectWindow creates a window that bypasses the window
// manager. It selects no events; while it is shown the overlay holds the
// implicit pointer grab of the secondary button.
func (ind *Indicator) createOverrideRedirectWindow() (xproto.Window, error) {
	conn := ind.conn.XUtil.Conn()
	screen := ind.conn.XUtil.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return 0, err
	}

	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		wid,
		ind.conn.Root,
		0, 0, // x, y (will be updated later)
		1, 1, // width, height (will be updated later)
		0, // border_width
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwOverrideRedirect|xproto.CwEventMask,
		// Value list order follows the bit positions of the mask.
		[]uint32{0, 1, xproto.EventMaskNoEvent},
	).Check()
	if err != nil {
		return 0, err
	}

	return wid, nil
}

// updateWindow moves, resizes, and recolors a window
func (ind *Indicator) updateWindow(wid xproto.Window, x, y, width, height int, color uint32) {
	conn := ind.conn.XUtil.Conn()

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	xproto.ConfigureWindow(
		conn,
		wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight|xproto.ConfigWindowStackMode,
		[]uint32{
			uint32(x),
			uint32(y),
			uint32(width),
			uint32(height),
			xproto.StackModeAbove, // Keep on top
		},
	)

	xproto.ChangeWindowAttributes(conn, wid, xproto.CwBackPixel, []uint32{color})
	xproto.ClearArea(conn, false, wid, 0, 0, 0, 0)
}
