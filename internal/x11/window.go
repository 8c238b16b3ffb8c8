package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// EventMask is the set of events delivered for the overlay window.
const EventMask = xproto.EventMaskExposure |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskKeyPress |
	xproto.EventMaskStructureNotify

// WindowOptions describes the overlay window to create.
type WindowOptions struct {
	Title string
	Class string

	X, Y          int
	Width, Height int
	MinWidth      int
	MinHeight     int
	// Positioned marks X/Y as user-specified (restored from a previous run).
	Positioned bool

	AlwaysOnTop bool
	// Transparent selects a 32-bit ARGB visual when the screen offers one.
	Transparent bool
}

// OverlayWindow is an undecorated top-level window with a solid fill.
type OverlayWindow struct {
	conn   *Connection
	win    *xwindow.Window
	depth  byte
	visual xproto.Visualid
	cmap   xproto.Colormap
	argb   bool
}

// CreateOverlayWindow creates and maps the overlay window.
func (c *Connection) CreateOverlayWindow(opts WindowOptions) (*OverlayWindow, error) {
	conn := c.XUtil.Conn()
	screen := c.XUtil.Screen()

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	w := &OverlayWindow{
		conn:   c,
		depth:  screen.RootDepth,
		visual: screen.RootVisual,
	}

	var mask uint32
	var values []uint32
	if visual, ok := findARGBVisual(screen); ok && opts.Transparent {
		cmap, err := xproto.NewColormapId(conn)
		if err != nil {
			return nil, fmt.Errorf("failed to allocate colormap id: %w", err)
		}
		if err := xproto.CreateColormapChecked(conn, xproto.ColormapAllocNone, cmap, c.Root, visual).Check(); err != nil {
			return nil, fmt.Errorf("failed to create colormap: %w", err)
		}
		w.depth, w.visual, w.cmap, w.argb = 32, visual, cmap, true

		// A foreign-depth window needs its own colormap and border pixel.
		// Value list order follows the bit positions of the mask.
		mask = xproto.CwBackPixel | xproto.CwBorderPixel | xproto.CwEventMask | xproto.CwColormap
		values = []uint32{0, 0, EventMask, uint32(cmap)}
	} else {
		mask = xproto.CwBackPixel | xproto.CwEventMask
		values = []uint32{screen.BlackPixel, EventMask}
	}

	err = xproto.CreateWindowChecked(
		conn,
		w.depth,
		wid,
		c.Root,
		int16(opts.X), int16(opts.Y),
		uint16(max(opts.Width, 1)), uint16(max(opts.Height, 1)),
		0,
		xproto.WindowClassInputOutput,
		w.visual,
		mask,
		values,
	).Check()
	if err != nil {
		if w.argb {
			xproto.FreeColormap(conn, w.cmap)
		}
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	w.win = xwindow.New(c.XUtil, wid)

	if err := w.setHints(opts); err != nil {
		w.Destroy()
		return nil, err
	}

	w.win.Map()
	if opts.Positioned {
		// Most window managers ignore the CreateWindow position.
		w.win.Move(opts.X, opts.Y)
	}
	return w, nil
}

func (w *OverlayWindow) setHints(opts WindowOptions) error {
	xu := w.conn.XUtil
	id := w.win.Id

	if err := ewmh.WmNameSet(xu, id, opts.Title); err != nil {
		return fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
	}
	if err := icccm.WmNameSet(xu, id, opts.Title); err != nil {
		return fmt.Errorf("failed to set WM_NAME: %w", err)
	}
	if opts.Class != "" {
		if err := icccm.WmClassSet(xu, id, &icccm.WmClass{Instance: opts.Class, Class: opts.Class}); err != nil {
			return fmt.Errorf("failed to set WM_CLASS: %w", err)
		}
	}

	hints := &icccm.NormalHints{
		Flags:     icccm.SizeHintPSize | icccm.SizeHintPMinSize,
		X:         opts.X,
		Y:         opts.Y,
		Width:     uint(opts.Width),
		Height:    uint(opts.Height),
		MinWidth:  uint(max(opts.MinWidth, 1)),
		MinHeight: uint(max(opts.MinHeight, 1)),
	}
	if opts.Positioned {
		hints.Flags |= icccm.SizeHintUSPosition
	} else {
		hints.Flags |= icccm.SizeHintPPosition
	}
	if err := icccm.WmNormalHintsSet(xu, id, hints); err != nil {
		return fmt.Errorf("failed to set WM_NORMAL_HINTS: %w", err)
	}

	if err := motif.WmHintsSet(xu, id, &motif.Hints{
		Flags:      motif.HintDecorations,
		Decoration: motif.DecorationNone,
	}); err != nil {
		return fmt.Errorf("failed to set _MOTIF_WM_HINTS: %w", err)
	}

	if opts.AlwaysOnTop {
		// Set before mapping; the window manager reads it on map.
		if err := ewmh.WmStateSet(xu, id, []string{"_NET_WM_STATE_ABOVE"}); err != nil {
			return fmt.Errorf("failed to set _NET_WM_STATE: %w", err)
		}
	}

	// Not fatal: only used by pagers and kill dialogs.
	_ = ewmh.WmPidSet(xu, id, uint(os.Getpid()))
	return nil
}

// findARGBVisual returns a 32-bit TrueColor visual, if the screen has one.
func findARGBVisual(screen *xproto.ScreenInfo) (xproto.Visualid, bool) {
	for _, depth := range screen.AllowedDepths {
		if depth.Depth != 32 {
			continue
		}
		for _, v := range depth.Visuals {
			if v.Class == xproto.VisualClassTrueColor {
				return v.VisualId, true
			}
		}
	}
	return 0, false
}

// ID returns the X window id.
func (w *OverlayWindow) ID() xproto.Window { return w.win.Id }

// ARGB reports whether the window uses a 32-bit visual.
func (w *OverlayWindow) ARGB() bool { return w.argb }

// OnClose runs cb when the window manager asks the window to close.
func (w *OverlayWindow) OnClose(cb func()) {
	w.win.WMGracefulClose(func(*xwindow.Window) { cb() })
}

// SetFill repaints the window with a premultiplied colour. Without an ARGB
// visual the colour is painted opaque and alpha goes to the compositor
// through _NET_WM_WINDOW_OPACITY.
func (w *OverlayWindow) SetFill(r, g, b, a uint8) error {
	defer w.win.ClearAll()
	if w.argb {
		w.win.Change(xproto.CwBackPixel, PackARGB(r, g, b, a))
		return nil
	}
	w.win.Change(xproto.CwBackPixel, PackRGB(unpremultiply(r, a), unpremultiply(g, a), unpremultiply(b, a)))
	if err := ewmh.WmWindowOpacitySet(w.conn.XUtil, w.win.Id, float64(a)/0xff); err != nil {
		return fmt.Errorf("failed to set window opacity: %w", err)
	}
	return nil
}

// Geometry returns the window's root-relative position and size.
func (w *OverlayWindow) Geometry() (x, y, width, height int, err error) {
	geom, err := w.win.Geometry()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	translate, err := xproto.TranslateCoordinates(w.conn.XUtil.Conn(), w.win.Id, w.conn.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return int(translate.DstX), int(translate.DstY), geom.Width(), geom.Height(), nil
}

// SetCursor sets the pointer shape shown over the window.
func (w *OverlayWindow) SetCursor(cursor xproto.Cursor) {
	w.win.Change(xproto.CwCursor, uint32(cursor))
}

// Destroy destroys the window and frees its colormap.
func (w *OverlayWindow) Destroy() {
	if w.win != nil {
		w.win.Destroy()
	}
	if w.argb {
		xproto.FreeColormap(w.conn.XUtil.Conn(), w.cmap)
		w.argb = false
	}
}

// PackARGB packs a premultiplied colour into a 32-bit ARGB pixel.
func PackARGB(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// PackRGB packs an opaque colour into a 24-bit TrueColor pixel.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func unpremultiply(v, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	if v >= a {
		return 0xff
	}
	return uint8((uint32(v)*0xff + uint32(a)/2) / uint32(a))
}
