//go:build linux

package platform

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/1broseidon/boxoverlay/internal/overlay"
	"github.com/1broseidon/boxoverlay/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xevent"
)

// FrameInterval paces frames requested through RequestRepaint.
const FrameInterval = 16 * time.Millisecond

// LinuxBackend hosts the overlay on X11.
type LinuxBackend struct {
	conn      *x11.Connection
	win       *x11.OverlayWindow
	cursors   *x11.CursorSet
	indicator *x11.Indicator
	input     *overlay.InputCollector
	logger    *slog.Logger

	width, height int
	rootX, rootY  int
	held          uint8 // bitmask of held X buttons 1..3

	icons     [overlay.ZoneCount]overlay.CursorIcon
	glyph     uint16
	hasGlyph  bool
	fill      [4]uint8
	hasFill   bool
	indOrigin *[2]int

	repaint bool
	closing bool
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend connects to display (or $DISPLAY) and creates the
// overlay window described by spec.
func NewLinuxBackend(display string, spec WindowSpec, dragThreshold float64, logger *slog.Logger) (*LinuxBackend, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	conn, err := x11.NewConnectionDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	opts := x11.WindowOptions{
		Title:       spec.Title,
		Class:       spec.Class,
		Width:       spec.Width,
		Height:      spec.Height,
		MinWidth:    spec.MinWidth,
		MinHeight:   spec.MinHeight,
		AlwaysOnTop: spec.AlwaysOnTop,
		Transparent: spec.Transparent,
	}
	if p := spec.Placement; p != nil {
		opts.X, opts.Y = p.X, p.Y
		opts.Width, opts.Height = p.Width, p.Height
		opts.Positioned = true
	} else if mon, err := conn.MonitorAtPointer(); err == nil {
		opts.X, opts.Y = mon.Center(opts.Width, opts.Height)
		logger.Debug("centering window", "monitor", mon.Name, "x", opts.X, "y", opts.Y)
	}

	win, err := conn.CreateOverlayWindow(opts)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if !win.ARGB() && spec.Transparent {
		logger.Info("no 32-bit visual; using window opacity hint")
	}

	b := &LinuxBackend{
		conn:      conn,
		win:       win,
		cursors:   x11.NewCursorSet(conn),
		indicator: x11.NewIndicator(conn),
		input:     overlay.NewInputCollector(dragThreshold),
		logger:    logger,
		width:     opts.Width,
		height:    opts.Height,
	}
	b.connectEvents()
	return b, nil
}

func (b *LinuxBackend) connectEvents() {
	xu := b.conn.XUtil
	wid := b.win.ID()

	xevent.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		b.rootX, b.rootY = int(ev.RootX), int(ev.RootY)
		btn, ok := buttonFromX(ev.Detail)
		if !ok {
			return
		}
		b.held |= 1 << ev.Detail
		b.input.Press(btn, overlay.Point{X: float64(ev.EventX), Y: float64(ev.EventY)})
	}).Connect(xu, wid)

	xevent.ButtonReleaseFun(func(_ *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		b.rootX, b.rootY = int(ev.RootX), int(ev.RootY)
		btn, ok := buttonFromX(ev.Detail)
		if !ok {
			return
		}
		b.held &^= 1 << ev.Detail
		b.input.Release(btn, overlay.Point{X: float64(ev.EventX), Y: float64(ev.EventY)})
	}).Connect(xu, wid)

	xevent.MotionNotifyFun(func(_ *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		b.rootX, b.rootY = int(ev.RootX), int(ev.RootY)
		b.input.Move(overlay.Point{X: float64(ev.EventX), Y: float64(ev.EventY)})
	}).Connect(xu, wid)

	xevent.LeaveNotifyFun(func(_ *xgbutil.XUtil, ev xevent.LeaveNotifyEvent) {
		// While a button is held the implicit grab keeps motion coming.
		if b.held == 0 {
			b.input.Leave()
		}
	}).Connect(xu, wid)

	xevent.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		b.input.Key(keybind.LookupString(xu, ev.State, ev.Detail))
	}).Connect(xu, wid)

	xevent.ConfigureNotifyFun(func(_ *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		b.width, b.height = int(ev.Width), int(ev.Height)
	}).Connect(xu, wid)

	b.win.OnClose(b.Close)
}

// Run drives frames until the window closes or ctx is cancelled. Every
// batch of X events yields one frame; RequestRepaint adds a frame after
// FrameInterval without new events.
func (b *LinuxBackend) Run(ctx context.Context, app *overlay.App) error {
	pingBefore, pingAfter, pingQuit := xevent.MainPing(b.conn.XUtil)

	b.frame(app, time.Now())

	for !b.closing {
		var tick <-chan time.Time
		if b.repaint {
			tick = time.After(FrameInterval)
		}

		select {
		case <-ctx.Done():
			b.logger.Debug("context cancelled", "err", ctx.Err())
			b.closing = true
		case <-pingBefore:
			// Callbacks run on the event goroutine; wait for them.
			<-pingAfter
			b.frame(app, time.Now())
		case <-tick:
			b.frame(app, time.Now())
		case <-pingQuit:
			return nil
		}
	}

	b.stopEventLoop(pingBefore, pingAfter, pingQuit)
	return nil
}

// stopEventLoop ends the xevent goroutine before the connection closes;
// a closed connection under a blocked read is fatal in xevent.
func (b *LinuxBackend) stopEventLoop(pingBefore, pingAfter, pingQuit chan struct{}) {
	xevent.Quit(b.conn.XUtil)
	if err := b.conn.Wake(b.win.ID()); err != nil {
		b.logger.Warn("event loop wake failed", "err", err)
	}

	timeout := time.After(time.Second)
	for {
		select {
		case <-pingBefore:
			<-pingAfter
		case <-pingQuit:
			return
		case <-timeout:
			b.logger.Warn("event loop did not stop")
			return
		}
	}
}

func (b *LinuxBackend) frame(app *overlay.App, now time.Time) {
	window := overlay.RectFromSize(0, 0, float64(b.width), float64(b.height))
	in := b.input.Frame(now, window)

	b.repaint = false
	f := app.Update(in, b)

	b.paint(f)
	b.applyCursor(in.Pointer, window)
}

func (b *LinuxBackend) paint(f overlay.Frame) {
	fill := [4]uint8{f.Fill.R, f.Fill.G, f.Fill.B, f.Fill.A}
	if !b.hasFill || fill != b.fill {
		if err := b.win.SetFill(fill[0], fill[1], fill[2], fill[3]); err != nil {
			b.logger.Warn("fill update failed", "err", err)
		}
		b.fill, b.hasFill = fill, true
	}

	if f.Indicator == nil {
		b.indicator.Hide()
		b.indOrigin = nil
		return
	}

	if b.indOrigin == nil {
		x, y, _, _, err := b.win.Geometry()
		if err != nil {
			b.logger.Warn("window geometry unavailable", "err", err)
			return
		}
		b.indOrigin = &[2]int{x, y}
	}
	r := indicatorRect(*f.Indicator, b.indOrigin[0], b.indOrigin[1])
	if err := b.indicator.Show(r.X, r.Y, r.Width, r.Height, r.Level); err != nil {
		b.logger.Warn("indicator failed", "err", err)
	}
}

func (b *LinuxBackend) applyCursor(p overlay.PointerState, window overlay.Rect) {
	if !p.HasPos {
		return
	}
	zone, ok := overlay.LayoutZones(window).HitTest(p.Pos)
	if !ok {
		return
	}
	glyph := cursorGlyph(b.icons[zone])
	if b.hasGlyph && glyph == b.glyph {
		return
	}
	cur, err := b.cursors.Get(glyph)
	if err != nil {
		b.logger.Warn("cursor unavailable", "glyph", glyph, "err", err)
		return
	}
	b.win.SetCursor(cur)
	b.glyph, b.hasGlyph = glyph, true
}

// BeginResize implements overlay.Host.
func (b *LinuxBackend) BeginResize(dir overlay.ResizeDirection) {
	b.beginMoveResize(moveResizeDirection(dir))
}

// BeginMove implements overlay.Host.
func (b *LinuxBackend) BeginMove() {
	b.beginMoveResize(x11.MoveResizeMove)
}

func (b *LinuxBackend) beginMoveResize(dir x11.MoveResizeDirection) {
	if err := b.conn.BeginMoveResize(b.win.ID(), dir, b.rootX, b.rootY, uint32(xproto.ButtonIndex1)); err != nil {
		b.logger.Warn("move/resize request failed", "err", err)
		return
	}
	// The window manager owns the pointer now and eats the release.
	b.input.Cancel(overlay.ButtonPrimary)
	b.held &^= 1 << xproto.ButtonIndex1
}

// SetCursorIcon implements overlay.Host.
func (b *LinuxBackend) SetCursorIcon(zone overlay.Zone, icon overlay.CursorIcon) {
	if zone >= 0 && int(zone) < len(b.icons) {
		b.icons[zone] = icon
	}
}

// RequestRepaint implements overlay.Host.
func (b *LinuxBackend) RequestRepaint() {
	b.repaint = true
}

// Close implements overlay.Host.
func (b *LinuxBackend) Close() {
	if !b.closing {
		b.logger.Debug("close requested")
	}
	b.closing = true
}

// Geometry returns the window's root-relative rectangle.
func (b *LinuxBackend) Geometry() (Rect, error) {
	x, y, w, h, err := b.win.Geometry()
	if err != nil {
		return Rect{}, fmt.Errorf("failed to query window geometry: %w", err)
	}
	return Rect{X: x, Y: y, Width: w, Height: h}, nil
}

// Disconnect destroys the window and closes the X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b == nil || b.conn == nil {
		return
	}
	b.indicator.Destroy()
	b.cursors.Free()
	b.win.Destroy()
	b.conn.Close()
	b.conn = nil
}

// buttonFromX maps X button numbers to overlay buttons. Wheel buttons
// (4 and up) are ignored.
func buttonFromX(detail xproto.Button) (overlay.Button, bool) {
	switch detail {
	case xproto.ButtonIndex1:
		return overlay.ButtonPrimary, true
	case xproto.ButtonIndex2:
		return overlay.ButtonMiddle, true
	case xproto.ButtonIndex3:
		return overlay.ButtonSecondary, true
	default:
		return 0, false
	}
}

func moveResizeDirection(dir overlay.ResizeDirection) x11.MoveResizeDirection {
	switch dir {
	case overlay.ResizeNorth:
		return x11.MoveResizeSizeTop
	case overlay.ResizeSouth:
		return x11.MoveResizeSizeBottom
	case overlay.ResizeEast:
		return x11.MoveResizeSizeRight
	case overlay.ResizeWest:
		return x11.MoveResizeSizeLeft
	case overlay.ResizeNorthEast:
		return x11.MoveResizeSizeTopRight
	case overlay.ResizeNorthWest:
		return x11.MoveResizeSizeTopLeft
	case overlay.ResizeSouthEast:
		return x11.MoveResizeSizeBottomRight
	case overlay.ResizeSouthWest:
		return x11.MoveResizeSizeBottomLeft
	default:
		return x11.MoveResizeMove
	}
}

func cursorGlyph(icon overlay.CursorIcon) uint16 {
	switch icon {
	case overlay.CursorNone:
		return x11.BlankGlyph
	case overlay.CursorGrabbing:
		return xcursor.Fleur
	case overlay.CursorResizeNorth:
		return xcursor.TopSide
	case overlay.CursorResizeSouth:
		return xcursor.BottomSide
	case overlay.CursorResizeEast:
		return xcursor.RightSide
	case overlay.CursorResizeWest:
		return xcursor.LeftSide
	case overlay.CursorResizeNorthEast:
		return xcursor.TopRightCorner
	case overlay.CursorResizeNorthWest:
		return xcursor.TopLeftCorner
	case overlay.CursorResizeSouthEast:
		return xcursor.BottomRightCorner
	case overlay.CursorResizeSouthWest:
		return xcursor.BottomLeftCorner
	default:
		return xcursor.LeftPtr
	}
}

// meterRect is an indicator track in root coordinates with its filled height.
type meterRect struct {
	X, Y, Width, Height int
	Level               int
}

// indicatorRect converts a window-relative indicator to root coordinates.
func indicatorRect(ind overlay.Indicator, originX, originY int) meterRect {
	h := int(math.Round(ind.Track.Height()))
	return meterRect{
		X:      originX + int(math.Round(ind.Track.Min.X)),
		Y:      originY + int(math.Round(ind.Track.Min.Y)),
		Width:  int(math.Round(ind.Track.Width())),
		Height: h,
		Level:  int(math.Round(ind.Level * float64(h))),
	}
}
