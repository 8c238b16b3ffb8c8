package overlay

import (
	"math"
	"testing"
	"time"
)

type recordingHost struct {
	resizes  []ResizeDirection
	moves    int
	icons    map[Zone]CursorIcon
	repaints int
	closed   int
}

func newRecordingHost() *recordingHost {
	return &recordingHost{icons: make(map[Zone]CursorIcon)}
}

func (h *recordingHost) BeginResize(dir ResizeDirection)          { h.resizes = append(h.resizes, dir) }
func (h *recordingHost) BeginMove()                               { h.moves++ }
func (h *recordingHost) SetCursorIcon(zone Zone, icon CursorIcon) { h.icons[zone] = icon }
func (h *recordingHost) RequestRepaint()                          { h.repaints++ }
func (h *recordingHost) Close()                                   { h.closed++ }

type harness struct {
	t      *testing.T
	app    *App
	host   *recordingHost
	input  *InputCollector
	now    time.Time
	window Rect
}

func newHarness(t *testing.T, opts Options) *harness {
	return &harness{
		t:      t,
		app:    New(opts),
		host:   newRecordingHost(),
		input:  NewInputCollector(DefaultDragThreshold),
		now:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		window: RectFromSize(0, 0, 400, 100),
	}
}

func (h *harness) frame() Frame {
	h.now = h.now.Add(16 * time.Millisecond)
	return h.app.Update(h.input.Frame(h.now, h.window), h.host)
}

func TestCenterDragBeginsMove(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	center := LayoutZones(h.window).Rect(ZoneCenter)
	start := Point{X: (center.Min.X + center.Max.X) / 2, Y: (center.Min.Y + center.Max.Y) / 2}

	h.input.Press(ButtonPrimary, start)
	h.frame()
	h.input.Move(Point{X: start.X + 20, Y: start.Y})
	h.frame()

	if h.host.moves != 1 {
		t.Fatalf("expected one begin-move, got %d", h.host.moves)
	}
	if len(h.host.resizes) != 0 {
		t.Fatalf("expected no resize, got %v", h.host.resizes)
	}
}

func TestNorthEastDragBeginsResize(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	h.input.Press(ButtonPrimary, Point{X: 390, Y: 5})
	h.input.Move(Point{X: 399, Y: 0})
	h.input.Move(Point{X: 420, Y: -10})
	h.frame()

	if len(h.host.resizes) != 1 || h.host.resizes[0] != ResizeNorthEast {
		t.Fatalf("expected begin-resize(northeast), got %v", h.host.resizes)
	}
	if h.host.moves != 0 {
		t.Fatalf("expected no move, got %d", h.host.moves)
	}
}

func TestEveryEdgeZoneResizesInItsDirection(t *testing.T) {
	for _, z := range Zones {
		dir, ok := z.ResizeDirection()
		if !ok {
			continue
		}
		h := newHarness(t, DefaultOptions())
		r := LayoutZones(h.window).Rect(z)
		start := Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}

		h.input.Press(ButtonPrimary, start)
		h.input.Move(Point{X: start.X + 10, Y: start.Y + 10})
		h.frame()

		if len(h.host.resizes) != 1 || h.host.resizes[0] != dir {
			t.Fatalf("%s: resizes = %v, want [%s]", z, h.host.resizes, dir)
		}
	}
}

func TestPrimaryClickDoesNotMove(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.input.Press(ButtonPrimary, Point{X: 200, Y: 50})
	h.input.Release(ButtonPrimary, Point{X: 201, Y: 50})
	h.frame()

	if h.host.moves != 0 || len(h.host.resizes) != 0 {
		t.Fatalf("click triggered window commands: moves=%d resizes=%v", h.host.moves, h.host.resizes)
	}
}

func TestPrimaryReleasedPastThresholdDoesNotMove(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.input.Press(ButtonPrimary, Point{X: 200, Y: 50})
	h.frame()
	h.input.Release(ButtonPrimary, Point{X: 230, Y: 50})
	h.frame()

	if h.host.moves != 0 || len(h.host.resizes) != 0 {
		t.Fatalf("release past threshold triggered window commands: moves=%d resizes=%v", h.host.moves, h.host.resizes)
	}
}

func TestOpacityDragFromOpaque(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	origin := Point{X: 200, Y: 20}

	h.input.Press(ButtonSecondary, origin)
	f := h.frame()
	if f.Alpha != 1.0 {
		t.Fatalf("alpha changed at press: %v", f.Alpha)
	}
	d, ok := h.app.OpacityDrag()
	if !ok {
		t.Fatalf("expected active opacity drag")
	}
	if d.Offset != -100 {
		t.Fatalf("offset = %v, want -100", d.Offset)
	}
	if f.Indicator == nil {
		t.Fatalf("expected indicator during drag")
	}

	h.input.Move(Point{X: 200, Y: 70})
	f = h.frame()
	if math.Abs(f.Alpha-0.75) > 1e-9 {
		t.Fatalf("alpha after 50 down = %v, want 0.75", f.Alpha)
	}
	if f.Fill.A != 191 {
		t.Fatalf("fill alpha = %d, want 191", f.Fill.A)
	}

	h.input.Move(Point{X: 200, Y: 400})
	f = h.frame()
	if f.Alpha != 0.5 {
		t.Fatalf("alpha after overshoot = %v, want 0.5", f.Alpha)
	}

	h.input.Release(ButtonSecondary, Point{X: 200, Y: 400})
	f = h.frame()
	if _, ok := h.app.OpacityDrag(); ok {
		t.Fatalf("drag still active after release")
	}
	if f.Indicator != nil {
		t.Fatalf("indicator shown after release")
	}
	if f.Alpha != 0.5 {
		t.Fatalf("alpha not kept after release: %v", f.Alpha)
	}

	h.host.moves = 0
	h.input.Press(ButtonPrimary, Point{X: 200, Y: 50})
	h.input.Move(Point{X: 230, Y: 50})
	h.frame()
	if h.host.moves != 1 {
		t.Fatalf("zone interaction not restored after opacity drag")
	}
}

func TestOpacityDragSuppressesZones(t *testing.T) {
	h := newHarness(t, DefaultOptions())

	h.input.Press(ButtonSecondary, Point{X: 200, Y: 50})
	h.frame()
	h.host.icons = make(map[Zone]CursorIcon)

	h.input.Press(ButtonPrimary, Point{X: 200, Y: 50})
	h.input.Move(Point{X: 240, Y: 50})
	h.frame()

	if h.host.moves != 0 || len(h.host.resizes) != 0 {
		t.Fatalf("zones reacted during opacity drag")
	}
	if len(h.host.icons) != 0 {
		t.Fatalf("zone cursors set during opacity drag: %v", h.host.icons)
	}
}

func TestOpacityDragAlphaBoundedOverManyFrames(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.input.Press(ButtonSecondary, Point{X: 100, Y: 50})
	h.frame()

	ys := []float64{-500, 0, 30, 75, 120, 900, -20, 55}
	for _, y := range ys {
		h.input.Move(Point{X: 100, Y: y})
		f := h.frame()
		if f.Alpha < 0.5 || f.Alpha > 1.0 {
			t.Fatalf("alpha %v escaped range at y=%v", f.Alpha, y)
		}
	}
}

func TestMiddleClickTogglesCursorIcons(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.frame()
	if got := h.host.icons[ZoneNorth]; got != CursorResizeNorth {
		t.Fatalf("north icon = %s, want resize-north", got)
	}
	if got := h.host.icons[ZoneCenter]; got != CursorGrabbing {
		t.Fatalf("center icon = %s, want grabbing", got)
	}

	h.input.Press(ButtonMiddle, Point{X: 200, Y: 50})
	h.input.Release(ButtonMiddle, Point{X: 200, Y: 50})
	h.frame()
	if !h.app.Cursor().AutoHide() {
		t.Fatalf("expected auto-hide after middle click")
	}

	for i := 0; i < 20; i++ {
		h.frame()
	}
	for _, z := range Zones {
		if got := h.host.icons[z]; got != CursorNone {
			t.Fatalf("%s icon = %s, want none while hidden", z, got)
		}
	}

	h.input.Move(Point{X: 210, Y: 50})
	h.frame()
	if got := h.host.icons[ZoneEast]; got != CursorResizeEast {
		t.Fatalf("east icon after motion = %s", got)
	}

	h.input.Press(ButtonMiddle, Point{X: 210, Y: 50})
	h.input.Release(ButtonMiddle, Point{X: 210, Y: 50})
	h.frame()
	if h.app.Cursor().AutoHide() {
		t.Fatalf("expected Visible after second middle click")
	}
}

func TestAutoHideRequestsRepaintUntilHidden(t *testing.T) {
	opts := DefaultOptions()
	opts.StartHidden = true
	h := newHarness(t, opts)

	h.frame()
	if h.host.repaints != 0 {
		t.Fatalf("repaint requested without motion")
	}

	h.input.Move(Point{X: 10, Y: 10})
	h.frame()
	if h.host.repaints != 1 {
		t.Fatalf("expected repaint after motion, got %d", h.host.repaints)
	}

	for i := 0; i < 20; i++ {
		h.frame()
	}
	if h.app.Cursor().Visible() {
		t.Fatalf("cursor still visible after timeout")
	}
	before := h.host.repaints
	h.frame()
	if h.host.repaints != before {
		t.Fatalf("repaints continued after the cursor hid")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"Escape", "q", "Q"} {
		h := newHarness(t, DefaultOptions())
		h.input.Key(key)
		h.frame()
		if h.host.closed != 1 {
			t.Fatalf("%s: closed = %d, want 1", key, h.host.closed)
		}
	}

	h := newHarness(t, DefaultOptions())
	h.input.Key("w")
	h.frame()
	if h.host.closed != 0 {
		t.Fatalf("unexpected close on w")
	}
}

func TestQuitDuringOpacityDrag(t *testing.T) {
	h := newHarness(t, DefaultOptions())
	h.input.Press(ButtonSecondary, Point{X: 200, Y: 50})
	h.input.Key("Escape")
	h.frame()
	if h.host.closed != 1 {
		t.Fatalf("escape ignored during opacity drag")
	}
}

func TestNewClampsAlphaAndDerivesFill(t *testing.T) {
	opts := DefaultOptions()
	opts.Alpha = 0.1
	app := New(opts)
	if app.Alpha() != 0.5 {
		t.Fatalf("alpha = %v, want clamped 0.5", app.Alpha())
	}
	if fill := app.Fill(); fill.A != 128 || fill.R != 0 {
		t.Fatalf("fill = %+v", fill)
	}
}
