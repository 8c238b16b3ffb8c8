package overlay

import (
	"strings"
	"time"
)

// DefaultDragThreshold is how far a held button must travel from its
// press origin before the gesture counts as a drag rather than a click.
const DefaultDragThreshold = 6.0

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle

	buttonCount
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

func (b Button) valid() bool {
	return b >= 0 && b < buttonCount
}

// buttonFrame is the per-frame view of one button.
type buttonFrame struct {
	down        bool
	pressed     bool
	released    bool
	clicked     bool
	dragStarted bool
	origin      Point
	hasOrigin   bool
}

// PointerState is the pointer as seen by one frame.
type PointerState struct {
	// Pos is the latest pointer position; valid only when HasPos is set.
	Pos    Point
	HasPos bool
	// Moving is set when the pointer moved since the previous frame.
	Moving bool
	buttons [buttonCount]buttonFrame
}

// ButtonDown reports whether b is held at the end of the frame.
func (p PointerState) ButtonDown(b Button) bool {
	return b.valid() && p.buttons[b].down
}

// ButtonPressed reports whether b went down during the frame.
func (p PointerState) ButtonPressed(b Button) bool {
	return b.valid() && p.buttons[b].pressed
}

// ButtonReleased reports whether b went up during the frame.
func (p PointerState) ButtonReleased(b Button) bool {
	return b.valid() && p.buttons[b].released
}

// ButtonClicked reports whether b was released during the frame without
// having turned into a drag.
func (p PointerState) ButtonClicked(b Button) bool {
	return b.valid() && p.buttons[b].clicked
}

// PressOrigin returns where b went down, for a button that is held,
// was pressed, or started a drag during the frame.
func (p PointerState) PressOrigin(b Button) (Point, bool) {
	if !b.valid() || !p.buttons[b].hasOrigin {
		return Point{}, false
	}
	return p.buttons[b].origin, true
}

// DragStartedBy reports whether a drag with b began during the frame.
func (p PointerState) DragStartedBy(b Button) bool {
	return b.valid() && p.buttons[b].dragStarted
}

// Input is everything the host delivers to one Update pass.
type Input struct {
	Now     time.Time
	Window  Rect
	Pointer PointerState
	Keys    []string
}

// KeyPressed reports whether a key named name (case-insensitive) was
// pressed during the frame.
func (in Input) KeyPressed(name string) bool {
	for _, k := range in.Keys {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// heldButton tracks a button between its press and release.
type heldButton struct {
	origin   Point
	dragging bool
}

// InputCollector accumulates raw host events between frames and turns
// them into Input snapshots.
type InputCollector struct {
	threshold float64

	pos    Point
	hasPos bool
	moving bool

	held    [buttonCount]*heldButton
	pending [buttonCount]buttonFrame
	keys    []string
}

// NewInputCollector returns a collector using threshold as the drag
// distance. A non-positive threshold falls back to DefaultDragThreshold.
func NewInputCollector(threshold float64) *InputCollector {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &InputCollector{threshold: threshold}
}

// Move records pointer motion to p.
func (c *InputCollector) Move(p Point) {
	if c.hasPos && c.pos == p {
		return
	}
	c.pos = p
	c.hasPos = true
	c.moving = true

	for b, h := range c.held {
		if h == nil || h.dragging {
			continue
		}
		d := p.Sub(h.origin)
		if d.X*d.X+d.Y*d.Y > c.threshold*c.threshold {
			h.dragging = true
			c.pending[b].dragStarted = true
			c.pending[b].origin = h.origin
			c.pending[b].hasOrigin = true
		}
	}
}

// Press records button b going down at p.
func (c *InputCollector) Press(b Button, p Point) {
	if !b.valid() {
		return
	}
	c.Move(p)
	c.held[b] = &heldButton{origin: p}
	c.pending[b].pressed = true
	c.pending[b].origin = p
	c.pending[b].hasOrigin = true
}

// Release records button b going up at p.
func (c *InputCollector) Release(b Button, p Point) {
	if !b.valid() {
		return
	}
	c.Move(p)
	h := c.held[b]
	c.held[b] = nil
	c.pending[b].released = true
	if h != nil && !h.dragging {
		c.pending[b].clicked = true
	}
}

// Cancel forgets a held button without reporting a release. Hosts call
// it after handing the pointer to the window manager, which swallows the
// matching release event.
func (c *InputCollector) Cancel(b Button) {
	if !b.valid() {
		return
	}
	c.held[b] = nil
}

// Leave records the pointer leaving the window.
func (c *InputCollector) Leave() {
	c.hasPos = false
}

// Key records a key press by keysym name.
func (c *InputCollector) Key(name string) {
	if name == "" {
		return
	}
	c.keys = append(c.keys, name)
}

// Frame returns the input for one frame and resets per-frame flags.
func (c *InputCollector) Frame(now time.Time, window Rect) Input {
	in := Input{
		Now:    now,
		Window: window,
		Keys:   c.keys,
		Pointer: PointerState{
			Pos:     c.pos,
			HasPos:  c.hasPos,
			Moving:  c.moving,
			buttons: c.pending,
		},
	}

	for b, h := range c.held {
		if h == nil {
			continue
		}
		in.Pointer.buttons[b].down = true
		in.Pointer.buttons[b].origin = h.origin
		in.Pointer.buttons[b].hasOrigin = true
	}

	c.moving = false
	c.keys = nil
	c.pending = [buttonCount]buttonFrame{}
	return in
}
