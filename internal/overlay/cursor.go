package overlay

import "time"

// DefaultHideAfter is how long the cursor stays visible after the last
// pointer motion while auto-hide is on.
const DefaultHideAfter = 200 * time.Millisecond

// CursorState is either CursorVisible or CursorAutoHide.
type CursorState interface {
	cursorState()
}

// CursorVisible keeps the cursor shown at all times.
type CursorVisible struct{}

// CursorAutoHide shows the cursor only briefly after pointer motion.
// A zero LastMoved means no motion inside the trailing window.
type CursorAutoHide struct {
	LastMoved time.Time
}

func (CursorVisible) cursorState()  {}
func (CursorAutoHide) cursorState() {}

// Moved reports whether motion was seen inside the trailing window.
func (s CursorAutoHide) Moved() bool {
	return !s.LastMoved.IsZero()
}

// Cursor is the visibility state machine toggled by a middle click.
type Cursor struct {
	state     CursorState
	hideAfter time.Duration
}

// NewCursor returns a cursor in the Visible state. A non-positive
// hideAfter falls back to DefaultHideAfter.
func NewCursor(hideAfter time.Duration) *Cursor {
	if hideAfter <= 0 {
		hideAfter = DefaultHideAfter
	}
	return &Cursor{state: CursorVisible{}, hideAfter: hideAfter}
}

// State returns the current state.
func (c *Cursor) State() CursorState {
	return c.state
}

// AutoHide reports whether auto-hide mode is on.
func (c *Cursor) AutoHide() bool {
	_, ok := c.state.(CursorAutoHide)
	return ok
}

// Toggle switches between Visible and AutoHide. AutoHide is entered
// without recent motion so the cursor disappears immediately.
func (c *Cursor) Toggle() {
	switch c.state.(type) {
	case CursorAutoHide:
		c.state = CursorVisible{}
	default:
		c.state = CursorAutoHide{}
	}
}

// Tick advances auto-hide bookkeeping for one frame and reports whether
// another frame must be scheduled so the hide timeout gets observed.
func (c *Cursor) Tick(moving bool, now time.Time) (repaint bool) {
	s, ok := c.state.(CursorAutoHide)
	if !ok {
		return false
	}
	if moving {
		s.LastMoved = now
	}
	if s.Moved() {
		repaint = true
		if now.Sub(s.LastMoved) > c.hideAfter {
			s.LastMoved = time.Time{}
		}
	}
	c.state = s
	return repaint
}

// Visible reports whether the cursor should currently be shown.
func (c *Cursor) Visible() bool {
	switch s := c.state.(type) {
	case CursorAutoHide:
		return s.Moved()
	default:
		return true
	}
}
