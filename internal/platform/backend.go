package platform

import (
	"context"

	"github.com/1broseidon/boxoverlay/internal/overlay"
)

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// WindowSpec describes the overlay window a backend creates.
type WindowSpec struct {
	Title string
	Class string

	Width     int
	Height    int
	MinWidth  int
	MinHeight int

	AlwaysOnTop bool
	Transparent bool

	// Placement restores a remembered geometry. When nil the window is
	// centred on the display under the pointer.
	Placement *Rect
}

// Backend hosts one overlay window on a window system.
type Backend interface {
	overlay.Host

	// Run pumps window-system events and frames into app until the window
	// is closed or ctx is cancelled.
	Run(ctx context.Context, app *overlay.App) error
	// Geometry returns the window's screen rectangle.
	Geometry() (Rect, error)
	// Disconnect releases the window and the window-system connection.
	Disconnect()
}
