package overlay

// Fractions used to carve the window into zones. The first cut takes the
// leading 20% of an axis, the second cut splits the remainder 75/25.
const (
	edgeFraction   = 0.2
	middleFraction = 0.75
)

// Zone names one of the nine interaction regions of the window.
type Zone int

const (
	ZoneNorthWest Zone = iota
	ZoneNorth
	ZoneNorthEast
	ZoneWest
	ZoneCenter
	ZoneEast
	ZoneSouthWest
	ZoneSouth
	ZoneSouthEast
)

// ZoneCount is the number of zones in a Layout.
const ZoneCount = 9

// Zones lists every zone in row-major order.
var Zones = [ZoneCount]Zone{
	ZoneNorthWest, ZoneNorth, ZoneNorthEast,
	ZoneWest, ZoneCenter, ZoneEast,
	ZoneSouthWest, ZoneSouth, ZoneSouthEast,
}

// String returns the stable region key of the zone.
func (z Zone) String() string {
	switch z {
	case ZoneNorthWest:
		return "northwest"
	case ZoneNorth:
		return "north"
	case ZoneNorthEast:
		return "northeast"
	case ZoneWest:
		return "west"
	case ZoneCenter:
		return "center"
	case ZoneEast:
		return "east"
	case ZoneSouthWest:
		return "southwest"
	case ZoneSouth:
		return "south"
	case ZoneSouthEast:
		return "southeast"
	default:
		return "unknown"
	}
}

// ResizeDirection returns the edge or corner a primary drag in z resizes.
// The center zone moves the window instead and reports false.
func (z Zone) ResizeDirection() (ResizeDirection, bool) {
	switch z {
	case ZoneNorthWest:
		return ResizeNorthWest, true
	case ZoneNorth:
		return ResizeNorth, true
	case ZoneNorthEast:
		return ResizeNorthEast, true
	case ZoneWest:
		return ResizeWest, true
	case ZoneEast:
		return ResizeEast, true
	case ZoneSouthWest:
		return ResizeSouthWest, true
	case ZoneSouth:
		return ResizeSouth, true
	case ZoneSouthEast:
		return ResizeSouthEast, true
	default:
		return 0, false
	}
}

// CursorIcon returns the hover cursor shown over z while the cursor is visible.
func (z Zone) CursorIcon() CursorIcon {
	if dir, ok := z.ResizeDirection(); ok {
		return dir.CursorIcon()
	}
	return CursorGrabbing
}

// ResizeDirection is a compass direction for an interactive window resize.
type ResizeDirection int

const (
	ResizeNorth ResizeDirection = iota
	ResizeSouth
	ResizeEast
	ResizeWest
	ResizeNorthEast
	ResizeNorthWest
	ResizeSouthEast
	ResizeSouthWest
)

// String returns the direction name.
func (d ResizeDirection) String() string {
	switch d {
	case ResizeNorth:
		return "north"
	case ResizeSouth:
		return "south"
	case ResizeEast:
		return "east"
	case ResizeWest:
		return "west"
	case ResizeNorthEast:
		return "northeast"
	case ResizeNorthWest:
		return "northwest"
	case ResizeSouthEast:
		return "southeast"
	case ResizeSouthWest:
		return "southwest"
	default:
		return "unknown"
	}
}

// CursorIcon returns the resize cursor matching d.
func (d ResizeDirection) CursorIcon() CursorIcon {
	switch d {
	case ResizeNorth:
		return CursorResizeNorth
	case ResizeSouth:
		return CursorResizeSouth
	case ResizeEast:
		return CursorResizeEast
	case ResizeWest:
		return CursorResizeWest
	case ResizeNorthEast:
		return CursorResizeNorthEast
	case ResizeNorthWest:
		return CursorResizeNorthWest
	case ResizeSouthEast:
		return CursorResizeSouthEast
	case ResizeSouthWest:
		return CursorResizeSouthWest
	default:
		return CursorDefault
	}
}

// CursorIcon is the pointer shape the host shows over a zone.
type CursorIcon int

const (
	// CursorNone hides the pointer entirely.
	CursorNone CursorIcon = iota
	CursorDefault
	CursorGrabbing
	CursorResizeNorth
	CursorResizeSouth
	CursorResizeEast
	CursorResizeWest
	CursorResizeNorthEast
	CursorResizeNorthWest
	CursorResizeSouthEast
	CursorResizeSouthWest
)

// String returns the icon name.
func (c CursorIcon) String() string {
	switch c {
	case CursorNone:
		return "none"
	case CursorDefault:
		return "default"
	case CursorGrabbing:
		return "grabbing"
	case CursorResizeNorth:
		return "resize-north"
	case CursorResizeSouth:
		return "resize-south"
	case CursorResizeEast:
		return "resize-east"
	case CursorResizeWest:
		return "resize-west"
	case CursorResizeNorthEast:
		return "resize-northeast"
	case CursorResizeNorthWest:
		return "resize-northwest"
	case CursorResizeSouthEast:
		return "resize-southeast"
	case CursorResizeSouthWest:
		return "resize-southwest"
	default:
		return "unknown"
	}
}

// Region binds a zone to its rectangle for one frame.
type Region struct {
	Zone Zone
	Rect Rect
}

// Layout holds the nine zone rectangles of one frame, indexed by Zone.
type Layout [ZoneCount]Region

// LayoutZones partitions window into the nine interaction zones.
//
// Columns come from splitting the width at 20% and the remainder at 75%;
// each column is then split the same way along its height.
func LayoutZones(window Rect) Layout {
	west, rest := window.SplitLeftRightAtFraction(edgeFraction)
	middle, east := rest.SplitLeftRightAtFraction(middleFraction)

	var l Layout
	columns := [3]struct {
		rect                 Rect
		north, center, south Zone
	}{
		{west, ZoneNorthWest, ZoneWest, ZoneSouthWest},
		{middle, ZoneNorth, ZoneCenter, ZoneSouth},
		{east, ZoneNorthEast, ZoneEast, ZoneSouthEast},
	}
	for _, col := range columns {
		north, rest := col.rect.SplitTopBottomAtFraction(edgeFraction)
		center, south := rest.SplitTopBottomAtFraction(middleFraction)
		l[col.north] = Region{Zone: col.north, Rect: north}
		l[col.center] = Region{Zone: col.center, Rect: center}
		l[col.south] = Region{Zone: col.south, Rect: south}
	}
	return l
}

// Rect returns the rectangle of zone z.
func (l Layout) Rect(z Zone) Rect {
	if z < 0 || int(z) >= len(l) {
		return Rect{}
	}
	return l[z].Rect
}

// HitTest returns the zone containing p.
func (l Layout) HitTest(p Point) (Zone, bool) {
	for _, region := range l {
		if region.Rect.Contains(p) {
			return region.Zone, true
		}
	}
	return 0, false
}
