package overlay

// Point is a position in window-local logical units.
type Point struct {
	X float64
	Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle spanning [Min, Max).
type Rect struct {
	Min Point
	Max Point
}

// RectFromSize builds a rect from its top-left corner and size.
func RectFromSize(x, y, width, height float64) Rect {
	return Rect{
		Min: Point{X: x, Y: y},
		Max: Point{X: x + width, Y: y + height},
	}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Area returns Width*Height, or 0 for empty rects.
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.Width() * r.Height()
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether p lies inside r. The right and bottom edges
// are exclusive so that adjacent rects never share a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of r and o, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: Point{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
		Max: Point{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// SplitLeftRightAtFraction cuts r vertically at fraction f of its width.
func (r Rect) SplitLeftRightAtFraction(f float64) (left, right Rect) {
	x := r.Min.X + r.Width()*f
	left = Rect{Min: r.Min, Max: Point{X: x, Y: r.Max.Y}}
	right = Rect{Min: Point{X: x, Y: r.Min.Y}, Max: r.Max}
	return left, right
}

// SplitTopBottomAtFraction cuts r horizontally at fraction f of its height.
func (r Rect) SplitTopBottomAtFraction(f float64) (top, bottom Rect) {
	y := r.Min.Y + r.Height()*f
	top = Rect{Min: r.Min, Max: Point{X: r.Max.X, Y: y}}
	bottom = Rect{Min: Point{X: r.Min.X, Y: y}, Max: r.Max}
	return top, bottom
}
