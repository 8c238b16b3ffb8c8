package overlay

import "github.com/1broseidon/boxoverlay/internal/rangemap"

// Opacity drag defaults.
const (
	DefaultMinAlpha  = 0.5
	DefaultMaxAlpha  = 1.0
	DefaultDragRange = 100.0

	// IndicatorWidth is the width of the opacity slider indicator.
	IndicatorWidth = 12.0
)

// OpacityScale relates vertical drag distance to window alpha.
type OpacityScale struct {
	MinAlpha float64
	MaxAlpha float64
	// Length is the drag distance covering MinAlpha..MaxAlpha, in the same
	// units as the on-screen slider.
	Length float64
}

// DefaultOpacityScale returns the 0.5..1.0 over 100 units scale.
func DefaultOpacityScale() OpacityScale {
	return OpacityScale{
		MinAlpha: DefaultMinAlpha,
		MaxAlpha: DefaultMaxAlpha,
		Length:   DefaultDragRange,
	}
}

// Clamp limits alpha to the scale's range.
func (s OpacityScale) Clamp(alpha float64) float64 {
	return rangemap.Clamp(alpha, s.MinAlpha, s.MaxAlpha)
}

// OpacityDrag is the state captured when a secondary-button drag starts.
// It is never modified while the drag lasts.
type OpacityDrag struct {
	Origin Point
	// Offset biases the drag so that the slider handle starts under Origin
	// and alpha is unchanged until the pointer moves.
	Offset float64
}

// BeginOpacityDrag captures the drag origin and its virtual offset for
// the current alpha.
//
// For the default 0.5..1.0 scale the offset equals
// Map(1-alpha, 0.5, 1.0, 0, Length).
func BeginOpacityDrag(origin Point, alpha float64, s OpacityScale) OpacityDrag {
	return OpacityDrag{
		Origin: origin,
		Offset: -rangemap.Map(alpha, s.MinAlpha, s.MaxAlpha, 0, s.Length),
	}
}

// Alpha returns the alpha for the pointer at p. Moving up from the origin
// raises alpha, moving down lowers it, and the result never leaves the
// scale's range.
func (d OpacityDrag) Alpha(p Point, s OpacityScale) float64 {
	travel := -d.Offset + d.Origin.Y - p.Y
	return rangemap.MapClamped(travel, 0, s.Length, s.MinAlpha, s.MaxAlpha)
}

// Indicator describes the non-interactive opacity slider drawn during a drag.
type Indicator struct {
	// Track is the full slider rectangle; its bottom-center is anchored at
	// Origin shifted up by the drag offset.
	Track Rect
	// Level is the filled fraction of the track, 0 at MinAlpha and 1 at MaxAlpha.
	Level float64
}

// Handle returns the vertical position of the slider handle.
func (ind Indicator) Handle() float64 {
	return ind.Track.Max.Y - ind.Level*ind.Track.Height()
}

// Indicator returns the slider feedback for alpha.
func (d OpacityDrag) Indicator(alpha float64, s OpacityScale) Indicator {
	bottom := Point{X: d.Origin.X, Y: d.Origin.Y - d.Offset}
	return Indicator{
		Track: RectFromSize(bottom.X-IndicatorWidth/2, bottom.Y-s.Length, IndicatorWidth, s.Length),
		Level: rangemap.MapClamped(alpha, s.MinAlpha, s.MaxAlpha, 0, 1),
	}
}
