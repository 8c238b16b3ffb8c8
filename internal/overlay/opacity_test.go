package overlay

import (
	"math"
	"math/rand"
	"testing"

	"github.com/1broseidon/boxoverlay/internal/rangemap"
)

func TestBeginOpacityDragOffset(t *testing.T) {
	s := DefaultOpacityScale()
	for _, alpha := range []float64{0.5, 0.6, 0.75, 0.9, 1.0} {
		d := BeginOpacityDrag(Point{}, alpha, s)
		want := rangemap.Map(1-alpha, 0.5, 1.0, 0, 100)
		if math.Abs(d.Offset-want) > 1e-9 {
			t.Fatalf("alpha %v: offset %v, want %v", alpha, d.Offset, want)
		}
	}
}

func TestOpacityDragContinuousAtStart(t *testing.T) {
	scales := []OpacityScale{
		DefaultOpacityScale(),
		{MinAlpha: 0.2, MaxAlpha: 0.9, Length: 250},
	}
	for _, s := range scales {
		for alpha := s.MinAlpha; alpha <= s.MaxAlpha; alpha += 0.05 {
			origin := Point{X: 120, Y: 40}
			d := BeginOpacityDrag(origin, alpha, s)
			if got := d.Alpha(origin, s); math.Abs(got-alpha) > 1e-9 {
				t.Fatalf("scale %+v: alpha jumped from %v to %v at drag start", s, alpha, got)
			}
		}
	}
}

func TestOpacityDragDirection(t *testing.T) {
	s := DefaultOpacityScale()
	origin := Point{X: 50, Y: 50}
	d := BeginOpacityDrag(origin, 0.75, s)

	up := d.Alpha(Point{X: 50, Y: 30}, s)
	down := d.Alpha(Point{X: 50, Y: 70}, s)
	if up <= 0.75 {
		t.Fatalf("moving up should raise alpha, got %v", up)
	}
	if down >= 0.75 {
		t.Fatalf("moving down should lower alpha, got %v", down)
	}
	if got := d.Alpha(Point{X: 400, Y: 50}, s); got != 0.75 {
		t.Fatalf("horizontal motion changed alpha to %v", got)
	}
}

func TestOpacityDragNeverLeavesRange(t *testing.T) {
	s := DefaultOpacityScale()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		alpha := 0.5 + rng.Float64()*0.5
		origin := Point{X: rng.Float64() * 400, Y: rng.Float64() * 100}
		d := BeginOpacityDrag(origin, alpha, s)

		p := origin
		for step := 0; step < 200; step++ {
			p.Y += (rng.Float64() - 0.5) * 80
			got := d.Alpha(p, s)
			if got < 0.5 || got > 1.0 {
				t.Fatalf("alpha %v escaped [0.5, 1.0] at pointer %+v", got, p)
			}
		}
	}
}

func TestOpacityIndicatorAnchoredUnderClick(t *testing.T) {
	s := DefaultOpacityScale()
	origin := Point{X: 200, Y: 50}

	for _, alpha := range []float64{0.5, 0.75, 1.0} {
		d := BeginOpacityDrag(origin, alpha, s)
		ind := d.Indicator(alpha, s)

		if ind.Track.Width() != IndicatorWidth || ind.Track.Height() != s.Length {
			t.Fatalf("track size = %vx%v", ind.Track.Width(), ind.Track.Height())
		}
		if center := (ind.Track.Min.X + ind.Track.Max.X) / 2; center != origin.X {
			t.Fatalf("track centered at %v, want %v", center, origin.X)
		}
		if math.Abs(ind.Handle()-origin.Y) > 1e-9 {
			t.Fatalf("alpha %v: handle at %v, want click y %v", alpha, ind.Handle(), origin.Y)
		}
	}
}

func TestOpacityIndicatorLevel(t *testing.T) {
	s := DefaultOpacityScale()
	d := BeginOpacityDrag(Point{}, 1.0, s)

	tests := []struct{ alpha, level float64 }{
		{0.5, 0},
		{0.75, 0.5},
		{1.0, 1},
	}
	for _, tt := range tests {
		if got := d.Indicator(tt.alpha, s).Level; got != tt.level {
			t.Errorf("level(%v) = %v, want %v", tt.alpha, got, tt.level)
		}
	}
}
