package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"orrery/core"
)

// Rect is a screen-space rectangle in pixels, top-left origin.
type Rect struct {
	X, Y, W, H float32
	Color      mgl32.Vec4
}

const (
	barMargin = 10
	barWidth  = 160
	barHeight = 8
	barGap    = 6
)

var (
	trackColor = mgl32.Vec4{0.2, 0.2, 0.2, 0.8}
	speedColor = mgl32.Vec4{0.2, 0.9, 0.3, 1.0}
	zoomColor  = mgl32.Vec4{0.5, 0.5, 1.0, 1.0}
	pauseColor = mgl32.Vec4{1.0, 1.0, 1.0, 0.9}
)

// StatusBars lays out the status overlay: a time-speed gauge, a zoom gauge and,
// while paused, a pause glyph in the top-right corner.
func StatusBars(s *core.State, width, height int) []Rect {
	lim := s.Limits
	rects := make([]Rect, 0, 6)

	y := float32(barMargin)
	for _, g := range []struct {
		frac  float32
		color mgl32.Vec4
	}{
		{fraction(s.TimeSpeed, lim.SpeedMin, lim.SpeedMax), speedColor},
		{fraction(s.Zoom, lim.ZoomMin, lim.ZoomMax), zoomColor},
	} {
		rects = append(rects,
			Rect{X: barMargin, Y: y, W: barWidth, H: barHeight, Color: trackColor},
			Rect{X: barMargin, Y: y, W: barWidth * g.frac, H: barHeight, Color: g.color},
		)
		y += barHeight + barGap
	}

	if s.Paused {
		x := float32(width) - barMargin - 18
		rects = append(rects,
			Rect{X: x, Y: barMargin, W: 6, H: 18, Color: pauseColor},
			Rect{X: x + 12, Y: barMargin, W: 6, H: 18, Color: pauseColor},
		)
	}
	return rects
}

// Caption is a one-line text summary of the controls.
func Caption(s *core.State) string {
	text := fmt.Sprintf("t=%.2f  speed=%.3f  zoom=%.2f", s.Clock, s.TimeSpeed, s.Zoom)
	if s.Paused {
		text += "  [paused]"
	}
	return text
}

func fraction(v, lo, hi float32) float32 {
	if hi <= lo {
		return 1
	}
	f := (v - lo) / (hi - lo)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
