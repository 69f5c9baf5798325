package core

import (
	"math"
)

// TwoPi is one full revolution in radians.
const TwoPi = 2 * math.Pi

// NormalizeAngle maps a finite angle into [0, 2π). Unlike a single subtraction it
// holds for steps of any size and for negative input.
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// math.Mod can hand back a value that rounds up to 2π after the correction above
	if a >= TwoPi {
		a = 0
	}
	return a
}

// PolarToCartesian converts an orbit radius and phase into x/y on the orbital plane.
func PolarToCartesian(radius, angle float32) (x, y float32) {
	x = radius * float32(math.Cos(float64(angle)))
	y = radius * float32(math.Sin(float64(angle)))
	return x, y
}
