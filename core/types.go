package core

import "math"

// Planet is one body of the solar system. Everything except Angle is fixed after
// construction; Angle is the orbital phase in radians and stays in [0, 2π).
type Planet struct {
	Name        string
	OrbitRadius float32    // distance from the sun at the origin
	Radius      float32    // drawn disc radius
	Speed       float32    // radians per second of simulated time at TimeSpeed 1
	Color       [3]float32 // RGB, 0..1
	Angle       float64
}

// Position returns the planet's location on its orbit. The angle accumulates in
// float64 but is narrowed to float32 before the trigonometry, matching what the
// renderers consume.
func (p Planet) Position() (x, y float32) {
	return PolarToCartesian(p.OrbitRadius, float32(p.Angle))
}

// DefaultPlanets returns a fresh copy of the built-in planet table.
func DefaultPlanets() []Planet {
	return []Planet{
		{Name: "Mercury", OrbitRadius: 0.15, Radius: 0.02, Speed: 0.8, Color: [3]float32{0.5, 0.5, 0.5}},
		{Name: "Venus", OrbitRadius: 0.25, Radius: 0.03, Speed: 0.6, Color: [3]float32{1.0, 0.5, 0.1}},
		{Name: "Earth", OrbitRadius: 0.35, Radius: 0.035, Speed: 0.4, Color: [3]float32{0.1, 0.6, 1.0}},
		{Name: "Mars", OrbitRadius: 0.45, Radius: 0.025, Speed: 0.3, Color: [3]float32{1.0, 0.2, 0.2}},
		{Name: "Jupiter", OrbitRadius: 0.6, Radius: 0.04, Speed: 0.2, Color: [3]float32{0.9, 0.5, 0.1}},
		{Name: "Saturn", OrbitRadius: 0.75, Radius: 0.035, Speed: 0.15, Color: [3]float32{0.9, 0.9, 0.6}},
		{Name: "Uranus", OrbitRadius: 0.9, Radius: 0.03, Speed: 0.1, Color: [3]float32{0.5, 0.9, 1.0}},
	}
}

// Period returns the real seconds one full orbit takes at the given time
// speed. A planet that does not move has an infinite period.
func (p Planet) Period(timeSpeed float32) float64 {
	rate := float64(p.Speed) * float64(timeSpeed)
	if rate <= 0 {
		return math.Inf(1)
	}
	return TwoPi / rate
}
