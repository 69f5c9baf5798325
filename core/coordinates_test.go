package core

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    float64
		epsilon float64
	}{
		{name: "zero", in: 0, want: 0, epsilon: 0},
		{name: "inside range", in: 1.5, want: 1.5, epsilon: 0},
		{name: "exactly two pi", in: TwoPi, want: 0, epsilon: 1e-12},
		{name: "just over", in: TwoPi + 0.25, want: 0.25, epsilon: 1e-12},
		{name: "several turns", in: 5*TwoPi + 1, want: 1, epsilon: 1e-9},
		{name: "negative", in: -0.5, want: TwoPi - 0.5, epsilon: 1e-12},
		{name: "negative turns", in: -3*TwoPi - 0.5, want: TwoPi - 0.5, epsilon: 1e-9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAngle(tc.in)
			if math.Abs(got-tc.want) > tc.epsilon {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("NormalizeAngle(%v) = %v outside [0, 2π)", tc.in, got)
			}
		})
	}
}

func TestNormalizeAngleTinyNegative(t *testing.T) {
	// -tiny + 2π rounds to 2π in float64; the result must still be below 2π
	got := NormalizeAngle(-1e-300)
	if got < 0 || got >= TwoPi {
		t.Fatalf("NormalizeAngle(-1e-300) = %v outside [0, 2π)", got)
	}
}

func TestPolarToCartesian(t *testing.T) {
	tests := []struct {
		name         string
		radius       float32
		angle        float32
		wantX, wantY float32
	}{
		{name: "east", radius: 0.35, angle: 0, wantX: 0.35, wantY: 0},
		{name: "north", radius: 0.5, angle: math.Pi / 2, wantX: 0, wantY: 0.5},
		{name: "west", radius: 0.9, angle: math.Pi, wantX: -0.9, wantY: 0},
		{name: "south", radius: 0.15, angle: 3 * math.Pi / 2, wantX: 0, wantY: -0.15},
	}

	const epsilon = 1e-6
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := PolarToCartesian(tc.radius, tc.angle)
			if math.Abs(float64(x-tc.wantX)) > epsilon || math.Abs(float64(y-tc.wantY)) > epsilon {
				t.Errorf("PolarToCartesian(%v, %v) = (%v, %v), want (%v, %v)",
					tc.radius, tc.angle, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPlanetPosition(t *testing.T) {
	p := Planet{OrbitRadius: 0.6, Angle: math.Pi / 2}
	x, y := p.Position()
	if math.Abs(float64(x)) > 1e-6 || math.Abs(float64(y)-0.6) > 1e-6 {
		t.Errorf("Position() = (%v, %v), want (0, 0.6)", x, y)
	}
}
