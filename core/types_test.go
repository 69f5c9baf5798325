package core

import (
	"math"
	"testing"
)

func TestDefaultPlanetsIsACopy(t *testing.T) {
	a := DefaultPlanets()
	a[0].Angle = 1
	a[0].Name = "changed"

	b := DefaultPlanets()
	if b[0].Angle != 0 || b[0].Name != "Mercury" {
		t.Errorf("DefaultPlanets shares storage between calls: %+v", b[0])
	}
	if len(b) != 7 {
		t.Errorf("got %d planets, want 7", len(b))
	}
}

func TestPlanetPeriod(t *testing.T) {
	earth := DefaultPlanets()[2]

	if got, want := earth.Period(1), TwoPi/0.4; math.Abs(got-want) > 1e-5 {
		t.Errorf("Period(1) = %v, want %v", got, want)
	}
	if got := earth.Period(0); !math.IsInf(got, 1) {
		t.Errorf("Period(0) = %v, want +Inf", got)
	}

	// one period of real time brings the planet back to where it started
	s := NewState([]Planet{earth}, Limits{SpeedMin: 0.001, SpeedMax: 1, ZoomMin: 0.1, ZoomMax: 5}, 0.5, 1)
	s.Planets[0].Angle = 1
	s.Advance(earth.Period(0.5))
	if d := math.Abs(s.Planets[0].Angle - 1); d > 1e-4 {
		t.Errorf("after one period angle = %v, want 1", s.Planets[0].Angle)
	}
}
