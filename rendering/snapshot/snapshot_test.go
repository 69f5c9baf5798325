package snapshot

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"orrery/core"
	"orrery/rendering/scene"
)

var testOptions = scene.Options{
	SunRadius:  0.08,
	SunColor:   mgl32.Vec3{1, 1, 0},
	OrbitColor: mgl32.Vec3{0.3, 0.3, 0.3},
	Background: mgl32.Vec3{0, 0, 0.03},
}

func newState() *core.State {
	return core.NewState(core.DefaultPlanets(), core.Limits{
		SpeedMin: 0.001, SpeedMax: 1.0, SpeedStep: 0.001,
		ZoomMin: 0.1, ZoomMax: 5.0, ZoomStep: 0.05,
	}, 0.005, 1.0)
}

func TestDrawSunAndBackground(t *testing.T) {
	r := New(100, 100, 64)
	s := newState()

	img, err := r.Draw(scene.Build(s, testOptions, 100, 100), "")
	if err != nil {
		t.Fatal(err)
	}

	// the sun is a 4 px disc in the middle
	c := img.RGBAAt(50, 50)
	if c.R < 200 || c.G < 200 || c.B > 60 {
		t.Errorf("centre pixel = %v, want sun yellow", c)
	}

	// nothing is drawn near the corner
	bg := img.RGBAAt(1, 1)
	if bg.R > 5 || bg.G > 5 || bg.B > 20 {
		t.Errorf("corner pixel = %v, want background", bg)
	}
}

func TestDrawPlanetPosition(t *testing.T) {
	r := New(200, 200, 64)
	s := newState()
	// Jupiter: orbit 0.6, radius 0.04 -> 4 px disc at x = 100 + 60
	s.Planets[4].Angle = 0

	img, err := r.Draw(scene.Build(s, testOptions, 200, 200), "")
	if err != nil {
		t.Fatal(err)
	}
	c := img.RGBAAt(160, 100)
	want := s.Planets[4].Color
	if math.Abs(float64(c.R)-float64(want[0])*255) > 30 || math.Abs(float64(c.G)-float64(want[1])*255) > 30 {
		t.Errorf("pixel at Jupiter = %v, want about %v", c, want)
	}
}

func TestWritePNG(t *testing.T) {
	r := New(64, 48, 32)
	var buf bytes.Buffer
	if err := r.WritePNG(&buf, scene.Build(newState(), testOptions, 64, 48), "t=0"); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("decoded size %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}

func TestSimulate(t *testing.T) {
	s := newState()
	Simulate(s, 10, 60)

	// Mercury: 10 s * 0.005 * 0.8
	if got := s.Planets[0].Angle; math.Abs(got-0.04) > 1e-6 {
		t.Errorf("Mercury angle = %v, want 0.04", got)
	}

	before := s.Planets[0].Angle
	Simulate(s, 0, 60)
	if s.Planets[0].Angle != before {
		t.Error("zero-second simulation moved a planet")
	}
}
