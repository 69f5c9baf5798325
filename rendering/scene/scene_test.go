package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"orrery/core"
)

var testOptions = Options{
	SunRadius:  0.08,
	SunColor:   mgl32.Vec3{1, 1, 0},
	OrbitColor: mgl32.Vec3{0.3, 0.3, 0.3},
	Background: mgl32.Vec3{0, 0, 0.03},
}

func newState(zoom float32) *core.State {
	return core.NewState(core.DefaultPlanets(), core.Limits{
		SpeedMin: 0.001, SpeedMax: 1.0, SpeedStep: 0.001,
		ZoomMin: 0.1, ZoomMax: 5.0, ZoomStep: 0.05,
	}, 0.005, zoom)
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestProjection(t *testing.T) {
	tests := []struct {
		name          string
		zoom          float32
		width, height int
		aspect        bool
		wantX, wantY  float32 // scale applied to x and y
	}{
		{name: "square", zoom: 1, width: 800, height: 800, aspect: true, wantX: 1, wantY: 1},
		{name: "zoomed out", zoom: 2, width: 800, height: 800, aspect: false, wantX: 0.5, wantY: 0.5},
		{name: "wide corrected", zoom: 1, width: 1600, height: 800, aspect: true, wantX: 0.5, wantY: 1},
		{name: "wide uncorrected", zoom: 1, width: 1600, height: 800, aspect: false, wantX: 1, wantY: 1},
		{name: "zero height", zoom: 1, width: 800, height: 0, aspect: true, wantX: 1, wantY: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Projection(tc.zoom, tc.width, tc.height, tc.aspect)
			if !near(p.At(0, 0), tc.wantX) || !near(p.At(1, 1), tc.wantY) {
				t.Errorf("scale = (%v, %v), want (%v, %v)", p.At(0, 0), p.At(1, 1), tc.wantX, tc.wantY)
			}
			// orthographic and centred: no translation in x/y
			if !near(p.At(0, 3), 0) || !near(p.At(1, 3), 0) {
				t.Errorf("unexpected translation (%v, %v)", p.At(0, 3), p.At(1, 3))
			}
		})
	}
}

func TestOrbitModel(t *testing.T) {
	p := core.Planet{OrbitRadius: 0.35}
	m := OrbitModel(p)
	v := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !near(v[0], 0.35) || !near(v[1], 0) {
		t.Errorf("unit x maps to %v, want (0.35, 0)", v)
	}
}

func TestPlanetModel(t *testing.T) {
	p := core.Planet{OrbitRadius: 0.5, Radius: 0.04, Angle: math.Pi / 2}
	m := PlanetModel(p)

	centre := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !near(centre[0], 0) || !near(centre[1], 0.5) {
		t.Errorf("centre = (%v, %v), want (0, 0.5)", centre[0], centre[1])
	}

	// translate then scale: the rim is radius away from the centre, not scaled offset
	rim := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if !near(rim[0], 0.04) || !near(rim[1], 0.5) {
		t.Errorf("rim = (%v, %v), want (0.04, 0.5)", rim[0], rim[1])
	}
}

func TestBuildOrder(t *testing.T) {
	s := newState(1)
	f := Build(s, testOptions, 800, 800)

	n := len(s.Planets)
	if len(f.Calls) != 2*n+1 {
		t.Fatalf("got %d calls, want %d", len(f.Calls), 2*n+1)
	}
	for i := 0; i < n; i++ {
		if c := f.Calls[i]; c.Mesh != MeshOrbit || c.Color != testOptions.OrbitColor {
			t.Errorf("call %d = %+v, want orbit", i, c.Label)
		}
	}
	sun := f.Calls[n]
	if sun.Mesh != MeshDisc || sun.Color != testOptions.SunColor || !near(sun.Model.At(0, 0), 0.08) {
		t.Errorf("sun call = %s scale %v", sun.Label, sun.Model.At(0, 0))
	}
	for i, p := range s.Planets {
		c := f.Calls[n+1+i]
		if c.Mesh != MeshDisc || c.Label != p.Name || c.Color != mgl32.Vec3(p.Color) {
			t.Errorf("planet call %d = %s", i, c.Label)
		}
	}
	if f.Background != testOptions.Background {
		t.Errorf("Background = %v", f.Background)
	}
}

func TestBuildFollowsAngles(t *testing.T) {
	s := newState(1)
	s.Planets[2].Angle = math.Pi
	f := Build(s, testOptions, 800, 800)

	earth := f.Calls[len(s.Planets)+1+2]
	if !near(earth.Model.At(0, 3), -0.35) || !near(earth.Model.At(1, 3), 0) {
		t.Errorf("earth at (%v, %v), want (-0.35, 0)", earth.Model.At(0, 3), earth.Model.At(1, 3))
	}
}

func TestToPixel(t *testing.T) {
	mvp := Projection(1, 200, 100, false)
	tests := []struct {
		x, y   float32
		px, py float32
	}{
		{x: 0, y: 0, px: 100, py: 50},
		{x: -1, y: 1, px: 0, py: 0},
		{x: 1, y: -1, px: 200, py: 100},
		{x: 0.5, y: 0, px: 150, py: 50},
	}
	for _, tc := range tests {
		px, py := ToPixel(mvp, tc.x, tc.y, 200, 100)
		if !near(px, tc.px) || !near(py, tc.py) {
			t.Errorf("ToPixel(%v, %v) = (%v, %v), want (%v, %v)", tc.x, tc.y, px, py, tc.px, tc.py)
		}
	}
}

func TestPixelCircle(t *testing.T) {
	s := newState(1)
	f := Build(s, testOptions, 100, 100)
	sun := f.Calls[len(s.Planets)]

	cx, cy, r := PixelCircle(f.MVP(sun), 100, 100)
	if !near(cx, 50) || !near(cy, 50) || !near(r, 4) {
		t.Errorf("sun circle = (%v, %v) r=%v, want (50, 50) r=4", cx, cy, r)
	}
}

func TestMeshes(t *testing.T) {
	m := NewMeshes(64)
	if len(m.Vertices(MeshDisc)) != 2*66 || len(m.Vertices(MeshOrbit)) != 2*65 {
		t.Errorf("mesh sizes %d / %d", len(m.Disc), len(m.Orbit))
	}
}

func TestStatusBars(t *testing.T) {
	s := newState(1)
	bars := StatusBars(s, 800, 800)
	if len(bars) != 4 {
		t.Fatalf("got %d rects running, want 4", len(bars))
	}

	// speed gauge fill: (0.005 - 0.001) / (1 - 0.001) of the track
	wantSpeed := barWidth * (0.005 - 0.001) / (1 - 0.001)
	if !near(bars[1].W, float32(wantSpeed)) {
		t.Errorf("speed fill = %v, want %v", bars[1].W, wantSpeed)
	}

	s.SetPaused(true)
	bars = StatusBars(s, 800, 800)
	if len(bars) != 6 {
		t.Fatalf("got %d rects paused, want 6", len(bars))
	}
	if bars[4].X+bars[4].W > 800 || bars[5].X+bars[5].W > 800 {
		t.Error("pause glyph outside the viewport")
	}
}

func TestCaption(t *testing.T) {
	s := newState(1)
	if got := Caption(s); got != "t=0.00  speed=0.005  zoom=1.00" {
		t.Errorf("Caption = %q", got)
	}
	s.SetPaused(true)
	if got := Caption(s); got != "t=0.00  speed=0.005  zoom=1.00  [paused]" {
		t.Errorf("Caption = %q", got)
	}
}

func TestFraction(t *testing.T) {
	if fraction(5, 0, 10) != 0.5 || fraction(-1, 0, 10) != 0 || fraction(11, 0, 10) != 1 || fraction(1, 1, 1) != 1 {
		t.Error("fraction outside [0, 1]")
	}
}
