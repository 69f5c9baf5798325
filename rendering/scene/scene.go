// Package scene turns the simulation state into an ordered list of draw calls.
// It does no drawing itself; each rendering backend executes the same Frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"orrery/config"
	"orrery/core"
)

// Mesh selects which of the two circle meshes a draw call uses.
type Mesh int

const (
	MeshDisc  Mesh = iota // filled unit circle, triangle fan
	MeshOrbit             // unit circle outline, line loop
)

// DrawCall is one object: a mesh, where to put it, and its flat colour.
type DrawCall struct {
	Mesh  Mesh
	Model mgl32.Mat4
	Color mgl32.Vec3
	Label string
}

// Frame is everything needed to draw one image.
type Frame struct {
	Background mgl32.Vec3
	Projection mgl32.Mat4
	Calls      []DrawCall
}

// MVP returns projection * model for a call in this frame.
func (f *Frame) MVP(c DrawCall) mgl32.Mat4 {
	return f.Projection.Mul4(c.Model)
}

// Options are the fixed look of the scene.
type Options struct {
	AspectCorrection bool
	SunRadius        float32
	SunColor         mgl32.Vec3
	OrbitColor       mgl32.Vec3
	Background       mgl32.Vec3
}

// OptionsFrom copies the scene section of the settings.
func OptionsFrom(s config.SceneSettings) Options {
	return Options{
		AspectCorrection: s.AspectCorrection,
		SunRadius:        s.SunRadius,
		SunColor:         mgl32.Vec3(s.SunColor),
		OrbitColor:       mgl32.Vec3(s.OrbitColor),
		Background:       mgl32.Vec3(s.Background),
	}
}

// Projection builds the orthographic projection for a zoom level. With aspect
// correction the horizontal extent is stretched by width/height so circles stay
// round on non-square viewports.
func Projection(zoom float32, width, height int, aspectCorrection bool) mgl32.Mat4 {
	aspect := float32(1)
	if aspectCorrection && width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Ortho(-zoom*aspect, zoom*aspect, -zoom, zoom, -1, 1)
}

// OrbitModel scales the unit outline to the planet's orbit. Orbits are centred on
// the origin so there is no translation.
func OrbitModel(p core.Planet) mgl32.Mat4 {
	return mgl32.Scale3D(p.OrbitRadius, p.OrbitRadius, p.OrbitRadius)
}

// SunModel scales the unit disc to the sun's radius at the origin.
func SunModel(radius float32) mgl32.Mat4 {
	return mgl32.Scale3D(radius, radius, radius)
}

// PlanetModel places the unit disc at the planet's current orbital position,
// translating first and then scaling to the planet's radius.
func PlanetModel(p core.Planet) mgl32.Mat4 {
	x, y := p.Position()
	return mgl32.Translate3D(x, y, 0).Mul4(mgl32.Scale3D(p.Radius, p.Radius, p.Radius))
}

// Build lays out a frame: every orbit, then the sun, then every planet.
func Build(s *core.State, opts Options, width, height int) Frame {
	f := Frame{
		Background: opts.Background,
		Projection: Projection(s.Zoom, width, height, opts.AspectCorrection),
		Calls:      make([]DrawCall, 0, 2*len(s.Planets)+1),
	}

	for _, p := range s.Planets {
		f.Calls = append(f.Calls, DrawCall{
			Mesh:  MeshOrbit,
			Model: OrbitModel(p),
			Color: opts.OrbitColor,
			Label: "orbit " + p.Name,
		})
	}

	f.Calls = append(f.Calls, DrawCall{
		Mesh:  MeshDisc,
		Model: SunModel(opts.SunRadius),
		Color: opts.SunColor,
		Label: "sun",
	})

	for _, p := range s.Planets {
		f.Calls = append(f.Calls, DrawCall{
			Mesh:  MeshDisc,
			Model: PlanetModel(p),
			Color: mgl32.Vec3(p.Color),
			Label: p.Name,
		})
	}

	return f
}
