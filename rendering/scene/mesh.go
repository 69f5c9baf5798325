package scene

import (
	"orrery/core"
)

// Meshes holds the two unit-circle vertex lists every backend draws from.
type Meshes struct {
	Disc  []float32
	Orbit []float32
}

// NewMeshes samples both circles once with the given segment count.
func NewMeshes(segments int) Meshes {
	return Meshes{
		Disc:  core.CircleVertices(1.0, true, segments),
		Orbit: core.CircleVertices(1.0, false, segments),
	}
}

// Vertices returns the vertex list for m.
func (ms Meshes) Vertices(m Mesh) []float32 {
	if m == MeshOrbit {
		return ms.Orbit
	}
	return ms.Disc
}
