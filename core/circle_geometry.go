package core

import (
	"math"
)

// MinCircleSegments is the smallest segment count that still closes a polygon.
const MinCircleSegments = 3

// CircleVertices samples a circle of the given radius at segments+1 evenly spaced
// angles (2π·i/segments for i = 0..segments), so the first and last samples
// coincide. Vertices are interleaved x, y pairs.
//
// A filled circle gets the centre (0, 0) prepended so it can be drawn as a
// triangle fan; an outline is drawn as a line loop.
func CircleVertices(radius float32, filled bool, segments int) []float32 {
	if segments < MinCircleSegments {
		segments = MinCircleSegments
	}

	count := segments + 1
	if filled {
		count++
	}
	vertices := make([]float32, 0, count*2)
	if filled {
		vertices = append(vertices, 0, 0)
	}

	first := len(vertices)
	for i := 0; i < segments; i++ {
		angle := float32(TwoPi) * float32(i) / float32(segments)
		vertices = append(vertices,
			radius*float32(math.Cos(float64(angle))),
			radius*float32(math.Sin(float64(angle))),
		)
	}
	// i == segments lands on 2π; reuse the first sample so the loop closes exactly
	vertices = append(vertices, vertices[first], vertices[first+1])

	return vertices
}

// VertexCount returns the number of 2D vertices in an interleaved slice.
func VertexCount(vertices []float32) int {
	return len(vertices) / 2
}
