package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ToPixel maps a mesh-local vertex through mvp into pixel coordinates of a
// width x height image with the origin at the top-left corner.
func ToPixel(mvp mgl32.Mat4, x, y float32, width, height int) (px, py float32) {
	clip := mvp.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	ndcX, ndcY := clip[0], clip[1]
	if clip[3] != 0 {
		ndcX /= clip[3]
		ndcY /= clip[3]
	}
	px = (ndcX + 1) * 0.5 * float32(width)
	py = (1 - ndcY) * 0.5 * float32(height)
	return px, py
}

// ProjectVertices maps an interleaved vertex list to pixel coordinates.
func ProjectVertices(mvp mgl32.Mat4, vertices []float32, width, height int) []mgl32.Vec2 {
	out := make([]mgl32.Vec2, 0, len(vertices)/2)
	for i := 0; i+1 < len(vertices); i += 2 {
		px, py := ToPixel(mvp, vertices[i], vertices[i+1], width, height)
		out = append(out, mgl32.Vec2{px, py})
	}
	return out
}

// PixelCircle returns the pixel-space centre and radius of a unit disc drawn
// with mvp. The radius is measured along x; with aspect correction on the disc
// is round so either axis gives the same value.
func PixelCircle(mvp mgl32.Mat4, width, height int) (cx, cy, r float32) {
	cx, cy = ToPixel(mvp, 0, 0, width, height)
	ex, ey := ToPixel(mvp, 1, 0, width, height)
	r = mgl32.Vec2{ex - cx, ey - cy}.Len()
	return cx, cy, r
}
