package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// PixelToNDC maps a pixel position (top-left origin) into normalised device
// coordinates.
func PixelToNDC(px, py float32, width, height int) (x, y float32) {
	x = 2*px/float32(width) - 1
	y = 1 - 2*py/float32(height)
	return x, y
}

// Pick returns the topmost disc under the pixel position. Discs are tested in
// reverse draw order so a planet wins over the sun it overlaps. Orbits are
// never picked.
func Pick(f *Frame, px, py float32, width, height int) (DrawCall, bool) {
	if width <= 0 || height <= 0 {
		return DrawCall{}, false
	}
	x, y := PixelToNDC(px, py, width, height)

	for i := len(f.Calls) - 1; i >= 0; i-- {
		call := f.Calls[i]
		if call.Mesh != MeshDisc {
			continue
		}
		mvp := f.MVP(call)
		if mvp.Det() == 0 {
			continue
		}
		local := mvp.Inv().Mul4x1(mgl32.Vec4{x, y, 0, 1})
		if local[3] != 0 {
			local = local.Mul(1 / local[3])
		}
		if local[0]*local[0]+local[1]*local[1] <= 1 {
			return call, true
		}
	}
	return DrawCall{}, false
}
