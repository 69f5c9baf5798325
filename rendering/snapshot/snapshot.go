// Package snapshot renders frames off-screen with the gg software rasterizer and
// writes them as PNG images. It needs neither a window nor a GPU.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"orrery/core"
	"orrery/rendering/scene"
)

// Renderer draws scene frames into images of a fixed size.
type Renderer struct {
	width, height int
	meshes        scene.Meshes
	lineWidth     float64
}

// New prepares a renderer; segments is the circle sampling used for every mesh.
func New(width, height, segments int) *Renderer {
	gg.SetLogger(slog.Default())
	return &Renderer{
		width:     width,
		height:    height,
		meshes:    scene.NewMeshes(segments),
		lineWidth: 1.0,
	}
}

// Size returns the image size in pixels.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Draw rasterizes frame. A non-empty caption is printed along the bottom edge.
func (r *Renderer) Draw(frame scene.Frame, caption string) (*image.RGBA, error) {
	dc := gg.NewContext(r.width, r.height)
	defer dc.Close()

	bg := frame.Background
	dc.ClearWithColor(gg.RGB(float64(bg[0]), float64(bg[1]), float64(bg[2])))
	dc.SetLineWidth(r.lineWidth)

	for _, call := range frame.Calls {
		pts := scene.ProjectVertices(frame.MVP(call), r.meshes.Vertices(call.Mesh), r.width, r.height)
		if call.Mesh == scene.MeshDisc {
			// drop the fan centre, the rim alone bounds the disc
			pts = pts[1:]
		}
		if len(pts) < 2 {
			continue
		}

		dc.SetRGB(float64(call.Color[0]), float64(call.Color[1]), float64(call.Color[2]))
		dc.MoveTo(float64(pts[0][0]), float64(pts[0][1]))
		for _, p := range pts[1:] {
			dc.LineTo(float64(p[0]), float64(p[1]))
		}
		dc.ClosePath()

		var err error
		if call.Mesh == scene.MeshOrbit {
			err = dc.Stroke()
		} else {
			err = dc.Fill()
		}
		if err != nil {
			return nil, fmt.Errorf("drawing %s: %w", call.Label, err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)

	if caption != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.RGBA{220, 220, 220, 255}),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(8, r.height-8),
		}
		d.DrawString(caption)
	}
	return img, nil
}

// WritePNG draws frame and encodes it to w.
func (r *Renderer) WritePNG(w io.Writer, frame scene.Frame, caption string) error {
	img, err := r.Draw(frame, caption)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG draws frame into a PNG file at path.
func (r *Renderer) SavePNG(path string, frame scene.Frame, caption string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := r.WritePNG(f, frame, caption); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	slog.Info("snapshot written", "path", path, "width", r.width, "height", r.height)
	return nil
}

// Simulate advances s by seconds of real time in fixed steps of 1/fps, the way
// an interactive loop running at that frame rate would.
func Simulate(s *core.State, seconds float64, fps int) {
	if seconds <= 0 {
		return
	}
	if fps <= 0 {
		fps = 60
	}
	step := 1.0 / float64(fps)
	for elapsed := 0.0; elapsed < seconds; elapsed += step {
		s.Advance(min(step, seconds-elapsed))
	}
}
