// Package terminal draws the solar system into a character grid with tcell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"orrery/rendering/scene"
)

const (
	orbitRune = '·'
	discRune  = '█'
)

// Renderer rasterizes scene frames into a tcell screen. A cell is treated as two
// virtual pixels tall so circles keep their shape on typical fonts.
type Renderer struct {
	screen tcell.Screen
	meshes scene.Meshes
}

// NewRenderer wraps an initialised screen.
func NewRenderer(screen tcell.Screen, segments int) *Renderer {
	return &Renderer{
		screen: screen,
		meshes: scene.NewMeshes(segments),
	}
}

// NewScreen creates and initialises the real terminal screen with mouse support
// enabled for wheel zooming.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	return screen, nil
}

// ViewSize is the virtual pixel size to build frames for.
func (r *Renderer) ViewSize() (width, height int) {
	cols, rows := r.screen.Size()
	return cols, rows * 2
}

// Draw paints frame and the caption line; the caller calls Show.
func (r *Renderer) Draw(frame scene.Frame, caption string) {
	w, h := r.ViewSize()
	bg := rgb(frame.Background)
	base := tcell.StyleDefault.Background(bg)

	r.screen.SetStyle(base)
	r.screen.Clear()

	for _, call := range frame.Calls {
		style := base.Foreground(rgb(call.Color))
		mvp := frame.MVP(call)
		if call.Mesh == scene.MeshOrbit {
			pts := scene.ProjectVertices(mvp, r.meshes.Orbit, w, h)
			r.polyline(pts, style)
			continue
		}
		cx, cy, radius := scene.PixelCircle(mvp, w, h)
		r.disc(cx, cy, radius, style)
	}

	if caption != "" {
		style := base.Foreground(tcell.ColorWhite)
		cols, rows := r.screen.Size()
		for i, ch := range []rune(caption) {
			if i >= cols {
				break
			}
			r.screen.SetContent(i, rows-1, ch, nil, style)
		}
	}
}

// polyline plots a closed polyline by stepping each segment one virtual pixel at
// a time.
func (r *Renderer) polyline(pts []mgl32.Vec2, style tcell.Style) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		steps := int(math.Ceil(float64(max(abs(d[0]), abs(d[1])))))
		if steps < 1 {
			steps = 1
		}
		for s := 0; s <= steps; s++ {
			p := a.Add(d.Mul(float32(s) / float32(steps)))
			r.plot(p[0], p[1], orbitRune, style)
		}
	}
}

// disc fills every cell whose centre lies inside the circle. The centre cell is
// always drawn so small planets never vanish.
func (r *Renderer) disc(cx, cy, radius float32, style tcell.Style) {
	r.plot(cx, cy, discRune, style)

	x0, x1 := int(math.Floor(float64(cx-radius))), int(math.Ceil(float64(cx+radius)))
	y0, y1 := int(math.Floor(float64(cy-radius))), int(math.Ceil(float64(cy+radius)))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float32(x) + 0.5 - cx
			dy := float32(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				r.plot(float32(x)+0.5, float32(y)+0.5, discRune, style)
			}
		}
	}
}

func (r *Renderer) plot(px, py float32, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	col := int(math.Floor(float64(px)))
	row := int(math.Floor(float64(py) / 2))
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func rgb(c mgl32.Vec3) tcell.Color {
	return tcell.NewRGBColor(channel(c[0]), channel(c[1]), channel(c[2]))
}

func channel(v float32) int32 {
	return int32(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
