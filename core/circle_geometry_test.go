package core

import (
	"math"
	"testing"
)

func TestCircleVerticesOutline(t *testing.T) {
	for _, n := range []int{64, 512} {
		v := CircleVertices(1.0, false, n)

		if got := VertexCount(v); got != n+1 {
			t.Fatalf("segments=%d: got %d vertices, want %d", n, got, n+1)
		}
		last := len(v) - 2
		if v[0] != v[last] || v[1] != v[last+1] {
			t.Errorf("segments=%d: loop not closed: first (%v, %v), last (%v, %v)",
				n, v[0], v[1], v[last], v[last+1])
		}
		if v[0] != 1 || v[1] != 0 {
			t.Errorf("segments=%d: first sample (%v, %v), want (1, 0)", n, v[0], v[1])
		}
	}
}

func TestCircleVerticesFilled(t *testing.T) {
	for _, n := range []int{64, 512} {
		v := CircleVertices(1.0, true, n)

		if got := VertexCount(v); got != n+2 {
			t.Fatalf("segments=%d: got %d vertices, want %d", n, got, n+2)
		}
		if v[0] != 0 || v[1] != 0 {
			t.Errorf("segments=%d: centre (%v, %v), want (0, 0)", n, v[0], v[1])
		}
		last := len(v) - 2
		if v[2] != v[last] || v[3] != v[last+1] {
			t.Errorf("segments=%d: rim not closed", n)
		}
	}
}

func TestCircleVerticesOnCircle(t *testing.T) {
	const radius = 2.5
	v := CircleVertices(radius, false, 64)
	for i := 0; i < len(v); i += 2 {
		r := math.Hypot(float64(v[i]), float64(v[i+1]))
		if math.Abs(r-radius) > 1e-5 {
			t.Fatalf("vertex %d at distance %v, want %v", i/2, r, radius)
		}
	}

	// a quarter of the way round is straight up
	qx, qy := v[2*16], v[2*16+1]
	if math.Abs(float64(qx)) > 1e-5 || math.Abs(float64(qy)-radius) > 1e-5 {
		t.Errorf("sample 16 = (%v, %v), want (0, %v)", qx, qy, radius)
	}
}

func TestCircleVerticesMinimumSegments(t *testing.T) {
	v := CircleVertices(1.0, false, 0)
	if got := VertexCount(v); got != MinCircleSegments+1 {
		t.Errorf("got %d vertices, want %d", got, MinCircleSegments+1)
	}
}

func TestCircleVerticesDeterministic(t *testing.T) {
	a := CircleVertices(1.0, true, 64)
	b := CircleVertices(1.0, true, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vertex data differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
