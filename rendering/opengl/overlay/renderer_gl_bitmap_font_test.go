package overlay

import "testing"

func inked(pix []uint8) int {
	n := 0
	for _, a := range pix {
		if a != 0 {
			n++
		}
	}
	return n
}

func TestRasterizeText(t *testing.T) {
	blank := RasterizeText("", CaptionWidth, CaptionHeight)
	if n := inked(blank.Pix); n != 0 {
		t.Errorf("empty text inked %d pixels", n)
	}

	img := RasterizeText("t=1.00", CaptionWidth, CaptionHeight)
	if got := img.Bounds().Dx(); got != CaptionWidth {
		t.Errorf("width = %d, want %d", got, CaptionWidth)
	}
	if n := inked(img.Pix); n == 0 {
		t.Fatal("text left the image blank")
	}

	// 6 glyphs of 7 pixels, nothing drawn past them
	for y := 0; y < CaptionHeight; y++ {
		for x := 1 + 6*7; x < CaptionWidth; x++ {
			if a := img.AlphaAt(x, y).A; a != 0 {
				t.Fatalf("pixel (%d,%d) inked beyond the text", x, y)
			}
		}
	}
}

func TestCaptionQuad(t *testing.T) {
	q := CaptionQuad(600)
	if len(q) != 6*4 {
		t.Fatalf("got %d floats, want 24", len(q))
	}
	// first vertex is the top-left corner, mapped to the texture's first row
	if q[0] != captionMargin || q[1] != 600-captionMargin-CaptionHeight || q[2] != 0 || q[3] != 0 {
		t.Errorf("top-left vertex = %v", q[:4])
	}
	// fifth vertex is the bottom-right corner
	if q[16] != captionMargin+CaptionWidth || q[17] != 600-captionMargin || q[18] != 1 || q[19] != 1 {
		t.Errorf("bottom-right vertex = %v", q[16:20])
	}
}
