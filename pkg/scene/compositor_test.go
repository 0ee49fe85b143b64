package scene

import (
	"testing"
)

func newTestCompositor(t *testing.T, width, height int, scale float64) *Compositor {
	t.Helper()
	c, err := NewCompositor(width, height, scale, "")
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestCompositeProducesOpaqueImage(t *testing.T) {
	c := newTestCompositor(t, 320, 240, 1.0)

	img := c.Composite(DefaultText, 0)
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("image size = %dx%d, want 320x240", b.Dx(), b.Dy())
	}

	for _, p := range [][2]int{{0, 0}, {319, 0}, {160, 120}, {0, 239}, {319, 239}} {
		if a := img.RGBAAt(p[0], p[1]).A; a != 255 {
			t.Errorf("pixel (%d, %d) alpha = %d, want opaque", p[0], p[1], a)
		}
	}
}

func TestCompositeGradient(t *testing.T) {
	c := newTestCompositor(t, 200, 400, 1.0)

	// An empty paragraph leaves only the background, so rows sample the
	// gradient directly.
	img := c.Composite(" ", 0)

	top := img.RGBAAt(5, 2)
	middle := img.RGBAAt(5, 200)
	bottom := img.RGBAAt(5, 397)

	if top.R >= middle.R {
		t.Errorf("top stop (R=%d) should be darker than the middle stop (R=%d)", top.R, middle.R)
	}
	if bottom.R >= middle.R {
		t.Errorf("bottom stop (R=%d) should be darker than the middle stop (R=%d)", bottom.R, middle.R)
	}
	// A red palette throughout.
	for _, px := range []struct {
		name string
		r, g uint8
	}{{"top", top.R, top.G}, {"middle", middle.R, middle.G}, {"bottom", bottom.R, bottom.G}} {
		if px.r <= px.g {
			t.Errorf("%s pixel is not red-dominant: R=%d G=%d", px.name, px.r, px.g)
		}
	}
}

func TestCompositeScrollMovesText(t *testing.T) {
	c := newTestCompositor(t, 320, 240, 1.0)

	a := c.Composite(DefaultText, 0)
	b := c.Composite(DefaultText, 37)

	different := false
	for y := 0; y < 240 && !different; y++ {
		for x := 0; x < 320; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				different = true
				break
			}
		}
	}
	if !different {
		t.Error("two different scroll offsets produced identical frames")
	}
}

func TestCompositorResize(t *testing.T) {
	c := newTestCompositor(t, 320, 240, 1.0)

	if err := c.Resize(100, 80, 1.0); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if c.Width() != 100 || c.Height() != 80 {
		t.Fatalf("compositor reports %dx%d after resize, want 100x80", c.Width(), c.Height())
	}
	img := c.Composite(DefaultText, 0)
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Fatalf("image size after resize = %dx%d, want 100x80", b.Dx(), b.Dy())
	}

	// Resizing to the current dimensions is a no-op.
	if err := c.Resize(100, 80, 1.0); err != nil {
		t.Fatalf("identical Resize: %v", err)
	}
}

func TestCompositorMetrics(t *testing.T) {
	c := newTestCompositor(t, 640, 480, 1.0)

	lines, block := c.Metrics(DefaultText)
	if lines < 2 {
		t.Fatalf("paragraph wrapped to %d lines, want several", lines)
	}
	lineHeight := c.fontSize() * lineHeightFactor
	want := float64(lines)*lineHeight + padFactor*lineHeight
	if block != want {
		t.Errorf("block height = %v, want %v for %d lines", block, want, lines)
	}

	// A longer paragraph wraps to more lines.
	longer, _ := c.Metrics(DefaultText + " " + DefaultText)
	if longer <= lines {
		t.Errorf("doubled paragraph wrapped to %d lines, want more than %d", longer, lines)
	}
}

func TestFontSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		scale         float64
		want          float64
	}{
		{"desktop", 1920, 1080, 1.0, 54},          // 0.05 * H
		{"narrow", 500, 800, 1.0, 32},             // 0.04 * H below the breakpoint
		{"narrow by scale", 1000, 800, 2.0, 32},   // 1000 device px is 500 logical px
		{"floor applies", 1920, 200, 1.0, 16},     // 0.05 * 200 = 10, floored
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCompositor(t, tt.width, tt.height, tt.scale)
			if got := c.fontSize(); got != tt.want {
				t.Errorf("fontSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxLineWidth(t *testing.T) {
	desktop := newTestCompositor(t, 1000, 800, 1.0)
	if got := desktop.maxLineWidth(); got != 650 {
		t.Errorf("desktop maxLineWidth = %v, want 650", got)
	}

	narrow := newTestCompositor(t, 600, 800, 1.0)
	if got := narrow.maxLineWidth(); got != 480 {
		t.Errorf("narrow maxLineWidth = %v, want 480", got)
	}
}

func TestNewCompositorRejectsBadDimensions(t *testing.T) {
	if _, err := NewCompositor(0, 240, 1.0, ""); err == nil {
		t.Error("expected an error for zero width")
	}
	if _, err := NewCompositor(320, -1, 1.0, ""); err == nil {
		t.Error("expected an error for negative height")
	}
}

func TestNewCompositorMissingFontFile(t *testing.T) {
	if _, err := NewCompositor(320, 240, 1.0, "/nonexistent/font.ttf"); err == nil {
		t.Error("expected an error for a missing font override")
	}
}
