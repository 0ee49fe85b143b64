package scene

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// Font sizing: the font scales with the viewport height, with a smaller
// share and a wider line box on narrow viewports.
const (
	minFontPx        = 16.0
	fontShare        = 0.05
	fontShareNarrow  = 0.04
	lineShare        = 0.65
	lineShareNarrow  = 0.8
	narrowBreakpoint = 768.0 // logical pixels
)

// Highlight geometry.
const (
	highlightCenterX = 0.5
	highlightCenterY = 0.85
	highlightRadius  = 0.25 // share of max(W, H)
)

// Drop shadow under each text line.
const (
	shadowOffsetPx = 2.0
	shadowAlpha    = 0.55
)

// Background palette.
var (
	gradientTop    = gg.RGBA{R: 0.15, G: 0.02, B: 0.02, A: 1}
	gradientMiddle = gg.RGBA{R: 0.72, G: 0.11, B: 0.09, A: 1}
	gradientBottom = gg.RGBA{R: 0.39, G: 0.06, B: 0.06, A: 1}
	highlightColor = gg.RGBA{R: 1.0, G: 0.93, B: 0.85, A: 0.35}
	textColor      = gg.RGBA{R: 0.99, G: 0.94, B: 0.89, A: 1}
)

// Compositor paints one frame of the scene into a flat RGBA image: the
// gradient background, the soft highlight and the wrapped scrolling text.
// The image is written once per frame and read once by the renderer's
// texture upload, never concurrently.
type Compositor struct {
	ctx    *gg.Context
	source *text.FontSource

	width  int
	height int
	scale  float64 // device pixel ratio, already clamped by the driver
}

// NewCompositor creates the drawing surface and loads the text face. The
// embedded bold face is used unless fontPath points at a TTF/OTF file.
func NewCompositor(width, height int, scale float64, fontPath string) (*Compositor, error) {
	var source *text.FontSource
	var err error
	if fontPath != "" {
		source, err = text.NewFontSourceFromFile(fontPath)
	} else {
		source, err = text.NewFontSource(gobold.TTF)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load text face: %v", err)
	}

	if width <= 0 || height <= 0 {
		source.Close()
		return nil, fmt.Errorf("invalid surface dimensions %dx%d", width, height)
	}

	return &Compositor{
		ctx:    gg.NewContext(width, height),
		source: source,
		width:  width,
		height: height,
		scale:  scale,
	}, nil
}

// Resize adapts the drawing surface to new viewport dimensions. Resizing to
// the current dimensions leaves the surface untouched.
func (c *Compositor) Resize(width, height int, scale float64) error {
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("failed to resize drawing surface: %v", err)
	}
	c.width = width
	c.height = height
	c.scale = scale
	return nil
}

// Composite paints one frame for the given scroll offset and returns the
// resulting image. The returned image matches the current viewport
// dimensions and is fully opaque.
func (c *Compositor) Composite(paragraph string, offset float64) *image.RGBA {
	w := float64(c.width)
	h := float64(c.height)

	c.paintBackground(w, h)
	c.paintText(paragraph, offset, w, h)

	return c.ctx.Image().(*image.RGBA)
}

// paintBackground fills the gradient and the soft circular highlight
func (c *Compositor) paintBackground(w, h float64) {
	grad := gg.NewLinearGradientBrush(0, 0, 0, h)
	grad.AddColorStop(0, gradientTop)
	grad.AddColorStop(0.5, gradientMiddle)
	grad.AddColorStop(1, gradientBottom)
	c.ctx.SetFillBrush(grad)
	c.ctx.DrawRectangle(0, 0, w, h)
	c.ctx.Fill()

	cx := highlightCenterX * w
	cy := highlightCenterY * h
	radius := highlightRadius * math.Max(w, h)
	hl := gg.NewRadialGradientBrush(cx, cy, 0, radius)
	hl.AddColorStop(0, highlightColor)
	hl.AddColorStop(1, gg.RGBA{R: highlightColor.R, G: highlightColor.G, B: highlightColor.B, A: 0})
	c.ctx.SetFillBrush(hl)
	c.ctx.DrawCircle(cx, cy, radius)
	c.ctx.Fill()
}

// paintText lays the paragraph out for the current viewport and draws the
// visible lines of the two consecutive scroll blocks.
func (c *Compositor) paintText(paragraph string, offset float64, w, h float64) {
	fontPx := c.fontSize()
	c.ctx.SetFont(c.source.Face(fontPx))

	measure := func(s string) float64 {
		lw, _ := c.ctx.MeasureString(s)
		return lw
	}
	layout := NewLayout(measure, paragraph, c.maxLineWidth(), fontPx*lineHeightFactor)

	for _, p := range layout.Placements(offset, h) {
		c.ctx.SetRGBA(0, 0, 0, shadowAlpha*p.Alpha)
		c.ctx.DrawStringAnchored(p.Line, w/2+shadowOffsetPx, p.Y+shadowOffsetPx, 0.5, 0)

		c.ctx.SetRGBA(textColor.R, textColor.G, textColor.B, p.Alpha)
		c.ctx.DrawStringAnchored(p.Line, w/2, p.Y, 0.5, 0)
	}
}

// Metrics reports the wrapped line count and scroll block height the
// current dimensions produce for paragraph.
func (c *Compositor) Metrics(paragraph string) (lines int, blockHeight float64) {
	fontPx := c.fontSize()
	c.ctx.SetFont(c.source.Face(fontPx))

	measure := func(s string) float64 {
		lw, _ := c.ctx.MeasureString(s)
		return lw
	}
	layout := NewLayout(measure, paragraph, c.maxLineWidth(), fontPx*lineHeightFactor)
	return len(layout.Lines), layout.BlockHeight
}

// narrow reports whether the viewport is below the narrow breakpoint in
// logical pixels.
func (c *Compositor) narrow() bool {
	return float64(c.width)/c.scale < narrowBreakpoint
}

// fontSize derives the text size from the viewport height
func (c *Compositor) fontSize() float64 {
	share := fontShare
	if c.narrow() {
		share = fontShareNarrow
	}
	return math.Max(minFontPx, share*float64(c.height))
}

// maxLineWidth is the wrap width for the current viewport
func (c *Compositor) maxLineWidth() float64 {
	share := lineShare
	if c.narrow() {
		share = lineShareNarrow
	}
	return share * float64(c.width)
}

// Width returns the surface width in device pixels
func (c *Compositor) Width() int { return c.width }

// Height returns the surface height in device pixels
func (c *Compositor) Height() int { return c.height }

// Close releases the drawing surface and font resources
func (c *Compositor) Close() {
	c.ctx.Close()
	c.source.Close()
}
