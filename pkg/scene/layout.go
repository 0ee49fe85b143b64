package scene

import (
	"math"
	"strings"

	"fisheye/internal/util"
)

// Layout constants, expressed in multiples of the line height.
const (
	lineHeightFactor = 1.4 // line height relative to the font size
	fadeFactor       = 2.0 // fade band at the top and bottom edges
	padFactor        = 2.0 // vertical padding appended to each text block
	marginFactor     = 1.0 // bottom margin below the first baseline
)

// MeasureFunc returns the rendered width in pixels of a candidate line.
type MeasureFunc func(s string) float64

// WrapWords breaks text into lines by greedy word wrap: each
// whitespace-delimited word is appended to the current line while the
// combined measured width stays within maxWidth. A single word wider than
// maxWidth becomes a line of its own; it is never split.
func WrapWords(measure MeasureFunc, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, len(words))
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// Layout is the wrapped form of the scroll text for one viewport
// configuration. It is derived fresh each frame; the font size and maximum
// line width change with the viewport, so nothing is cached across frames.
type Layout struct {
	Lines      []string
	LineHeight float64

	// BlockHeight is the wraparound period of the scroll loop: the vertical
	// extent of all lines plus padding.
	BlockHeight float64
}

// NewLayout wraps text to maxWidth and derives the block metrics.
func NewLayout(measure MeasureFunc, text string, maxWidth, lineHeight float64) Layout {
	lines := WrapWords(measure, text, maxWidth)
	return Layout{
		Lines:       lines,
		LineHeight:  lineHeight,
		BlockHeight: float64(len(lines))*lineHeight + padFactor*lineHeight,
	}
}

// Placement is one visible line with its baseline position and opacity.
type Placement struct {
	Line  string
	Y     float64
	Alpha float64
}

// Placements returns the lines to draw for scroll offset s on a viewport of
// the given height. Two consecutive blocks are emitted, the current cycle
// and the one immediately above it, so the loop point is seamless. Lines
// whose opacity reaches zero are skipped; that never changes visible output.
func (l Layout) Placements(s, height float64) []Placement {
	if len(l.Lines) == 0 {
		return nil
	}

	start := height - marginFactor*l.LineHeight - math.Mod(s, l.BlockHeight)
	fade := fadeFactor * l.LineHeight

	var out []Placement
	for _, base := range [2]float64{start - l.BlockHeight, start} {
		for i, line := range l.Lines {
			y := base + float64(i)*l.LineHeight
			alpha := EdgeAlpha(y, height, fade)
			if alpha <= 0 {
				continue
			}
			out = append(out, Placement{Line: line, Y: y, Alpha: alpha})
		}
	}
	return out
}

// EdgeAlpha is the opacity of a line with its baseline at y on a viewport of
// the given height: fully opaque in the middle, fading linearly to zero over
// the fade band at either edge.
func EdgeAlpha(y, height, fade float64) float64 {
	return util.Clamp(math.Min(y/fade, (height-y)/fade), 0, 1)
}
