package scene

import (
	"math"

	"fisheye/internal/util"
)

// Vignette shading range.
const (
	vignetteMin  = 0.85
	vignetteNear = 0.2 // squared radius below which brightness is full
	vignetteFar  = 0.9 // squared radius beyond which brightness is vignetteMin
)

// uvCenter is the normalized coordinate of the viewport center.
const uvCenter = 0.5

// Params are the radial distortion coefficients, fixed for the lifetime of a
// scene. Params is the reference model for the fragment shader in
// shader_sources.go; the two must describe the same mapping.
type Params struct {
	K     float64 // quadratic term; negative bulges the image outward
	Kcube float64 // cubic term
}

// Factor returns the radial scale factor for a pixel at squared distance r2
// from the viewport center. At the exact center the factor is 1 for any
// coefficients, so the center pixel is never displaced.
func (p Params) Factor(r2 float64) float64 {
	return 1 + r2*(p.K+p.Kcube*math.Sqrt(r2))
}

// Sample maps a destination coordinate (u, v) in [0,1]² to the source
// coordinate to sample the scene texture at. ok is false when either axis of
// the source coordinate leaves [0,1]; such pixels are painted opaque black
// rather than clamped or wrapped.
func (p Params) Sample(u, v float64) (su, sv float64, ok bool) {
	cu := u - uvCenter
	cv := v - uvCenter
	f := p.Factor(cu*cu + cv*cv)
	su = f*cu + uvCenter
	sv = f*cv + uvCenter
	ok = su >= 0 && su <= 1 && sv >= 0 && sv <= 1
	return su, sv, ok
}

// Vignette returns the brightness multiplier for a pixel at squared distance
// r2 from the center: full brightness up to vignetteNear, darkened to
// vignetteMin from vignetteFar outward, smoothly interpolated between.
func Vignette(r2 float64) float64 {
	return util.Lerp(vignetteMin, 1.0, util.Smoothstep(vignetteFar, vignetteNear, r2))
}
