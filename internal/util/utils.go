package util

// Lerp performs linear interpolation between a and b with t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Smoothstep performs Hermite interpolation between two edges, matching the
// GLSL builtin of the same name. edge0 may be greater than edge1, in which
// case the result falls from 1 to 0 as x moves from edge1 to edge0.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
