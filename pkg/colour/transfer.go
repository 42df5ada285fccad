package colour

import "math"

// The sRGB transfer function, operating on channel values scaled to [0, 100].
// Breakpoints and coefficients follow IEC 61966-2-1 exactly.

// srgbToLinear removes sRGB gamma from an encoded channel value in [0, 100].
func srgbToLinear(v float64) float64 {
	v /= 100
	if v <= 0.04045 {
		v /= 12.92
	} else {
		v = math.Pow((v+0.055)/1.055, 2.4)
	}
	return v * 100
}

// linearToSrgb applies sRGB gamma to a linear channel value in [0, 100].
func linearToSrgb(v float64) float64 {
	v /= 100
	if v <= 0.0031308 {
		v *= 12.92
	} else {
		v = 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return v * 100
}
