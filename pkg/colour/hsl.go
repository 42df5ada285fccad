package colour

import "math"

// HSL conversions. Hue is in degrees, saturation and lightness on the 0-100
// scale. HSL is a native RGB transform: no Lab or Luv math is involved.

// rgbToHSL converts a colour to (hue, saturation, lightness).
func rgbToHSL(c Colour) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2

	if delta == 0 {
		// Achromatic.
		return 0, 0, l * 100
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return h, s * 100, l * 100
}

// hslToRGB converts (hue, saturation, lightness) to sRGB channel values on
// the 0-255 scale. Saturation above 100 produces out-of-range channels,
// which the gamut clipper relies on.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	s /= 100
	l /= 100
	if s == 0 {
		v := l * 255
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r = hueToChannel(p, q, h+120) * 255
	g = hueToChannel(p, q, h) * 255
	b = hueToChannel(p, q, h-120) * 255
	return r, g, b
}

// hueToChannel maps one hue sector to a channel intensity.
func hueToChannel(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}
	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	}
	return p
}
