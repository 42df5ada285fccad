package colour

// XYZ is a CIE XYZ tristimulus triple, scaled so each component runs 0-100
// rather than 0-1.
type XYZ struct {
	X, Y, Z float64
}

// The D65 reference white in XYZ on the 0-100 scale. Every Lab and Luv
// transform is relative to this white point; it is never mutated.
const (
	whiteX = 95.05
	whiteY = 100.0
	whiteZ = 108.9
)

// rgbToXYZ converts a colour to CIE XYZ (D65) via the sRGB matrix.
func rgbToXYZ(c Colour) XYZ {
	r := srgbToLinear(float64(c.R) / 2.55)
	g := srgbToLinear(float64(c.G) / 2.55)
	b := srgbToLinear(float64(c.B) / 2.55)
	return XYZ{
		X: 0.4124*r + 0.3576*g + 0.1805*b,
		Y: 0.2126*r + 0.7152*g + 0.0722*b,
		Z: 0.0193*r + 0.1192*g + 0.9505*b,
	}
}

// xyzToRGB converts CIE XYZ back to sRGB channel values on the 0-255 scale.
// The result is not clamped: out-of-gamut XYZ triples produce channels
// outside [0, 255], which is what the gamut clipper tests for.
func xyzToRGB(t XYZ) (r, g, b float64) {
	rl := 3.2406*t.X - 1.5372*t.Y - 0.4986*t.Z
	gl := -0.9689*t.X + 1.8758*t.Y + 0.0415*t.Z
	bl := 0.0557*t.X - 0.2040*t.Y + 1.0570*t.Z
	r = linearToSrgb(rl) * 2.55
	g = linearToSrgb(gl) * 2.55
	b = linearToSrgb(bl) * 2.55
	return r, g, b
}
