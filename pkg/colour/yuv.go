package colour

// YUV is a BT.601 luma/chroma triple on the 0-100 channel scale. The third
// component stores the negated U channel, so the internal order is
// (Y, V, -U). Downstream hue values depend on this sign convention; it must
// not be changed.
type YUV struct {
	Y, V, NegU float64
}

// BT.601 chroma scale factors.
const (
	yuvUScale = 0.492
	yuvVScale = 0.877
)

// rgbToYUV converts a colour to the (Y, V, -U) triple.
func rgbToYUV(c Colour) YUV {
	r := float64(c.R) / 2.55
	g := float64(c.G) / 2.55
	b := float64(c.B) / 2.55
	y := 0.299*r + 0.587*g + 0.114*b
	u := yuvUScale * (b - y)
	v := yuvVScale * (r - y)
	return YUV{Y: y, V: v, NegU: -u}
}

// yuvToRGB converts a (Y, V, -U) triple back to sRGB channel values on the
// 0-255 scale, unclamped so the gamut clipper can test the result.
func yuvToRGB(t YUV) (r, g, b float64) {
	u := -t.NegU
	r = t.Y + t.V/yuvVScale
	b = t.Y + u/yuvUScale
	g = (t.Y - 0.299*r - 0.114*b) / 0.587
	return r * 2.55, g * 2.55, b * 2.55
}
