package colour

import "math"

// Luv is a CIE L*u*v* triple (D65). L nominally runs 0-100 but can exceed
// 100 for inputs brighter than the reference white.
type Luv struct {
	L, U, V float64
}

// xyzToUV computes the (u', v') chromaticity pair for an XYZ triple. When the
// X+15Y+3Z denominator is zero both coordinates are 0 by convention.
func xyzToUV(t XYZ) (u, v float64) {
	d := t.X + 15*t.Y + 3*t.Z
	if d == 0 {
		return 0, 0
	}
	return 4 * t.X / d, 9 * t.Y / d
}

// xyzToLuv converts XYZ to L*u*v* relative to the D65 white point.
func xyzToLuv(t XYZ) Luv {
	y := t.Y / whiteY
	var l float64
	if y > labEpsilon {
		l = 116*math.Cbrt(y) - 16
	} else {
		l = labKappa * y
	}
	u, v := xyzToUV(t)
	un, vn := xyzToUV(XYZ{X: whiteX, Y: whiteY, Z: whiteZ})
	return Luv{
		L: l,
		U: 13 * l * (u - un),
		V: 13 * l * (v - vn),
	}
}

// luvToXYZ converts L*u*v* back to XYZ via the intermediate (Y, u', v')
// representation. L = 8 corresponds exactly to Y/Yn = labEpsilon.
func luvToXYZ(t Luv) XYZ {
	if t.L == 0 {
		return XYZ{}
	}
	un, vn := xyzToUV(XYZ{X: whiteX, Y: whiteY, Z: whiteZ})
	u := t.U/(13*t.L) + un
	v := t.V/(13*t.L) + vn

	var y float64
	if t.L > 8 {
		f := (t.L + 16) / 116
		y = whiteY * f * f * f
	} else {
		y = whiteY * t.L / labKappa
	}
	if v == 0 {
		return XYZ{Y: y}
	}
	return XYZ{
		X: y * 9 * u / (4 * v),
		Y: y,
		Z: y * (12 - 3*u - 20*v) / (4 * v),
	}
}
