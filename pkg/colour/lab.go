package colour

import "math"

// Lab is a CIE L*a*b* triple (D65). L runs 0-100; a and b are unbounded.
type Lab struct {
	L, A, B float64
}

// CIE constants shared by the Lab and Luv nonlinearities:
// labEpsilon = (6/29)^3 is the breakpoint between the cube-root and linear
// segments, labKappa the slope of the Luv linear segment.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// labF is the CIE forward nonlinearity: cube root above the breakpoint, the
// linear segment (841/108)t + 4/29 below it.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (841.0/108.0)*t + 4.0/29.0
}

// labFInv is the algebraic inverse of labF.
func labFInv(ft float64) float64 {
	if t := ft * ft * ft; t > labEpsilon {
		return t
	}
	return (ft - 4.0/29.0) * (108.0 / 841.0)
}

// xyzToLab converts XYZ to L*a*b* relative to the D65 white point.
func xyzToLab(t XYZ) Lab {
	fx := labF(t.X / whiteX)
	fy := labF(t.Y / whiteY)
	fz := labF(t.Z / whiteZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// labToXYZ converts L*a*b* back to XYZ relative to the D65 white point.
func labToXYZ(t Lab) XYZ {
	fy := (t.L + 16) / 116
	fx := fy + t.A/500
	fz := fy - t.B/200
	return XYZ{
		X: labFInv(fx) * whiteX,
		Y: labFInv(fy) * whiteY,
		Z: labFInv(fz) * whiteZ,
	}
}
