package colour

import "math"

// LCh is the polar form of a Cartesian colour triple: lightness, chroma
// (distance from the achromatic axis) and hue.
type LCh struct {
	L float64
	C float64
	H Angle
}

// achromaticEpsilon is the a/b magnitude below which a colour is treated as
// achromatic and its hue defined as 0, avoiding atan2(0, 0) instability.
const achromaticEpsilon = 0.0001

// polarise converts a Cartesian (lightness, a, b) triple to LCh.
func polarise(l, a, b float64) LCh {
	c := math.Sqrt(a*a + b*b)
	h := 0.0
	if math.Abs(a) > achromaticEpsilon || math.Abs(b) > achromaticEpsilon {
		h = math.Atan2(b, a)
	}
	return LCh{L: l, C: c, H: Rad(h).Normalised()}
}

// cartesian is the direct inverse of polarise.
func cartesian(t LCh) (l, a, b float64) {
	h := t.H.Radians()
	return t.L, math.Cos(h) * t.C, math.Sin(h) * t.C
}

// ToLCh converts a colour to its LCh representation in the given colourspace.
//
// For lab and luv the conversion chains the XYZ matrix transforms. For hsl
// the native hue/saturation/lightness values are read directly. For yuv the
// polar step is applied to the (Y, V, -U) triple. For hslab and hsluv the
// underlying lab/luv chroma is rescaled to a 0-100 range relative to the
// maximum in-gamut chroma at the colour's lightness and hue, so equal chroma
// values mean "equal fraction of what is reachable", not equal distance.
func ToLCh(c Colour, space Space) (LCh, error) {
	switch space {
	case SpaceLab:
		lab := xyzToLab(rgbToXYZ(c))
		return polarise(lab.L, lab.A, lab.B), nil
	case SpaceLuv:
		luv := xyzToLuv(rgbToXYZ(c))
		return polarise(luv.L, luv.U, luv.V), nil
	case SpaceHSL:
		h, s, l := rgbToHSL(c)
		return LCh{L: l, C: s, H: Deg(h)}, nil
	case SpaceYUV:
		t := rgbToYUV(c)
		return polarise(t.Y, t.V, t.NegU), nil
	case SpaceHSLab, SpaceHSLuv:
		base, err := ToLCh(c, space.base())
		if err != nil {
			return LCh{}, err
		}
		max, err := MaxChroma(base.L, base.H, space.base())
		if err != nil {
			return LCh{}, err
		}
		if max > 0 {
			base.C = base.C / max * 100
		}
		return base, nil
	default:
		return LCh{}, invalidSpace(space)
	}
}
