package colour

// Gamut clipping: colours constructed from LCh coordinates can fall outside
// what sRGB represents. The routines here find the chroma boundary by
// bisection and reduce chroma (never lightness or hue) until the colour fits.

// Search bounds and tolerances. The maxChromaTolerance of 1.0 is part of the
// published contract for hslab/hsluv chroma values: tightening it would shift
// the 0-100 rescaled chroma of every colour in those spaces.
const (
	maxChromaUpperBound = 200.0
	maxChromaTolerance  = 1.0
	clipTolerance       = 0.01
)

// lchToRGB computes the exact, unclamped sRGB channels for an LCh triple in
// the given colourspace. Channels outside [0, 255] mean the triple is out of
// gamut.
func lchToRGB(l, c float64, h Angle, space Space) (r, g, b float64, err error) {
	switch space {
	case SpaceLab:
		_, a, bb := cartesian(LCh{L: l, C: c, H: h})
		r, g, b = xyzToRGB(labToXYZ(Lab{L: l, A: a, B: bb}))
		return r, g, b, nil
	case SpaceLuv:
		_, u, v := cartesian(LCh{L: l, C: c, H: h})
		r, g, b = xyzToRGB(luvToXYZ(Luv{L: l, U: u, V: v}))
		return r, g, b, nil
	case SpaceHSL:
		r, g, b = hslToRGB(h.Degrees(), c, l)
		return r, g, b, nil
	case SpaceYUV:
		_, v, negU := cartesian(LCh{L: l, C: c, H: h})
		r, g, b = yuvToRGB(YUV{Y: l, V: v, NegU: negU})
		return r, g, b, nil
	case SpaceHSLab, SpaceHSLuv:
		// Chroma is a percentage of the in-gamut maximum at this
		// lightness and hue.
		max, merr := MaxChroma(l, h, space.base())
		if merr != nil {
			return 0, 0, 0, merr
		}
		return lchToRGB(l, c/100*max, h, space.base())
	default:
		return 0, 0, 0, invalidSpace(space)
	}
}

// inGamut reports whether all three channel values are representable.
func inGamut(r, g, b float64) bool {
	return r >= 0 && r <= 255 && g >= 0 && g <= 255 && b >= 0 && b <= 255
}

// MaxChroma finds the maximum in-gamut chroma for the given lightness and
// hue by bisecting over [0, 200] until the interval is no wider than 1 chroma
// unit, then returns the midpoint of the final interval. The boundary is
// therefore located to within one unit; callers must not assume anything
// finer. For hslab and hsluv the search runs in the underlying lab or luv
// space.
func MaxChroma(l float64, h Angle, space Space) (float64, error) {
	if !space.valid() {
		return 0, invalidSpace(space)
	}
	base := space.base()
	lo, hi := 0.0, maxChromaUpperBound
	for hi-lo > maxChromaTolerance {
		mid := (lo + hi) / 2
		r, g, b, err := lchToRGB(l, mid, h, base)
		if err != nil {
			return 0, err
		}
		if inGamut(r, g, b) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}

// LCH constructs an opaque colour from lightness, chroma and hue in the
// given colourspace, clipping chroma into gamut when needed.
func LCH(l, c float64, h Angle, space Space) (Colour, error) {
	return LCHA(l, c, h, 1, space)
}

// LCHA constructs a colour from lightness, chroma, hue and alpha.
//
// The exact channels for the requested chroma are computed first; when they
// are already representable the colour is returned directly with no search.
// Otherwise chroma is bisected down towards 0 until the interval narrows to
// 0.01, and the final colour is built from the highest chroma known to be in
// gamut. Chroma is only ever reduced, and the returned channels are rounded
// into the 0-255 range by construction.
func LCHA(l, c float64, h Angle, alpha float64, space Space) (Colour, error) {
	r, g, b, err := lchToRGB(l, c, h, space)
	if err != nil {
		return Colour{}, err
	}
	if inGamut(r, g, b) {
		return fromFloats(r, g, b, alpha), nil
	}

	lo, hi := 0.0, c
	for hi-lo > clipTolerance {
		mid := (lo + hi) / 2
		mr, mg, mb, err := lchToRGB(l, mid, h, space)
		if err != nil {
			return Colour{}, err
		}
		if inGamut(mr, mg, mb) {
			lo = mid
		} else {
			hi = mid
		}
	}
	r, g, b, err = lchToRGB(l, lo, h, space)
	if err != nil {
		return Colour{}, err
	}
	return fromFloats(r, g, b, alpha), nil
}
