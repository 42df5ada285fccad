package colour

import (
	"math"
	"strconv"

	"github.com/hashicorp/go-hclog"
)

// WCAG contrast calculations: relative luminance, source-over compositing,
// contrast ratios under transparency, and contrast-preserving colour search.
// This subsystem depends only on the sRGB transfer function, not on the
// Lab/Luv pipeline.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.

// srgbLUT maps each 8-bit channel value to its linear-light intensity in
// [0, 1] via the exact sRGB EOTF. Read-only after initialisation.
var srgbLUT = buildSRGBLUT()

func buildSRGBLUT() [256]float64 {
	var lut [256]float64
	for i := range lut {
		v := float64(i) / 255
		if v <= 0.04045 {
			lut[i] = v / 12.92
		} else {
			lut[i] = math.Pow((v+0.055)/1.055, 2.4)
		}
	}
	return lut
}

// Luma returns the WCAG relative luminance of a colour in [0, 1] using the
// BT.709 weights in linear-light space. Alpha is ignored.
func Luma(c Colour) float64 {
	return 0.2126*srgbLUT[c.R] + 0.7152*srgbLUT[c.G] + 0.0722*srgbLUT[c.B]
}

// AlphaBlend composites a foreground colour over a background using standard
// source-over compositing. When both alphas are zero there is nothing to
// composite and the foreground is returned unchanged.
func AlphaBlend(fg, bg Colour) Colour {
	if fg.A == 0 && bg.A == 0 {
		return fg
	}
	a := fg.A + (1-fg.A)*bg.A
	blend := func(f, b uint8) float64 {
		return (fg.A*float64(f) + (1-fg.A)*bg.A*float64(b)) / a
	}
	return fromFloats(blend(fg.R, bg.R), blend(fg.G, bg.G), blend(fg.B, bg.B), a)
}

// AlphaBlendWhite composites a colour over an opaque white background, the
// conventional default backdrop.
func AlphaBlendWhite(fg Colour) Colour {
	return AlphaBlend(fg, White)
}

// contrastOpaque is the WCAG contrast ratio for a fully opaque background:
// the foreground is composited onto the background first, then
// (lighter + 0.05) / (darker + 0.05).
func contrastOpaque(fg, bg Colour) float64 {
	l1 := Luma(bg)
	l2 := Luma(AlphaBlend(fg, bg))
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastMin returns the minimum contrast ratio achievable between fg and
// bg over all backdrops bg may be composited onto. For an opaque background
// that is just the plain ratio. Otherwise only the two extreme backdrops
// matter: if even the white-backed composite stays darker than fg, or the
// black-backed composite stays lighter, that extreme realises the minimum.
// When fg's luma lies between the two extremes some admissible backdrop
// matches it exactly and the minimum is 1.
func ContrastMin(fg, bg Colour) float64 {
	if bg.A >= 1 {
		return contrastOpaque(fg, bg)
	}
	onWhite := AlphaBlend(bg, White)
	onBlack := AlphaBlend(bg, Black)
	lf := Luma(fg)
	if Luma(onWhite) < lf {
		return contrastOpaque(fg, onWhite)
	}
	if Luma(onBlack) > lf {
		return contrastOpaque(fg, onBlack)
	}
	return 1
}

// Contrast returns the contrast ratio between two colours in [1, 21],
// independent of argument order. With full opacity on both sides this is the
// plain WCAG ratio; with transparency involved the two orderings of
// ContrastMin can differ and their average is used.
func Contrast(c1, c2 Colour) float64 {
	if c1.A >= 1 && c2.A >= 1 {
		return contrastOpaque(c1, c2)
	}
	return (ContrastMin(c1, c2) + ContrastMin(c2, c1)) / 2
}

// ContrastColour returns whichever of the two candidates contrasts more
// against base, preferring the first on a tie.
func ContrastColour(base, first, second Colour) Colour {
	if Contrast(base, first) >= Contrast(base, second) {
		return first
	}
	return second
}

// WCAG threshold aliases. Any other string is treated as a literal numeric
// threshold.
var thresholdAliases = map[string]float64{
	"AA":    4.5,
	"AALG":  3,
	"AAA":   7,
	"AAALG": 4.5,
}

// ParseThreshold resolves a contrast threshold given either as a WCAG alias
// (AA, AALG, AAA, AAALG) or as a number.
func ParseThreshold(s string) (float64, error) {
	if v, ok := thresholdAliases[s]; ok {
		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// lumaDarkCutoff decides which extreme endpoint ContrastStretch reaches for:
// bases darker than this stretch towards white, lighter ones towards black.
const lumaDarkCutoff = 0.18

// stretchIterations is the fixed bisection count of ContrastStretch.
const stretchIterations = 10

// ContrastStretch returns a colour derived from c that has at least the
// given contrast ratio against base. If c already meets the threshold it is
// returned unchanged. If even the extreme endpoint (white for dark bases,
// black for light ones) cannot reach the threshold, the extreme is returned
// as the best achievable.
//
// Otherwise the result is found by exactly 10 bisection steps over a straight
// per-channel blend between c and the extreme. Contrast is not monotonic in
// the blend fraction over the whole range, but the loop only relies on the
// invariant that the lower bound fails the threshold while the upper bound
// meets it, which holds from the first iteration.
func ContrastStretch(base, c Colour, threshold float64) Colour {
	if Contrast(base, c) >= threshold {
		return c
	}

	extreme := Black
	if Luma(base) < lumaDarkCutoff {
		extreme = White
	}
	if Contrast(base, extreme) < threshold {
		return extreme
	}

	lower, upper := c, extreme
	for i := 0; i < stretchIterations; i++ {
		mid := lerpRGB(lower, upper, 0.5)
		if Contrast(base, mid) < threshold {
			lower = mid
		} else {
			upper = mid
		}
	}
	return upper
}

// lerpRGB interpolates two colours channel-wise in encoded sRGB space.
func lerpRGB(c1, c2 Colour, t float64) Colour {
	lerp := func(a, b uint8) float64 {
		return float64(a) + (float64(b)-float64(a))*t
	}
	return fromFloats(lerp(c1.R, c2.R), lerp(c1.G, c2.G), lerp(c1.B, c2.B), c1.A+(c2.A-c1.A)*t)
}

// ContrastCheck verifies that c reaches the given contrast threshold against
// base. A failing check is reported as a warning on the logger (nil selects
// hclog.Default()) and is never an error: the colour is always returned
// unchanged.
func ContrastCheck(base, c Colour, threshold float64, logger hclog.Logger) Colour {
	if logger == nil {
		logger = hclog.Default()
	}
	ratio := Contrast(base, c)
	if ratio < threshold {
		logger.Warn("contrast below threshold",
			"base", base.Hex(),
			"colour", c.Hex(),
			"ratio", strconv.FormatFloat(ratio, 'f', 2, 64),
			"threshold", threshold,
		)
	}
	return c
}
