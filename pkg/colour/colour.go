// Package colour implements colorimetric computation: conversions between
// device sRGB and the perceptually uniform CIELAB/CIELUV spaces (and their
// polar LCh forms), in-gamut colour construction from lightness/chroma/hue
// coordinates, perceptual colour mixing, and WCAG contrast calculations
// including gamut-safe contrast adjustment.
//
// All operations are pure functions over immutable values; the package holds
// no mutable state and is safe for concurrent use.
package colour

import (
	"fmt"
	"math"
)

// Colour is an sRGB colour with an alpha component. The three channels are
// 8-bit values and alpha is a fraction in [0, 1]. Colour is an immutable
// value type; every operation in this package returns a new Colour.
type Colour struct {
	R, G, B uint8
	A       float64
}

// Common endpoint colours used by the contrast routines.
var (
	Black = Colour{R: 0, G: 0, B: 0, A: 1}
	White = Colour{R: 255, G: 255, B: 255, A: 1}
)

// RGB creates an opaque colour from integer channel values.
// Each channel is clamped to [0, 255] independently.
func RGB(r, g, b int) Colour {
	return RGBA(r, g, b, 1)
}

// RGBA creates a colour from integer channel values and an alpha fraction.
// Channels are clamped to [0, 255] and alpha to [0, 1].
func RGBA(r, g, b int, a float64) Colour {
	return Colour{
		R: clampChannel(float64(r)),
		G: clampChannel(float64(g)),
		B: clampChannel(float64(b)),
		A: clamp01(a),
	}
}

// fromFloats builds a Colour from float channel values on the 0-255 scale,
// rounding to the nearest integer and clamping each channel independently.
func fromFloats(r, g, b, a float64) Colour {
	return Colour{
		R: clampChannel(math.Round(r)),
		G: clampChannel(math.Round(g)),
		B: clampChannel(math.Round(b)),
		A: clamp01(a),
	}
}

// WithAlpha returns a copy of the colour with the given alpha fraction.
func (c Colour) WithAlpha(a float64) Colour {
	c.A = clamp01(a)
	return c
}

// Hex returns the colour as a hex string (e.g. "#1a2b3c"). Alpha is omitted
// when the colour is fully opaque.
func (c Colour) Hex() string {
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, uint8(math.Round(c.A*255)))
}

// String returns the colour in functional notation, matching the alpha
// behaviour of Hex.
func (c Colour) String() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.3g)", c.R, c.G, c.B, c.A)
}

// clampChannel clamps a float channel value to the representable 8-bit range.
func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
