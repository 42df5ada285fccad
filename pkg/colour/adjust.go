package colour

import "math"

// Projections and coordinate edits. Every operation here is a thin wrapper
// over "convert to LCh, change one coordinate, rebuild through the gamut
// clipper".

// Lightness returns the lightness of a colour in the given colourspace.
func Lightness(c Colour, space Space) (float64, error) {
	t, err := ToLCh(c, space)
	if err != nil {
		return 0, err
	}
	return t.L, nil
}

// Chroma returns the chroma of a colour in the given colourspace.
func Chroma(c Colour, space Space) (float64, error) {
	t, err := ToLCh(c, space)
	if err != nil {
		return 0, err
	}
	return t.C, nil
}

// Hue returns the hue of a colour in the given colourspace.
func Hue(c Colour, space Space) (Angle, error) {
	t, err := ToLCh(c, space)
	if err != nil {
		return Angle{}, err
	}
	return t.H, nil
}

// Adjustment holds relative deltas applied to a colour's LCh coordinates and
// alpha. Zero fields leave the corresponding coordinate untouched.
type Adjustment struct {
	Lightness float64
	Chroma    float64
	Hue       Angle
	Alpha     float64
}

// Adjust shifts a colour's coordinates by the given deltas.
func Adjust(c Colour, adj Adjustment, space Space) (Colour, error) {
	t, err := ToLCh(c, space)
	if err != nil {
		return Colour{}, err
	}
	l := t.L + adj.Lightness
	ch := math.Max(0, t.C+adj.Chroma)
	h := Deg(t.H.Degrees() + adj.Hue.Degrees()).Normalised()
	return LCHA(l, ch, h, clamp01(c.A+adj.Alpha), space)
}

// Changes holds absolute replacement values for a colour's LCh coordinates
// and alpha. Nil fields keep the colour's current value.
type Changes struct {
	Lightness *float64
	Chroma    *float64
	Hue       *Angle
	Alpha     *float64
}

// Change replaces the set coordinates of a colour with absolute values.
func Change(c Colour, ch Changes, space Space) (Colour, error) {
	t, err := ToLCh(c, space)
	if err != nil {
		return Colour{}, err
	}
	if ch.Lightness != nil {
		t.L = *ch.Lightness
	}
	if ch.Chroma != nil {
		t.C = math.Max(0, *ch.Chroma)
	}
	if ch.Hue != nil {
		t.H = ch.Hue.Normalised()
	}
	a := c.A
	if ch.Alpha != nil {
		a = clamp01(*ch.Alpha)
	}
	return LCHA(t.L, t.C, t.H, a, space)
}

// AdjustHue rotates a colour's hue.
func AdjustHue(c Colour, by Angle, space Space) (Colour, error) {
	return Adjust(c, Adjustment{Hue: by}, space)
}

// Lighten increases lightness by the given amount.
func Lighten(c Colour, amount float64, space Space) (Colour, error) {
	return Adjust(c, Adjustment{Lightness: amount}, space)
}

// Darken decreases lightness by the given amount.
func Darken(c Colour, amount float64, space Space) (Colour, error) {
	return Adjust(c, Adjustment{Lightness: -amount}, space)
}

// Saturate increases chroma by the given amount.
func Saturate(c Colour, amount float64, space Space) (Colour, error) {
	return Adjust(c, Adjustment{Chroma: amount}, space)
}

// Desaturate decreases chroma by the given amount.
func Desaturate(c Colour, amount float64, space Space) (Colour, error) {
	return Adjust(c, Adjustment{Chroma: -amount}, space)
}

// Tint mixes a colour towards white; weight is the fraction of white.
func Tint(c Colour, weight float64, space Space) (Colour, error) {
	return Mix(White, c, weight, space)
}

// Shade mixes a colour towards black; weight is the fraction of black.
func Shade(c Colour, weight float64, space Space) (Colour, error) {
	return Mix(Black, c, weight, space)
}

// Complement rotates the hue by half a turn.
func Complement(c Colour, space Space) (Colour, error) {
	return AdjustHue(c, Deg(180), space)
}

// Grayscale removes all chroma from a colour.
func Grayscale(c Colour, space Space) (Colour, error) {
	zero := 0.0
	return Change(c, Changes{Chroma: &zero}, space)
}

// Distance returns the Euclidean distance between two colours in Lab space.
// White to black is approximately 100.
func Distance(c1, c2 Colour) float64 {
	a := xyzToLab(rgbToXYZ(c1))
	b := xyzToLab(rgbToXYZ(c2))
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
