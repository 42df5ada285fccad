package colour

// Mix blends two colours in the polar form of the given colourspace. The
// weight is the fraction taken from c1 and accepts either a unit fraction or
// a percentage (values above 1 are divided by 100).
//
// Lightness, chroma and alpha interpolate linearly. Hue uses a
// chroma-weighted circular mean: a strongly saturated colour pulls the
// blended hue towards its own, and an achromatic colour contributes no hue
// at all. When both inputs are achromatic the weights fall back to 0.5/0.5.
// The result is rebuilt through the gamut-clipping constructor, so a blend
// whose straight interpolation is unrepresentable legally desaturates.
func Mix(c1, c2 Colour, weight float64, space Space) (Colour, error) {
	if weight > 1 {
		weight /= 100
	}
	weight = clamp01(weight)

	t1, err := ToLCh(c1, space)
	if err != nil {
		return Colour{}, err
	}
	t2, err := ToLCh(c2, space)
	if err != nil {
		return Colour{}, err
	}

	w1 := weight
	w2 := 1 - weight
	l := w1*t1.L + w2*t2.L
	c := w1*t1.C + w2*t2.C
	a := w1*c1.A + w2*c2.A

	hw1 := w1 * t1.C
	hw2 := w2 * t2.C
	if hw1 == 0 && hw2 == 0 {
		// Both inputs achromatic; avoid a 0/0 mean.
		hw1, hw2 = 0.5, 0.5
	}

	// Bring the hues within half a turn of each other so the mean takes
	// the short way around the circle.
	h1 := t1.H.Degrees()
	h2 := t2.H.Degrees()
	for h1-h2 > 180 {
		h2 += 360
	}
	for h2-h1 > 180 {
		h1 += 360
	}
	h := (hw1*h1 + hw2*h2) / (hw1 + hw2)

	return LCHA(l, c, Deg(h).Normalised(), a, space)
}
