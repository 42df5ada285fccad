package colour

import (
	"errors"
	"math"
	"testing"
)

func TestParseSpace(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Space
		wantErr bool
	}{
		{name: "lab", in: "lab", want: SpaceLab},
		{name: "luv", in: "luv", want: SpaceLuv},
		{name: "hsl", in: "hsl", want: SpaceHSL},
		{name: "yuv", in: "yuv", want: SpaceYUV},
		{name: "hslab", in: "hslab", want: SpaceHSLab},
		{name: "hsluv", in: "hsluv", want: SpaceHSLuv},
		{name: "unknown", in: "oklch", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "case sensitive", in: "Lab", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpace(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSpace(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidSpace) {
					t.Errorf("ParseSpace(%q) error = %v, want ErrInvalidSpace", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseSpace(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToLChInvalidSpace(t *testing.T) {
	if _, err := ToLCh(White, Space("cmyk")); !errors.Is(err, ErrInvalidSpace) {
		t.Errorf("ToLCh error = %v, want ErrInvalidSpace", err)
	}
}

func TestPolariseAchromaticHue(t *testing.T) {
	// Below the epsilon the hue is pinned to zero instead of whatever
	// atan2 would produce.
	got := polarise(50, 0.00005, -0.00003)
	if got.H.Degrees() != 0 {
		t.Errorf("achromatic hue = %v, want 0", got.H.Degrees())
	}
	// Just above the epsilon the real angle comes through.
	got = polarise(50, 0, 0.001)
	if !almostEqual(got.H.Degrees(), 90, 1e-9) {
		t.Errorf("hue = %v, want 90", got.H.Degrees())
	}
}

func TestPolariseCartesianInverse(t *testing.T) {
	l, a, b := cartesian(LCh{L: 40, C: 25, H: Deg(130)})
	got := polarise(l, a, b)
	if !almostEqual(got.L, 40, 1e-9) || !almostEqual(got.C, 25, 1e-9) || !almostEqual(got.H.Degrees(), 130, 1e-9) {
		t.Errorf("polarise(cartesian(...)) = %+v", got)
	}
}

func TestToLChHSLIsNative(t *testing.T) {
	// HSL reads hue/saturation/lightness directly; no Lab math involved.
	got, err := ToLCh(RGB(255, 0, 0), SpaceHSL)
	if err != nil {
		t.Fatalf("ToLCh: %v", err)
	}
	if !almostEqual(got.L, 50, 1e-9) || !almostEqual(got.C, 100, 1e-9) || !almostEqual(got.H.Degrees(), 0, 1e-9) {
		t.Errorf("ToLCh(red, hsl) = %+v, want (50, 100, 0)", got)
	}
}

func TestToLChLabRed(t *testing.T) {
	got, err := ToLCh(RGB(255, 0, 0), SpaceLab)
	if err != nil {
		t.Fatalf("ToLCh: %v", err)
	}
	if !almostEqual(got.L, 53.233, 0.01) {
		t.Errorf("L = %v, want ~53.233", got.L)
	}
	if !almostEqual(got.C, 104.574, 0.01) {
		t.Errorf("C = %v, want ~104.574", got.C)
	}
	if !almostEqual(got.H.Degrees(), 40, 0.05) {
		t.Errorf("H = %v, want ~40", got.H.Degrees())
	}
}

func TestToLChHueSafeChromaIsRelative(t *testing.T) {
	// In hslab chroma is a percentage of the reachable maximum, so a
	// fully saturated primary sits near 100 regardless of its absolute
	// Lab chroma.
	for _, c := range []Colour{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255)} {
		got, err := ToLCh(c, SpaceHSLab)
		if err != nil {
			t.Fatalf("ToLCh: %v", err)
		}
		if got.C < 95 || got.C > 105 {
			t.Errorf("hslab chroma of %s = %v, want ~100", c.Hex(), got.C)
		}
	}
}

func TestToLChAchromaticHueAcrossSpaces(t *testing.T) {
	for _, space := range []Space{SpaceLab, SpaceLuv, SpaceHSL, SpaceYUV, SpaceHSLab, SpaceHSLuv} {
		t.Run(string(space), func(t *testing.T) {
			got, err := ToLCh(RGB(128, 128, 128), space)
			if err != nil {
				t.Fatalf("ToLCh: %v", err)
			}
			if got.H.Degrees() != 0 {
				t.Errorf("hue of grey = %v, want 0", got.H.Degrees())
			}
			if got.C > 0.5 {
				t.Errorf("chroma of grey = %v, want ~0", got.C)
			}
		})
	}
}

func TestLChRoundTripPerSpace(t *testing.T) {
	tests := []struct {
		name  string
		space Space
		lch   LCh
		epsL  float64
		epsC  float64
		epsH  float64
	}{
		{name: "lab", space: SpaceLab, lch: LCh{L: 50, C: 30, H: Deg(120)}, epsL: 1, epsC: 1, epsH: 2},
		{name: "luv", space: SpaceLuv, lch: LCh{L: 55, C: 40, H: Deg(200)}, epsL: 1, epsC: 1, epsH: 2},
		{name: "hsl", space: SpaceHSL, lch: LCh{L: 40, C: 60, H: Deg(300)}, epsL: 1, epsC: 1, epsH: 2},
		{name: "yuv", space: SpaceYUV, lch: LCh{L: 50, C: 10, H: Deg(30)}, epsL: 1, epsC: 1, epsH: 5},
		{name: "hslab", space: SpaceHSLab, lch: LCh{L: 60, C: 40, H: Deg(40)}, epsL: 1, epsC: 3, epsH: 2},
		{name: "hsluv", space: SpaceHSLuv, lch: LCh{L: 60, C: 40, H: Deg(260)}, epsL: 1, epsC: 3, epsH: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LCH(tt.lch.L, tt.lch.C, tt.lch.H, tt.space)
			if err != nil {
				t.Fatalf("LCH: %v", err)
			}
			got, err := ToLCh(c, tt.space)
			if err != nil {
				t.Fatalf("ToLCh: %v", err)
			}
			if !almostEqual(got.L, tt.lch.L, tt.epsL) {
				t.Errorf("L = %v, want %v", got.L, tt.lch.L)
			}
			if !almostEqual(got.C, tt.lch.C, tt.epsC) {
				t.Errorf("C = %v, want %v", got.C, tt.lch.C)
			}
			diff := math.Abs(got.H.Degrees() - tt.lch.H.Degrees())
			if diff > 180 {
				diff = 360 - diff
			}
			if diff > tt.epsH {
				t.Errorf("H = %v, want %v", got.H.Degrees(), tt.lch.H.Degrees())
			}
		})
	}
}

func TestProjections(t *testing.T) {
	c := RGB(180, 60, 90)
	l, err := Lightness(c, SpaceLab)
	if err != nil {
		t.Fatalf("Lightness: %v", err)
	}
	ch, err := Chroma(c, SpaceLab)
	if err != nil {
		t.Fatalf("Chroma: %v", err)
	}
	h, err := Hue(c, SpaceLab)
	if err != nil {
		t.Fatalf("Hue: %v", err)
	}
	want, err := ToLCh(c, SpaceLab)
	if err != nil {
		t.Fatalf("ToLCh: %v", err)
	}
	if l != want.L || ch != want.C || h != want.H {
		t.Errorf("projections (%v, %v, %v) disagree with ToLCh %+v", l, ch, h.Degrees(), want)
	}
}
