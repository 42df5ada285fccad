package colour

import (
	"errors"
	"fmt"
)

// Space selects the colourspace an LCh-based operation works in.
type Space string

// The closed set of supported colourspaces. Any other value is rejected with
// ErrInvalidSpace at the first dispatch point; there is no silent fallback.
const (
	SpaceLab   Space = "lab"
	SpaceLuv   Space = "luv"
	SpaceHSL   Space = "hsl"
	SpaceYUV   Space = "yuv"
	SpaceHSLab Space = "hslab"
	SpaceHSLuv Space = "hsluv"
)

// DefaultSpace is the colourspace callers should use when they have no
// preference. It is a documented default for call sites (the CLI passes it
// explicitly), never an implicit fallback inside the library.
const DefaultSpace = SpaceLab

// ErrInvalidSpace is returned when a colourspace selector is not one of the
// supported values.
var ErrInvalidSpace = errors.New("invalid colourspace")

// ParseSpace validates a colourspace selector string.
func ParseSpace(s string) (Space, error) {
	sp := Space(s)
	if !sp.valid() {
		return "", fmt.Errorf("%w: %q (valid: lab, luv, hsl, yuv, hslab, hsluv)", ErrInvalidSpace, s)
	}
	return sp, nil
}

// invalidSpace wraps ErrInvalidSpace with the offending selector.
func invalidSpace(s Space) error {
	return fmt.Errorf("%w: %q", ErrInvalidSpace, string(s))
}

func (s Space) valid() bool {
	switch s {
	case SpaceLab, SpaceLuv, SpaceHSL, SpaceYUV, SpaceHSLab, SpaceHSLuv:
		return true
	}
	return false
}

// base returns the underlying space the hue-safe variants are normalised
// against; every other space is its own base.
func (s Space) base() Space {
	switch s {
	case SpaceHSLab:
		return SpaceLab
	case SpaceHSLuv:
		return SpaceLuv
	}
	return s
}
