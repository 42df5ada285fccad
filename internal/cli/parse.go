// Package cli provides command-line parsing helpers.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/colourkit/pkg/colour"
	"github.com/spf13/pflag"
	"golang.org/x/image/colornames"
	"golang.org/x/term"
)

// parseColour reads a colour argument: a hex code with or without a leading
// "#" (6 or 8 digits), or an SVG 1.1 colour name.
func parseColour(s string) (colour.Colour, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 || len(hex) == 8 {
		if c, err := parseHex(hex); err == nil {
			return c, nil
		}
	}

	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return colour.RGB(int(named.R), int(named.G), int(named.B)), nil
	}

	return colour.Colour{}, fmt.Errorf("invalid colour %q (expected #rrggbb, #rrggbbaa or a colour name)", s)
}

// parseHex decodes a 6- or 8-digit hex colour string without the "#".
func parseHex(hex string) (colour.Colour, error) {
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return colour.Colour{}, err
	}
	if len(hex) == 8 {
		return colour.RGBA(
			int(v>>24&0xff),
			int(v>>16&0xff),
			int(v>>8&0xff),
			float64(v&0xff)/255,
		), nil
	}
	return colour.RGB(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)), nil
}

// spaceValue is a pflag.Value that validates colourspace selectors as they
// are parsed, so an invalid --space fails before any command logic runs.
type spaceValue colour.Space

var _ pflag.Value = (*spaceValue)(nil)

func newSpaceValue(def colour.Space) *spaceValue {
	v := spaceValue(def)
	return &v
}

func (s *spaceValue) String() string {
	return string(*s)
}

func (s *spaceValue) Set(v string) error {
	sp, err := colour.ParseSpace(v)
	if err != nil {
		return err
	}
	*s = spaceValue(sp)
	return nil
}

func (s *spaceValue) Type() string {
	return "space"
}

func (s *spaceValue) Space() colour.Space {
	return colour.Space(*s)
}

// stdoutIsTerminal reports whether stdout is attached to a terminal, which
// gates ANSI swatch output.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// swatch returns an ANSI preview block for a colour when stdout is a
// terminal and previews were requested, otherwise an empty string.
func swatch(c colour.Colour, enabled bool) string {
	if !enabled || !stdoutIsTerminal() {
		return ""
	}
	return colour.Preview(c, 8) + "  "
}
