package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured block previewing a colour in the
// terminal. Width is the block width in characters.
func Preview(c Colour, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour preview with a text overlay. The text is
// black or white, whichever contrasts more against the previewed colour.
func PreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	fg := ContrastColour(c, Black, White)

	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		pad := (width - len(text)) / 2
		display = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}

	return bgSeq + fgSeq + display + ansiReset
}
