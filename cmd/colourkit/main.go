// Colourkit - colorimetric computation for the terminal
//
// Colourkit converts colours between sRGB and perceptually uniform
// colourspaces, blends colours and computes WCAG contrast ratios.
package main

import (
	"github.com/jmylchreest/colourkit/internal/cli"
)

func main() {
	cli.Execute()
}
