// Package cli provides the command-line interface for colourkit.
package cli

import (
	"fmt"

	"github.com/jmylchreest/colourkit/pkg/colour"
	"github.com/spf13/cobra"
)

var (
	// Mix command flags
	mixSpace   = newSpaceValue(colour.DefaultSpace)
	mixWeight  float64
	mixPreview bool
)

// mixCmd represents the mix command
var mixCmd = &cobra.Command{
	Use:   "mix <colour1> <colour2>",
	Short: "Blend two colours perceptually",
	Long: `Blend two colours in the polar form of a perceptual colourspace.

The weight is the share of the first colour, either as a percentage or a
unit fraction. Hue blends along the short way around the colour wheel,
weighted by chroma, and the result is clipped into the sRGB gamut.

Examples:
  # Equal parts red and blue in Lab
  colourkit mix '#ff0000' '#0000ff'

  # 20% black into white
  colourkit mix --weight 20 black white

  # Blend in CIELUV instead
  colourkit mix --space luv coral teal`,
	Args: cobra.ExactArgs(2),
	RunE: runMix,
}

func init() {
	mixCmd.Flags().Var(mixSpace, "space", "colourspace (lab, luv, hsl, yuv, hslab, hsluv)")
	mixCmd.Flags().Float64VarP(&mixWeight, "weight", "w", 50, "share of the first colour (percentage or fraction)")
	mixCmd.Flags().BoolVar(&mixPreview, "preview", false, "show colour swatches in the terminal")
}

// runMix executes the mix command.
func runMix(cmd *cobra.Command, args []string) error {
	c1, err := parseColour(args[0])
	if err != nil {
		return err
	}
	c2, err := parseColour(args[1])
	if err != nil {
		return err
	}

	result, err := colour.Mix(c1, c2, mixWeight, mixSpace.Space())
	if err != nil {
		return fmt.Errorf("failed to mix: %w", err)
	}

	fmt.Printf("%s%s\n", swatch(result, mixPreview), result.Hex())
	return nil
}
