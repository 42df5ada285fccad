// Package cli provides the command-line interface for colourkit.
package cli

import (
	"fmt"

	"github.com/jmylchreest/colourkit/pkg/colour"
	"github.com/spf13/cobra"
)

var (
	// Adjust command flags
	adjustSpace      = newSpaceValue(colour.DefaultSpace)
	adjustLighten    float64
	adjustDarken     float64
	adjustSaturate   float64
	adjustDesaturate float64
	adjustRotate     float64
	adjustTint       float64
	adjustShade      float64
	adjustComplement bool
	adjustGrayscale  bool
	adjustPreview    bool
)

// adjustCmd represents the adjust command
var adjustCmd = &cobra.Command{
	Use:   "adjust <colour>",
	Short: "Edit a colour's lightness, chroma or hue",
	Long: `Adjust a colour by shifting its coordinates in a perceptual
colourspace. Adjustments apply in the order lighten/darken,
saturate/desaturate, hue rotation, tint/shade, then complement and
grayscale. Results are always clipped into the sRGB gamut.

Examples:
  # Lighten by 10 L* units
  colourkit adjust --lighten 10 '#336699'

  # Rotate hue by 45 degrees in CIELUV
  colourkit adjust --space luv --rotate 45 tomato

  # The complementary colour
  colourkit adjust --complement '#ffcc00'`,
	Args: cobra.ExactArgs(1),
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().Var(adjustSpace, "space", "colourspace (lab, luv, hsl, yuv, hslab, hsluv)")
	adjustCmd.Flags().Float64Var(&adjustLighten, "lighten", 0, "increase lightness by this amount")
	adjustCmd.Flags().Float64Var(&adjustDarken, "darken", 0, "decrease lightness by this amount")
	adjustCmd.Flags().Float64Var(&adjustSaturate, "saturate", 0, "increase chroma by this amount")
	adjustCmd.Flags().Float64Var(&adjustDesaturate, "desaturate", 0, "decrease chroma by this amount")
	adjustCmd.Flags().Float64Var(&adjustRotate, "rotate", 0, "rotate hue by this many degrees")
	adjustCmd.Flags().Float64Var(&adjustTint, "tint", 0, "mix in this share of white (percentage or fraction)")
	adjustCmd.Flags().Float64Var(&adjustShade, "shade", 0, "mix in this share of black (percentage or fraction)")
	adjustCmd.Flags().BoolVar(&adjustComplement, "complement", false, "rotate hue by half a turn")
	adjustCmd.Flags().BoolVar(&adjustGrayscale, "grayscale", false, "remove all chroma")
	adjustCmd.Flags().BoolVar(&adjustPreview, "preview", false, "show colour swatches in the terminal")
}

// runAdjust executes the adjust command.
func runAdjust(cmd *cobra.Command, args []string) error {
	c, err := parseColour(args[0])
	if err != nil {
		return err
	}
	space := adjustSpace.Space()

	c, err = colour.Adjust(c, colour.Adjustment{
		Lightness: adjustLighten - adjustDarken,
		Chroma:    adjustSaturate - adjustDesaturate,
		Hue:       colour.Deg(adjustRotate),
	}, space)
	if err != nil {
		return fmt.Errorf("failed to adjust: %w", err)
	}

	if adjustTint != 0 {
		if c, err = colour.Tint(c, adjustTint, space); err != nil {
			return fmt.Errorf("failed to tint: %w", err)
		}
	}
	if adjustShade != 0 {
		if c, err = colour.Shade(c, adjustShade, space); err != nil {
			return fmt.Errorf("failed to shade: %w", err)
		}
	}
	if adjustComplement {
		if c, err = colour.Complement(c, space); err != nil {
			return fmt.Errorf("failed to complement: %w", err)
		}
	}
	if adjustGrayscale {
		if c, err = colour.Grayscale(c, space); err != nil {
			return fmt.Errorf("failed to grayscale: %w", err)
		}
	}

	fmt.Printf("%s%s\n", swatch(c, adjustPreview), c.Hex())
	return nil
}
