// Package cli provides the command-line interface for colourkit.
package cli

import (
	"fmt"

	"github.com/jmylchreest/colourkit/pkg/colour"
	"github.com/spf13/cobra"
)

var (
	// Convert command flags
	convertSpace   = newSpaceValue(colour.DefaultSpace)
	convertAll     bool
	convertPreview bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>",
	Short: "Show a colour's coordinates in a perceptual colourspace",
	Long: `Convert a colour to its lightness/chroma/hue coordinates in the given
colourspace, along with its WCAG relative luminance.

Examples:
  # Lab LCh coordinates (the default space)
  colourkit convert '#ff0000'

  # Coordinates in CIELUV
  colourkit convert --space luv steelblue

  # One row per supported colourspace
  colourkit convert --all '#336699'`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Var(convertSpace, "space", "colourspace (lab, luv, hsl, yuv, hslab, hsluv)")
	convertCmd.Flags().BoolVar(&convertAll, "all", false, "show coordinates in every colourspace")
	convertCmd.Flags().BoolVar(&convertPreview, "preview", false, "show a colour swatch in the terminal")
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	c, err := parseColour(args[0])
	if err != nil {
		return err
	}

	spaces := []colour.Space{convertSpace.Space()}
	if convertAll {
		spaces = []colour.Space{
			colour.SpaceLab, colour.SpaceLuv, colour.SpaceHSL,
			colour.SpaceYUV, colour.SpaceHSLab, colour.SpaceHSLuv,
		}
	}

	table := NewTable([]string{"SPACE", "L", "C", "H"})
	for _, space := range spaces {
		lch, err := colour.ToLCh(c, space)
		if err != nil {
			return fmt.Errorf("failed to convert to %s: %w", space, err)
		}
		table.AddRow([]string{
			string(space),
			fmt.Sprintf("%.3f", lch.L),
			fmt.Sprintf("%.3f", lch.C),
			fmt.Sprintf("%.3f", lch.H.Degrees()),
		})
	}

	fmt.Printf("%s%s  luma %.4f\n\n", swatch(c, convertPreview), c.Hex(), colour.Luma(c))
	fmt.Print(table.Render())
	return nil
}
