// Package cli provides the command-line interface for colourkit.
package cli

import (
	"fmt"

	"github.com/jmylchreest/colourkit/pkg/colour"
	"github.com/spf13/cobra"
)

var (
	// Stretch command flags
	stretchThreshold string
	stretchPreview   bool
)

// stretchCmd represents the stretch command
var stretchCmd = &cobra.Command{
	Use:   "stretch <base> <colour>",
	Short: "Push a colour towards meeting a contrast threshold",
	Long: `Adjust a colour until it reaches the required contrast ratio against a
base colour. The colour is blended towards black or white, whichever
lies opposite the base; if even that extreme cannot reach the
threshold, the extreme is returned as the best achievable.

Examples:
  # Make blue readable on dark grey at AAA level
  colourkit stretch --threshold AAA '#333333' '#0000ff'

  # Numeric threshold
  colourkit stretch -t 4.5 white '#cccccc'`,
	Args: cobra.ExactArgs(2),
	RunE: runStretch,
}

func init() {
	stretchCmd.Flags().StringVarP(&stretchThreshold, "threshold", "t", "AA", "required ratio (number or AA, AALG, AAA, AAALG)")
	stretchCmd.Flags().BoolVar(&stretchPreview, "preview", false, "show colour swatches in the terminal")
}

// runStretch executes the stretch command.
func runStretch(cmd *cobra.Command, args []string) error {
	base, err := parseColour(args[0])
	if err != nil {
		return err
	}
	c, err := parseColour(args[1])
	if err != nil {
		return err
	}

	threshold, err := colour.ParseThreshold(stretchThreshold)
	if err != nil {
		return fmt.Errorf("invalid threshold %q: %w", stretchThreshold, err)
	}

	result := colour.ContrastStretch(base, c, threshold)
	colour.ContrastCheck(base, result, threshold, newLogger())

	fmt.Printf("%s%s  (contrast %.2f:1 on %s)\n",
		swatch(result, stretchPreview), result.Hex(), colour.Contrast(base, result), base.Hex())
	return nil
}
