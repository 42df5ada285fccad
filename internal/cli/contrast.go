// Package cli provides the command-line interface for colourkit.
package cli

import (
	"fmt"

	"github.com/jmylchreest/colourkit/pkg/colour"
	"github.com/spf13/cobra"
)

var (
	// Contrast command flags
	contrastThreshold string
	contrastPreview   bool
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <colour1> <colour2>",
	Short: "Compute the WCAG contrast ratio between two colours",
	Long: `Compute the WCAG contrast ratio between two colours, from 1 (no
contrast) to 21 (black on white). Translucent colours are rated by the
average of their minimum achievable contrasts over all backdrops.

The threshold may be numeric or one of the WCAG aliases AA (4.5),
AALG (3), AAA (7) and AAALG (4.5). A failing check is reported as a
warning but does not change the exit status.

Examples:
  # Plain ratio
  colourkit contrast '#333333' white

  # Check against WCAG AAA
  colourkit contrast --threshold AAA '#333333' '#999999'`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().StringVarP(&contrastThreshold, "threshold", "t", "AA", "required ratio (number or AA, AALG, AAA, AAALG)")
	contrastCmd.Flags().BoolVar(&contrastPreview, "preview", false, "show colour swatches in the terminal")
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	c1, err := parseColour(args[0])
	if err != nil {
		return err
	}
	c2, err := parseColour(args[1])
	if err != nil {
		return err
	}

	threshold, err := colour.ParseThreshold(contrastThreshold)
	if err != nil {
		return fmt.Errorf("invalid threshold %q: %w", contrastThreshold, err)
	}

	colour.ContrastCheck(c1, c2, threshold, newLogger())
	ratio := colour.Contrast(c1, c2)

	verdict := "PASS"
	if ratio < threshold {
		verdict = "FAIL"
	}
	fmt.Printf("%s%s%.2f:1  %s (threshold %.2g)\n",
		swatch(c1, contrastPreview), swatch(c2, contrastPreview), ratio, verdict, threshold)
	return nil
}
