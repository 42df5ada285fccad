// Package cli provides the command-line interface for colourkit.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/colourkit/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global output flags
	globalVerbose bool
	globalQuiet   bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "colourkit",
		Short: "A colorimetric toolbox for the terminal",
		Long: `Colourkit converts colours between device sRGB and the perceptually
uniform CIELAB/CIELUV spaces, builds in-gamut colours from
lightness/chroma/hue coordinates, blends colours perceptually and
computes WCAG contrast ratios.

Colours are given as hex codes (#rrggbb, #rrggbbaa, with or without
the leading #) or as SVG 1.1 colour names.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(adjustCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(stretchCmd)
}

// newLogger builds the hclog logger commands report diagnostics through,
// honouring the global verbosity flags.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if globalVerbose {
		level = hclog.Debug
	}
	if globalQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colourkit",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
