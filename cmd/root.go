package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gowing/internal/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

// logger writes diagnostics to stderr so reports on stdout stay clean
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "gowing",
	Short: "Segmented Wing Planform Geometry Tool",
	Long: `gowing - Go Wing Planform Calculator

A CLI tool for the conceptual design of segmented aircraft wings.

From a root chord, a projected span and a list of spanwise segments
(span fraction, chord fraction, sweep, dihedral, thickness) it computes:
  - Reference and wetted areas, aspect ratio
  - Mean geometric and mean aerodynamic chords
  - Effective taper, quarter-chord and leading-edge sweeps
  - Aerodynamic center location and total length
  - Parametric line and carpet sweeps of any of the above

Angles in wing files and flags are given in degrees.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = logger.Level(level)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gowing v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Wing Planform Calculator                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the planform geometry of segmented wings.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Multi-segment planform areas, spans and mean chords")
		fmt.Println("    • Effective sweeps and aerodynamic center")
		fmt.Println("    • Quick straight-tapered wing analysis from flags")
		fmt.Println("    • Line and carpet sweeps over wing parameters")
		fmt.Println()
		fmt.Println("  Use 'gowing --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
