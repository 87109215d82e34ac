package cmd

import (
	"github.com/alexiusacademia/gowing/internal/planform"
	"github.com/alexiusacademia/gowing/internal/units"
	"github.com/spf13/cobra"
)

var (
	trapSpan       float64
	trapRootChord  float64
	trapTaper      float64
	trapSweep      float64
	trapDihedral   float64
	trapThickness  float64
	trapAsymmetric bool

	trapShowDiagram bool
	trapExportFile  string
)

var planformTrapezoidCmd = &cobra.Command{
	Use:   "trapezoid",
	Short: "Analyze a straight-tapered wing",
	Long: `Compute the planform of a single-panel, straight-tapered wing given
directly on the command line.

Examples:
  # 30 m span, 4 m root chord, taper 0.3, 25° quarter-chord sweep
  gowing planform trapezoid --span 30 --root-chord 4 --taper 0.3 --sweep 25

  # Vertical fin (one side only)
  gowing planform trapezoid -b 6 -c 5 -t 0.4 --sweep 40 --asymmetric`,
	Run: runPlanformTrapezoid,
}

func init() {
	planformCmd.AddCommand(planformTrapezoidCmd)

	planformTrapezoidCmd.Flags().Float64VarP(&trapSpan, "span", "b", 0, "Projected span (m) [required]")
	planformTrapezoidCmd.Flags().Float64VarP(&trapRootChord, "root-chord", "c", 0, "Root chord (m) [required]")
	planformTrapezoidCmd.Flags().Float64VarP(&trapTaper, "taper", "t", 1, "Taper ratio (tip chord / root chord)")
	planformTrapezoidCmd.Flags().Float64Var(&trapSweep, "sweep", 0, "Quarter-chord sweep (degrees)")
	planformTrapezoidCmd.Flags().Float64Var(&trapDihedral, "dihedral", 0, "Dihedral (degrees)")
	planformTrapezoidCmd.Flags().Float64Var(&trapThickness, "tc", 0.12, "Thickness-to-chord ratio")
	planformTrapezoidCmd.Flags().BoolVar(&trapAsymmetric, "asymmetric", false, "Treat span as one side only (fins)")

	planformTrapezoidCmd.MarkFlagRequired("span")
	planformTrapezoidCmd.MarkFlagRequired("root-chord")

	planformTrapezoidCmd.Flags().BoolVar(&trapShowDiagram, "diagram", false, "Show ASCII planform diagram")
	planformTrapezoidCmd.Flags().StringVarP(&trapExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

// trapezoidWing builds a two-station wing
func trapezoidWing(span, rootChord, taper, sweep, dihedral, tc float64, symmetric bool) *planform.Wing {
	return &planform.Wing{
		Tag:           "trapezoid",
		RootChord:     rootChord,
		ProjectedSpan: span,
		Symmetric:     symmetric,
		Segments: []planform.Segment{
			{Tag: "root", SpanFraction: 0, ChordFraction: 1, QuarterChordSweep: sweep, Dihedral: dihedral, ThicknessToChord: tc},
			{Tag: "tip", SpanFraction: 1, ChordFraction: taper, QuarterChordSweep: sweep, Dihedral: dihedral, ThicknessToChord: tc},
		},
	}
}

func runPlanformTrapezoid(cmd *cobra.Command, args []string) {
	wing := trapezoidWing(trapSpan, trapRootChord, trapTaper,
		units.ToRadians(trapSweep), units.ToRadians(trapDihedral), trapThickness, !trapAsymmetric)

	reportPlanform("STRAIGHT-TAPERED WING PLANFORM", wing, false, trapShowDiagram, trapExportFile)
}
