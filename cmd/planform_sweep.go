package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/planform"
	"github.com/alexiusacademia/gowing/internal/sweep"
	"github.com/alexiusacademia/gowing/internal/units"
	"github.com/spf13/cobra"
)

var (
	sweepFile   string
	sweepMetric string

	sweepX     string
	sweepXFrom float64
	sweepXTo   float64
	sweepXN    int

	sweepY     string
	sweepYFrom float64
	sweepYTo   float64
	sweepYN    int

	sweepExportFile string
)

var planformSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep a planform output over wing parameters",
	Long: `Evaluate a planform output while varying one wing parameter (line
sweep) or two wing parameters (carpet sweep) of a base wing.

Variables: span, root_chord, taper, sweep, dihedral, thickness
(sweep and dihedral in degrees).

Examples:
  # Aspect ratio over span
  gowing planform sweep -f wing.yaml --x span --from 28 --to 40 --steps 7 --metric aspect_ratio

  # MAC carpet over span and taper
  gowing planform sweep -f wing.yaml --x span --from 28 --to 40 --steps 4 \
      --y taper --y-from 0.2 --y-to 0.5 --y-steps 4 --metric mac`,
	Run: runPlanformSweep,
}

func init() {
	planformCmd.AddCommand(planformSweepCmd)

	planformSweepCmd.Flags().StringVarP(&sweepFile, "file", "f", "", "Path to base wing definition file [required]")
	planformSweepCmd.Flags().StringVarP(&sweepMetric, "metric", "m", string(sweep.MeanAerodynamicChord), "Planform output to evaluate")

	planformSweepCmd.Flags().StringVar(&sweepX, "x", "", "First sweep variable [required]")
	planformSweepCmd.Flags().Float64Var(&sweepXFrom, "from", 0, "First variable start value")
	planformSweepCmd.Flags().Float64Var(&sweepXTo, "to", 0, "First variable end value")
	planformSweepCmd.Flags().IntVarP(&sweepXN, "steps", "n", 5, "Number of first variable values")

	planformSweepCmd.Flags().StringVar(&sweepY, "y", "", "Second sweep variable (carpet sweep)")
	planformSweepCmd.Flags().Float64Var(&sweepYFrom, "y-from", 0, "Second variable start value")
	planformSweepCmd.Flags().Float64Var(&sweepYTo, "y-to", 0, "Second variable end value")
	planformSweepCmd.Flags().IntVar(&sweepYN, "y-steps", 5, "Number of second variable values")

	planformSweepCmd.Flags().StringVarP(&sweepExportFile, "output", "o", "", "Export line sweep chart to file (png, svg, pdf)")

	planformSweepCmd.MarkFlagRequired("file")
	planformSweepCmd.MarkFlagRequired("x")
}

// sweepValues returns the grid for v, converting angle inputs from degrees
func sweepValues(v sweep.Variable, from, to float64, n int) []float64 {
	values := sweep.Linspace(from, to, n)
	if v.IsAngle() {
		for i := range values {
			values[i] = units.ToRadians(values[i])
		}
	}
	return values
}

// display converts angle values back to degrees for printing
func display(v sweep.Variable, value float64) float64 {
	if v.IsAngle() {
		return units.ToDegrees(value)
	}
	return value
}

func runPlanformSweep(cmd *cobra.Command, args []string) {
	wing, err := planform.LoadFromFile(sweepFile)
	if err != nil {
		logger.Error().Err(err).Str("file", sweepFile).Msg("loading wing failed")
		return
	}

	metric, err := sweep.ParseMetric(sweepMetric)
	if err != nil {
		logger.Error().Err(err).Msg("invalid metric")
		return
	}
	x, err := sweep.ParseVariable(sweepX)
	if err != nil {
		logger.Error().Err(err).Msg("invalid sweep variable")
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          PLANFORM PARAMETER SWEEP")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sweepY == "" {
		runLineSweep(*wing, x, metric)
		return
	}

	y, err := sweep.ParseVariable(sweepY)
	if err != nil {
		logger.Error().Err(err).Msg("invalid sweep variable")
		return
	}
	runCarpetSweep(*wing, x, y, metric)
}

func runLineSweep(wing planform.Wing, x sweep.Variable, metric sweep.Metric) {
	res, err := sweep.Line(wing, x, sweepValues(x, sweepXFrom, sweepXTo, sweepXN), metric)
	if err != nil {
		logger.Error().Err(err).Msg("line sweep failed")
		return
	}
	logger.Debug().Str("x", string(x)).Int("points", len(res.Inputs)).Msg("line sweep done")

	minX, _ := res.Min()
	maxX, _ := res.Max()

	fmt.Printf("LINE SWEEP: %s vs %s\n", metric, x)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\t%s\n", x, metric)
	fmt.Fprintf(w, "  ─────\t─────\n")
	for i, in := range res.Inputs {
		marker := ""
		switch in {
		case minX:
			marker = " ← MIN"
		case maxX:
			marker = " ← MAX"
		}
		fmt.Fprintf(w, "  %.4f\t%.6f%s\n", display(x, in), res.Outputs[i], marker)
	}
	w.Flush()
	fmt.Println()

	xs := make([]float64, len(res.Inputs))
	for i, in := range res.Inputs {
		xs[i] = display(x, in)
	}
	title := fmt.Sprintf("%s vs %s", metric, x)
	if chart := diagram.DrawASCIISweep(title, xs, res.Outputs); chart != "" {
		fmt.Println(chart)
	}

	if sweepExportFile != "" {
		if err := diagram.ExportSweepLine(title, string(x), string(metric), xs, res.Outputs, sweepExportFile); err != nil {
			logger.Error().Err(err).Str("file", sweepExportFile).Msg("chart export failed")
		} else {
			fmt.Printf("Chart exported to: %s\n", sweepExportFile)
		}
	}
}

func runCarpetSweep(wing planform.Wing, x, y sweep.Variable, metric sweep.Metric) {
	res, err := sweep.Carpet(wing,
		x, sweepValues(x, sweepXFrom, sweepXTo, sweepXN),
		y, sweepValues(y, sweepYFrom, sweepYTo, sweepYN),
		metric)
	if err != nil {
		logger.Error().Err(err).Msg("carpet sweep failed")
		return
	}
	logger.Debug().Str("x", string(x)).Str("y", string(y)).Msg("carpet sweep done")

	fmt.Printf("CARPET SWEEP: %s over %s (columns) and %s (rows)\n", metric, x, y)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  %s \\ %s", y, x)
	for _, xv := range res.XInputs {
		fmt.Fprintf(w, "\t%.4f", display(x, xv))
	}
	fmt.Fprintln(w)
	for j, yv := range res.YInputs {
		fmt.Fprintf(w, "  %.4f", display(y, yv))
		for _, out := range res.Outputs[j] {
			fmt.Fprintf(w, "\t%.6f", out)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Println()

	minX, minY, minV := res.Min()
	maxX, maxY, maxV := res.Max()
	fmt.Print(diagram.DrawSummaryBox("EXTREMES", []string{
		fmt.Sprintf("min %s = %.6f at %s=%.4f, %s=%.4f", metric, minV, x, display(x, minX), y, display(y, minY)),
		fmt.Sprintf("max %s = %.6f at %s=%.4f, %s=%.4f", metric, maxV, x, display(x, maxX), y, display(y, maxY)),
	}))
	fmt.Println()
}
