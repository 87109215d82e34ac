package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/planform"
	"github.com/alexiusacademia/gowing/internal/units"
)

func printWingInput(wing *planform.Wing) {
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if wing.Tag != "" {
		fmt.Fprintf(w, "  Wing:\t%s\n", wing.Tag)
	}
	fmt.Fprintf(w, "  Root Chord:\t%.3f m\n", wing.RootChord)
	fmt.Fprintf(w, "  Projected Span:\t%.3f m\n", wing.ProjectedSpan)
	fmt.Fprintf(w, "  Symmetric:\t%t\n", wing.Symmetric)
	fmt.Fprintf(w, "  Segments:\t%d\n", len(wing.Segments))
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tTag\tη\tc/cr\tΛc/4 (°)\tΓ (°)\tTwist (°)\tt/c\n")
	fmt.Fprintf(w, "  ─\t───\t─\t────\t────────\t─────\t─────────\t───\n")
	for i, s := range wing.Segments {
		fmt.Fprintf(w, "  %d\t%s\t%.3f\t%.3f\t%.2f\t%.2f\t%.2f\t%.3f\n", i+1, s.Tag,
			s.SpanFraction, s.ChordFraction,
			units.ToDegrees(s.QuarterChordSweep), units.ToDegrees(s.Dihedral), units.ToDegrees(s.Twist),
			s.ThicknessToChord)
	}
	w.Flush()
	fmt.Println()
}

func printPlanform(pf *planform.Planform) {
	fmt.Println("AREAS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Reference Area (S):\t%.4f m²\n", pf.ReferenceArea)
	fmt.Fprintf(w, "  Wetted Area:\t%.4f m²\n", pf.WettedArea)
	fmt.Fprintf(w, "  Aspect Ratio (AR):\t%.4f\n", pf.AspectRatio)
	w.Flush()
	fmt.Println()

	fmt.Println("SPANS AND CHORDS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Semispan:\t%.4f m\n", pf.Semispan)
	fmt.Fprintf(w, "  Total Span (along dihedral):\t%.4f m\n", pf.TotalSpan)
	fmt.Fprintf(w, "  Mean Geometric Chord:\t%.4f m\n", pf.MeanGeometricChord)
	fmt.Fprintf(w, "  Mean Aerodynamic Chord:\t%.4f m\n", pf.MeanAerodynamicChord)
	fmt.Fprintf(w, "  Equivalent Tip Chord:\t%.4f m\n", pf.TipChord)
	fmt.Fprintf(w, "  Equivalent Taper (λ):\t%.4f\n", pf.TaperRatio)
	fmt.Fprintf(w, "  Total Length:\t%.4f m\n", pf.TotalLength)
	w.Flush()
	fmt.Println()

	fmt.Println("SWEEP AND THICKNESS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Quarter-chord Sweep:\t%.3f°\n", units.ToDegrees(pf.QuarterChordSweep))
	fmt.Fprintf(w, "  Leading-edge Sweep:\t%.3f°\n", units.ToDegrees(pf.LeadingEdgeSweep))
	fmt.Fprintf(w, "  Thickness-to-chord (area weighted):\t%.4f\n", pf.ThicknessToChord)
	w.Flush()
	fmt.Println()

	ac := pf.AerodynamicCenter
	fmt.Print(diagram.DrawSummaryBox("AERODYNAMIC CENTER", []string{
		fmt.Sprintf("x = %.4f m", ac.X),
		fmt.Sprintf("y = %.4f m", ac.Y),
		fmt.Sprintf("z = %.4f m", ac.Z),
	}))
	fmt.Println()
}

func printPanels(pf *planform.Planform) {
	fmt.Println("PANEL BREAKDOWN (one side):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tLength (m)\tArea (m²)\tTaper\tMAC (m)\tΛLE (°)\tCentroid x, y, z (m)\n")
	fmt.Fprintf(w, "  ─\t──────────\t─────────\t─────\t───────\t───────\t────────────────────\n")
	for i, p := range pf.Panels {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%.3f\t%.3f\t%.2f\t%.3f, %.3f, %.3f\n", i+1,
			p.Length, p.Area, p.Taper, p.MeanAerodynamicChord, units.ToDegrees(p.LeadingEdgeSweep),
			p.Centroid.X, p.Centroid.Y, p.Centroid.Z)
	}
	w.Flush()
	fmt.Println()
}

func diagramData(wing *planform.Wing, pf *planform.Planform) diagram.PlanformDiagramData {
	data := diagram.PlanformDiagramData{
		Title:                wing.Tag,
		LeadingEdge:          make([]diagram.Point, len(pf.Stations)),
		Chords:               make([]float64, len(pf.Stations)),
		MeanAerodynamicChord: pf.MeanAerodynamicChord,
		AerodynamicCenter:    diagram.Point{X: pf.AerodynamicCenter.X, Y: pf.AerodynamicCenter.Y},
		Symmetric:            wing.Symmetric,
	}
	for i, st := range pf.Stations {
		data.LeadingEdge[i] = diagram.Point{X: st.LeadingEdge.X, Y: st.LeadingEdge.Y}
		data.Chords[i] = st.Chord
	}
	return data
}

// reportPlanform prints the full report and handles diagram options
func reportPlanform(title string, wing *planform.Wing, showPanels, showDiagram bool, exportFile string) {
	pf, err := wing.Planform()
	if err != nil {
		logger.Error().Err(err).Str("wing", wing.Tag).Msg("planform computation failed")
		return
	}
	logger.Debug().
		Int("panels", len(pf.Panels)).
		Float64("reference_area", pf.ReferenceArea).
		Float64("mac", pf.MeanAerodynamicChord).
		Msg("planform computed")

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printWingInput(wing)
	printPlanform(pf)
	if showPanels {
		printPanels(pf)
	}

	data := diagramData(wing, pf)
	if showDiagram {
		fmt.Println(diagram.DrawASCIIPlanform(data))
	}
	if exportFile != "" {
		if err := diagram.ExportPlanform(data, exportFile); err != nil {
			logger.Error().Err(err).Str("file", exportFile).Msg("diagram export failed")
		} else {
			fmt.Printf("Diagram exported to: %s\n", exportFile)
		}
	}
}
