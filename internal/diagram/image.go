package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportPlanform exports a planform diagram to an image file.
// The format follows the extension (png, svg, pdf); other names get ".png".
func ExportPlanform(data PlanformDiagramData, filename string) error {
	if len(data.LeadingEdge) < 2 || len(data.Chords) != len(data.LeadingEdge) {
		return errors.New("planform diagram needs at least two stations")
	}

	p := plot.New()
	p.Title.Text = "Wing Planform"
	if data.Title != "" {
		p.Title.Text = data.Title
	}
	p.X.Label.Text = "Span (m)"
	p.Y.Label.Text = "Chordwise (m)"

	// Leading edge out to the tip, trailing edge back to the root
	n := len(data.LeadingEdge)
	outline := make(plotter.XYs, 0, 2*n+1)
	for _, le := range data.LeadingEdge {
		outline = append(outline, plotter.XY{X: le.Y, Y: -le.X})
	}
	for i := n - 1; i >= 0; i-- {
		le := data.LeadingEdge[i]
		outline = append(outline, plotter.XY{X: le.Y, Y: -(le.X + data.Chords[i])})
	}
	outline = append(outline, outline[0])

	if data.Symmetric {
		mirrored := make(plotter.XYs, len(outline))
		for i, pt := range outline {
			mirrored[i] = plotter.XY{X: -pt.X, Y: pt.Y}
		}
		mirror, err := plotter.NewPolygon(mirrored)
		if err != nil {
			return err
		}
		mirror.Color = color.RGBA{R: 100, G: 149, B: 237, A: 60}
		mirror.LineStyle.Color = color.Gray{Y: 128}
		p.Add(mirror)
	}

	wing, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	wing.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	wing.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	wing.LineStyle.Width = vg.Points(1.5)
	p.Add(wing)

	// Quarter-chord line
	quarter := make(plotter.XYs, n)
	for i, le := range data.LeadingEdge {
		quarter[i] = plotter.XY{X: le.Y, Y: -(le.X + data.Chords[i]/4)}
	}
	qcLine, err := plotter.NewLine(quarter)
	if err != nil {
		return err
	}
	qcLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	qcLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(qcLine)

	// Mean aerodynamic chord
	acY := data.AerodynamicCenter.Y
	if mac, ok := data.MACStation(); ok {
		macLine, err := plotter.NewLine(plotter.XYs{
			{X: mac.Y, Y: -mac.X},
			{X: mac.Y, Y: -(mac.X + data.MeanAerodynamicChord)},
		})
		if err != nil {
			return err
		}
		macLine.LineStyle.Width = vg.Points(2.5)
		macLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
		p.Add(macLine)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: mac.Y, Y: -(mac.X + data.MeanAerodynamicChord)}},
			Labels: []string{fmt.Sprintf("MAC=%.3f", data.MeanAerodynamicChord)},
		})
		if err != nil {
			return err
		}
		p.Add(label)

		if data.Symmetric {
			acY = mac.Y
		}
	}

	// Aerodynamic center
	ac, err := plotter.NewScatter(plotter.XYs{{X: acY, Y: -data.AerodynamicCenter.X}})
	if err != nil {
		return err
	}
	ac.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	ac.GlyphStyle.Radius = vg.Points(5)
	ac.GlyphStyle.Shape = draw.PyramidGlyph{}
	p.Add(ac)

	p.Legend.Add("quarter chord", qcLine)
	p.Legend.Add("aerodynamic center", ac)
	p.Legend.Top = true

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// ExportSweepLine exports a line sweep as an x-y chart.
func ExportSweepLine(title, xLabel, yLabel string, xs, ys []float64, filename string) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return errors.New("sweep chart needs matching, non-empty series")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	p.Add(line, points, plotter.NewGrid())

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
