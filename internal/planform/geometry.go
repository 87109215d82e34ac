package planform

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// untaperedTolerance is the chord fraction difference below which a panel
// is treated as untapered for the chord² integral.
const untaperedTolerance = 1e-12

// Compute returns the planform properties of w.
func Compute(w Wing) (*Planform, error) {
	return w.Planform()
}

// Planform computes the planform properties of the wing.
// The wing itself is not modified.
func (w *Wing) Planform() (*Planform, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	sides := w.sides()
	semispan := w.Semispan()

	panels := w.panels(semispan)
	n := len(panels)

	areas := make([]float64, n)
	wetted := make([]float64, n)
	integrals := make([]float64, n)
	fractions := make([]float64, n)
	trueLengths := make([]float64, n)
	thickness := make([]float64, n)
	qcTans := make([]float64, n)
	leTans := make([]float64, n)
	for i, p := range panels {
		areas[i] = p.Area
		wetted[i] = p.WettedArea
		integrals[i] = p.ChordSquaredIntegral
		fractions[i] = p.SpanFraction
		trueLengths[i] = p.Length / math.Cos(p.Root.Dihedral)
		thickness[i] = p.Root.ThicknessToChord
		qcTans[i] = math.Tan(p.Root.QuarterChordSweep)
		leTans[i] = math.Tan(p.LeadingEdgeSweep)
	}

	oneSide := floats.Sum(areas)

	pf := &Planform{
		Semispan:      semispan,
		ReferenceArea: oneSide * sides,
		WettedArea:    floats.Sum(wetted),
		TotalSpan:     floats.Sum(trueLengths) * sides,
	}
	pf.AspectRatio = w.ProjectedSpan * w.ProjectedSpan / pf.ReferenceArea
	pf.MeanGeometricChord = pf.ReferenceArea / w.ProjectedSpan
	pf.MeanAerodynamicChord = semispan * sides / pf.ReferenceArea * floats.Sum(integrals)

	// Equivalent straight-tapered wing with the same mean geometric chord
	pf.TaperRatio = 2*pf.MeanGeometricChord/w.RootChord - 1
	pf.TipChord = pf.TaperRatio * w.RootChord

	pf.ThicknessToChord = floats.Dot(areas, thickness) / oneSide

	pf.QuarterChordSweep = math.Atan(floats.Dot(fractions, qcTans))
	pf.LeadingEdgeSweep = math.Atan(floats.Dot(fractions, leTans))

	pf.AerodynamicCenter = aerodynamicCenter(panels, oneSide, w.Symmetric)

	last := w.Segments[len(w.Segments)-1]
	pf.TotalLength = math.Tan(pf.LeadingEdgeSweep)*semispan + last.ChordFraction*w.RootChord

	pf.Panels = panels
	pf.Stations = stations(panels)

	return pf, nil
}

// panels pairs adjacent segments into trapezoidal panels. Panel offsets
// and centroids are filled by aerodynamicCenter.
func (w *Wing) panels(semispan float64) []Panel {
	rc := w.RootChord
	panels := make([]Panel, len(w.Segments)-1)

	for i := range panels {
		root, tip := w.Segments[i], w.Segments[i+1]
		p := Panel{
			Root:         root,
			Tip:          tip,
			SpanFraction: tip.SpanFraction - root.SpanFraction,
			RootChord:    rc * root.ChordFraction,
			TipChord:     rc * tip.ChordFraction,
			Taper:        tip.ChordFraction / root.ChordFraction,
		}
		p.Length = p.SpanFraction * semispan

		p.Area = rc * (p.Length*root.ChordFraction - (root.ChordFraction-tip.ChordFraction)*p.Length/2)
		p.WettedArea = 2 * (1 + 0.2*root.ThicknessToChord) * p.Area

		p.ChordSquaredIntegral = chordSquaredIntegral(p, root, tip)
		p.MeanAerodynamicChord = p.ChordSquaredIntegral * semispan / p.Area

		// Shift the quarter-chord sweep line forward to the leading edge
		rootOffset := p.RootChord / 4
		tipOffset := p.TipChord / 4
		p.LeadingEdgeSweep = math.Atan((rootOffset + math.Tan(root.QuarterChordSweep)*p.Length - tipOffset) / p.Length)

		panels[i] = p
	}

	return panels
}

// chordSquaredIntegral integrates c(η)² over the panel, with the chord
// varying linearly from the root to the tip station.
func chordSquaredIntegral(p Panel, root, tip Segment) float64 {
	a := p.RootChord
	if math.Abs(tip.ChordFraction-root.ChordFraction) < untaperedTolerance {
		return a * a * p.SpanFraction
	}

	// Chord gradient per unit span fraction
	b := (p.TipChord - a) / p.SpanFraction
	end := a + b*p.SpanFraction
	return (end*end*end - a*a*a) / (3 * b)
}

// aerodynamicCenter area-averages the panel centroids. Each panel root is
// offset by the accumulated extent of the panels inboard of it.
func aerodynamicCenter(panels []Panel, oneSide float64, symmetric bool) r3.Vec {
	var offset, moment r3.Vec

	for i := range panels {
		p := &panels[i]
		p.Offset = offset
		p.Centroid = SegmentCentroid(p.LeadingEdgeSweep, 2*p.Length, offset, p.Taper, p.MeanAerodynamicChord, p.Root.Dihedral)
		moment = r3.Add(moment, r3.Scale(p.Area, p.Centroid))

		offset = r3.Add(offset, r3.Vec{
			X: math.Tan(p.LeadingEdgeSweep) * p.Length,
			Y: p.Length,
			Z: math.Tan(p.Root.Dihedral) * p.Length,
		})
	}

	ac := r3.Scale(1/oneSide, moment)
	if symmetric {
		// Left and right sides cancel
		ac.Y = 0
	}
	return ac
}

// SegmentCentroid returns the centroid of a trapezoidal panel translated by
// offset. span is twice the panel's projected length, so span/6 scales the
// standard trapezoid centroid for one side.
func SegmentCentroid(leSweep, span float64, offset r3.Vec, taper, mac, dihedral float64) r3.Vec {
	cy := span / 6 * (1 + 2*taper) / (1 + taper)
	cx := mac*0.25 + cy*math.Tan(leSweep)
	cz := cy * math.Tan(dihedral)
	return r3.Add(offset, r3.Vec{X: cx, Y: cy, Z: cz})
}

func stations(panels []Panel) []Station {
	out := make([]Station, 0, len(panels)+1)
	out = append(out, Station{Chord: panels[0].RootChord})
	for _, p := range panels {
		le := r3.Add(p.Offset, r3.Vec{
			X: math.Tan(p.LeadingEdgeSweep) * p.Length,
			Y: p.Length,
			Z: math.Tan(p.Root.Dihedral) * p.Length,
		})
		out = append(out, Station{LeadingEdge: le, Chord: p.TipChord})
	}
	return out
}
