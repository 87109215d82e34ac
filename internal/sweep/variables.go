package sweep

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexiusacademia/gowing/internal/planform"
)

// Variable names a wing input that a sweep can vary
type Variable string

// Sweepable wing inputs. Angles are radians.
const (
	Span      Variable = "span"
	RootChord Variable = "root_chord"
	Taper     Variable = "taper"
	Sweep     Variable = "sweep"
	Dihedral  Variable = "dihedral"
	Thickness Variable = "thickness"
)

var variables = []Variable{Span, RootChord, Taper, Sweep, Dihedral, Thickness}

// ParseVariable looks up a variable by name
func ParseVariable(name string) (Variable, error) {
	v := Variable(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range variables {
		if v == known {
			return v, nil
		}
	}
	names := make([]string, len(variables))
	for i, known := range variables {
		names[i] = string(known)
	}
	return "", fmt.Errorf("unknown sweep variable %q (want one of %s)", name, strings.Join(names, ", "))
}

// IsAngle reports whether the variable is an angle
func (v Variable) IsAngle() bool {
	return v == Sweep || v == Dihedral
}

// Apply returns a copy of w with the variable set to value.
// The base wing's segments are not modified.
func (v Variable) Apply(w planform.Wing, value float64) (planform.Wing, error) {
	w.Segments = append([]planform.Segment(nil), w.Segments...)

	switch v {
	case Span:
		w.ProjectedSpan = value
	case RootChord:
		w.RootChord = value
	case Taper:
		setTaper(w.Segments, value)
	case Sweep:
		for i := range w.Segments {
			w.Segments[i].QuarterChordSweep = value
		}
	case Dihedral:
		for i := range w.Segments {
			w.Segments[i].Dihedral = value
		}
	case Thickness:
		for i := range w.Segments {
			w.Segments[i].ThicknessToChord = value
		}
	default:
		return w, fmt.Errorf("unknown sweep variable %q", v)
	}
	return w, nil
}

// setTaper stretches the outboard chord distribution so that the tip chord
// is taper times the first station's chord. Untapered wings get a straight
// taper along the span.
func setTaper(segs []planform.Segment, taper float64) {
	if len(segs) < 2 {
		return
	}
	root := segs[0].ChordFraction
	tip := segs[len(segs)-1].ChordFraction
	target := taper * root

	if tip == root {
		for i := range segs[1:] {
			s := &segs[i+1]
			s.ChordFraction = root + (target-root)*s.SpanFraction
		}
		return
	}

	scale := (target - root) / (tip - root)
	for i := range segs[1:] {
		s := &segs[i+1]
		s.ChordFraction = root + (s.ChordFraction-root)*scale
	}
}

// Metric names a computed planform output
type Metric string

// Planform outputs a sweep can report
const (
	ReferenceArea        Metric = "reference_area"
	WettedArea           Metric = "wetted_area"
	AspectRatio          Metric = "aspect_ratio"
	TotalSpan            Metric = "total_span"
	MeanGeometricChord   Metric = "mgc"
	MeanAerodynamicChord Metric = "mac"
	TaperRatio           Metric = "taper_ratio"
	QuarterChordSweep    Metric = "qc_sweep"
	LeadingEdgeSweep     Metric = "le_sweep"
	ThicknessToChord     Metric = "t_c"
	AerodynamicCenterX   Metric = "ac_x"
	AerodynamicCenterZ   Metric = "ac_z"
	TotalLength          Metric = "total_length"
)

var metrics = map[Metric]func(*planform.Planform) float64{
	ReferenceArea:        func(p *planform.Planform) float64 { return p.ReferenceArea },
	WettedArea:           func(p *planform.Planform) float64 { return p.WettedArea },
	AspectRatio:          func(p *planform.Planform) float64 { return p.AspectRatio },
	TotalSpan:            func(p *planform.Planform) float64 { return p.TotalSpan },
	MeanGeometricChord:   func(p *planform.Planform) float64 { return p.MeanGeometricChord },
	MeanAerodynamicChord: func(p *planform.Planform) float64 { return p.MeanAerodynamicChord },
	TaperRatio:           func(p *planform.Planform) float64 { return p.TaperRatio },
	QuarterChordSweep:    func(p *planform.Planform) float64 { return p.QuarterChordSweep },
	LeadingEdgeSweep:     func(p *planform.Planform) float64 { return p.LeadingEdgeSweep },
	ThicknessToChord:     func(p *planform.Planform) float64 { return p.ThicknessToChord },
	AerodynamicCenterX:   func(p *planform.Planform) float64 { return p.AerodynamicCenter.X },
	AerodynamicCenterZ:   func(p *planform.Planform) float64 { return p.AerodynamicCenter.Z },
	TotalLength:          func(p *planform.Planform) float64 { return p.TotalLength },
}

// Metrics lists the known metric names in sorted order
func Metrics() []string {
	names := make([]string, 0, len(metrics))
	for m := range metrics {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}

// ParseMetric looks up a metric by name
func ParseMetric(name string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(name)))
	if !m.known() {
		return "", fmt.Errorf("unknown metric %q (want one of %s)", name, strings.Join(Metrics(), ", "))
	}
	return m, nil
}

// Of extracts the metric from a computed planform
func (m Metric) Of(p *planform.Planform) float64 {
	return metrics[m](p)
}

func (m Metric) known() bool {
	_, ok := metrics[m]
	return ok
}
