package planform

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Segment is a spanwise station of a segmented wing.
// Segments are listed from root to tip; the geometry between two adjacent
// segments is a trapezoidal panel.
type Segment struct {
	Tag string `json:"tag,omitempty"`

	SpanFraction  float64 `json:"span_fraction"`  // fraction of semispan at this station
	ChordFraction float64 `json:"chord_fraction"` // local chord / root chord

	// Angles (radians)
	Twist             float64 `json:"twist"`
	QuarterChordSweep float64 `json:"quarter_chord_sweep"` // of the panel outboard of this station
	Dihedral          float64 `json:"dihedral"`            // of the panel outboard of this station

	ThicknessToChord float64 `json:"thickness_to_chord"`
}

// Wing holds the planform inputs of a segmented wing.
// All lengths must share one unit; all angles are radians.
type Wing struct {
	Tag string `json:"tag,omitempty"`

	RootChord     float64 `json:"root_chord"`
	ProjectedSpan float64 `json:"projected_span"`

	// Symmetric wings are mirrored about the root; ProjectedSpan is then
	// tip to tip. Asymmetric wings (fins) use ProjectedSpan as one side.
	Symmetric bool `json:"symmetric"`

	Segments []Segment `json:"segments"`
}

// Panel is the trapezoid between two adjacent segments.
type Panel struct {
	Root Segment
	Tip  Segment

	SpanFraction float64 // Δη
	Length       float64 // projected spanwise length of one side
	RootChord    float64
	TipChord     float64
	Taper        float64

	Area       float64 // one side
	WettedArea float64 // one side, upper and lower surface

	// Integral of chord² over the panel's span fraction.
	ChordSquaredIntegral float64
	MeanAerodynamicChord float64

	LeadingEdgeSweep float64 // rad

	// Root offset of the panel and its area centroid
	Offset   r3.Vec
	Centroid r3.Vec
}

// Station locates a segment's leading edge in the wing frame.
// X points aft, Y outboard, Z up; origin is the root leading edge.
type Station struct {
	LeadingEdge r3.Vec
	Chord       float64
}

// Planform holds the computed planform properties of a wing.
type Planform struct {
	// Areas
	ReferenceArea float64
	WettedArea    float64

	AspectRatio float64

	// Spans
	Semispan  float64
	TotalSpan float64 // along the dihedral, both sides for symmetric wings

	// Chords
	MeanGeometricChord   float64
	MeanAerodynamicChord float64
	TipChord             float64 // equivalent straight-taper tip chord

	TaperRatio float64 // equivalent straight-taper ratio

	// Effective sweeps (radians)
	QuarterChordSweep float64
	LeadingEdgeSweep  float64

	ThicknessToChord float64 // area weighted

	AerodynamicCenter r3.Vec

	// Root leading edge to the tip trailing edge along the effective
	// leading-edge sweep, as used for wave drag length estimates.
	TotalLength float64

	Panels   []Panel
	Stations []Station
}

// Sentinel errors for invalid wing definitions
var (
	ErrInsufficientSegments = errors.New("insufficient segments")
	ErrRootChord            = errors.New("invalid root chord")
	ErrSpan                 = errors.New("invalid projected span")
	ErrSpanFractions        = errors.New("invalid span fractions")
	ErrChordFraction        = errors.New("invalid chord fraction")
)

// ValidationError represents a wing validation error
type ValidationError struct {
	msg string
	err error
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func invalid(err error, format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...), err: err}
}

// Validate checks if the wing definition can be computed
func (w *Wing) Validate() error {
	if len(w.Segments) < 2 {
		return invalid(ErrInsufficientSegments, "wing must have at least 2 segments, got %d", len(w.Segments))
	}
	if !(w.RootChord > 0) || math.IsInf(w.RootChord, 0) {
		return invalid(ErrRootChord, "root chord must be positive, got %g", w.RootChord)
	}
	if !(w.ProjectedSpan > 0) || math.IsInf(w.ProjectedSpan, 0) {
		return invalid(ErrSpan, "projected span must be positive, got %g", w.ProjectedSpan)
	}

	first, last := w.Segments[0], w.Segments[len(w.Segments)-1]
	if first.SpanFraction != 0 {
		return invalid(ErrSpanFractions, "first segment must start at span fraction 0, got %g", first.SpanFraction)
	}
	if last.SpanFraction != 1 {
		return invalid(ErrSpanFractions, "last segment must end at span fraction 1, got %g", last.SpanFraction)
	}

	for i, seg := range w.Segments {
		if !(seg.ChordFraction > 0) || math.IsInf(seg.ChordFraction, 0) {
			return invalid(ErrChordFraction, "segment %d must have positive chord fraction, got %g", i+1, seg.ChordFraction)
		}
		if i > 0 && !(seg.SpanFraction > w.Segments[i-1].SpanFraction) {
			return invalid(ErrSpanFractions, "segment %d span fraction %g does not increase from %g",
				i+1, seg.SpanFraction, w.Segments[i-1].SpanFraction)
		}
	}
	return nil
}

// sides is 2 for symmetric wings and 1 otherwise.
func (w *Wing) sides() float64 {
	if w.Symmetric {
		return 2
	}
	return 1
}

// Semispan returns the projected span of one side.
func (w *Wing) Semispan() float64 {
	return w.ProjectedSpan / w.sides()
}
