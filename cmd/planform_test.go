package cmd

import (
	"testing"

	"github.com/alexiusacademia/gowing/internal/sweep"
	"github.com/alexiusacademia/gowing/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrapezoidWing(t *testing.T) {
	wing := trapezoidWing(24, 3, 0.4, units.ToRadians(25), 0, 0.12, true)
	require.NoError(t, wing.Validate())

	pf, err := wing.Planform()
	require.NoError(t, err)
	assert.InDelta(t, 12*(3+1.2), pf.ReferenceArea, 1e-9)
	assert.InDelta(t, units.ToRadians(25), pf.QuarterChordSweep, 1e-12)
}

func TestDiagramData(t *testing.T) {
	wing := trapezoidWing(10, 2, 0.5, 0, 0, 0.1, true)
	pf, err := wing.Planform()
	require.NoError(t, err)

	data := diagramData(wing, pf)
	require.Len(t, data.LeadingEdge, 2)
	assert.Equal(t, []float64{2, 1}, data.Chords)
	assert.InDelta(t, 5.0, data.Span(), 1e-12)
	assert.Equal(t, pf.MeanAerodynamicChord, data.MeanAerodynamicChord)
	assert.True(t, data.Symmetric)
}

func TestSweepValuesConvertsAngles(t *testing.T) {
	values := sweepValues(sweep.Sweep, 0, 30, 3)
	assert.InDeltaSlice(t, []float64{0, units.ToRadians(15), units.ToRadians(30)}, values, 1e-15)
	assert.InDelta(t, 30.0, display(sweep.Sweep, values[2]), 1e-12)

	spans := sweepValues(sweep.Span, 10, 20, 2)
	assert.Equal(t, []float64{10, 20}, spans)
	assert.Equal(t, 20.0, display(sweep.Span, spans[1]))
}
