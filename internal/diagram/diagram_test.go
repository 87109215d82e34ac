package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinked is one side of a 10 m wing with a mid-span kink
func kinked() PlanformDiagramData {
	return PlanformDiagramData{
		Title:                "main wing",
		LeadingEdge:          []Point{{X: 0, Y: 0}, {X: 0.1, Y: 2.5}, {X: 0.175, Y: 5}},
		Chords:               []float64{1.0, 0.6, 0.3},
		MeanAerodynamicChord: 0.6906666666666667,
		AerodynamicCenter:    Point{X: 0.25, Y: 0},
		Symmetric:            true,
	}
}

func TestExtents(t *testing.T) {
	d := kinked()
	assert.Equal(t, 5.0, d.Span())
	assert.InDelta(t, 1.0, d.Length(), 1e-12)
	assert.Equal(t, 0.0, PlanformDiagramData{}.Span())
}

func TestMACStation(t *testing.T) {
	d := kinked()
	st, ok := d.MACStation()
	require.True(t, ok)

	// Chord falls from 1.0 to 0.6 over the inner panel
	wantT := (1.0 - d.MeanAerodynamicChord) / 0.4
	assert.InDelta(t, 2.5*wantT, st.Y, 1e-12)
	assert.InDelta(t, 0.1*wantT, st.X, 1e-12)

	rect := PlanformDiagramData{
		LeadingEdge:          []Point{{0, 0}, {0, 3}},
		Chords:               []float64{2, 2},
		MeanAerodynamicChord: 2,
	}
	_, ok = rect.MACStation()
	assert.False(t, ok)
}

func TestDrawASCIIPlanform(t *testing.T) {
	out := DrawASCIIPlanform(kinked())

	assert.Contains(t, out, "MAIN WING")
	assert.Contains(t, out, "◆")
	assert.Contains(t, out, "a.c. x = 0.250")
	assert.Contains(t, out, "░")
	assert.Contains(t, out, "tip y = 5.000")

	assert.Empty(t, DrawASCIIPlanform(PlanformDiagramData{}))
}

func TestDrawASCIIPlanformForwardSwept(t *testing.T) {
	d := PlanformDiagramData{
		LeadingEdge:          []Point{{X: 0, Y: 0}, {X: -0.6, Y: 2.5}, {X: -1.2, Y: 5}},
		Chords:               []float64{1.0, 0.6, 0.3},
		MeanAerodynamicChord: 0.69,
		AerodynamicCenter:    Point{X: -0.72, Y: 0},
		Symmetric:            true,
	}
	assert.Equal(t, -1.2, d.Origin())
	assert.InDelta(t, 2.2, d.Length(), 1e-12)

	var grid []string
	for _, l := range strings.Split(DrawASCIIPlanform(d), "\n") {
		if strings.HasPrefix(l, "  │") && len([]rune(l)) >= 3+61+1 {
			grid = append(grid, l)
		}
	}
	require.Len(t, grid, 17)

	// tip leading edge sits on the first row at the outboard column
	top := []rune(grid[0])
	assert.Equal(t, '░', top[3+60])

	acRow := -1
	for i, l := range grid {
		if strings.Contains(l, "a.c. x = -0.720") {
			acRow = i
		}
	}
	assert.Greater(t, acRow, 0)
}

func TestDrawSummaryBox(t *testing.T) {
	input := []string{"x = 1.0000 m", "y = 0.0000 m"}
	out := DrawSummaryBox("AERODYNAMIC CENTER", input)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4+len(input))

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestDrawASCIISweep(t *testing.T) {
	out := DrawASCIISweep("aspect_ratio vs span", []float64{10, 20, 30}, []float64{16, 32, 48})

	assert.Contains(t, out, "aspect_ratio vs span, x from 10 to 30")
	assert.Contains(t, out, "48")
	assert.Contains(t, out, "16")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 11)

	assert.Empty(t, DrawASCIISweep("one point", []float64{1}, []float64{2}))
	assert.Empty(t, DrawASCIISweep("mismatched", []float64{1, 2}, []float64{2}))
}

func TestExportPlanform(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"wing.png", "wing.svg", "nested/wing.pdf"} {
		file := filepath.Join(dir, name)
		require.NoError(t, ExportPlanform(kinked(), file))
		info, err := os.Stat(file)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	require.NoError(t, ExportPlanform(kinked(), filepath.Join(dir, "noext")))
	_, err := os.Stat(filepath.Join(dir, "noext.png"))
	assert.NoError(t, err)

	assert.Error(t, ExportPlanform(PlanformDiagramData{}, filepath.Join(dir, "empty.png")))
}

func TestExportSweepLine(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sweep.png")
	err := ExportSweepLine("AR vs span", "span", "aspect_ratio", []float64{10, 20, 30}, []float64{16, 32, 48}, file)
	require.NoError(t, err)
	_, err = os.Stat(file)
	assert.NoError(t, err)

	assert.Error(t, ExportSweepLine("bad", "x", "y", []float64{1}, nil, file))
}
