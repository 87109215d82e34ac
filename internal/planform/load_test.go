package planform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFileYAML(t *testing.T) {
	w, err := LoadFromFile(filepath.Join("testdata", "tapered.yaml"))
	require.NoError(t, err)

	assert.Equal(t, taperedWing(), *w)

	pf, err := w.Planform()
	require.NoError(t, err)
	assert.InDelta(t, 0.6906666666666667, pf.MeanAerodynamicChord, tol)
}

func TestLoadFromFileJSONDegrees(t *testing.T) {
	w, err := LoadFromFile(filepath.Join("testdata", "swept.json"))
	require.NoError(t, err)

	assert.True(t, w.Symmetric, "symmetric defaults to true")
	require.Len(t, w.Segments, 3)
	assert.InDelta(t, deg(25), w.Segments[0].QuarterChordSweep, 1e-15)
	assert.InDelta(t, deg(5), w.Segments[1].Dihedral, 1e-15)
	assert.InDelta(t, deg(-1), w.Segments[2].Twist, 1e-15)

	pf, err := w.Planform()
	require.NoError(t, err)
	assert.InDelta(t, 2.6144927536231886, pf.MeanAerodynamicChord, tol)
	assert.InDelta(t, 3.9484838654804797, pf.AerodynamicCenter.X, tol)
}

func TestLoadFromFileTOMLUnits(t *testing.T) {
	w, err := LoadFromFile(filepath.Join("testdata", "fin.toml"))
	require.NoError(t, err)

	assert.Equal(t, "fin", w.Tag)
	assert.False(t, w.Symmetric)
	assert.InDelta(t, 3.048, w.RootChord, 1e-12)
	assert.InDelta(t, 6.096, w.ProjectedSpan, 1e-12)
	assert.InDelta(t, 0.5, w.Segments[1].QuarterChordSweep, 1e-15)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join("testdata", "one_segment.yaml"))
	assert.ErrorIs(t, err, ErrInsufficientSegments)

	_, err = LoadFromFile(filepath.Join("testdata", "bad_units.yaml"))
	assert.ErrorContains(t, err, "unknown angle unit")

	_, err = LoadFromFile(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "read wing file")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadFromFile(bad)
	assert.Error(t, err)
}
