package planform

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(w *Wing)
		want   error
	}{
		{"valid", func(w *Wing) {}, nil},
		{"no segments", func(w *Wing) { w.Segments = nil }, ErrInsufficientSegments},
		{"one segment", func(w *Wing) { w.Segments = w.Segments[:1] }, ErrInsufficientSegments},
		{"zero root chord", func(w *Wing) { w.RootChord = 0 }, ErrRootChord},
		{"NaN root chord", func(w *Wing) { w.RootChord = math.NaN() }, ErrRootChord},
		{"negative span", func(w *Wing) { w.ProjectedSpan = -1 }, ErrSpan},
		{"infinite span", func(w *Wing) { w.ProjectedSpan = math.Inf(1) }, ErrSpan},
		{"first fraction not zero", func(w *Wing) { w.Segments[0].SpanFraction = 0.1 }, ErrSpanFractions},
		{"last fraction not one", func(w *Wing) { w.Segments[2].SpanFraction = 0.9 }, ErrSpanFractions},
		{"non-monotonic", func(w *Wing) { w.Segments[1].SpanFraction = 1.0 }, ErrSpanFractions},
		{"zero chord", func(w *Wing) { w.Segments[1].ChordFraction = 0 }, ErrChordFraction},
		{"negative chord", func(w *Wing) { w.Segments[2].ChordFraction = -0.2 }, ErrChordFraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := taperedWing()
			tt.modify(&w)

			err := w.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.NotEmpty(t, verr.Error())

			pf, err := w.Planform()
			assert.Nil(t, pf)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSemispan(t *testing.T) {
	w := taperedWing()
	assert.Equal(t, 5.0, w.Semispan())

	w.Symmetric = false
	assert.Equal(t, 10.0, w.Semispan())
}
