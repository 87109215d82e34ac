package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, ToRadians(180), 1e-15)
	assert.InDelta(t, 45.0, ToDegrees(math.Pi/4), 1e-12)
	assert.InDelta(t, 30.0, ToDegrees(ToRadians(30)), 1e-12)
}

func TestAngle(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"", Degree},
		{"deg", Degree},
		{" Degrees ", Degree},
		{"rad", 1},
		{"RADIANS", 1},
	}
	for _, tt := range tests {
		got, err := Angle(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := Angle("grad")
	assert.ErrorContains(t, err, "unknown angle unit")
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"", Meter},
		{"m", Meter},
		{"ft", Foot},
		{"Feet", Foot},
		{"in", Inch},
	}
	for _, tt := range tests {
		got, err := Length(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := Length("furlong")
	assert.ErrorContains(t, err, "unknown length unit")
}
