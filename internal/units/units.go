// Package units converts raw numbers at the input/output boundary.
// Planform math works in a single length unit and radians throughout.
package units

import (
	"fmt"
	"math"
	"strings"
)

// Conversion factors to SI
const (
	Degree = math.Pi / 180 // rad
	Meter  = 1.0
	Foot   = 0.3048 // m
	Inch   = 0.0254 // m
)

// ToRadians converts degrees to radians
func ToRadians(deg float64) float64 {
	return deg * Degree
}

// ToDegrees converts radians to degrees
func ToDegrees(rad float64) float64 {
	return rad / Degree
}

// Angle returns the factor that converts an angle in the named unit to
// radians. An empty name means degrees.
func Angle(name string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "deg", "degree", "degrees":
		return Degree, nil
	case "rad", "radian", "radians":
		return 1, nil
	}
	return 0, fmt.Errorf("unknown angle unit %q", name)
}

// Length returns the factor that converts a length in the named unit to
// metres. An empty name means metres.
func Length(name string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "m", "meter", "meters", "metre", "metres":
		return Meter, nil
	case "ft", "foot", "feet":
		return Foot, nil
	case "in", "inch", "inches":
		return Inch, nil
	}
	return 0, fmt.Errorf("unknown length unit %q", name)
}
