// pkg/physics/angle.go
package physics

import (
	"fmt"
	"math"
)

// Angle represents an orientation or phase value, stored in radians.
// Arithmetic does not normalize: values beyond ±2π are preserved.
type Angle struct {
	radians float64
}

// NewAngle creates an Angle from a value in radians.
func NewAngle(radians float64) Angle {
	return Angle{radians: radians}
}

// AngleFromDegrees creates an Angle from a value in degrees.
func AngleFromDegrees(degrees float64) Angle {
	return Angle{radians: degrees * math.Pi / 180}
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return a.radians
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 {
	return a.radians * 180 / math.Pi
}

// Add returns the sum of two angles.
func (a Angle) Add(other Angle) Angle {
	return Angle{radians: a.radians + other.radians}
}

// Sub returns the difference between two angles.
func (a Angle) Sub(other Angle) Angle {
	return Angle{radians: a.radians - other.radians}
}

// String renders the angle in degrees with a degree symbol.
func (a Angle) String() string {
	return fmt.Sprintf("%g°", a.Degrees())
}
