// pkg/physics/vector.go
package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// equalTol is the absolute tolerance used when comparing vectors.
const equalTol = 1e-9

// defaultVectorName labels vectors constructed without an explicit name.
const defaultVectorName = "val"

// PolarVector represents a 2D vector in magnitude/direction form. It models
// a force, a velocity, or a displacement rate. The name is a display label
// only and carries no semantics. PolarVector is an immutable value type:
// every operation returns a new instance.
type PolarVector struct {
	magnitude float64
	angle     Angle
	name      string
}

// NewPolarVector creates a vector with the default display name.
func NewPolarVector(magnitude float64, angle Angle) PolarVector {
	return NamedPolarVector(magnitude, angle, defaultVectorName)
}

// NamedPolarVector creates a vector with an explicit display name.
func NamedPolarVector(magnitude float64, angle Angle, name string) PolarVector {
	return PolarVector{
		magnitude: magnitude,
		angle:     angle,
		name:      name,
	}
}

// Magnitude returns the signed magnitude of the vector.
func (v PolarVector) Magnitude() float64 {
	return v.magnitude
}

// Direction returns the vector's angle.
func (v PolarVector) Direction() Angle {
	return v.angle
}

// Name returns the vector's display label.
func (v PolarVector) Name() string {
	return v.name
}

// X returns the Cartesian x projection of the vector.
func (v PolarVector) X() float64 {
	return v.magnitude * math.Cos(v.angle.Radians())
}

// Y returns the Cartesian y projection of the vector.
func (v PolarVector) Y() float64 {
	return v.magnitude * math.Sin(v.angle.Radians())
}

// Add composes two vectors by the parallelogram law. The resultant magnitude
// follows the law of cosines; the resultant direction is recovered from the
// summed Cartesian projections with a four-quadrant arctangent. When both
// projections are zero the direction is undefined and an
// UndefinedDirectionError is returned.
func (v PolarVector) Add(other PolarVector) (PolarVector, error) {
	a, b := v.magnitude, other.magnitude
	delta := v.angle.Sub(other.angle)
	c := math.Sqrt(a*a + b*b + 2*a*b*math.Cos(delta.Radians()))

	fx := v.X() + other.X()
	fy := v.Y() + other.Y()
	if fx == 0 && fy == 0 {
		return PolarVector{}, &UndefinedDirectionError{A: v, B: other}
	}

	return NewPolarVector(c, NewAngle(math.Atan2(fy, fx))), nil
}

// Scale returns a vector with the magnitude multiplied by factor. Direction
// and name are unchanged.
func (v PolarVector) Scale(factor float64) PolarVector {
	return NamedPolarVector(v.magnitude*factor, v.angle, v.name)
}

// Divide returns a vector with the magnitude divided by factor. Direction
// and name are unchanged.
func (v PolarVector) Divide(factor float64) PolarVector {
	return NamedPolarVector(v.magnitude/factor, v.angle, v.name)
}

// Equal reports whether two vectors have the same magnitude and direction
// within an absolute tolerance. Names are ignored.
func (v PolarVector) Equal(other PolarVector) bool {
	return scalar.EqualWithinAbs(v.magnitude, other.magnitude, equalTol) &&
		scalar.EqualWithinAbs(v.angle.Radians(), other.angle.Radians(), equalTol)
}

// String renders the magnitude, label, and direction in degrees.
func (v PolarVector) String() string {
	return fmt.Sprintf("%g%s %v", v.magnitude, v.name, v.angle)
}
