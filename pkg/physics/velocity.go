package physics

// Velocity decomposes a body's motion into a linear and a rotational
// component.
type Velocity struct {
	Linear     PolarVector
	Rotational PolarVector
}

// NewVelocity creates a velocity from explicit components.
func NewVelocity(linear, rotational PolarVector) Velocity {
	return Velocity{Linear: linear, Rotational: rotational}
}

// ZeroVelocity returns a velocity with both components at zero magnitude
// and zero angle.
func ZeroVelocity() Velocity {
	zero := NewPolarVector(0, NewAngle(0))
	return Velocity{Linear: zero, Rotational: zero}
}
