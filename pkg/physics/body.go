package physics

// Body is a simulated rigid point combining a pose and a kinetic state.
// Each Body owns its states exclusively; no sharing between bodies.
type Body struct {
	pose    *PoseState
	kinetic *KineticState
}

// NewBody creates a body from its pose and kinetic state.
func NewBody(pose *PoseState, kinetic *KineticState) *Body {
	return &Body{pose: pose, kinetic: kinetic}
}

// Mass returns the body's mass.
func (b *Body) Mass() float64 {
	return b.kinetic.Mass()
}

// Position returns the body's current coordinates.
func (b *Body) Position() (float64, float64) {
	return b.pose.X, b.pose.Y
}

// Velocity returns the body's current velocity.
func (b *Body) Velocity() Velocity {
	return b.kinetic.Velocity()
}

// Step advances the body by one timestep under the supplied forces and
// returns the new position. The velocity update completes before the
// position integration reads it.
func (b *Body) Step(dt float64, forces ...PolarVector) (float64, float64, error) {
	velocity, err := b.kinetic.UpdateLinearVelocity(forces, dt)
	if err != nil {
		return b.pose.X, b.pose.Y, err
	}
	x, y := b.pose.UpdatePosition(velocity, dt)
	return x, y, nil
}
