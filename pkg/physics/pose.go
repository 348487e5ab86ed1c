package physics

// PoseState holds a body's spatial extent, position, and orientation.
// The extent takes no part in the position update but is part of the state.
type PoseState struct {
	Width       float64
	Height      float64
	X           float64
	Y           float64
	Orientation Angle
}

// NewPoseState creates a pose with the given extent, position, and
// orientation.
func NewPoseState(width, height, x, y float64, orientation Angle) *PoseState {
	return &PoseState{
		Width:       width,
		Height:      height,
		X:           x,
		Y:           y,
		Orientation: orientation,
	}
}

// UpdatePosition advances the position by one Euler step of the supplied
// velocity vector and returns the new coordinates. Orientation is never
// mutated here: rotational velocity is tracked in KineticState but rotational
// integration is unimplemented.
func (p *PoseState) UpdatePosition(velocity PolarVector, dt float64) (float64, float64) {
	p.X += velocity.X() * dt
	p.Y += velocity.Y() * dt
	return p.X, p.Y
}
