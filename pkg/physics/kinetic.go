package physics

import "fmt"

// StandardGravity is the standard gravitational acceleration in m/s².
// Callers pass it explicitly when building gravity forces; the core holds
// no process-wide mutable state.
const StandardGravity = 9.80665

// KineticState holds a body's mass and velocity and integrates applied
// forces into linear velocity.
type KineticState struct {
	mass     float64
	velocity Velocity
}

// NewKineticState creates a kinetic state. Mass must be strictly positive;
// failures surface at construction rather than at first use.
func NewKineticState(mass float64, velocity Velocity) (*KineticState, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("invalid kinetic state: %w (got %g)", ErrInvalidMass, mass)
	}
	return &KineticState{mass: mass, velocity: velocity}, nil
}

// Mass returns the body's mass.
func (k *KineticState) Mass() float64 {
	return k.mass
}

// Velocity returns the current velocity.
func (k *KineticState) Velocity() Velocity {
	return k.velocity
}

// UpdateLinearVelocity sums the applied forces and integrates the resulting
// acceleration into the linear velocity over dt, returning the updated
// vector. Forces are folded left to right; with unnormalized angles the
// composition is not perfectly associative, so the reduction order is fixed.
// An empty force list leaves the velocity unchanged.
func (k *KineticState) UpdateLinearVelocity(forces []PolarVector, dt float64) (PolarVector, error) {
	if len(forces) == 0 {
		return k.velocity.Linear, nil
	}

	net := forces[0]
	for _, f := range forces[1:] {
		sum, err := net.Add(f)
		if err != nil {
			return PolarVector{}, fmt.Errorf("summing applied forces: %w", err)
		}
		net = sum
	}

	updated, err := k.velocity.Linear.Add(net.Scale(dt).Divide(k.mass))
	if err != nil {
		return PolarVector{}, fmt.Errorf("integrating acceleration: %w", err)
	}
	k.velocity.Linear = updated
	return updated, nil
}
