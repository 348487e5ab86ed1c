// pkg/physics/kinetic_test.go
package physics

import (
	"errors"
	"testing"
)

func TestNewKineticState_InvalidMass(t *testing.T) {
	tests := []struct {
		name string
		mass float64
	}{
		{name: "zero_mass", mass: 0},
		{name: "negative_mass", mass: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKineticState(tt.mass, ZeroVelocity())
			if err == nil {
				t.Fatalf("expected error for mass %v, got nil", tt.mass)
			}
			if !errors.Is(err, ErrInvalidMass) {
				t.Errorf("expected ErrInvalidMass, got %v", err)
			}
		})
	}
}

func TestKineticState_ZeroForceIdempotence(t *testing.T) {
	initial := NewPolarVector(12, AngleFromDegrees(45))
	k, err := NewKineticState(3, NewVelocity(initial, NewPolarVector(0, NewAngle(0))))
	if err != nil {
		t.Fatalf("NewKineticState() failed: %v", err)
	}

	for _, dt := range []float64{0.016, 1, 100} {
		got, err := k.UpdateLinearVelocity(nil, dt)
		if err != nil {
			t.Fatalf("UpdateLinearVelocity(nil, %v) failed: %v", dt, err)
		}
		if !got.Equal(initial) {
			t.Errorf("velocity changed with no forces at dt=%v: got %v, expected %v", dt, got, initial)
		}
	}
}

func TestKineticState_SingleForceIntegration(t *testing.T) {
	k, err := NewKineticState(2, ZeroVelocity())
	if err != nil {
		t.Fatalf("NewKineticState() failed: %v", err)
	}

	// a = F/m = 5, over dt 0.5 the velocity gains 2.5 along the force.
	force := NewPolarVector(10, AngleFromDegrees(0))
	got, err := k.UpdateLinearVelocity([]PolarVector{force}, 0.5)
	if err != nil {
		t.Fatalf("UpdateLinearVelocity() failed: %v", err)
	}

	if !approxEqual(got.Magnitude(), 2.5, floatTol) {
		t.Errorf("magnitude = %v, expected 2.5", got.Magnitude())
	}
	if !approxEqual(got.Direction().Degrees(), 0, 1e-6) {
		t.Errorf("direction = %v°, expected 0°", got.Direction().Degrees())
	}

	// The state retains the updated velocity.
	if !k.Velocity().Linear.Equal(got) {
		t.Errorf("stored velocity %v differs from returned %v", k.Velocity().Linear, got)
	}
}

func TestKineticState_MultipleForcesFoldedInOrder(t *testing.T) {
	k, err := NewKineticState(1, ZeroVelocity())
	if err != nil {
		t.Fatalf("NewKineticState() failed: %v", err)
	}

	forces := []PolarVector{
		NewPolarVector(3, AngleFromDegrees(0)),
		NewPolarVector(4, AngleFromDegrees(90)),
	}
	got, err := k.UpdateLinearVelocity(forces, 1)
	if err != nil {
		t.Fatalf("UpdateLinearVelocity() failed: %v", err)
	}

	if !approxEqual(got.Magnitude(), 5, 1e-9) {
		t.Errorf("magnitude = %v, expected 5", got.Magnitude())
	}
	if !approxEqual(got.Direction().Degrees(), 53.13010235415598, 1e-6) {
		t.Errorf("direction = %v°, expected ≈53.13°", got.Direction().Degrees())
	}
}
