// pkg/physics/body_test.go
package physics

import (
	"math"
	"testing"
)

func newTestBody(t *testing.T, mass, speed, angleDeg float64) *Body {
	t.Helper()
	pose := NewPoseState(50, 50, 0, 0, NewAngle(0))
	kinetic, err := NewKineticState(mass, NewVelocity(
		NewPolarVector(speed, AngleFromDegrees(angleDeg)),
		NewPolarVector(0, NewAngle(0)),
	))
	if err != nil {
		t.Fatalf("NewKineticState() failed: %v", err)
	}
	return NewBody(pose, kinetic)
}

func TestBody_StepUpdatesVelocityBeforePosition(t *testing.T) {
	body := newTestBody(t, 5, 15, 90)
	gravity := NewPolarVector(body.Mass()*StandardGravity, AngleFromDegrees(-90))

	_, y, err := body.Step(0.016, gravity)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	// The position integration must read the post-update velocity:
	// y = (15 - g·dt)·dt, not 15·dt.
	want := (15 - StandardGravity*0.016) * 0.016
	if !approxEqual(y, want, 1e-6) {
		t.Errorf("y after first step = %v, expected %v", y, want)
	}
}

func TestBody_GravityDropScenario(t *testing.T) {
	body := newTestBody(t, 5, 15, 90)
	gravity := NewPolarVector(body.Mass()*StandardGravity, AngleFromDegrees(-90))

	const dt = 0.016
	var (
		elapsed  float64
		peak     float64
		rising   bool
		lastY    float64
		finalX   float64
		finalY   float64
		maxSteps = 10000
	)

	for i := 0; i < maxSteps; i++ {
		x, y, err := body.Step(dt, gravity)
		if err != nil {
			t.Fatalf("Step() failed at t=%v: %v", elapsed, err)
		}
		elapsed += dt

		if y > peak {
			peak = y
		}
		if i == 0 && y > 0 {
			rising = true
		}
		lastY, finalX, finalY = y, x, y
		if y < 0 {
			break
		}
	}

	if !rising {
		t.Error("expected y to increase on the first step")
	}
	if finalY >= 0 {
		t.Fatalf("body never returned to ground, last y = %v", lastY)
	}
	if peak <= 10 {
		t.Errorf("peak height = %v, expected a ballistic apex above 10", peak)
	}

	// Flight time approximates 2·v0/g ≈ 3.06 s.
	want := 2 * 15 / StandardGravity
	if math.Abs(elapsed-want) > 0.1 {
		t.Errorf("flight time = %v, expected within 0.1 of %v", elapsed, want)
	}

	// No horizontal force acts; only Euler drift from the tiny horizontal
	// projection of gravity can move x.
	if math.Abs(finalX) > 1e-6 {
		t.Errorf("x drifted to %v, expected ≈0", finalX)
	}
}

func TestBody_StepDeterminism(t *testing.T) {
	run := func() []float64 {
		body := newTestBody(t, 5, 15, 90)
		gravity := NewPolarVector(body.Mass()*StandardGravity, AngleFromDegrees(-90))
		var ys []float64
		for i := 0; i < 50; i++ {
			_, y, err := body.Step(0.016, gravity)
			if err != nil {
				t.Fatalf("Step() failed: %v", err)
			}
			ys = append(ys, y)
		}
		return ys
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("step %d diverged: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestBody_Accessors(t *testing.T) {
	body := newTestBody(t, 5, 15, 90)

	if body.Mass() != 5 {
		t.Errorf("Mass() = %v, expected 5", body.Mass())
	}
	x, y := body.Position()
	if x != 0 || y != 0 {
		t.Errorf("Position() = (%v, %v), expected origin", x, y)
	}
	if !approxEqual(body.Velocity().Linear.Magnitude(), 15, floatTol) {
		t.Errorf("initial speed = %v, expected 15", body.Velocity().Linear.Magnitude())
	}
}
