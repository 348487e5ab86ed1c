// Package sim drives a body through a fixed-timestep force integration loop
// until it returns to ground level or the step budget runs out.
package sim

import (
	"context"
	"fmt"

	"github.com/opd-ai/go-kinetics/pkg/config"
	"github.com/opd-ai/go-kinetics/pkg/event"
	"github.com/opd-ai/go-kinetics/pkg/logging"
	"github.com/opd-ai/go-kinetics/pkg/physics"
	"github.com/opd-ai/go-kinetics/pkg/telemetry"
)

// Simulation owns one body and the constant force field acting on it.
// The stepping loop is single threaded; the event bus and recorder are
// invoked inline from the loop.
type Simulation struct {
	cfg      *config.ScenarioConfig
	body     *physics.Body
	gravity  physics.PolarVector
	bus      *event.Bus
	logger   *logging.Logger
	recorder *telemetry.Recorder
}

// Result summarizes a finished run.
type Result struct {
	Ticks    uint64
	Elapsed  float64
	FinalX   float64
	FinalY   float64
	PeakY    float64
	Grounded bool
}

// New builds a simulation from a scenario. The configuration is validated
// up front; an invalid mass also surfaces here via the kinetic state
// constructor.
func New(cfg *config.ScenarioConfig, logger *logging.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	pose := physics.NewPoseState(
		cfg.Extent.Width, cfg.Extent.Height,
		cfg.Body.X, cfg.Body.Y,
		physics.AngleFromDegrees(cfg.Body.OrientationDeg),
	)
	kinetic, err := physics.NewKineticState(cfg.Body.Mass, physics.NewVelocity(
		physics.NewPolarVector(cfg.Body.Speed, physics.AngleFromDegrees(cfg.Body.SpeedAngleDeg)),
		physics.NewPolarVector(0, physics.NewAngle(0)),
	))
	if err != nil {
		return nil, err
	}
	body := physics.NewBody(pose, kinetic)

	gravity := physics.NamedPolarVector(
		cfg.Body.Mass*cfg.Gravity.Acceleration,
		physics.AngleFromDegrees(cfg.Gravity.AngleDeg),
		"gravity",
	)

	return &Simulation{
		cfg:     cfg,
		body:    body,
		gravity: gravity,
		bus:     event.NewEventBus(),
		logger:  logger,
	}, nil
}

// EventBus returns the simulation's event bus for subscribing before Run.
func (s *Simulation) EventBus() *event.Bus {
	return s.bus
}

// AttachRecorder sets the trajectory recorder. A nil recorder disables
// recording.
func (s *Simulation) AttachRecorder(r *telemetry.Recorder) {
	s.recorder = r
}

// Body exposes the simulated body, mainly for tests and inspection.
func (s *Simulation) Body() *physics.Body {
	return s.body
}

// Run steps the body under gravity until it drops below ground level, the
// step budget is exhausted, or the context is cancelled. Cancellation is
// only observed between ticks; a single step never blocks.
func (s *Simulation) Run(ctx context.Context) (*Result, error) {
	runID := logging.GetRunID(ctx)
	if runID == "" {
		runID = logging.GenerateRunID()
		ctx = logging.WithRunID(ctx, runID)
	}

	dt := s.cfg.Stepping.TimeStep
	s.logger.Info(ctx, "simulation started",
		"mass", s.body.Mass(),
		"time_step", dt,
		"max_steps", s.cfg.Stepping.MaxSteps,
	)
	s.bus.Publish(event.NewLifecycleEvent(event.SimulationStarted, s, runID, 0))

	result := &Result{}
	for tick := 0; tick < s.cfg.Stepping.MaxSteps; tick++ {
		select {
		case <-ctx.Done():
			s.logger.Warn(ctx, "simulation cancelled", "tick", result.Ticks)
			return result, ctx.Err()
		default:
		}

		x, y, err := s.body.Step(dt, s.gravity)
		if err != nil {
			s.logger.Error(ctx, "step failed", err, "tick", result.Ticks)
			return result, fmt.Errorf("step %d: %w", tick, err)
		}

		result.Ticks++
		result.Elapsed += dt
		result.FinalX, result.FinalY = x, y
		if y > result.PeakY {
			result.PeakY = y
		}

		s.bus.Publish(event.NewStepEvent(s, result.Ticks, result.Elapsed, x, y))
		linear := s.body.Velocity().Linear
		s.recorder.Record(telemetry.TrajectorySample{
			Tick:       result.Ticks,
			Elapsed:    result.Elapsed,
			X:          x,
			Y:          y,
			Speed:      linear.Magnitude(),
			HeadingDeg: linear.Direction().Degrees(),
		})

		if y < s.cfg.Stepping.GroundLevel {
			result.Grounded = true
			s.bus.Publish(event.NewLifecycleEvent(event.BodyGrounded, s, runID, result.Elapsed))
			break
		}
	}

	s.bus.Publish(event.NewLifecycleEvent(event.SimulationEnded, s, runID, result.Elapsed))
	if err := s.recorder.Flush(); err != nil {
		s.logger.Error(ctx, "failed to flush telemetry", err)
		return result, err
	}

	s.logger.Info(ctx, "simulation ended",
		"ticks", result.Ticks,
		"elapsed", result.Elapsed,
		"grounded", result.Grounded,
		"peak_y", result.PeakY,
	)
	return result, nil
}
