// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-kinetics/pkg/physics"
)

// ScenarioConfig describes one simulation run: the body's initial state, the
// constant external force field, and the stepping parameters.
type ScenarioConfig struct {
	Extent    ExtentConfig    `json:"extent" yaml:"extent"`
	Body      BodyConfig      `json:"body" yaml:"body"`
	Gravity   GravityConfig   `json:"gravity" yaml:"gravity"`
	Stepping  SteppingConfig  `json:"stepping" yaml:"stepping"`
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry"`
}

// ExtentConfig is the body's spatial extent.
type ExtentConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// BodyConfig is the body's initial state.
type BodyConfig struct {
	Mass           float64 `json:"mass" yaml:"mass"`
	X              float64 `json:"x" yaml:"x"`
	Y              float64 `json:"y" yaml:"y"`
	OrientationDeg float64 `json:"orientationDeg" yaml:"orientation_deg"`
	Speed          float64 `json:"speed" yaml:"speed"`
	SpeedAngleDeg  float64 `json:"speedAngleDeg" yaml:"speed_angle_deg"`
}

// GravityConfig describes the constant gravity force field.
type GravityConfig struct {
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
	AngleDeg     float64 `json:"angleDeg" yaml:"angle_deg"`
}

// SteppingConfig controls the fixed-timestep loop.
type SteppingConfig struct {
	TimeStep    float64 `json:"timeStep" yaml:"time_step"`
	MaxSteps    int     `json:"maxSteps" yaml:"max_steps"`
	GroundLevel float64 `json:"groundLevel" yaml:"ground_level"`
}

// TelemetryConfig controls trajectory recording.
type TelemetryConfig struct {
	OutputDir string `json:"outputDir" yaml:"output_dir"`
}

// LoadConfig loads a scenario from a JSON or YAML file, selected by
// extension. Files ending in .yaml or .yml parse as YAML; everything else
// parses as JSON.
func LoadConfig(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ScenarioConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return &config, nil
}

// SaveConfig saves a scenario to a file, using the same extension rules as
// LoadConfig.
func SaveConfig(config *ScenarioConfig, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the projectile-under-gravity scenario: a 5 kg body
// launched straight up at 15 m/s, stepped at 16 ms until it falls below
// ground level.
func DefaultConfig() *ScenarioConfig {
	return &ScenarioConfig{
		Extent: ExtentConfig{
			Width:  50,
			Height: 50,
		},
		Body: BodyConfig{
			Mass:           5,
			X:              0,
			Y:              0,
			OrientationDeg: 0,
			Speed:          15,
			SpeedAngleDeg:  90,
		},
		Gravity: GravityConfig{
			Acceleration: physics.StandardGravity,
			AngleDeg:     -90,
		},
		Stepping: SteppingConfig{
			TimeStep:    0.016,
			MaxSteps:    100000,
			GroundLevel: 0,
		},
	}
}

// Validate checks the scenario for values the engine cannot run with.
func (c *ScenarioConfig) Validate() error {
	var errs []error
	if c.Body.Mass <= 0 {
		errs = append(errs, fmt.Errorf("body mass must be positive, got %g", c.Body.Mass))
	}
	if c.Stepping.TimeStep <= 0 {
		errs = append(errs, fmt.Errorf("time step must be positive, got %g", c.Stepping.TimeStep))
	}
	if c.Stepping.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("max steps must be positive, got %d", c.Stepping.MaxSteps))
	}
	for name, v := range map[string]float64{
		"body speed":           c.Body.Speed,
		"gravity acceleration": c.Gravity.Acceleration,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %g", name, v))
		}
	}
	return errors.Join(errs...)
}
