// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnvironmentOverrides.
const (
	EnvBodyMass        = "KINETICS_BODY_MASS"
	EnvBodySpeed       = "KINETICS_BODY_SPEED"
	EnvBodySpeedAngle  = "KINETICS_BODY_SPEED_ANGLE"
	EnvGravityAccel    = "KINETICS_GRAVITY_ACCEL"
	EnvTimeStep        = "KINETICS_TIME_STEP"
	EnvMaxSteps        = "KINETICS_MAX_STEPS"
	EnvTelemetryOutput = "KINETICS_TELEMETRY_DIR"
)

// ApplyEnvironmentOverrides overlays KINETICS_* environment variables onto a
// loaded scenario. Unset variables leave the config untouched.
func ApplyEnvironmentOverrides(config *ScenarioConfig) error {
	floatVars := []struct {
		key    string
		target *float64
	}{
		{EnvBodyMass, &config.Body.Mass},
		{EnvBodySpeed, &config.Body.Speed},
		{EnvBodySpeedAngle, &config.Body.SpeedAngleDeg},
		{EnvGravityAccel, &config.Gravity.Acceleration},
		{EnvTimeStep, &config.Stepping.TimeStep},
	}
	for _, v := range floatVars {
		raw, ok := os.LookupEnv(v.key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", v.key, raw, err)
		}
		*v.target = parsed
	}

	if raw, ok := os.LookupEnv(EnvMaxSteps); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxSteps, raw, err)
		}
		config.Stepping.MaxSteps = parsed
	}

	if raw, ok := os.LookupEnv(EnvTelemetryOutput); ok {
		config.Telemetry.OutputDir = raw
	}

	return nil
}
