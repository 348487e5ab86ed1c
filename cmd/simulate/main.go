// cmd/simulate/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ttacon/chalk"

	"github.com/opd-ai/go-kinetics/pkg/config"
	"github.com/opd-ai/go-kinetics/pkg/event"
	"github.com/opd-ai/go-kinetics/pkg/logging"
	"github.com/opd-ai/go-kinetics/pkg/sim"
	"github.com/opd-ai/go-kinetics/pkg/telemetry"
)

func main() {
	logger := logging.NewTextLogger()
	ctx := logging.WithRunID(context.Background(), "")

	configPath := flag.String("config", "scenario.json", "Path to scenario file (.json or .yaml)")
	createDefault := flag.Bool("default", false, "Create default scenario file and exit")
	quiet := flag.Bool("quiet", false, "Suppress the per-step position trace")
	flag.Parse()

	// Create default scenario file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default scenario", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default scenario file",
			"config_path", *configPath,
		)
		return
	}

	// Load scenario, falling back to the built-in projectile drop
	var scenario *config.ScenarioConfig
	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Scenario file not found, using default scenario",
			"config_path", *configPath,
		)
		scenario = config.DefaultConfig()
	} else {
		scenario, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load scenario", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	// Apply environment variable overrides
	if err := config.ApplyEnvironmentOverrides(scenario); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	simulation, err := sim.New(scenario, logger)
	if err != nil {
		logger.Error(ctx, "Failed to build simulation", err)
		os.Exit(1)
	}

	recorder, err := telemetry.NewRecorder(scenario.Telemetry.OutputDir)
	if err != nil {
		logger.Error(ctx, "Failed to create telemetry recorder", err)
		os.Exit(1)
	}
	simulation.AttachRecorder(recorder)

	if !*quiet {
		simulation.EventBus().Subscribe(event.StepCompleted, func(e event.Event) {
			step := e.(*event.StepEvent)
			fmt.Printf("%sX: %.2f; Y: %.2f%s\n", chalk.Cyan, step.X, step.Y, chalk.Reset)
		})
	}

	// Stop the run cleanly on interrupt
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := simulation.Run(ctx)
	if err != nil {
		logger.Error(ctx, "Simulation failed", err)
		os.Exit(1)
	}

	fmt.Printf("%sTotal time: %.2f%s\n", chalk.Green, result.Elapsed, chalk.Reset)
}
