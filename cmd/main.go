package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkret/seihrd/internal/app"
	"github.com/mkret/seihrd/internal/config"
	"github.com/mkret/seihrd/pkg/logger"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(loggerInstance),
		app.WithFamilies(cfg.Families),
		app.WithDays(cfg.Days),
		app.WithInitialExposed(cfg.InitialExposed),
		app.WithNHSOverload(cfg.NHSOverload),
		app.WithOutputDir(cfg.OutputDir),
		app.WithSeed(cfg.Seed),
		app.WithSweepWorkers(cfg.SweepWorkers),
		app.WithEngineWorkers(cfg.EngineWorkers),
	)

	results, err := svc.Run(ctx)
	if err != nil {
		loggerInstance.Error(ctx, "scenario sweep failed", logger.Error(err))
		os.Exit(1)
	}

	fmt.Printf("%-20s %8s %12s %8s %18s\n", "SCENARIO", "DAYS", "POPULATION", "DEATHS", "PEAK HOSPITALISED")
	for _, res := range results {
		fmt.Printf("%-20s %8d %12d %8d %18d\n",
			res.Scenario.Name, res.Days, res.Population, res.Deaths, res.PeakHospitalised)
	}
}
