package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/mkret/seihrd/internal/config"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"SEIHRD_CONFIG",
		"SEIHRD_LOG_LEVEL",
		"SEIHRD_OUTPUT_DIR",
		"SEIHRD_DAYS",
		"SEIHRD_INITIAL_EXPOSED",
		"SEIHRD_NHS_OVERLOAD",
		"SEIHRD_SEED",
		"SEIHRD_SWEEP_WORKERS",
		"SEIHRD_ENGINE_WORKERS",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.Days, convey.ShouldEqual, 365)
				convey.So(cfg.Families, convey.ShouldResemble, []int{10_000, 13_000, 2_000})
				convey.So(cfg.InitialExposed, convey.ShouldEqual, 100)
				convey.So(cfg.NHSOverload, convey.ShouldEqual, 20)
				convey.So(cfg.EngineWorkers, convey.ShouldEqual, runtime.NumCPU())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SEIHRD_DAYS", "30")
			_ = os.Setenv("SEIHRD_INITIAL_EXPOSED", "10")
			_ = os.Setenv("SEIHRD_OUTPUT_DIR", "/tmp")
			_ = os.Setenv("SEIHRD_SWEEP_WORKERS", "4")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Days, convey.ShouldEqual, 30)
				convey.So(cfg.InitialExposed, convey.ShouldEqual, 10)
				convey.So(cfg.OutputDir, convey.ShouldEqual, "/tmp")
				convey.So(cfg.SweepWorkers, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "seihrd.yaml")
			yaml := "days: 90\nfamilies: [5, 3, 1]\ninitial_exposed: 2\nlog_level: debug\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("SEIHRD_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Days, convey.ShouldEqual, 90)
				convey.So(cfg.Families, convey.ShouldResemble, []int{5, 3, 1})
				convey.So(cfg.InitialExposed, convey.ShouldEqual, 2)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})

			convey.Convey("And env vars should override the file", func() {
				_ = os.Setenv("SEIHRD_DAYS", "7")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Days, convey.ShouldEqual, 7)
			})
		})

		convey.Convey("When the config is invalid", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SEIHRD_DAYS", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation should fail", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file is missing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SEIHRD_CONFIG", "/nonexistent-dir-for-sure/seihrd.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading should fail loudly", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}
