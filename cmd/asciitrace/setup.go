package main

import (
	"io"
	"os"

	"github.com/urfave/cli"

	"asciitrace/internal/logger"
	"asciitrace/pkg/config"
)

// loadConfig reads the global config file and applies the command's
// overrides. Flags left at their sentinel values keep the file's setting.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(ctx.GlobalString("config"))
	if err != nil {
		return nil, err
	}

	if preset := ctx.String("preset"); preset != "" {
		cfg.Scene.Preset = preset
	}
	if ctx.IsSet("threads") && ctx.Int("threads") >= 0 {
		cfg.Raytracer.NumThreads = ctx.Int("threads")
	}
	if ctx.IsSet("fps") && ctx.Int("fps") >= 0 {
		cfg.Display.FrameRate = ctx.Int("fps")
	}
	if ctx.IsSet("turns") && ctx.Float64("turns") >= 0 {
		cfg.Scene.Turns = ctx.Float64("turns")
	}
	if ctx.Bool("no-shadows") {
		cfg.Raytracer.ShadowsEnabled = false
	}
	if ctx.Bool("no-stats") {
		cfg.Display.ShowStats = false
	}
	if file := ctx.GlobalString("log-file"); file != "" {
		cfg.Logging.File = file
	}

	return cfg, cfg.Validate()
}

// setupLogging builds the logger for a command. Output goes to the
// configured file and to console; a nil console means the command owns the
// terminal and only the file is written, falling back to stderr when no file
// is configured. -v and -vv raise verbosity above the configured level.
func setupLogging(ctx *cli.Context, cfg *config.Config, console io.Writer) (*logger.Logger, error) {
	level := cfg.Logging.Level
	if ctx.GlobalBool("v") {
		level = "info"
	}
	if ctx.GlobalBool("vv") {
		level = "debug"
	}

	if cfg.Logging.File != "" {
		if console == nil {
			return logger.NewFileLogger(level, cfg.Logging.File)
		}
		return logger.NewMultiLogger(level, cfg.Logging.File, console)
	}
	if console == nil {
		console = os.Stderr
	}
	return logger.NewWriterLogger(level, console), nil
}
