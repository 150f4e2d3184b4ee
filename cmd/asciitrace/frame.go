package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"asciitrace/pkg/config"
	"asciitrace/pkg/engine"
)

// RenderFrame renders one frame of a preset and prints it to stdout.
func RenderFrame(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	log, err := setupLogging(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	width, height := ctx.Int("width"), ctx.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	rt, setup, err := prepare(cfg)
	if err != nil {
		return err
	}
	setup.Animate(ctx.Float64("angle"))

	frame := engine.NewFrame(width, height)
	if err := rt.Render(frame, setup.Scene, setup.Camera, setup.Light); err != nil {
		return err
	}
	log.Debugf("Rendered %q at %.1f degrees with %d workers", cfg.Scene.Preset, ctx.Float64("angle"), rt.Workers())

	_, err = fmt.Fprint(os.Stdout, frame.String())
	return err
}

// prepare builds the raytracer and scene described by cfg
func prepare(cfg *config.Config) (*engine.Raytracer, *engine.Setup, error) {
	palette, err := engine.NewPalette(cfg.Renderer.CharSet)
	if err != nil {
		return nil, nil, err
	}
	rt, err := engine.NewRaytracer(cfg.Raytracer, palette)
	if err != nil {
		return nil, nil, err
	}
	preset, err := engine.LookupPreset(cfg.Scene.Preset)
	if err != nil {
		return nil, nil, err
	}
	return rt, preset.Build(), nil
}
