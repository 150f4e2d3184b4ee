package engine

import (
	"context"
	"fmt"

	"asciitrace/internal/logger"
	"asciitrace/pkg/config"
)

// Engine drives the render loop: trace a frame, draw it, advance the
// animation by the elapsed frame time.
type Engine struct {
	config    *config.Config
	logger    *logger.Logger
	raytracer *Raytracer
	display   Display
	clock     *Clock
	setup     *Setup
	frame     *Frame
	angle     float64
	sizeFunc  SizeFunc
}

// SizeFunc reports the current drawable area. ok=false keeps the last size.
type SizeFunc func() (width, height int, ok bool)

// NewEngine creates an engine rendering width×height frames of the
// configured scene preset onto display
func NewEngine(cfg *config.Config, log *logger.Logger, display Display, width, height int) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	palette, err := NewPalette(cfg.Renderer.CharSet)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize palette: %w", err)
	}

	raytracer, err := NewRaytracer(cfg.Raytracer, palette)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize raytracer: %w", err)
	}

	preset, err := LookupPreset(cfg.Scene.Preset)
	if err != nil {
		return nil, err
	}

	log.Infof("Scene %q, %dx%d cells, %d workers, shadows=%t, max bounces=%d",
		preset.Name, width, height, raytracer.Workers(), cfg.Raytracer.ShadowsEnabled, cfg.Raytracer.MaxBounces)

	return &Engine{
		config:    cfg,
		logger:    log,
		raytracer: raytracer,
		display:   display,
		clock:     NewClock(cfg.Display.FrameRate),
		setup:     preset.Build(),
		frame:     NewFrame(width, height),
	}, nil
}

// Setup returns the scene being rendered
func (e *Engine) Setup() *Setup {
	return e.setup
}

// Clock returns the frame clock
func (e *Engine) Clock() *Clock {
	return e.clock
}

// SetSizeFunc makes Run poll fn before every frame and follow size changes
func (e *Engine) SetSizeFunc(fn SizeFunc) {
	e.sizeFunc = fn
}

// Resize changes the frame and display size. Non-positive sizes are ignored.
func (e *Engine) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == e.frame.Width && height == e.frame.Height {
		return
	}
	e.frame.Resize(width, height)
	e.display.UpdateResolution(width, height)
	e.logger.Debugf("Resized to %dx%d", width, height)
}

// SetAngle moves the animation to the given orbit angle in degrees
func (e *Engine) SetAngle(angle float64) {
	e.angle = angle
	e.setup.Animate(angle)
}

// RenderFrame traces the current state of the scene into the engine's frame
func (e *Engine) RenderFrame() (*Frame, error) {
	if err := e.raytracer.Render(e.frame, e.setup.Scene, e.setup.Camera, e.setup.Light); err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}
	return e.frame, nil
}

// Run renders frames until the configured number of orbits is done or ctx
// is cancelled
func (e *Engine) Run(ctx context.Context) error {
	defer e.cleanup()

	limit := 360 * e.config.Scene.Turns
	for limit == 0 || e.angle <= limit {
		select {
		case <-ctx.Done():
			e.logger.Info("Render loop interrupted")
			return nil
		default:
		}

		if e.sizeFunc != nil {
			if w, h, ok := e.sizeFunc(); ok {
				e.Resize(w, h)
			}
		}

		e.clock.StartFrame()
		frame, err := e.RenderFrame()
		if err != nil {
			return err
		}
		e.clock.MarkRendered()

		if e.config.Display.ShowStats {
			frame.Overlay(0, 0, e.clock.Stats())
		}
		if err := e.display.Render(frame); err != nil {
			return fmt.Errorf("display failed: %w", err)
		}
		e.clock.MarkDisplayed()

		dt := e.clock.EndFrame()
		e.SetAngle(e.angle + e.setup.Speed*dt)

		if e.clock.Frames()%300 == 0 {
			e.logger.Debugf("frame %d: %.1f fps, render %s", e.clock.Frames(), e.clock.FPS(), e.clock.RenderTime)
		}
	}

	e.logger.Infof("Animation finished after %d frames", e.clock.Frames())
	return nil
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down engine...")
	if err := e.display.Close(); err != nil {
		e.logger.Warnf("failed to close display: %v", err)
	}
}
