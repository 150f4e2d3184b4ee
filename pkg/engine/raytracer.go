package engine

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"asciitrace/pkg/config"
)

// Raytracer renders whole frames by splitting them into horizontal bands
// traced concurrently.
type Raytracer struct {
	config config.RaytracerConfig
	tracer *Tracer
}

// NewRaytracer creates a new raytracer with the given configuration
func NewRaytracer(cfg config.RaytracerConfig, palette Palette) (*Raytracer, error) {
	if len(palette) < 2 {
		return nil, fmt.Errorf("palette needs at least 2 characters, got %d", len(palette))
	}
	if cfg.CharAspect <= 0 {
		cfg.CharAspect = 1
	}
	if cfg.NumThreads <= 0 {
		cfg.NumThreads = runtime.NumCPU()
	}
	return &Raytracer{
		config: cfg,
		tracer: NewTracer(palette, cfg.ShadowsEnabled, cfg.MaxBounces),
	}, nil
}

// Tracer returns the per-ray shader used by the raytracer
func (rt *Raytracer) Tracer() *Tracer {
	return rt.tracer
}

// Workers returns the configured worker count
func (rt *Raytracer) Workers() int {
	return rt.config.NumThreads
}

// Band is a half-open row range [Start, End)
type Band struct {
	Start, End int
}

// Bands divides height rows into workers contiguous bands. Each band gets
// height/workers rows and the last one also takes the remainder. workers is
// clamped to [1, height] so no band is empty.
func Bands(height, workers int) []Band {
	if height <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}

	rowsPerBand := height / workers
	bands := make([]Band, workers)
	for i := range bands {
		bands[i] = Band{Start: i * rowsPerBand, End: (i + 1) * rowsPerBand}
	}
	bands[workers-1].End = height
	return bands
}

// Render traces every cell of frame using the configured worker count
func (rt *Raytracer) Render(frame *Frame, scene *Scene, camera Camera, light Vector3) error {
	return rt.RenderWith(frame, scene, camera, light, rt.config.NumThreads)
}

// RenderWith traces every cell of frame with one goroutine per band and
// returns once all of them are done. The bands never overlap, so workers
// write into the shared frame without locking. scene and camera must not be
// modified until RenderWith returns.
func (rt *Raytracer) RenderWith(frame *Frame, scene *Scene, camera Camera, light Vector3, workers int) error {
	if err := frame.validate(); err != nil {
		return err
	}
	if scene == nil {
		return fmt.Errorf("scene is nil")
	}

	basis := camera.Basis(frame.Width, frame.Height, rt.config.CharAspect)

	var g errgroup.Group
	for _, band := range Bands(frame.Height, workers) {
		g.Go(func() error {
			rt.renderBand(frame, scene, camera.Position, basis, light, band)
			return nil
		})
	}
	return g.Wait()
}

func (rt *Raytracer) renderBand(frame *Frame, scene *Scene, origin Vector3, basis ViewBasis, light Vector3, band Band) {
	for y := band.Start; y < band.End; y++ {
		row := frame.Row(y)
		for x := range row {
			ray := NewRay(origin, basis.Direction(x, y))
			row[x] = rt.tracer.Shade(scene, ray, light)
		}
	}
}
