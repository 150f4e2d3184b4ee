package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"asciitrace/internal/util"
	"asciitrace/pkg/engine"
)

// Bench renders the same frame repeatedly with each worker count and prints
// timing statistics.
func Bench(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	log, err := setupLogging(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	width, height, frames := ctx.Int("width"), ctx.Int("height"), ctx.Int("frames")
	if width <= 0 || height <= 0 || frames <= 0 {
		return fmt.Errorf("width, height and frames must be positive")
	}

	workerCounts := ctx.IntSlice("workers")
	if len(workerCounts) == 0 {
		workerCounts = defaultWorkerCounts()
	}

	rt, setup, err := prepare(cfg)
	if err != nil {
		return err
	}
	log.Infof("Benchmarking %q at %dx%d, %d frames per run", cfg.Scene.Preset, width, height, frames)

	var reference string
	var baseline float64

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Workers", "Bands", "Mean", "Median", "Speedup", "Matches 1st"})

	for _, workers := range workerCounts {
		frame := engine.NewFrame(width, height)
		samples := make([]float64, 0, frames)
		for i := 0; i < frames; i++ {
			start := time.Now()
			if err := rt.RenderWith(frame, setup.Scene, setup.Camera, setup.Light, workers); err != nil {
				return err
			}
			samples = append(samples, time.Since(start).Seconds())
		}

		mean := util.CalculateMean(samples)
		if baseline == 0 {
			baseline = mean
			reference = frame.String()
		}
		log.Debugf("%d workers: mean %.3fms", workers, mean*1000)

		table.Append([]string{
			fmt.Sprintf("%d", workers),
			fmt.Sprintf("%d", len(engine.Bands(height, workers))),
			fmt.Sprintf("%.2f ms", mean*1000),
			fmt.Sprintf("%.2f ms", util.CalculateMedian(samples)*1000),
			fmt.Sprintf("%.2fx", baseline/mean),
			fmt.Sprintf("%t", frame.String() == reference),
		})
	}

	table.Render()
	_, err = fmt.Fprint(os.Stdout, buf.String())
	return err
}

func defaultWorkerCounts() []int {
	counts := []int{1, 2, 4}
	if n := runtime.NumCPU(); n > 4 {
		counts = append(counts, n)
	}
	return counts
}
