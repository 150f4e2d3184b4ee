package main

import (
	"os"

	"github.com/urfave/cli"

	"asciitrace/internal/logger"
)

func main() {
	app := cli.NewApp()
	app.Name = "asciitrace"
	app.Usage = "ray trace animated scenes into the terminal"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "config.yaml",
			Usage: "path to configuration file",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "write log output to this file",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "animate a scene in the terminal",
			Description: `
Trace the configured scene preset frame after frame and draw it into the
terminal until the animation completes or the process is interrupted.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width in cells (0 = terminal width)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height in cells (0 = terminal height)",
				},
				cli.StringFlag{
					Name:  "preset, p",
					Usage: "scene preset to render",
				},
				cli.IntFlag{
					Name:  "fps",
					Value: -1,
					Usage: "frame rate cap (0 = uncapped)",
				},
				cli.IntFlag{
					Name:  "threads, t",
					Value: -1,
					Usage: "render workers (0 = one per CPU)",
				},
				cli.Float64Flag{
					Name:  "turns",
					Value: -1,
					Usage: "orbits before exiting (0 = forever)",
				},
				cli.BoolFlag{
					Name:  "no-shadows",
					Usage: "disable shadow rays",
				},
				cli.BoolFlag{
					Name:  "no-stats",
					Usage: "hide the stats line",
				},
			},
			Action: RunAnimation,
		},
		{
			Name:      "frame",
			Usage:     "render a single frame to stdout",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 100,
					Usage: "frame width in cells",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 40,
					Usage: "frame height in cells",
				},
				cli.StringFlag{
					Name:  "preset, p",
					Usage: "scene preset to render",
				},
				cli.Float64Flag{
					Name:  "angle, a",
					Usage: "animation angle in degrees",
				},
				cli.BoolFlag{
					Name:  "no-shadows",
					Usage: "disable shadow rays",
				},
				cli.IntFlag{
					Name:  "threads, t",
					Value: -1,
					Usage: "render workers (0 = one per CPU)",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:  "bench",
			Usage: "measure render time for different worker counts",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 160,
					Usage: "frame width in cells",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 48,
					Usage: "frame height in cells",
				},
				cli.StringFlag{
					Name:  "preset, p",
					Usage: "scene preset to render",
				},
				cli.IntFlag{
					Name:  "frames, n",
					Value: 20,
					Usage: "frames rendered per worker count",
				},
				cli.IntSliceFlag{
					Name:  "workers, w",
					Usage: "worker counts to compare (default 1, 2, 4 and one per CPU)",
				},
			},
			Action: Bench,
		},
		{
			Name:   "presets",
			Usage:  "list built-in scenes",
			Action: ListPresets,
		},
		{
			Name:      "init-config",
			Usage:     "write the default configuration",
			ArgsUsage: "[path]",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "force, f",
					Usage: "overwrite an existing file",
				},
			},
			Action: InitConfig,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.NewLogger("error").Fatalf("%v", err)
	}
}
