package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"asciitrace/internal/util"
	"asciitrace/pkg/config"
	"asciitrace/pkg/engine"
)

// ListPresets prints the built-in scenes.
func ListPresets(ctx *cli.Context) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Preset", "Objects", "Description"})
	for _, preset := range engine.Presets() {
		table.Append([]string{
			preset.Name,
			fmt.Sprintf("%d", preset.Build().Scene.Len()),
			preset.Description,
		})
	}
	table.Render()

	_, err := fmt.Fprint(os.Stdout, buf.String())
	return err
}

// InitConfig writes the default configuration to the given path.
func InitConfig(ctx *cli.Context) error {
	path := "config.yaml"
	if ctx.NArg() > 0 {
		path = ctx.Args().First()
	}

	if util.FileExists(path) && !ctx.Bool("force") {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
	return nil
}
