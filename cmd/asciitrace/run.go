package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"golang.org/x/term"

	"asciitrace/pkg/engine"
)

// Fallback size when stdout is not a terminal
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// RunAnimation animates the configured scene in the terminal.
func RunAnimation(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.Int("width") > 0 {
		cfg.Display.Width = ctx.Int("width")
	}
	if ctx.Int("height") > 0 {
		cfg.Display.Height = ctx.Int("height")
	}

	log, err := setupLogging(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting asciitrace...")

	width, height := frameSize(cfg.Display.Width, cfg.Display.Height)
	display, err := engine.NewTerminalDisplay(os.Stdout, width, height)
	if err != nil {
		return err
	}

	eng, err := engine.NewEngine(cfg, log, display, width, height)
	if err != nil {
		display.Close()
		return err
	}

	// Follow the terminal when no fixed size is configured
	if cfg.Display.Width == 0 || cfg.Display.Height == 0 {
		eng.SetSizeFunc(func() (int, int, bool) {
			w, h := frameSize(cfg.Display.Width, cfg.Display.Height)
			return w, h, true
		})
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Engine initialized, starting render loop...")
	return eng.Run(runCtx)
}

// frameSize resolves zero dimensions from the terminal size. One row is left
// free so the trailing newline of the last row does not scroll the screen.
func frameSize(width, height int) (int, int) {
	termWidth, termHeight, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		termWidth, termHeight = defaultWidth, defaultHeight
	}
	if width == 0 {
		width = termWidth
	}
	if height == 0 {
		height = termHeight - 1
	}
	return max(width, 1), max(height, 1)
}
