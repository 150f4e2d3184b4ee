package engine

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"asciitrace/internal/logger"
	"asciitrace/pkg/config"
)

// recordingDisplay keeps a copy of every frame it is given
type recordingDisplay struct {
	frames  []string
	sizes   [][2]int
	closed  bool
	onFrame func(n int)
}

func (d *recordingDisplay) Render(frame *Frame) error {
	d.frames = append(d.frames, frame.String())
	if d.onFrame != nil {
		d.onFrame(len(d.frames))
	}
	return nil
}

func (d *recordingDisplay) UpdateResolution(width, height int) {
	d.sizes = append(d.sizes, [2]int{width, height})
}

func (d *recordingDisplay) Close() error {
	d.closed = true
	return nil
}

func newTestEngine(t *testing.T, cfg *config.Config, display Display) (*Engine, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	eng, err := NewEngine(cfg, logger.NewWriterLogger("debug", &logs), display, 40, 12)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return eng, &logs
}

func TestEngineRunUntilCancelled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.FrameRate = 0
	cfg.Scene.Turns = 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	display := &recordingDisplay{onFrame: func(n int) {
		if n == 5 {
			cancel()
		}
	}}
	eng, logs := newTestEngine(t, cfg, display)

	if err := eng.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(display.frames) != 5 {
		t.Errorf("rendered %d frames, want 5", len(display.frames))
	}
	if !display.closed {
		t.Error("display not closed")
	}
	if !strings.Contains(logs.String(), "interrupted") {
		t.Errorf("missing interrupt log in %q", logs.String())
	}
	if !strings.Contains(display.frames[0], "FPS") {
		t.Error("stats overlay missing")
	}
}

func TestEngineRunFinishesAnimation(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Scene.Preset = "courtyard"
	cfg.Scene.Turns = 0.1
	cfg.Display.ShowStats = false

	display := &recordingDisplay{}
	eng, _ := newTestEngine(t, cfg, display)

	// Every frame takes 300ms: courtyard orbits at 50°/s, so 15° per frame
	clock, _ := newFakeClock(0, 100*time.Millisecond)
	eng.clock = clock

	if err := eng.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(display.frames) != 3 {
		t.Errorf("rendered %d frames, want 3", len(display.frames))
	}
	if display.frames[0] == display.frames[2] {
		t.Error("animation did not change the picture")
	}
	if strings.Contains(display.frames[0], "FPS") {
		t.Error("stats overlay drawn while disabled")
	}
}

func TestEngineFollowsSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.FrameRate = 0
	cfg.Scene.Turns = 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	display := &recordingDisplay{onFrame: func(n int) {
		if n == 2 {
			cancel()
		}
	}}
	eng, _ := newTestEngine(t, cfg, display)
	eng.SetSizeFunc(func() (int, int, bool) { return 30, 10, true })

	if err := eng.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(display.sizes) != 1 || display.sizes[0] != [2]int{30, 10} {
		t.Errorf("resolution updates %v, want [[30 10]]", display.sizes)
	}
	rows := strings.Split(strings.TrimSuffix(display.frames[0], "\n"), "\n")
	if len(rows) != 10 || len(rows[0]) != 30 {
		t.Errorf("frame is %dx%d, want 30x10", len(rows[0]), len(rows))
	}
}

func TestNewEngineErrors(t *testing.T) {
	log := logger.NewWriterLogger("error", &bytes.Buffer{})

	badPreset := config.DefaultConfig()
	badPreset.Scene.Preset = "missing"
	if _, err := NewEngine(badPreset, log, &recordingDisplay{}, 10, 10); err == nil {
		t.Error("unknown preset accepted")
	}

	badCharset := config.DefaultConfig()
	badCharset.Renderer.CharSet = "#"
	if _, err := NewEngine(badCharset, log, &recordingDisplay{}, 10, 10); err == nil {
		t.Error("one character charset accepted")
	}

	if _, err := NewEngine(config.DefaultConfig(), log, &recordingDisplay{}, 0, 10); err == nil {
		t.Error("zero width accepted")
	}
}

func TestEngineSetAngle(t *testing.T) {
	eng, _ := newTestEngine(t, config.DefaultConfig(), &recordingDisplay{})

	before, err := eng.RenderFrame()
	if err != nil {
		t.Fatal(err)
	}
	first := before.String()

	eng.SetAngle(120)
	after, err := eng.RenderFrame()
	if err != nil {
		t.Fatal(err)
	}
	if after.String() == first {
		t.Error("moving the light did not change the frame")
	}
	if eng.Setup().Light == (Vector3{X: 20, Y: 0, Z: 20}) {
		t.Error("light still at its starting position")
	}
}
