package engine

import (
	"fmt"
	"time"

	"asciitrace/internal/util"
)

// fpsWindow is the number of recent frames averaged for the FPS readout
const fpsWindow = 30

// Clock measures frame phases and caps the frame rate
type Clock struct {
	fpsLimit int

	frameStart  time.Time
	renderEnd   time.Time
	RenderTime  time.Duration
	DisplayTime time.Duration
	FrameTime   time.Duration

	history []float64 // recent frame times in seconds
	frames  uint64

	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock creates a clock. fpsLimit <= 0 disables the cap.
func NewClock(fpsLimit int) *Clock {
	return &Clock{
		fpsLimit: fpsLimit,
		history:  make([]float64, 0, fpsWindow),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// StartFrame marks the beginning of a frame
func (c *Clock) StartFrame() {
	c.frameStart = c.now()
	c.frames++
}

// MarkRendered marks the end of tracing
func (c *Clock) MarkRendered() {
	c.renderEnd = c.now()
	c.RenderTime = c.renderEnd.Sub(c.frameStart)
}

// MarkDisplayed marks the end of drawing
func (c *Clock) MarkDisplayed() {
	c.DisplayTime = c.now().Sub(c.renderEnd)
}

// EndFrame sleeps off the rest of the frame budget and returns the full
// frame time in seconds
func (c *Clock) EndFrame() float64 {
	elapsed := c.now().Sub(c.frameStart)
	if c.fpsLimit > 0 {
		target := time.Second / time.Duration(c.fpsLimit)
		if elapsed < target {
			c.sleep(target - elapsed)
			elapsed = target
		}
	}
	c.FrameTime = elapsed

	if len(c.history) == fpsWindow {
		copy(c.history, c.history[1:])
		c.history = c.history[:fpsWindow-1]
	}
	c.history = append(c.history, elapsed.Seconds())

	return elapsed.Seconds()
}

// FPS returns the frame rate averaged over recent frames
func (c *Clock) FPS() float64 {
	mean := util.CalculateMean(c.history)
	if mean == 0 {
		return 0
	}
	return 1 / mean
}

// Frames returns the number of frames started
func (c *Clock) Frames() uint64 {
	return c.frames
}

// Stats formats a one line status readout
func (c *Clock) Stats() string {
	return fmt.Sprintf(" FPS %5.1f | render %6.2fms | display %6.2fms | frame %d ",
		c.FPS(),
		float64(c.RenderTime.Microseconds())/1000,
		float64(c.DisplayTime.Microseconds())/1000,
		c.frames)
}
