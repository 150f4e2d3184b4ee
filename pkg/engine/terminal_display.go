package engine

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

const (
	escHideCursor = "\033[?25l"
	escShowCursor = "\033[?25h"
	escClear      = "\033[2J"
	escHome       = "\033[H"
)

// TerminalDisplay draws frames onto an ANSI terminal
type TerminalDisplay struct {
	out    *bufio.Writer
	width  int
	height int
	closed bool

	mutex sync.Mutex
}

// NewTerminalDisplay clears the terminal and hides the cursor
func NewTerminalDisplay(w io.Writer, width, height int) (*TerminalDisplay, error) {
	d := &TerminalDisplay{
		out:    bufio.NewWriterSize(w, (width+1)*height+64),
		width:  width,
		height: height,
	}

	d.out.WriteString(escClear + escHome + escHideCursor)
	if err := d.out.Flush(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return d, nil
}

// UpdateResolution updates the drawable area
func (d *TerminalDisplay) UpdateResolution(width, height int) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.width == width && d.height == height {
		return
	}
	d.width = width
	d.height = height
	d.out.WriteString(escClear)
}

// Render writes the frame row by row and moves the cursor back to the top
// left corner. Parts of the frame outside the drawable area are clipped.
func (d *TerminalDisplay) Render(frame *Frame) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return fmt.Errorf("display is closed")
	}

	width := min(frame.Width, d.width)
	height := min(frame.Height, d.height)
	for y := 0; y < height; y++ {
		d.out.Write(frame.Row(y)[:width])
		d.out.WriteByte('\n')
	}
	d.out.WriteString(escHome)

	if err := d.out.Flush(); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

// Close shows the cursor again
func (d *TerminalDisplay) Close() error {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	d.out.WriteString(escShowCursor)
	return d.out.Flush()
}
