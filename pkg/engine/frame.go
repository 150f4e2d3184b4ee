package engine

import (
	"fmt"
	"strings"
)

// Frame is a row-major grid of display characters
type Frame struct {
	Width  int
	Height int
	Pixels []byte
}

// NewFrame creates a frame filled with blanks
func NewFrame(width, height int) *Frame {
	f := &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height),
	}
	f.Fill(' ')
	return f
}

// Fill sets every cell to c
func (f *Frame) Fill(c byte) {
	for i := range f.Pixels {
		f.Pixels[i] = c
	}
}

// At returns the character at (x, y)
func (f *Frame) At(x, y int) byte {
	return f.Pixels[y*f.Width+x]
}

// Row returns the cells of row y. The slice aliases the frame.
func (f *Frame) Row(y int) []byte {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}

// Resize reallocates the frame if the dimensions changed
func (f *Frame) Resize(width, height int) {
	if f.Width == width && f.Height == height {
		return
	}
	f.Width = width
	f.Height = height
	f.Pixels = make([]byte, width*height)
	f.Fill(' ')
}

// Overlay writes text into row y starting at column x, clipped to the frame
func (f *Frame) Overlay(x, y int, text string) {
	if y < 0 || y >= f.Height {
		return
	}
	row := f.Row(y)
	for i := 0; i < len(text); i++ {
		col := x + i
		if col < 0 {
			continue
		}
		if col >= f.Width {
			break
		}
		row[col] = text[i]
	}
}

// String renders the frame as newline separated rows
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		sb.Write(f.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (f *Frame) validate() error {
	if f == nil {
		return fmt.Errorf("frame is nil")
	}
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", f.Width, f.Height)
	}
	if len(f.Pixels) != f.Width*f.Height {
		return fmt.Errorf("frame buffer holds %d cells, want %d", len(f.Pixels), f.Width*f.Height)
	}
	return nil
}
