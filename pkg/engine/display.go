package engine

// Display defines the interface for all output surfaces
type Display interface {
	// Render draws a finished frame
	Render(frame *Frame) error

	// UpdateResolution updates the size of the drawable area
	UpdateResolution(width, height int)

	// Close restores the surface and releases resources
	Close() error
}
