package engine

import (
	"math"

	"asciitrace/internal/util"
)

// Camera is a pinhole camera. Direction and Up are kept normalized and must
// not be parallel.
type Camera struct {
	Position  Vector3
	Direction Vector3
	Up        Vector3
	FOV       float64 // horizontal field of view in degrees
}

// NewCamera creates a camera, normalizing the direction vectors
func NewCamera(position, direction, up Vector3, fov float64) Camera {
	return Camera{
		Position:  position,
		Direction: direction.Normalize(),
		Up:        up.Normalize(),
		FOV:       fov,
	}
}

// LookAt points the camera at target
func (c *Camera) LookAt(target Vector3) {
	c.Direction = target.Sub(c.Position).Normalize()
}

// ViewBasis holds the per-frame vectors used to build primary ray directions
type ViewBasis struct {
	Pixel0 Vector3 // direction through the top-left cell
	StepX  Vector3
	StepY  Vector3
}

// Basis derives the screen plane for a width×height grid of cells. The
// vertical extent is scaled by charAspect, the height/width ratio of one cell.
func (c Camera) Basis(width, height int, charAspect float64) ViewBasis {
	w, h := float64(width), float64(height)

	right := c.Direction.Cross(c.Up).Normalize()
	down := c.Direction.Cross(right)

	halfX := right.Mul(math.Tan(util.DegToRad(c.FOV) / 2))
	halfY := down.Mul(charAspect * math.Tan(util.DegToRad(c.FOV*(h/w))/2))

	return ViewBasis{
		Pixel0: c.Direction.Sub(halfX).Sub(halfY),
		StepX:  halfX.Div(w / 2),
		StepY:  halfY.Div(h / 2),
	}
}

// Direction returns the normalized direction through cell (x, y)
func (b ViewBasis) Direction(x, y int) Vector3 {
	return b.Pixel0.Add(b.StepX.Mul(float64(x))).Add(b.StepY.Mul(float64(y))).Normalize()
}
