package engine

import "math"

// DefaultCellSize is the edge length of one checkerboard square. Eight units
// keeps several squares visible at preset camera distances.
const DefaultCellSize = 8.0

// Checkerboard is an infinite plane where only every other square is solid.
// The squares are laid out on the hit point's X and Y coordinates.
type Checkerboard struct {
	Normal   Vector3
	Offset   float64 // plane equation Normal·P = Offset
	CellSize float64
}

// Intersect hits the plane and keeps the hit only on solid squares
func (cb Checkerboard) Intersect(ray Ray) (HitInfo, bool) {
	denom := ray.Direction.Dot(cb.Normal)
	if denom == 0 {
		return HitInfo{}, false
	}

	t := (cb.Offset - ray.Origin.Dot(cb.Normal)) / denom
	if !ray.Accepts(t) {
		return HitInfo{}, false
	}

	point := ray.At(t)
	if !cb.Solid(point) {
		return HitInfo{}, false
	}

	return HitInfo{
		T:          t,
		Point:      point,
		Normal:     facing(cb.Normal.Normalize(), ray.Direction),
		Reflective: false,
	}, true
}

// Solid reports whether the square containing point is filled. Squares whose
// cell coordinates have matching parity are holes.
func (cb Checkerboard) Solid(point Vector3) bool {
	size := cb.CellSize
	if size == 0 {
		size = DefaultCellSize
	}
	cellX := int64(math.Floor(point.X / size))
	cellY := int64(math.Floor(point.Y / size))
	return cellX&1 != cellY&1
}
