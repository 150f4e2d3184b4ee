package engine

import "math"

// Box is an axis-aligned box intersected with the slab method
type Box struct {
	Min, Max   Vector3
	Reflective bool
}

// Center returns the midpoint of the box
func (b Box) Center() Vector3 {
	return b.Min.Add(b.Max.Sub(b.Min).Mul(0.5))
}

// Intersect narrows the ray interval by the three pairs of bounding planes.
// The entry parameter is the hit.
func (b Box) Intersect(ray Ray) (HitInfo, bool) {
	tMin, tMax := ray.MinT, ray.MaxT

	var ok bool
	if tMin, tMax, ok = narrowSlab(tMin, tMax, ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X); !ok {
		return HitInfo{}, false
	}
	if tMin, tMax, ok = narrowSlab(tMin, tMax, ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y); !ok {
		return HitInfo{}, false
	}
	if tMin, tMax, ok = narrowSlab(tMin, tMax, ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z); !ok {
		return HitInfo{}, false
	}
	if tMin >= tMax {
		return HitInfo{}, false
	}

	point := ray.At(tMin)
	return HitInfo{
		T:          tMin,
		Point:      point,
		Normal:     b.faceNormal(point),
		Reflective: b.Reflective,
	}, true
}

// narrowSlab intersects [tMin, tMax) with the interval in which the ray lies
// between lo and hi on one axis. A ray parallel to the slab leaves the
// interval alone when it starts inside the slab and misses otherwise.
func narrowSlab(tMin, tMax, origin, dir, lo, hi float64) (float64, float64, bool) {
	if dir == 0 {
		return tMin, tMax, origin >= lo && origin <= hi
	}
	inv := 1.0 / dir
	t0 := (lo - origin) * inv
	t1 := (hi - origin) * inv
	tMin = math.Max(tMin, math.Min(t0, t1))
	tMax = math.Min(tMax, math.Max(t0, t1))
	return tMin, tMax, true
}

// faceNormal picks the face whose axis dominates the offset from the box
// center. Unlike the plain normalized-offset rule, the offset is measured in
// half-extents so flat boxes resolve to the right face; both agree on cubes.
func (b Box) faceNormal(point Vector3) Vector3 {
	half := b.Max.Sub(b.Min).Mul(0.5)
	d := point.Sub(b.Center())
	rel := Vector3{X: safeRatio(d.X, half.X), Y: safeRatio(d.Y, half.Y), Z: safeRatio(d.Z, half.Z)}

	ax, ay, az := math.Abs(rel.X), math.Abs(rel.Y), math.Abs(rel.Z)
	switch {
	case ax >= ay && ax >= az:
		return Vector3{X: math.Copysign(1, rel.X)}
	case ay >= az:
		return Vector3{Y: math.Copysign(1, rel.Y)}
	default:
		return Vector3{Z: math.Copysign(1, rel.Z)}
	}
}

func safeRatio(v, extent float64) float64 {
	if extent == 0 {
		return 0
	}
	return v / extent
}
