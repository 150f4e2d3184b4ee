package engine

import "math"

// Sphere is a sphere given by center and radius
type Sphere struct {
	Center     Vector3
	Radius     float64
	Reflective bool
}

// Intersect solves |O + tD - C|² = r² and keeps the nearer root
func (s Sphere) Intersect(ray Ray) (HitInfo, bool) {
	// Vector from the sphere center to the ray origin
	oc := ray.Origin.Sub(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	// Tangent rays do not count as hits
	if discriminant <= 0 {
		return HitInfo{}, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2.0 * a)
	if !ray.Accepts(t) {
		return HitInfo{}, false
	}

	point := ray.At(t)
	return HitInfo{
		T:          t,
		Point:      point,
		Normal:     point.Sub(s.Center).Normalize(),
		Reflective: s.Reflective,
	}, true
}
