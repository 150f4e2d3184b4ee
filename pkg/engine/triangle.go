package engine

// Triangle is a single triangle. The plane normal is precomputed from the
// vertex winding.
type Triangle struct {
	P1, P2, P3 Vector3
	Reflective bool

	normal     Vector3 // cross(p2-p1, p3-p1), not normalized
	unitNormal Vector3
	offset     float64 // plane equation normal·P = offset
}

// MakeTriangle builds a triangle and caches its plane
func MakeTriangle(p1, p2, p3 Vector3, reflective bool) Triangle {
	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	return Triangle{
		P1:         p1,
		P2:         p2,
		P3:         p3,
		Reflective: reflective,
		normal:     normal,
		unitNormal: normal.Normalize(),
		offset:     p1.Dot(normal),
	}
}

// Normal returns the unit normal given by the vertex winding. Hits report it
// flipped toward the ray when the back side is struck.
func (tr Triangle) Normal() Vector3 {
	return tr.unitNormal
}

// Intersect hits the triangle's plane and then runs a same-side test
// against all three edges. Points on an edge count as inside.
func (tr Triangle) Intersect(ray Ray) (HitInfo, bool) {
	denom := ray.Direction.Dot(tr.normal)
	if denom == 0 {
		return HitInfo{}, false
	}

	t := (tr.offset - ray.Origin.Dot(tr.normal)) / denom
	if !ray.Accepts(t) {
		return HitInfo{}, false
	}

	point := ray.At(t)
	if tr.P2.Sub(tr.P1).Cross(point.Sub(tr.P1)).Dot(tr.normal) < 0 ||
		tr.P3.Sub(tr.P2).Cross(point.Sub(tr.P2)).Dot(tr.normal) < 0 ||
		tr.P1.Sub(tr.P3).Cross(point.Sub(tr.P3)).Dot(tr.normal) < 0 {
		return HitInfo{}, false
	}

	return HitInfo{
		T:          t,
		Point:      point,
		Normal:     facing(tr.unitNormal, ray.Direction),
		Reflective: tr.Reflective,
	}, true
}
