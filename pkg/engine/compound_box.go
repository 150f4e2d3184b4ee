package engine

// CompoundBox is an oriented box decomposed into 12 triangles. The two faces
// along HalfA carry the box's reflective flag, the four side faces never do.
type CompoundBox struct {
	Center     Vector3
	HalfA      Vector3
	HalfB      Vector3
	HalfC      Vector3
	Reflective bool

	corners   [8]Vector3
	triangles [12]Triangle
}

// MakeCompoundBox builds the corners and triangles of the box
func MakeCompoundBox(center, halfA, halfB, halfC Vector3, reflective bool) *CompoundBox {
	cb := &CompoundBox{
		Center:     center,
		HalfA:      halfA,
		HalfB:      halfB,
		HalfC:      halfC,
		Reflective: reflective,
	}

	c := &cb.corners
	c[0] = center.Add(halfA).Add(halfB).Add(halfC)
	c[1] = center.Add(halfA).Add(halfB).Sub(halfC)
	c[2] = center.Add(halfA).Sub(halfB).Sub(halfC)
	c[3] = center.Add(halfA).Sub(halfB).Add(halfC)
	c[4] = center.Sub(halfA).Add(halfB).Add(halfC)
	c[5] = center.Sub(halfA).Add(halfB).Sub(halfC)
	c[6] = center.Sub(halfA).Sub(halfB).Sub(halfC)
	c[7] = center.Sub(halfA).Sub(halfB).Add(halfC)

	// Every face is wound outward for a right-handed (A, B, C)
	t := &cb.triangles
	// +A and -A faces
	t[0] = MakeTriangle(c[0], c[2], c[1], reflective)
	t[1] = MakeTriangle(c[2], c[0], c[3], reflective)
	t[2] = MakeTriangle(c[4], c[5], c[6], reflective)
	t[3] = MakeTriangle(c[6], c[7], c[4], reflective)
	// sides
	t[4] = MakeTriangle(c[0], c[1], c[5], false)
	t[5] = MakeTriangle(c[5], c[4], c[0], false)
	t[6] = MakeTriangle(c[1], c[2], c[6], false)
	t[7] = MakeTriangle(c[6], c[5], c[1], false)
	t[8] = MakeTriangle(c[2], c[3], c[7], false)
	t[9] = MakeTriangle(c[7], c[6], c[2], false)
	t[10] = MakeTriangle(c[0], c[7], c[3], false)
	t[11] = MakeTriangle(c[7], c[0], c[4], false)

	return cb
}

// Corners returns the eight corners of the box
func (cb *CompoundBox) Corners() [8]Vector3 {
	return cb.corners
}

// Triangles returns the twelve triangles the box is made of
func (cb *CompoundBox) Triangles() [12]Triangle {
	return cb.triangles
}

// Intersect returns the nearest hit over the box's triangles
func (cb *CompoundBox) Intersect(ray Ray) (HitInfo, bool) {
	var best HitInfo
	found := false
	closest := ray.MaxT
	for i := range cb.triangles {
		hit, ok := cb.triangles[i].Intersect(ray)
		if ok && hit.T < closest {
			closest = hit.T
			best = hit
			found = true
		}
	}
	return best, found
}
