package engine

// Scene is an ordered list of primitives answering nearest-hit queries.
// It is scanned linearly; scenes are expected to hold tens of primitives.
type Scene struct {
	Objects []Primitive
}

// NewScene creates a scene from the given primitives
func NewScene(objects ...Primitive) *Scene {
	return &Scene{Objects: objects}
}

// Add appends primitives to the scene
func (s *Scene) Add(objects ...Primitive) {
	s.Objects = append(s.Objects, objects...)
}

// Len returns the number of primitives in the scene
func (s *Scene) Len() int {
	return len(s.Objects)
}

// Intersect returns the hit with the smallest t among all primitives. On
// equal t the primitive scanned first wins.
func (s *Scene) Intersect(ray Ray) (HitInfo, bool) {
	var best HitInfo
	found := false
	closest := ray.MaxT
	for _, obj := range s.Objects {
		hit, ok := obj.Intersect(ray)
		if ok && hit.T < closest {
			closest = hit.T
			best = hit
			found = true
		}
	}
	return best, found
}

// Occluded reports whether anything lies along the ray
func (s *Scene) Occluded(ray Ray) bool {
	for _, obj := range s.Objects {
		if _, ok := obj.Intersect(ray); ok {
			return true
		}
	}
	return false
}
