package engine

// HitInfo contains information about a ray hit
type HitInfo struct {
	T          float64 // Ray parameter of the hit
	Point      Vector3 // World-space hit point
	Normal     Vector3 // Unit surface normal, facing the incoming ray
	Reflective bool    // Mirror surface, traced further instead of shaded
}

// facing orients the unit normal n against the ray direction d
func facing(n, d Vector3) Vector3 {
	if n.Dot(d) > 0 {
		return n.Mul(-1)
	}
	return n
}

// Kind identifies the shape held by a Primitive
type Kind int

// Primitive kinds
const (
	KindSphere Kind = iota
	KindTriangle
	KindCheckerboard
	KindBox
	KindCompoundBox
	KindGroup
)

var kindNames = map[Kind]string{
	KindSphere:       "sphere",
	KindTriangle:     "triangle",
	KindCheckerboard: "checkerboard",
	KindBox:          "box",
	KindCompoundBox:  "compound_box",
	KindGroup:        "group",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Primitive is a tagged union over every shape the tracer understands.
// Only the field selected by kind is meaningful. Values are built with the
// New* constructors and are safe to copy.
type Primitive struct {
	kind         Kind
	sphere       Sphere
	triangle     Triangle
	checkerboard Checkerboard
	box          Box
	compound     *CompoundBox
	group        *Scene
}

// Kind returns the shape stored in the primitive
func (p Primitive) Kind() Kind {
	return p.kind
}

// Intersect dispatches the ray to the stored shape
func (p Primitive) Intersect(ray Ray) (HitInfo, bool) {
	switch p.kind {
	case KindSphere:
		return p.sphere.Intersect(ray)
	case KindTriangle:
		return p.triangle.Intersect(ray)
	case KindCheckerboard:
		return p.checkerboard.Intersect(ray)
	case KindBox:
		return p.box.Intersect(ray)
	case KindCompoundBox:
		return p.compound.Intersect(ray)
	case KindGroup:
		return p.group.Intersect(ray)
	}
	return HitInfo{}, false
}

// NewSphere creates a sphere primitive
func NewSphere(center Vector3, radius float64, reflective bool) Primitive {
	return Primitive{
		kind:   KindSphere,
		sphere: Sphere{Center: center, Radius: radius, Reflective: reflective},
	}
}

// NewTriangle creates a triangle primitive. The vertex order fixes the
// outward normal by the right-hand rule.
func NewTriangle(p1, p2, p3 Vector3, reflective bool) Primitive {
	return Primitive{
		kind:     KindTriangle,
		triangle: MakeTriangle(p1, p2, p3, reflective),
	}
}

// NewCheckerboard creates an infinite checkerboard plane n·P = offset
func NewCheckerboard(normal Vector3, offset float64) Primitive {
	return Primitive{
		kind:         KindCheckerboard,
		checkerboard: Checkerboard{Normal: normal, Offset: offset, CellSize: DefaultCellSize},
	}
}

// NewBox creates an axis-aligned box primitive tested with the slab method
func NewBox(min, max Vector3, reflective bool) Primitive {
	return Primitive{
		kind: KindBox,
		box:  Box{Min: min, Max: max, Reflective: reflective},
	}
}

// NewCompoundBox creates an oriented box made of 12 triangles
func NewCompoundBox(center, halfA, halfB, halfC Vector3, reflective bool) Primitive {
	return Primitive{
		kind:     KindCompoundBox,
		compound: MakeCompoundBox(center, halfA, halfB, halfC, reflective),
	}
}

// NewGroup wraps a scene so it can be nested inside another scene
func NewGroup(scene *Scene) Primitive {
	return Primitive{
		kind:  KindGroup,
		group: scene,
	}
}
