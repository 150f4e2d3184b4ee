package engine

import "math"

// Offsets applied along secondary rays so they do not hit the surface they
// leave from.
const (
	ReflectionOffset = 0.11
	ShadowOffset     = 0.01
)

// Tracer turns a primary ray into a display character. It holds no
// per-ray state and may be shared by any number of goroutines.
type Tracer struct {
	palette    Palette
	shadows    bool
	maxBounces int
}

// NewTracer creates a tracer. maxBounces limits how many mirror reflections
// a single ray may follow before it resolves to the background.
func NewTracer(palette Palette, shadows bool, maxBounces int) *Tracer {
	if maxBounces < 0 {
		maxBounces = 0
	}
	return &Tracer{
		palette:    palette,
		shadows:    shadows,
		maxBounces: maxBounces,
	}
}

// Palette returns the tracer's palette
func (t *Tracer) Palette() Palette {
	return t.palette
}

// Shade traces ray through scene lit by a point light
func (t *Tracer) Shade(scene *Scene, ray Ray, light Vector3) byte {
	return t.trace(scene, ray, light, t.maxBounces)
}

func (t *Tracer) trace(scene *Scene, ray Ray, light Vector3, bouncesLeft int) byte {
	hit, ok := scene.Intersect(ray)
	if !ok {
		return t.palette.Background()
	}

	if hit.Reflective {
		if bouncesLeft == 0 {
			return t.palette.Background()
		}
		dir := Reflect(ray.Direction, hit.Normal)
		reflected := NewRay(hit.Point.Add(dir.Mul(ReflectionOffset)), dir)
		return t.trace(scene, reflected, light, bouncesLeft-1)
	}

	toLight := light.Sub(hit.Point)
	l := toLight.Normalize()
	// Only occluders between the point and the light cast a shadow
	if t.shadows {
		shadowRay := NewRay(hit.Point.Add(l.Mul(ShadowOffset)), l)
		shadowRay.MaxT = toLight.Length() - ShadowOffset
		if scene.Occluded(shadowRay) {
			return t.palette.Background()
		}
	}

	return t.palette.Quantize(math.Max(0, hit.Normal.Dot(l)))
}

// Reflect mirrors d about the unit normal n
func Reflect(d, n Vector3) Vector3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}
