package engine

import "testing"

func TestSceneMiss(t *testing.T) {
	scene := NewScene(
		NewSphere(Vec(0, 0, 0), 1, false),
		NewBox(Vec(5, 5, 5), Vec(6, 6, 6), false),
		NewTriangle(Vec(-5, -5, 0), Vec(-4, -5, 0), Vec(-5, -4, 0), false),
	)

	if _, ok := scene.Intersect(NewRay(Vec(0, 10, 10), Vec(0, 1, 0))); ok {
		t.Error("expected no hit")
	}
	if _, ok := NewScene().Intersect(NewRay(Vec(0, 0, 0), Vec(1, 0, 0))); ok {
		t.Error("empty scene reported a hit")
	}
}

func TestSceneMatchesSingleHit(t *testing.T) {
	sphere := NewSphere(Vec(0, 0, 0), 1, true)
	scene := NewScene(
		NewBox(Vec(10, 10, 10), Vec(11, 11, 11), false),
		sphere,
		NewTriangle(Vec(20, 0, 0), Vec(21, 0, 0), Vec(20, 1, 0), false),
	)
	ray := NewRay(Vec(0.3, 0.2, 5), Vec(0, 0, -1))

	want, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("sphere missed")
	}
	got, ok := scene.Intersect(ray)
	if !ok {
		t.Fatal("scene missed")
	}
	if got != want {
		t.Errorf("scene hit %+v, sphere hit %+v", got, want)
	}
}

func TestSceneNearestHit(t *testing.T) {
	// Overlapping spheres along the ray; order must not matter
	far := NewSphere(Vec(0, 0, -1), 1.5, false)
	near := NewSphere(Vec(0, 0, 0.5), 1, true)
	ray := NewRay(Vec(0, 0, 5), Vec(0, 0, -1))

	for _, scene := range []*Scene{NewScene(far, near), NewScene(near, far)} {
		hit, ok := scene.Intersect(ray)
		if !ok {
			t.Fatal("expected hit")
		}
		if !approxEqual(hit.T, 3.5) || !hit.Reflective {
			t.Errorf("got t=%v reflective=%t, want t=3.5 from the near sphere", hit.T, hit.Reflective)
		}
	}
}

func TestSceneRespectsInterval(t *testing.T) {
	scene := NewScene(
		NewSphere(Vec(0, 0, 0), 1, false),
		NewSphere(Vec(0, 0, -10), 1, true),
	)

	// The interval starts past the first sphere
	ray := Ray{Origin: Vec(0, 0, 5), Direction: Vec(0, 0, -1), MinT: 7, MaxT: 100}
	hit, ok := scene.Intersect(ray)
	if !ok {
		t.Fatal("expected hit")
	}
	if !approxEqual(hit.T, 14) {
		t.Errorf("t = %v, want 14", hit.T)
	}
}

func TestSceneTieKeepsFirst(t *testing.T) {
	first := NewTriangle(Vec(-1, -1, 0), Vec(1, -1, 0), Vec(0, 1, 0), false)
	second := NewTriangle(Vec(-1, -1, 0), Vec(1, -1, 0), Vec(0, 1, 0), true)
	scene := NewScene(first, second)

	hit, ok := scene.Intersect(NewRay(Vec(0, 0, 3), Vec(0, 0, -1)))
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Reflective {
		t.Error("tie resolved to the later primitive")
	}
}

func TestSceneGroup(t *testing.T) {
	inner := NewScene(
		NewSphere(Vec(0, 0, 0), 1, false),
		NewSphere(Vec(0, 0, 3), 1, true),
	)
	outer := NewScene(NewGroup(inner), NewBox(Vec(-1, -1, -8), Vec(1, 1, -6), false))
	if outer.Len() != 2 {
		t.Fatalf("Len = %d, want 2", outer.Len())
	}

	hit, ok := outer.Intersect(NewRay(Vec(0, 0, 10), Vec(0, 0, -1)))
	if !ok {
		t.Fatal("expected hit")
	}
	if !approxEqual(hit.T, 6) || !hit.Reflective {
		t.Errorf("got t=%v reflective=%t, want t=6 on the upper sphere", hit.T, hit.Reflective)
	}
}

func TestSceneOccluded(t *testing.T) {
	scene := NewScene()
	scene.Add(NewSphere(Vec(0, 0, 5), 1, false))

	tests := []struct {
		name string
		ray  Ray
		want bool
	}{
		{"blocked", NewRay(Vec(0, 0, 0), Vec(0, 0, 1)), true},
		{"clear", NewRay(Vec(0, 0, 0), Vec(1, 0, 0)), false},
		{"stops short", Ray{Origin: Vec(0, 0, 0), Direction: Vec(0, 0, 1), MinT: 0.001, MaxT: 3}, false},
	}

	for _, tt := range tests {
		if got := scene.Occluded(tt.ray); got != tt.want {
			t.Errorf("%s: Occluded = %t, want %t", tt.name, got, tt.want)
		}
	}
}
