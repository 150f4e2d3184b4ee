package engine

import "testing"

func newTestTracer(t *testing.T, shadows bool, maxBounces int) *Tracer {
	t.Helper()
	palette, err := NewPalette(DefaultCharSet)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	return NewTracer(palette, shadows, maxBounces)
}

func TestPaletteQuantize(t *testing.T) {
	palette, err := NewPalette(DefaultCharSet)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		intensity float64
		want      byte
	}{
		{-1, ' '},
		{0, ' '},
		{0.05, ' '},
		{0.1, '.'},
		{0.55, '+'},
		{0.95, '@'},
		{1, '@'},
		{2, '@'},
	}
	for _, tt := range tests {
		if got := palette.Quantize(tt.intensity); got != tt.want {
			t.Errorf("Quantize(%v) = %q, want %q", tt.intensity, got, tt.want)
		}
	}

	if palette.Background() != ' ' {
		t.Errorf("Background = %q", palette.Background())
	}
}

func TestNewPaletteRejectsBadCharsets(t *testing.T) {
	for _, charset := range []string{"", "x", "ab\n", "a\x7f"} {
		if _, err := NewPalette(charset); err == nil {
			t.Errorf("NewPalette(%q) accepted", charset)
		}
	}
}

func TestShadeMissIsBackground(t *testing.T) {
	tracer := newTestTracer(t, true, 4)
	scene := NewScene(NewSphere(Vec(0, 0, 0), 1, false))

	if got := tracer.Shade(scene, NewRay(Vec(0, 0, 5), Vec(0, 0, 1)), Vec(0, 0, 10)); got != ' ' {
		t.Errorf("got %q, want background", got)
	}
}

func TestShadeDiffuse(t *testing.T) {
	tracer := newTestTracer(t, true, 4)
	floor := NewTriangle(Vec(-10, -10, 0), Vec(10, -10, 0), Vec(0, 10, 0), false)
	scene := NewScene(floor)
	ray := NewRay(Vec(0, 0, 5), Vec(0, 0, -1))

	// Light straight above: full intensity
	if got := tracer.Shade(scene, ray, Vec(0, 0, 10)); got != '@' {
		t.Errorf("overhead light: got %q, want '@'", got)
	}
	// Light below the surface: no diffuse term
	if got := tracer.Shade(scene, ray, Vec(0, 0, -10)); got != ' ' {
		t.Errorf("light behind surface: got %q, want background", got)
	}
}

func TestShadeShadow(t *testing.T) {
	floor := NewTriangle(Vec(-10, -10, 0), Vec(10, -10, 0), Vec(0, 10, 0), false)
	blocker := NewSphere(Vec(0, 0, 5), 1, false)
	scene := NewScene(floor, blocker)
	light := Vec(0, 0, 10)

	// Look at the floor from the side so the primary ray clears the blocker
	ray := NewRay(Vec(3, 0, 1), Vec(-3, 0, -1).Normalize())

	if got := newTestTracer(t, false, 4).Shade(scene, ray, light); got == ' ' {
		t.Fatal("unshadowed point already dark, test setup is wrong")
	}
	if got := newTestTracer(t, true, 4).Shade(scene, ray, light); got != ' ' {
		t.Errorf("shadowed point: got %q, want background", got)
	}
}

func TestShadeShadowIgnoresObjectsBeyondLight(t *testing.T) {
	tracer := newTestTracer(t, true, 4)
	floor := NewTriangle(Vec(-10, -10, 0), Vec(10, -10, 0), Vec(0, 10, 0), false)
	ceiling := NewSphere(Vec(0, 0, 20), 1, false)
	scene := NewScene(floor, ceiling)

	got := tracer.Shade(scene, NewRay(Vec(0, 0, 5), Vec(0, 0, -1)), Vec(0, 0, 10))
	if got != '@' {
		t.Errorf("got %q, want '@'", got)
	}
}

func TestShadeCompoundBoxTopFace(t *testing.T) {
	tracer := newTestTracer(t, true, 4)
	box := NewCompoundBox(Vec(0, 0, 0), Vec(1, 0, 0), Vec(0, 3, 0), Vec(0, 0, 3), false)
	scene := NewScene(box)

	// Top face at z=3 lit from straight above
	got := tracer.Shade(scene, NewRay(Vec(0, 0.5, 10), Vec(0, 0, -1)), Vec(0, 0, 20))
	if got != '@' {
		t.Errorf("lit top face: got %q, want '@'", got)
	}
}

func TestShadeReflection(t *testing.T) {
	tracer := newTestTracer(t, false, 4)
	// Mirror facing +x, diffuse wall facing -z above the ray's path
	mirror := NewBox(Vec(-1, -10, -10), Vec(0, 10, 10), true)
	target := NewTriangle(Vec(-20, -20, 0), Vec(20, -20, 0), Vec(0, 20, 0), false)
	scene := NewScene(mirror, NewGroup(NewScene(target)))

	// Ray hits the mirror at 45 degrees and bounces down onto the floor
	ray := NewRay(Vec(5, 0, 6), Vec(-1, 0, 0))
	if got := tracer.Shade(scene, ray, Vec(5, 0, 20)); got != ' ' {
		t.Errorf("reflection straight back into empty space: got %q", got)
	}

	ray = NewRay(Vec(5, 0, 6), Vec(-1, 0, -1).Normalize())
	if got := tracer.Shade(scene, ray, Vec(5, 0, 20)); got == ' ' {
		t.Error("reflection onto lit floor returned background")
	}
}

func TestShadeFacingMirrorsTerminate(t *testing.T) {
	left := NewBox(Vec(-11, -10, -10), Vec(-10, 10, 10), true)
	right := NewBox(Vec(10, -10, -10), Vec(11, 10, 10), true)
	scene := NewScene(left, right)
	ray := NewRay(Vec(0, 0, 0), Vec(1, 0, 0))

	for _, bounces := range []int{0, 1, 8, 64} {
		tracer := newTestTracer(t, true, bounces)
		first := tracer.Shade(scene, ray, Vec(0, 0, 5))
		second := tracer.Shade(scene, ray, Vec(0, 0, 5))
		if first != ' ' {
			t.Errorf("max bounces %d: got %q, want background", bounces, first)
		}
		if first != second {
			t.Errorf("max bounces %d: non-deterministic result %q vs %q", bounces, first, second)
		}
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(Vec(1, -1, 0), Vec(0, 1, 0))
	if !vecApproxEqual(got, Vec(1, 1, 0)) {
		t.Errorf("got %v, want (1,1,0)", got)
	}
}
