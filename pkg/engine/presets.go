package engine

import (
	"fmt"
	"math"
	"sort"

	"asciitrace/internal/util"
)

// Setup is a ready-to-render scene with its camera, light and animation
type Setup struct {
	Scene  *Scene
	Camera Camera
	Light  Vector3
	Speed  float64 // orbit speed in degrees per second

	animate func(s *Setup, angle float64)
}

// Animate moves the camera and light to the given orbit angle in degrees.
// It must not run while a render of this setup is in flight.
func (s *Setup) Animate(angle float64) {
	if s.animate != nil {
		s.animate(s, angle)
	}
}

// Preset describes a built-in scene
type Preset struct {
	Name        string
	Description string
	Build       func() *Setup
}

var presets = map[string]Preset{
	"courtyard": {
		Name:        "courtyard",
		Description: "floor, mirror wall, slab box and spheres under an orbiting light",
		Build:       buildCourtyard,
	},
	"mirrorbox": {
		Name:        "mirrorbox",
		Description: "reflective triangle box among spheres, orbiting camera and light",
		Build:       buildMirrorBox,
	},
	"checkers": {
		Name:        "checkers",
		Description: "infinite checkerboard with a mirror sphere, orbiting camera",
		Build:       buildCheckers,
	},
}

// Presets returns all built-in scenes sorted by name
func Presets() []Preset {
	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// LookupPreset finds a built-in scene by name
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown scene preset %q", name)
	}
	return p, nil
}

func buildCourtyard() *Setup {
	scene := NewScene(
		// floor
		NewTriangle(Vec(-20, -20, 0), Vec(20, -20, 0), Vec(20, 20, 0), false),
		NewTriangle(Vec(-20, -20, 0), Vec(20, 20, 0), Vec(-20, 20, 0), false),
		// mirror wall
		NewTriangle(Vec(-20, 20, 2), Vec(20, 20, 2), Vec(20, 20, 10), true),
		NewTriangle(Vec(-20, 20, 2), Vec(-20, 20, 10), Vec(20, 20, 10), true),
		NewBox(Vec(-3, -3, 0), Vec(3, 3, 6), false),
		NewSphere(Vec(-8, 15, 2), 2, false),
		NewSphere(Vec(13, 10, 2), 2, false),
		NewSphere(Vec(-10, -14, 2), 2, false),
	)

	position := Vec(math.Cos(util.DegToRad(45))*35, math.Sin(util.DegToRad(225))*38, 15)
	camera := NewCamera(position, Vec(0, 0, 0).Sub(position), Vec(0, 0, 1), 75)

	s := &Setup{
		Scene:  scene,
		Camera: camera,
		Light:  Vec(10, 20, 20),
		Speed:  50,
		animate: func(s *Setup, angle float64) {
			s.Light.X, s.Light.Y = util.RotatePoint2D(20, 0, util.DegToRad(angle))
		},
	}
	s.Animate(0)
	return s
}

func buildMirrorBox() *Setup {
	scene := NewScene(
		NewCompoundBox(Vec(0, 0, 0), Vec(1, 0, 0), Vec(0, 3, 0), Vec(0, 0, 3), true),
		NewBox(Vec(-5-0.8, -0.8, -3-0.8), Vec(-5+0.8, 0.8, -3+0.8), false),
		NewBox(Vec(-5-0.8, -0.8, 3-0.8), Vec(-5+0.8, 0.8, 3+0.8), false),
		NewSphere(Vec(3, 0, 0), 1.2, false),
		NewSphere(Vec(-5, -4, 0), 1.2, false),
		NewSphere(Vec(-5, 4, 0), 1.2, false),
		NewSphere(Vec(-5, 0, 0), 1.2, false),
	)

	s := &Setup{
		Scene:  scene,
		Camera: NewCamera(Vec(12, 0, 0), Vec(-1, 0, 0), Vec(0, 0, 1), 75),
		Light:  Vec(0, 0, 20),
		Speed:  70,
		animate: func(s *Setup, angle float64) {
			rad := util.DegToRad(angle)
			s.Light.X = math.Cos(rad) * 50
			s.Light.Y = math.Sin(rad) * 100
			s.Camera.Position = Vec(math.Cos(rad)*12, math.Sin(rad)*15, math.Sin(rad)*-5)
			s.Camera.LookAt(Vec(0, 0, 0))
		},
	}
	s.Animate(0)
	return s
}

func buildCheckers() *Setup {
	scene := NewScene(
		NewCheckerboard(Vec(0, 0, 1), 0),
		NewSphere(Vec(0, 0, 4), 4, true),
		NewSphere(Vec(10, 6, 2), 2, false),
		NewSphere(Vec(-8, -10, 3), 3, false),
		NewBox(Vec(6, -12, 0), Vec(10, -8, 4), false),
	)

	s := &Setup{
		Scene:  scene,
		Camera: NewCamera(Vec(30, 0, 12), Vec(-1, 0, 0), Vec(0, 0, 1), 70),
		Light:  Vec(15, -10, 25),
		Speed:  30,
		animate: func(s *Setup, angle float64) {
			x, y := util.RotatePoint2D(30, 0, util.DegToRad(angle))
			s.Camera.Position = Vec(x, y, 12)
			s.Camera.LookAt(Vec(0, 0, 2))
		},
	}
	s.Animate(0)
	return s
}
