package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

const (
	defaultWidth  = 600
	defaultHeight = 600
)

// defaultCamera looks from (0,0,-2) toward the middle of the unit cube
func defaultCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center: core.NewVec3(0, 0, -2),
		LookAt: core.NewVec3(0.5, 0.5, 0.5),
		Up:     core.NewVec3(0, 1, 0),
		Width:  defaultWidth,
		Height: defaultHeight,
		VFov:   renderer.DefaultVFov,
		Near:   renderer.DefaultNear,
		Far:    renderer.DefaultFar,
	}
}

// NewBoxScene creates a red axis-aligned box on a black background
func NewBoxScene() *Scene {
	return &Scene{
		Name:       "box",
		Camera:     defaultCamera(),
		Primitive:  geometry.NewBox(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.8, 0.8, 0.8)),
		HitColor:   core.Red,
		Background: core.Black,
		OutputFile: "red_box.ppm",
	}
}

// NewPlaneScene creates a red square facing the camera, modeled as a box
// with zero thickness along Z
func NewPlaneScene() *Scene {
	return &Scene{
		Name:       "plane",
		Camera:     defaultCamera(),
		Primitive:  geometry.NewBox(core.NewVec3(0.2, 0.2, 0.5), core.NewVec3(0.8, 0.8, 0.5)),
		HitColor:   core.Red,
		Background: core.Black,
		OutputFile: "red_plane.ppm",
	}
}

// NewSphereScene creates a red sphere, which renders as a flat disc
func NewSphereScene() *Scene {
	return &Scene{
		Name:       "sphere",
		Camera:     defaultCamera(),
		Primitive:  geometry.NewSphere(core.NewVec3(0.5, 0.5, 0.5), 0.3),
		HitColor:   core.Red,
		Background: core.Black,
		OutputFile: "circle_red.ppm",
	}
}
