package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	Camera     renderer.CameraConfig
	Primitive  geometry.Primitive // Single object in the scene
	HitColor   core.Color         // Flat color for pixels whose ray hits
	Background core.Color         // Color for pixels whose ray misses
	OutputFile string             // Default output file name
}

// ErrInvalidScene is returned by Validate
var ErrInvalidScene = errors.New("invalid scene")

// GetCameraConfig implements renderer.Scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.Camera
}

// GetPrimitive implements renderer.Scene
func (s *Scene) GetPrimitive() geometry.Primitive {
	return s.Primitive
}

// GetShader implements renderer.Scene
func (s *Scene) GetShader() renderer.Shader {
	return renderer.FlatShader{HitColor: s.HitColor, Background: s.Background}
}

// WithResolution returns a copy of the scene rendered at width x height
func (s *Scene) WithResolution(width, height int) *Scene {
	copied := *s
	copied.Camera.Width = width
	copied.Camera.Height = height
	return &copied
}

// WithRayModel returns a copy of the scene using the given ray model
func (s *Scene) WithRayModel(model renderer.RayModel) *Scene {
	copied := *s
	copied.Camera.RayModel = model
	return &copied
}

// Validate checks the scene before rendering begins
func (s *Scene) Validate() error {
	if s.Camera.Width <= 0 || s.Camera.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", renderer.ErrInvalidDimensions, s.Camera.Width, s.Camera.Height)
	}
	if s.Primitive == nil {
		return fmt.Errorf("%w: scene %q has no primitive", ErrInvalidScene, s.Name)
	}
	if !s.Primitive.BoundingBox().IsValid() {
		return fmt.Errorf("%w: scene %q has an inverted primitive", ErrInvalidScene, s.Name)
	}
	return nil
}
