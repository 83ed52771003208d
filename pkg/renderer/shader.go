package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Shader maps an intersection result to a pixel color
type Shader interface {
	Shade(hit geometry.HitInfo) core.Color
}

// FlatShader returns a constant color on hit and the background otherwise.
// The surface normal is ignored.
type FlatShader struct {
	HitColor   core.Color
	Background core.Color
}

// DefaultShader shades hits red on a black background
func DefaultShader() FlatShader {
	return FlatShader{HitColor: core.Red, Background: core.Black}
}

// Shade implements Shader
func (s FlatShader) Shade(hit geometry.HitInfo) core.Color {
	if hit.Hit {
		return s.HitColor
	}
	return s.Background
}
