package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// TileRenderer casts, intersects and shades the pixels of one tile at a time
type TileRenderer struct {
	camera    *Camera
	primitive geometry.Primitive
	shader    Shader
	pixels    *core.PixelGrid
}

// NewTileRenderer creates a tile renderer writing into pixels
func NewTileRenderer(camera *Camera, primitive geometry.Primitive, shader Shader, pixels *core.PixelGrid) *TileRenderer {
	return &TileRenderer{
		camera:    camera,
		primitive: primitive,
		shader:    shader,
		pixels:    pixels,
	}
}

// RenderTileBounds renders every pixel within bounds.
// Tiles do not overlap, so concurrent calls on distinct tiles are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy(), TilesRendered: 1}

	for i := bounds.Min.Y; i < bounds.Max.Y; i++ {
		for j := bounds.Min.X; j < bounds.Max.X; j++ {
			ray := tr.camera.GetRay(i, j)
			hit := tr.primitive.Intersect(ray)
			if hit.Hit {
				stats.HitPixels++
			}
			tr.pixels.Set(i, j, tr.shader.Shade(hit))
		}
	}

	return stats
}
