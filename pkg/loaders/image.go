package loaders

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// LoadImage loads a PNG or JPEG image into a pixel grid. Channels are
// scaled to [0, 1].
func LoadImage(filename string) (*core.PixelGrid, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	grid := core.NewPixelGrid(width, height, core.Black)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			grid.Set(y, x, core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			))
		}
	}

	return grid, nil
}
