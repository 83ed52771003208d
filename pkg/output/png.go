package output

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ToImage converts the grid to an opaque NRGBA image using the same
// channel quantization as the PPM writer
func ToImage(grid *core.PixelGrid) *image.NRGBA {
	img := imaging.New(grid.Width, grid.Height, color.NRGBA{A: 255})

	for row := 0; row < grid.Height; row++ {
		for col, c := range grid.Row(row) {
			r, g, b := c.ToRGB8()
			img.SetNRGBA(col, row, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}

	return img
}

// EncodePNG writes the grid to w as PNG
func EncodePNG(w io.Writer, grid *core.PixelGrid) error {
	if err := imaging.Encode(w, ToImage(grid), imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the grid to filename as PNG and logs a confirmation
func SavePNG(filename string, grid *core.PixelGrid, logger core.Logger) error {
	if err := imaging.Save(ToImage(grid), filename); err != nil {
		return fmt.Errorf("failed to save PNG %s: %w", filename, err)
	}

	if logger != nil {
		logger.Printf("Preview saved as '%s'\n", filename)
	}
	return nil
}
