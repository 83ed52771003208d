package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// WritePPM writes the grid as a plain-text P3 image: a header followed by
// one "r g b" line per pixel, row-major, top row first
func WritePPM(w io.Writer, grid *core.PixelGrid) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", grid.Width, grid.Height)
	for row := 0; row < grid.Height; row++ {
		for _, c := range grid.Row(row) {
			r, g, b := c.ToRGB8()
			fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
		}
	}

	// bufio keeps the first write error and returns it here
	return bw.Flush()
}

// SavePPM writes the grid to filename and logs a confirmation
func SavePPM(filename string, grid *core.PixelGrid, logger core.Logger) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := WritePPM(file, grid); err != nil {
		file.Close()
		return fmt.Errorf("failed to write PPM %s: %w", filename, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if logger != nil {
		logger.Printf("Image saved as '%s'\n", filename)
	}
	return nil
}
