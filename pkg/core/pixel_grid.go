package core

// PixelGrid is a row-major grid of colors with fixed dimensions
type PixelGrid struct {
	Width  int
	Height int
	pixels []Color
}

// NewPixelGrid creates a width x height grid with every cell set to fill
func NewPixelGrid(width, height int, fill Color) *PixelGrid {
	pixels := make([]Color, width*height)
	for i := range pixels {
		pixels[i] = fill
	}
	return &PixelGrid{Width: width, Height: height, pixels: pixels}
}

// At returns the color stored at (row, col)
func (g *PixelGrid) At(row, col int) Color {
	return g.pixels[row*g.Width+col]
}

// Set stores a color at (row, col)
func (g *PixelGrid) Set(row, col int, c Color) {
	g.pixels[row*g.Width+col] = c
}

// Row returns the colors of a single row, left to right.
// The returned slice aliases the grid.
func (g *PixelGrid) Row(row int) []Color {
	start := row * g.Width
	return g.pixels[start : start+g.Width]
}
