package core

import "math"

// Color is an RGB triple with channels nominally in [0, 1]
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	Red   = Color{1, 0, 0}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// ToRGB8 converts the color to 8-bit channels as floor(channel*255),
// clamped to [0, 255]. NaN channels map to 0.
func (c Color) ToRGB8() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func toByte(channel float64) uint8 {
	v := math.Floor(channel * 255)
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
