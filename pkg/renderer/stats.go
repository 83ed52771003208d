package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels rendered
	HitPixels     int           // Pixels whose ray hit the primitive
	TilesRendered int           // Number of tiles completed
	Duration      time.Duration // Wall time of the render
}

// Merge adds the counters of another stats value into this one
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.HitPixels += other.HitPixels
	s.TilesRendered += other.TilesRendered
}

// HitRatio returns the fraction of rendered pixels that hit the primitive
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
