package renderer

import (
	"testing"
	"time"
)

func TestRenderStats_Merge(t *testing.T) {
	stats := RenderStats{TotalPixels: 10, HitPixels: 2, TilesRendered: 1, Duration: time.Second}
	stats.Merge(RenderStats{TotalPixels: 6, HitPixels: 3, TilesRendered: 2, Duration: time.Minute})

	if stats.TotalPixels != 16 || stats.HitPixels != 5 || stats.TilesRendered != 3 {
		t.Errorf("Unexpected merged counters: %+v", stats)
	}
	if stats.Duration != time.Second {
		t.Errorf("Merge should not touch Duration, got %v", stats.Duration)
	}
}

func TestRenderStats_HitRatio(t *testing.T) {
	tests := []struct {
		name     string
		stats    RenderStats
		expected float64
	}{
		{"empty", RenderStats{}, 0},
		{"no hits", RenderStats{TotalPixels: 4}, 0},
		{"quarter", RenderStats{TotalPixels: 4, HitPixels: 1}, 0.25},
		{"all", RenderStats{TotalPixels: 9, HitPixels: 9}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.HitRatio(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
