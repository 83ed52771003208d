package renderer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

type mockScene struct {
	camera    CameraConfig
	primitive geometry.Primitive
	shader    Shader
}

func (m mockScene) GetCameraConfig() CameraConfig    { return m.camera }
func (m mockScene) GetPrimitive() geometry.Primitive { return m.primitive }
func (m mockScene) GetShader() Shader                { return m.shader }

func newMockScene(width, height int, primitive geometry.Primitive) mockScene {
	return mockScene{
		camera: CameraConfig{
			Center: core.NewVec3(0, 0, -2),
			LookAt: core.NewVec3(0.5, 0.5, 0.5),
			Up:     core.NewVec3(0, 1, 0),
			Width:  width,
			Height: height,
		},
		primitive: primitive,
		shader:    DefaultShader(),
	}
}

type bufferLogger struct {
	buf bytes.Buffer
}

func (l *bufferLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&l.buf, format, args...)
}

func unitBox() geometry.Primitive {
	return geometry.NewBox(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.8, 0.8, 0.8))
}

func TestRaytracer_RenderBox(t *testing.T) {
	logger := &bufferLogger{}
	rt := NewRaytracer(newMockScene(60, 60, unitBox()), RenderConfig{Workers: 1, TileSize: 16}, logger)

	pixels, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if pixels.Width != 60 || pixels.Height != 60 {
		t.Fatalf("Expected 60x60 grid, got %dx%d", pixels.Width, pixels.Height)
	}
	if stats.TotalPixels != 3600 || stats.TilesRendered != 16 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	red := 0
	for i := 0; i < pixels.Height; i++ {
		for j := 0; j < pixels.Width; j++ {
			switch pixels.At(i, j) {
			case core.Red:
				red++
			case core.Black:
			default:
				t.Fatalf("Pixel (%d, %d) has unexpected color %v", i, j, pixels.At(i, j))
			}
		}
	}
	if red != stats.HitPixels || red == 0 {
		t.Errorf("Expected %d red pixels, counted %d", stats.HitPixels, red)
	}
	if pixels.At(30, 30) != core.Red {
		t.Error("Expected the image center to hit the box")
	}
	for _, corner := range [][2]int{{0, 0}, {0, 59}, {59, 0}, {59, 59}} {
		if pixels.At(corner[0], corner[1]) != core.Black {
			t.Errorf("Expected corner %v to be background", corner)
		}
	}

	if !bytes.Contains(logger.buf.Bytes(), []byte("Render completed")) {
		t.Errorf("Expected completion log, got %q", logger.buf.String())
	}
}

func TestRaytracer_ParallelMatchesSequential(t *testing.T) {
	primitives := map[string]geometry.Primitive{
		"box":    unitBox(),
		"sphere": geometry.NewSphere(core.NewVec3(0.5, 0.5, 0.5), 0.3),
	}

	for name, primitive := range primitives {
		t.Run(name, func(t *testing.T) {
			scene := newMockScene(75, 50, primitive)

			sequential, seqStats, err := NewRaytracer(scene, RenderConfig{Workers: 1}, nil).Render(context.Background())
			if err != nil {
				t.Fatalf("Sequential render failed: %v", err)
			}

			for _, workers := range []int{0, 2, 7} {
				parallel, parStats, err := NewRaytracer(scene, RenderConfig{Workers: workers, TileSize: 9}, nil).Render(context.Background())
				if err != nil {
					t.Fatalf("Parallel render with %d workers failed: %v", workers, err)
				}
				if parStats.HitPixels != seqStats.HitPixels || parStats.TotalPixels != seqStats.TotalPixels {
					t.Errorf("%d workers: stats %+v differ from sequential %+v", workers, parStats, seqStats)
				}
				for i := 0; i < 50; i++ {
					for j := 0; j < 75; j++ {
						if parallel.At(i, j) != sequential.At(i, j) {
							t.Fatalf("%d workers: pixel (%d, %d) differs", workers, i, j)
						}
					}
				}
			}
		})
	}
}

func TestRaytracer_BackgroundFill(t *testing.T) {
	scene := newMockScene(20, 20, unitBox())
	scene.camera.LookAt = core.NewVec3(0, 0, -5) // Facing away from the box
	scene.shader = FlatShader{HitColor: core.Red, Background: core.NewColor(0, 0, 1)}

	pixels, stats, err := NewRaytracer(scene, DefaultRenderConfig(), nil).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.HitPixels != 0 {
		t.Errorf("Expected no hits, got %d", stats.HitPixels)
	}
	if pixels.At(7, 13) != core.NewColor(0, 0, 1) {
		t.Errorf("Expected background color, got %v", pixels.At(7, 13))
	}
}

func TestRaytracer_Errors(t *testing.T) {
	t.Run("invalid dimensions", func(t *testing.T) {
		_, _, err := NewRaytracer(newMockScene(0, 10, unitBox()), DefaultRenderConfig(), nil).Render(context.Background())
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Expected ErrInvalidDimensions, got %v", err)
		}
	})

	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("canceled with %d workers", workers), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			pixels, _, err := NewRaytracer(newMockScene(30, 30, unitBox()), RenderConfig{Workers: workers, TileSize: 8}, nil).Render(ctx)
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Expected context.Canceled, got %v", err)
			}
			if pixels != nil {
				t.Error("Expected no grid from a canceled render")
			}
		})
	}
}
