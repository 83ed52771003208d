package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Workers  int // Number of parallel workers (0 = use CPU count, 1 = sequential)
	TileSize int // Size of each square tile in pixels
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Workers:  0,
		TileSize: 64,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCameraConfig() CameraConfig
	GetPrimitive() geometry.Primitive
	GetShader() Shader
}

// Raytracer casts one primary ray per pixel and shades the result
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// Render produces a fully populated pixel grid. The grid is returned only
// once every tile has been rendered.
func (rt *Raytracer) Render(ctx context.Context) (*core.PixelGrid, RenderStats, error) {
	camera, err := NewCamera(rt.scene.GetCameraConfig())
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("failed to create camera: %w", err)
	}

	shader := rt.scene.GetShader()
	width, height := camera.Width(), camera.Height()
	pixels := core.NewPixelGrid(width, height, shader.Shade(geometry.HitInfo{}))
	tileRenderer := NewTileRenderer(camera, rt.scene.GetPrimitive(), shader, pixels)
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	workers := rt.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rt.logger.Printf("Rendering %dx%d image (%d tiles, %d workers)...\n", width, height, len(tiles), workers)

	startTime := time.Now()
	var stats RenderStats
	if workers == 1 {
		stats, err = rt.renderSequential(ctx, tileRenderer, tiles)
	} else {
		stats, err = rt.renderParallel(ctx, tileRenderer, tiles, workers)
	}
	if err != nil {
		return nil, RenderStats{}, err
	}
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("Render completed in %v: %d of %d pixels hit (%.1f%%)\n",
		stats.Duration, stats.HitPixels, stats.TotalPixels, 100*stats.HitRatio())

	return pixels, stats, nil
}

func (rt *Raytracer) renderSequential(ctx context.Context, tr *TileRenderer, tiles []*Tile) (RenderStats, error) {
	var stats RenderStats
	progress := newProgressReporter(rt.logger, len(tiles))

	for _, tile := range tiles {
		if err := ctx.Err(); err != nil {
			return RenderStats{}, err
		}
		stats.Merge(tr.RenderTileBounds(tile.Bounds))
		progress.tileDone()
	}

	return stats, nil
}

func (rt *Raytracer) renderParallel(ctx context.Context, tr *TileRenderer, tiles []*Tile, workers int) (RenderStats, error) {
	pool := NewWorkerPool(tr, len(tiles), workers)
	pool.Start(ctx)
	defer pool.Stop()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}

	// Every task yields exactly one result, so drain them all before Stop
	var stats RenderStats
	var firstErr error
	progress := newProgressReporter(rt.logger, len(tiles))
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
		progress.tileDone()
	}

	if firstErr != nil {
		return RenderStats{}, firstErr
	}
	return stats, nil
}

// progressReporter logs tile completion at every quarter of the render
type progressReporter struct {
	logger core.Logger
	total  int
	done   int
	next   int
}

func newProgressReporter(logger core.Logger, total int) *progressReporter {
	return &progressReporter{logger: logger, total: total, next: 25}
}

func (p *progressReporter) tileDone() {
	p.done++
	percent := p.done * 100 / p.total
	if percent >= p.next {
		p.logger.Printf("Progress: %d%% (%d/%d tiles)\n", percent, p.done, p.total)
		p.next = (percent/25 + 1) * 25
	}
}
