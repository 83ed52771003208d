package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printHelp()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println()
	fmt.Println("Available scenes:")
	fmt.Println("  box    - Red axis-aligned box (red_box.ppm)")
	fmt.Println("  plane  - Red square facing the camera (red_plane.ppm)")
	fmt.Println("  sphere - Red sphere (circle_red.ppm)")
	fmt.Println()
	fmt.Println("Every flag can also be set with an RT_* environment variable or in .env,")
	fmt.Println("e.g. RT_SCENE=sphere RT_WIDTH=800.")
}

// run renders the configured scene and writes the output files
func run(ctx context.Context, cfg config.Config) error {
	var logger core.Logger = renderer.NewDefaultLogger()
	if cfg.Quiet {
		logger = renderer.NopLogger{}
	}

	selectedScene, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%s ray model)...\n", selectedScene.Name, cfg.RayModel)

	return renderScene(ctx, selectedScene, cfg, logger)
}

func renderScene(ctx context.Context, s *scene.Scene, cfg config.Config, logger core.Logger) error {
	raytracer := renderer.NewRaytracer(s, cfg.RenderConfig(), logger)

	pixels, _, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if err := output.SavePPM(cfg.OutputPath(s), pixels, logger); err != nil {
		return err
	}

	if cfg.PNG != "" {
		if err := output.SavePNG(cfg.PNG, pixels, logger); err != nil {
			return err
		}
	}

	return nil
}
