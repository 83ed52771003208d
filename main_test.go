package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func testConfig(t *testing.T, sceneName string) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Scene = sceneName
	cfg.Width = 60
	cfg.Height = 60
	cfg.Quiet = true
	cfg.Output = filepath.Join(t.TempDir(), sceneName+".ppm")
	return cfg
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		sceneType string
	}{
		{"box scene", "box"},
		{"plane scene", "plane"},
		{"sphere scene", "sphere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.sceneType)

			if err := run(context.Background(), cfg); err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneType, err)
			}

			data, err := os.ReadFile(cfg.Output)
			if err != nil {
				t.Fatalf("Expected output file: %v", err)
			}
			if !bytes.HasPrefix(data, []byte("P3\n60 60\n255\n")) {
				t.Errorf("Unexpected PPM header: %q", data[:min(len(data), 20)])
			}

			pixels, err := loaders.LoadPPM(cfg.Output)
			if err != nil {
				t.Fatalf("Output is not a readable PPM: %v", err)
			}
			if pixels.At(30, 30) != core.Red {
				t.Errorf("Expected red center pixel, got %v", pixels.At(30, 30))
			}
			if pixels.At(0, 0) != core.Black {
				t.Errorf("Expected black corner pixel, got %v", pixels.At(0, 0))
			}
		})
	}
}

func TestRun_UnknownScene(t *testing.T) {
	cfg := testConfig(t, "nonexistent")

	err := run(context.Background(), cfg)
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if _, statErr := os.Stat(cfg.Output); statErr == nil {
		t.Error("No output should be written for an unknown scene")
	}
}

func TestRun_Idempotent(t *testing.T) {
	cfg := testConfig(t, "box")
	cfg.Workers = 4
	cfg.TileSize = 16

	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	first, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("Failed to read first output: %v", err)
	}

	cfg.Workers = 1
	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}
	second, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("Failed to read second output: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Re-rendering with identical inputs must produce identical bytes")
	}
}

func TestRun_WritesPNG(t *testing.T) {
	cfg := testConfig(t, "sphere")
	cfg.PNG = filepath.Join(t.TempDir(), "preview.png")

	if err := run(context.Background(), cfg); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	preview, err := loaders.LoadImage(cfg.PNG)
	if err != nil {
		t.Fatalf("Expected readable PNG preview: %v", err)
	}
	if preview.Width != 60 || preview.At(30, 30) != core.Red {
		t.Errorf("Preview does not match the render: %dx%d, center %v", preview.Width, preview.Height, preview.At(30, 30))
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	cfg := testConfig(t, "box")
	cfg.Output = filepath.Join(t.TempDir(), "no-such-dir", "red_box.ppm")

	if err := run(context.Background(), cfg); err == nil {
		t.Error("Expected an I/O error for an unwritable output path")
	}
}

func TestRun_Canceled(t *testing.T) {
	cfg := testConfig(t, "box")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, cfg)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
