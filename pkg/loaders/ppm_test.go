package loaders

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/output"
)

func TestReadPPM(t *testing.T) {
	input := "P3\n# written by hand\n2 1\n255\n255 0 0\n0 0 255 # trailing\n"

	grid, err := ReadPPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPPM failed: %v", err)
	}
	if grid.Width != 2 || grid.Height != 1 {
		t.Fatalf("Expected 2x1, got %dx%d", grid.Width, grid.Height)
	}
	if grid.At(0, 0) != core.Red {
		t.Errorf("Expected red, got %v", grid.At(0, 0))
	}
	if grid.At(0, 1) != core.NewColor(0, 0, 1) {
		t.Errorf("Expected blue, got %v", grid.At(0, 1))
	}
}

func TestReadPPM_RoundTrip(t *testing.T) {
	original := core.NewPixelGrid(3, 2, core.Black)
	original.Set(0, 2, core.Red)
	original.Set(1, 0, core.NewColor(1, 1, 1))

	var buf bytes.Buffer
	if err := output.WritePPM(&buf, original); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	grid, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if grid.At(i, j) != original.At(i, j) {
				t.Errorf("Pixel (%d, %d): expected %v, got %v", i, j, original.At(i, j), grid.At(i, j))
			}
		}
	}
}

func TestReadPPM_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"binary magic", "P6\n1 1\n255\n0 0 0\n"},
		{"bad width", "P3\nx 1\n255\n0 0 0\n"},
		{"zero height", "P3\n1 0\n255\n"},
		{"missing samples", "P3\n2 1\n255\n0 0 0\n"},
		{"extra samples", "P3\n1 1\n255\n0 0 0 0\n"},
		{"sample above max", "P3\n1 1\n255\n256 0 0\n"},
		{"negative sample", "P3\n1 1\n255\n-1 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPPM(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadPPM(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tiny.ppm")
	if err := os.WriteFile(filename, []byte("P3\n1 1\n255\n255 0 0\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	grid, err := LoadPPM(filename)
	if err != nil {
		t.Fatalf("LoadPPM failed: %v", err)
	}
	if grid.At(0, 0) != core.Red {
		t.Errorf("Expected red, got %v", grid.At(0, 0))
	}

	if _, err := LoadPPM(filepath.Join(t.TempDir(), "missing.ppm")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
