package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ReadPPM parses a plain-text P3 image. Channels are scaled by the
// header's maximum value, so 255 reads back as 1.0.
func ReadPPM(r io.Reader) (*core.PixelGrid, error) {
	tokens, err := ppmTokens(r)
	if err != nil {
		return nil, err
	}
	if len(tokens) < 4 {
		return nil, fmt.Errorf("truncated PPM header")
	}
	if tokens[0] != "P3" {
		return nil, fmt.Errorf("unsupported PPM magic %q (want P3)", tokens[0])
	}

	header := make([]int, 3)
	for i, name := range []string{"width", "height", "max value"} {
		value, err := strconv.Atoi(tokens[i+1])
		if err != nil || value <= 0 {
			return nil, fmt.Errorf("invalid PPM %s: %q", name, tokens[i+1])
		}
		header[i] = value
	}
	width, height, maxValue := header[0], header[1], header[2]

	samples := tokens[4:]
	if len(samples) != width*height*3 {
		return nil, fmt.Errorf("expected %d samples for %dx%d image, got %d", width*height*3, width, height, len(samples))
	}

	grid := core.NewPixelGrid(width, height, core.Black)
	channels := make([]float64, 3)
	for index := 0; index < width*height; index++ {
		for c := 0; c < 3; c++ {
			token := samples[index*3+c]
			value, err := strconv.Atoi(token)
			if err != nil || value < 0 || value > maxValue {
				return nil, fmt.Errorf("invalid sample %q at pixel %d", token, index)
			}
			channels[c] = float64(value) / float64(maxValue)
		}
		grid.Set(index/width, index%width, core.NewColor(channels[0], channels[1], channels[2]))
	}

	return grid, nil
}

// ppmTokens splits the input into whitespace-separated tokens, dropping
// '#' comments
func ppmTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if comment := strings.IndexByte(line, '#'); comment >= 0 {
			line = line[:comment]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read PPM: %w", err)
	}
	return tokens, nil
}

// LoadPPM reads a P3 image from disk
func LoadPPM(filename string) (*core.PixelGrid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPM file: %w", err)
	}
	defer file.Close()

	return ReadPPM(file)
}
