package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidConfig is returned for values that cannot be used to render
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultEnvFile is loaded when RT_ENV_FILE is not set
const DefaultEnvFile = ".env"

// Config holds everything the CLI driver needs
type Config struct {
	Scene    string            // Preset scene name
	Output   string            // PPM output path (empty = scene default)
	PNG      string            // Optional PNG preview path
	Width    int               // Image width in pixels
	Height   int               // Image height in pixels
	Workers  int               // Parallel workers (0 = CPU count)
	TileSize int               // Tile edge length in pixels
	RayModel renderer.RayModel // Ray direction derivation
	Quiet    bool              // Suppress progress output
}

// Default returns the configuration used when nothing is set
func Default() Config {
	render := renderer.DefaultRenderConfig()
	return Config{
		Scene:    "box",
		Width:    600,
		Height:   600,
		Workers:  render.Workers,
		TileSize: render.TileSize,
		RayModel: renderer.RayModelPerspective,
	}
}

// Load builds the configuration from, in increasing priority: defaults,
// the optional env file, RT_* environment variables, and command line flags.
// flag.ErrHelp is returned unwrapped when -h or -help is given.
func Load(args []string) (Config, error) {
	envFile := os.Getenv("RT_ENV_FILE")
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	cfg, err := FromEnv(os.LookupEnv)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.parseFlags(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadEnvFile loads KEY=VALUE pairs without overriding variables that are
// already set. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

// FromEnv overlays RT_* variables found by lookup onto the defaults
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("RT_SCENE"); ok {
		cfg.Scene = v
	}
	if v, ok := lookup("RT_OUTPUT"); ok {
		cfg.Output = v
	}
	if v, ok := lookup("RT_PNG"); ok {
		cfg.PNG = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"RT_WIDTH", &cfg.Width},
		{"RT_HEIGHT", &cfg.Height},
		{"RT_WORKERS", &cfg.Workers},
		{"RT_TILE_SIZE", &cfg.TileSize},
	}
	for _, entry := range ints {
		v, ok := lookup(entry.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, entry.key, v)
		}
		*entry.dst = n
	}

	if v, ok := lookup("RT_RAY_MODEL"); ok {
		model, err := renderer.ParseRayModel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg.RayModel = model
	}

	if v, ok := lookup("RT_QUIET"); ok {
		quiet, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: RT_QUIET=%q is not a boolean", ErrInvalidConfig, v)
		}
		cfg.Quiet = quiet
	}

	return cfg, nil
}

func (c *Config) parseFlags(args []string) error {
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.StringVar(&c.Scene, "scene", c.Scene, fmt.Sprintf("Scene type: %v", scene.Names()))
	flags.StringVar(&c.Output, "output", c.Output, "PPM output path (default: scene-specific name)")
	flags.StringVar(&c.PNG, "png", c.PNG, "Also write a PNG preview to this path")
	flags.IntVar(&c.Width, "width", c.Width, "Image width in pixels")
	flags.IntVar(&c.Height, "height", c.Height, "Image height in pixels")
	flags.IntVar(&c.Workers, "workers", c.Workers, "Parallel workers (0 = CPU count, 1 = sequential)")
	flags.IntVar(&c.TileSize, "tile-size", c.TileSize, "Tile size in pixels")
	rayModel := flags.String("ray-model", c.RayModel.String(), "Ray direction derivation: perspective or legacy")
	flags.BoolVar(&c.Quiet, "quiet", c.Quiet, "Suppress progress output")

	if err := flags.Parse(args); err != nil {
		return err
	}

	model, err := renderer.ParseRayModel(*rayModel)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.RayModel = model
	return nil
}

// Validate rejects values that cannot produce an image
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %v: %dx%d", ErrInvalidConfig, renderer.ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidConfig, c.TileSize)
	}
	if c.RayModel != renderer.RayModelPerspective && c.RayModel != renderer.RayModelLegacy {
		return fmt.Errorf("%w: unknown ray model %v", ErrInvalidConfig, c.RayModel)
	}
	return nil
}

// BuildScene resolves the named preset and applies resolution and ray model
func (c Config) BuildScene() (*scene.Scene, error) {
	s, err := scene.ByName(c.Scene)
	if err != nil {
		return nil, err
	}
	s = s.WithResolution(c.Width, c.Height).WithRayModel(c.RayModel)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// RenderConfig returns the renderer settings
func (c Config) RenderConfig() renderer.RenderConfig {
	return renderer.RenderConfig{
		Workers:  c.Workers,
		TileSize: c.TileSize,
	}
}

// OutputPath returns the PPM path, falling back to the scene's default name
func (c Config) OutputPath(s *scene.Scene) string {
	if c.Output != "" {
		return c.Output
	}
	return s.OutputFile
}
