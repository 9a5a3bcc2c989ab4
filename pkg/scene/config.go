package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-dual-renderer/pkg/core"
	"github.com/df07/go-dual-renderer/pkg/renderer"
)

// Triple is a YAML-friendly [x, y, z]
type Triple [3]float64

// Vec3 converts the triple to a vector
func (t Triple) Vec3() core.Vec3 {
	return core.NewVec3(t[0], t[1], t[2])
}

// SphereConfig describes one sphere of a scene file
type SphereConfig struct {
	Center   Triple  `yaml:"center"`
	Radius   float64 `yaml:"radius"`
	Material int     `yaml:"material"`
}

// Config is the on-disk scene description. Absent keys keep DefaultConfig values.
type Config struct {
	Width           int            `yaml:"width"`
	AspectRatio     float64        `yaml:"aspect_ratio"`
	SamplesPerPixel int            `yaml:"samples_per_pixel"`
	MaxDepth        int            `yaml:"max_depth"`
	Seed            int64          `yaml:"seed"`
	Light           Triple         `yaml:"light"`
	RasterOutput    string         `yaml:"raster_output"`
	RaytraceOutput  string         `yaml:"raytrace_output"`
	Spheres         []SphereConfig `yaml:"spheres"`
}

// Height is the width divided by the aspect ratio, truncated
func (c Config) Height() int {
	return int(float64(c.Width) / c.AspectRatio)
}

// Validate checks the values the renderers depend on
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if c.Height() <= 0 {
		return fmt.Errorf("height must be positive, got %d (width %d, aspect ratio %g)", c.Height(), c.Width, c.AspectRatio)
	}
	sampling := renderer.SamplingConfig{SamplesPerPixel: c.SamplesPerPixel, MaxDepth: c.MaxDepth}
	if err := sampling.Validate(); err != nil {
		return err
	}
	if c.RasterOutput == "" || c.RaytraceOutput == "" {
		return errors.New("output file names must not be empty")
	}
	for i, sc := range c.Spheres {
		if sc.Radius <= 0 {
			return fmt.Errorf("sphere %d: radius must be positive, got %g", i, sc.Radius)
		}
	}
	return nil
}

// Parse decodes a YAML scene on top of DefaultConfig and builds it
func Parse(data []byte, logger zerolog.Logger) (*Scene, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	s, err := Build(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return s, nil
}

// Load reads and builds a YAML scene file
func Load(path string, logger zerolog.Logger) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return Parse(data, logger)
}

// Save writes cfg as YAML
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}
