package scene

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/df07/go-dual-renderer/pkg/core"
	"github.com/df07/go-dual-renderer/pkg/geometry"
	"github.com/df07/go-dual-renderer/pkg/material"
	"github.com/df07/go-dual-renderer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is built once
// and only read afterwards.
type Scene struct {
	Config Config
	Width  int
	Height int
	Light  core.Vec3
	Shapes geometry.ShapeList
}

// Build validates cfg and resolves its spheres and materials
func Build(cfg Config, logger zerolog.Logger) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		Config: cfg,
		Width:  cfg.Width,
		Height: cfg.Height(),
		Light:  cfg.Light.Vec3(),
		Shapes: make(geometry.ShapeList, 0, len(cfg.Spheres)),
	}

	for i, sc := range cfg.Spheres {
		mat, known := material.FromID(sc.Material)
		if !known {
			logger.Warn().Int("sphere", i).Int("material", sc.Material).
				Msg("unknown material id; rendering with error color")
		}
		s.Shapes = append(s.Shapes, geometry.NewSphere(sc.Center.Vec3(), sc.Radius, mat))
	}

	return s, nil
}

// SamplingConfig returns the ray tracer settings of the scene
func (s *Scene) SamplingConfig() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		SamplesPerPixel: s.Config.SamplesPerPixel,
		MaxDepth:        s.Config.MaxDepth,
		Jitter:          true,
	}
}

// NewRasterizer creates the direct lighting renderer for this scene
func (s *Scene) NewRasterizer() *renderer.Renderer {
	return renderer.NewRasterizer(s.Shapes, s.Width, s.Height, s.Light)
}

// NewRaytracer creates the path tracing renderer for this scene, seeded from the config
func (s *Scene) NewRaytracer() *renderer.Renderer {
	return renderer.NewRaytracer(s.Shapes, s.Width, s.Height, s.SamplingConfig(),
		core.NewSeededSampler(s.Config.Seed))
}

// String summarizes the scene for logs
func (s *Scene) String() string {
	return fmt.Sprintf("%dx%d, %d spheres", s.Width, s.Height, len(s.Shapes))
}
