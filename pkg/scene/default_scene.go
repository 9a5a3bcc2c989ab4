package scene

import (
	"github.com/rs/zerolog"

	"github.com/df07/go-dual-renderer/pkg/material"
)

// DefaultConfig returns the reference scene: a large gray floor sphere with
// red diffuse, silver mirror and frosted gold spheres resting on it.
func DefaultConfig() Config {
	return Config{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		Light:           Triple{5, 5, -5},
		RasterOutput:    "rasterized_scene.ppm",
		RaytraceOutput:  "raytraced_scene.ppm",
		Spheres: []SphereConfig{
			{Center: Triple{0, -100.5, -1}, Radius: 100, Material: material.IDGround},
			{Center: Triple{0, 0, -1}, Radius: 0.5, Material: material.IDRed},
			{Center: Triple{-1, 0, -1}, Radius: 0.5, Material: material.IDSilver},
			{Center: Triple{1, 0, -1}, Radius: 0.5, Material: material.IDFuzzyGold},
		},
	}
}

// NewReferenceScene builds DefaultConfig
func NewReferenceScene() *Scene {
	s, err := Build(DefaultConfig(), zerolog.Nop())
	if err != nil {
		panic(err)
	}
	return s
}
