package renderer

import (
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog"

	"github.com/df07/go-dual-renderer/pkg/core"
	"github.com/df07/go-dual-renderer/pkg/geometry"
	"github.com/df07/go-dual-renderer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int  // Number of rays per pixel
	MaxDepth        int  // Maximum ray bounce depth
	Jitter          bool // Offset each sample randomly inside its pixel
}

// DefaultSamplingConfig returns the ray tracing defaults
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Jitter:          true,
	}
}

// Validate reports configuration values the renderer cannot use
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// Renderer draws a scene one pixel at a time with a pluggable integrator
type Renderer struct {
	name       string
	world      geometry.Shape
	width      int
	height     int
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	sampler    core.Sampler
	logger     zerolog.Logger
}

// NewRenderer creates a renderer for an arbitrary integrator
func NewRenderer(name string, world geometry.Shape, width, height int, integ integrator.Integrator, config SamplingConfig, sampler core.Sampler) *Renderer {
	return &Renderer{
		name:       name,
		world:      world,
		width:      width,
		height:     height,
		camera:     NewCamera(float64(width) / float64(height)),
		integrator: integ,
		config:     config,
		sampler:    sampler,
		logger:     zerolog.Nop(),
	}
}

// NewRaytracer creates a jittered, multi-sampled path tracing renderer
func NewRaytracer(world geometry.Shape, width, height int, config SamplingConfig, sampler core.Sampler) *Renderer {
	return NewRenderer("raytracer", world, width, height,
		integrator.NewPathTracingIntegrator(config.MaxDepth), config, sampler)
}

// NewRasterizer creates a renderer taking one sample at each pixel corner
// and shading it with direct lighting from lightPosition
func NewRasterizer(world geometry.Shape, width, height int, lightPosition core.Vec3) *Renderer {
	config := SamplingConfig{SamplesPerPixel: 1, MaxDepth: 1}
	return NewRenderer("rasterizer", world, width, height,
		integrator.NewDirectLightingIntegrator(lightPosition), config, nil)
}

// SetLogger sets the logger used for progress reporting
func (r *Renderer) SetLogger(logger zerolog.Logger) {
	r.logger = logger.With().Str("renderer", r.name).Logger()
}

// Camera returns the camera rays are generated from
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// pixelSpan is the divisor mapping pixel indices to [0,1]
func pixelSpan(n int) float64 {
	return float64(max(n-1, 1))
}

// PixelColor returns the accumulated linear color of pixel (i, j), where j
// counts rows from the bottom of the image
func (r *Renderer) PixelColor(i, j int) core.Vec3 {
	colorAccum := core.Vec3{}

	for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
		var du, dv float64
		if r.config.Jitter {
			du = r.sampler.Get1D()
			dv = r.sampler.Get1D()
		}

		s := (float64(i) + du) / pixelSpan(r.width)
		t := (float64(j) + dv) / pixelSpan(r.height)

		ray := r.camera.GetRay(s, t)
		colorAccum = colorAccum.Add(r.integrator.RayColor(ray, r.world, r.sampler))
	}

	return colorAccum
}

// Render draws the full image. Row 0 of the result is the top of the view.
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	r.logger.Info().Int("width", r.width).Int("height", r.height).
		Int("samples_per_pixel", r.config.SamplesPerPixel).Msg("render started")

	for j := r.height - 1; j >= 0; j-- {
		r.logger.Debug().Int("rows_remaining", j).Msg("scanline")
		for i := 0; i < r.width; i++ {
			colorSum := r.PixelColor(i, j)
			img.SetRGBA(i, r.height-1-j, QuantizeColor(colorSum, r.config.SamplesPerPixel))
		}
	}

	stats := RenderStats{
		TotalPixels:     r.width * r.height,
		TotalSamples:    r.width * r.height * r.config.SamplesPerPixel,
		SamplesPerPixel: r.config.SamplesPerPixel,
		Duration:        time.Since(startTime),
	}

	r.logger.Info().Dur("duration", stats.Duration).Int("samples", stats.TotalSamples).Msg("render completed")

	return img, stats
}
