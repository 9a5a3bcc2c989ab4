package integrator

import (
	"math"

	"github.com/df07/go-dual-renderer/pkg/core"
	"github.com/df07/go-dual-renderer/pkg/geometry"
	"github.com/df07/go-dual-renderer/pkg/material"
)

// PathTracingIntegrator follows scattered rays recursively until they escape,
// are absorbed, or run out of bounces.
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator with the sky gradient
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: NewSkyGradient(),
	}
}

// RayColor computes the color for a primary ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	return pt.Radiance(ray, world, sampler, pt.MaxDepth)
}

// Radiance returns the light arriving along ray with depth bounces left
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, geometry.MinHitDistance, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray)
	}

	if emitter, ok := hit.Material.(material.Emitter); ok {
		return emitter.Emit()
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(
		pt.Radiance(scatter.Scattered, world, sampler, depth-1))
}
