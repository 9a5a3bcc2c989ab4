package integrator

import (
	"math"

	"github.com/df07/go-dual-renderer/pkg/core"
	"github.com/df07/go-dual-renderer/pkg/geometry"
)

// DirectLightingIntegrator shades the nearest hit with a single point light:
// flat ambient plus Lambertian diffuse, no shadows and no bounces.
type DirectLightingIntegrator struct {
	LightPosition core.Vec3
	Ambient       float64
	Background    Background
}

// NewDirectLightingIntegrator creates a direct lighting integrator with the
// fixed sky-blue background
func NewDirectLightingIntegrator(lightPosition core.Vec3) *DirectLightingIntegrator {
	return &DirectLightingIntegrator{
		LightPosition: lightPosition,
		Ambient:       0.1,
		Background:    SolidBackground{Value: core.NewVec3(0.5, 0.7, 1.0)},
	}
}

// RayColor shades the closest hit along ray. The sampler is unused.
func (dl *DirectLightingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	hit, isHit := world.Hit(ray, geometry.MinHitDistance, math.Inf(1))
	if !isHit {
		return dl.Background.Color(ray)
	}

	lightDir := dl.LightPosition.Subtract(hit.Point).NormalizeOr(hit.Normal)
	diff := max(0, hit.Normal.Dot(lightDir))

	diffuseColor := hit.Material.Albedo()
	return diffuseColor.Multiply(dl.Ambient).Add(diffuseColor.Multiply(diff))
}
