package material

import (
	"github.com/df07/go-dual-renderer/pkg/core"
)

// Lambertian is a diffuse material. Scattering adds a first-octant cube
// sample to the normal, which approximates (but is not) cosine-weighted
// hemisphere sampling.
type Lambertian struct {
	Color core.Vec3
}

// NewLambertian creates a new diffuse material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Color: albedo}
}

// Scatter implements the Material interface for diffuse scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomCubeUnitVector(sampler))

	// Sample cancelled the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Color,
	}, true
}

// Albedo returns the diffuse color
func (l *Lambertian) Albedo() core.Vec3 {
	return l.Color
}
