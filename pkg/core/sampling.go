package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler backed by a fresh generator with the given seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// cubeDiagonal is returned when the cube sample is exactly zero
var cubeDiagonal = NewVec3(1, 1, 1).Multiply(1 / math.Sqrt(3))

// RandomCubeUnitVector normalizes a uniform sample from the unit cube [0,1)³.
// The result always lies in the first octant, so it is not a uniform direction
// on the sphere; diffuse and fuzzy-metal scattering depend on this exact shape.
func RandomCubeUnitVector(sampler Sampler) Vec3 {
	return sampler.Get3D().NormalizeOr(cubeDiagonal)
}
