package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-dual-renderer/pkg/core"
)

// fixedSampler returns the same cube sample on every call
type fixedSampler struct {
	value core.Vec3
}

func (f fixedSampler) Get1D() float64  { return f.value.X }
func (f fixedSampler) Get3D() core.Vec3 { return f.value }

func upHit() HitRecord {
	return HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1,
		FrontFace: true,
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	tests := []struct {
		name           string
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"ray against normal", core.NewVec3(0, 0, -1), true, outward},
		{"ray along normal", core.NewVec3(0, 0, 1), false, outward.Negate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			hit.SetFaceNormal(core.NewRay(core.Vec3{}, tt.direction), outward)
			assert.Equal(t, tt.expectedFront, hit.FrontFace)
			assert.Equal(t, tt.expectedNormal, hit.Normal)
		})
	}
}

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.3)
	lambertian := NewLambertian(albedo)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	scatter, didScatter := lambertian.Scatter(rayIn, upHit(), fixedSampler{value: core.NewVec3(0.3, 0, 0.4)})
	require.True(t, didScatter)

	assert.Equal(t, albedo, scatter.Attenuation)
	assert.Equal(t, core.NewVec3(0, 0, 0), scatter.Scattered.Origin)
	// normal + normalize(0.3, 0, 0.4)
	assert.InDelta(t, 0, scatter.Scattered.Direction.Subtract(core.NewVec3(0.6, 1, 0.8)).Length(), 1e-12)
}

func TestLambertian_Scatter_DegenerateDirection(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := upHit()
	hit.Normal = core.NewVec3(-1, 0, 0)

	// The sample cancels the normal exactly
	scatter, didScatter := lambertian.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), hit,
		fixedSampler{value: core.NewVec3(0.5, 0, 0)})
	require.True(t, didScatter)
	assert.Equal(t, hit.Normal, scatter.Scattered.Direction)
}

func TestLambertian_Scatter_AlwaysAboveSurface(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewSeededSampler(3)
	hit := upHit()

	for i := 0; i < 200; i++ {
		scatter, didScatter := lambertian.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, sampler)
		require.True(t, didScatter)
		assert.GreaterOrEqual(t, scatter.Scattered.Direction.Dot(hit.Normal), 1.0)
	}
}

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.3", 0.3, 0.3},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedFuzzness, NewMetal(albedo, tt.inputFuzzness).Fuzzness)
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	metal := NewMetal(albedo, 0.0)

	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(2, -2, 0))
	scatter, didScatter := metal.Scatter(rayIn, upHit(), fixedSampler{value: core.NewVec3(1, 1, 1)})
	require.True(t, didScatter)

	expected := core.NewVec3(1, 1, 0).Normalize()
	assert.InDelta(t, 0, scatter.Scattered.Direction.Subtract(expected).Length(), 1e-12)
	assert.Equal(t, albedo, scatter.Attenuation)
}

func TestMetal_FuzzyReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	scatter, didScatter := metal.Scatter(rayIn, upHit(), fixedSampler{value: core.NewVec3(0, 0, 2)})
	require.True(t, didScatter)

	// (0,1,0) + 0.3*(0,0,1)
	assert.InDelta(t, 0, scatter.Scattered.Direction.Subtract(core.NewVec3(0, 1, 0.3)).Length(), 1e-12)
}

func TestMetal_AbsorbsReflectionIntoSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)

	// Ray travelling along the normal reflects back into the surface
	rayIn := core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))
	_, didScatter := metal.Scatter(rayIn, upHit(), fixedSampler{})
	assert.False(t, didScatter)

	// Grazing ray reflects exactly along the tangent plane
	rayIn = core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0))
	_, didScatter = metal.Scatter(rayIn, upHit(), fixedSampler{})
	assert.False(t, didScatter)
}

func TestUnlit(t *testing.T) {
	unlit := NewUnlit(ErrorColor)

	_, didScatter := unlit.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), upHit(), fixedSampler{})
	assert.False(t, didScatter)
	assert.Equal(t, ErrorColor, unlit.Emit())
	assert.Equal(t, ErrorColor, unlit.Albedo())
}

func TestFromID(t *testing.T) {
	tests := []struct {
		id            int
		expectedKnown bool
		expectedColor core.Vec3
	}{
		{IDGround, true, core.NewVec3(0.5, 0.5, 0.5)},
		{IDRed, true, core.NewVec3(0.7, 0.3, 0.3)},
		{IDSilver, true, core.NewVec3(0.8, 0.8, 0.8)},
		{IDFuzzyGold, true, core.NewVec3(0.8, 0.6, 0.2)},
		{4, false, ErrorColor},
		{-1, false, ErrorColor},
	}

	for _, tt := range tests {
		mat, known := FromID(tt.id)
		assert.Equal(t, tt.expectedKnown, known, "id %d", tt.id)
		assert.Equal(t, tt.expectedColor, mat.Albedo(), "id %d", tt.id)
	}

	silver, _ := FromID(IDSilver)
	assert.Equal(t, 0.0, silver.(*Metal).Fuzzness)
	gold, _ := FromID(IDFuzzyGold)
	assert.Equal(t, 0.3, gold.(*Metal).Fuzzness)
	_, isEmitter := mustFromID(t, 9).(Emitter)
	assert.True(t, isEmitter)
}

func mustFromID(t *testing.T, id int) Material {
	t.Helper()
	mat, _ := FromID(id)
	require.NotNil(t, mat)
	return mat
}
