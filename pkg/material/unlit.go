package material

import (
	"github.com/df07/go-dual-renderer/pkg/core"
)

// ErrorColor marks surfaces whose material could not be resolved
var ErrorColor = core.NewVec3(1, 0, 1)

// Unlit never scatters and shows a flat color. It stands in for unknown
// material ids so that both renderers produce a defined appearance.
type Unlit struct {
	Color core.Vec3
}

// NewUnlit creates a new unlit material
func NewUnlit(color core.Vec3) *Unlit {
	return &Unlit{Color: color}
}

// Scatter always absorbs
func (u *Unlit) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the flat color
func (u *Unlit) Emit() core.Vec3 {
	return u.Color
}

// Albedo returns the flat color
func (u *Unlit) Albedo() core.Vec3 {
	return u.Color
}
