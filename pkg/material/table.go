package material

import (
	"github.com/df07/go-dual-renderer/pkg/core"
)

// Material ids of the reference scene
const (
	IDGround    = 0 // gray diffuse floor
	IDRed       = 1 // red diffuse sphere
	IDSilver    = 2 // mirror metal
	IDFuzzyGold = 3 // frosted gold metal
)

// FromID resolves a material id. The second return value is false for ids
// outside the table, in which case an Unlit material in ErrorColor is returned.
func FromID(id int) (Material, bool) {
	switch id {
	case IDGround:
		return NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), true
	case IDRed:
		return NewLambertian(core.NewVec3(0.7, 0.3, 0.3)), true
	case IDSilver:
		return NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0), true
	case IDFuzzyGold:
		return NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3), true
	default:
		return NewUnlit(ErrorColor), false
	}
}
