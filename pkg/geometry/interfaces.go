package geometry

import (
	"github.com/df07/go-dual-renderer/pkg/core"
	"github.com/df07/go-dual-renderer/pkg/material"
)

// MinHitDistance is the lower bound of every intersection query. It keeps
// rays leaving a surface from hitting that same surface again.
const MinHitDistance = 0.001

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
