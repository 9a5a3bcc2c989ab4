package geometry

import (
	"github.com/df07/go-dual-renderer/pkg/core"
	"github.com/df07/go-dual-renderer/pkg/material"
)

// ShapeList is an ordered collection of shapes scanned linearly.
// It is itself a Shape reporting the closest hit of its members.
type ShapeList []Shape

// Hit returns the nearest intersection in [tMin, tMax]. Later shapes only
// replace an earlier hit when strictly closer.
func (l ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit && (closestHit == nil || hit.T < closestHit.T) {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
