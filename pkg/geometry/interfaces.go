package geometry

import (
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Shapes are immutable once built and are shared by every render worker.
type Shape interface {
	// Hit returns the nearest intersection with t inside rayT. The sampler
	// belongs to the calling worker; shapes without randomness ignore it.
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
