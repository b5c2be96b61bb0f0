package geometry

import (
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
)

// List is a flat aggregate that tests every member shape
type List struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewList creates a list holding the given shapes
func NewList(shapes ...Shape) *List {
	l := &List{bbox: core.EmptyAABB}
	for _, shape := range shapes {
		l.Add(shape)
	}
	return l
}

// Add appends a shape. Lists must not be modified once rendering starts.
func (l *List) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
	l.bbox = l.bbox.Union(shape.BoundingBox())
}

// Hit returns the closest hit among all shapes
func (l *List) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of the member bounding boxes
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}
