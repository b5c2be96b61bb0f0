package geometry

import (
	"math"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
)

// RotateY rotates a wrapped shape about the world Y axis
type RotateY struct {
	Object   Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about +Y (counter-clockwise seen from above)
func NewRotateY(object Shape, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Bound all eight rotated corners of the wrapped box
	lo := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, corner := range object.BoundingBox().Corners() {
		rotated := r.toWorld(corner)
		lo = core.NewVec3(math.Min(lo.X, rotated.X), math.Min(lo.Y, rotated.Y), math.Min(lo.Z, rotated.Z))
		hi = core.NewVec3(math.Max(hi.X, rotated.X), math.Max(hi.Y, rotated.Y), math.Max(hi.Z, rotated.Z))
	}
	r.bbox = core.NewAABB(
		core.NewInterval(lo.X, hi.X),
		core.NewInterval(lo.Y, hi.Y),
		core.NewInterval(lo.Z, hi.Z),
	)

	return r
}

// toObject applies the inverse rotation (world to object space)
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the rotation (object to world space)
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, and rotates point and normal back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	rotatedRay := core.NewRayWithTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, isHit := r.Object.Hit(rotatedRay, rayT, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box around the rotated wrapped box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
