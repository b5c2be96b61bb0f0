package geometry

import (
	"math"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
)

// mediumExitOffset skips past the entry point when searching for the exit hit
const mediumExitOffset = 0.0001

// ConstantMedium is a homogeneous participating medium such as smoke or fog
// filling a boundary shape. The boundary must be closed and convex.
type ConstantMedium struct {
	Boundary      Shape
	negInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium fills boundary with a medium of the given density and albedo
func NewConstantMedium(boundary Shape, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// NewTexturedConstantMedium fills boundary with a medium whose albedo is a texture
func NewTexturedConstantMedium(boundary Shape, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1 / density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit samples a free-flight distance through the medium. The ray scatters
// inside the boundary with probability 1 - exp(-density * distanceInside).
func (c *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, isHit := c.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !isHit {
		return nil, false
	}

	exit, isHit := c.Boundary.Hit(ray, core.NewInterval(entry.T+mediumExitOffset, math.Inf(1)), sampler)
	if !isHit {
		return nil, false
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return nil, false
	}

	// Origin inside the medium
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := c.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength

	// Normal and face are arbitrary; the isotropic phase function ignores them
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  c.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (c *ConstantMedium) BoundingBox() core.AABB {
	return c.Boundary.BoundingBox()
}
