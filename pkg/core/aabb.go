package core

import "math"

// minAxisExtent pads flat boxes (e.g. axis-aligned quads) so the slab test never divides a zero-width slab
const minAxisExtent = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing; it is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from per-axis intervals, padding any degenerate axis
func NewAABB(x, y, z Interval) AABB {
	box := AABB{X: x, Y: y, Z: z}
	box.padToMinimums()
	return box
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	lo := points[0]
	hi := points[0]

	for _, point := range points[1:] {
		lo.X = math.Min(lo.X, point.X)
		lo.Y = math.Min(lo.Y, point.Y)
		lo.Z = math.Min(lo.Z, point.Z)

		hi.X = math.Max(hi.X, point.X)
		hi.Y = math.Max(hi.Y, point.Y)
		hi.Z = math.Max(hi.Z, point.Z)
	}

	return NewAABB(
		NewInterval(lo.X, hi.X),
		NewInterval(lo.Y, hi.Y),
		NewInterval(lo.Z, hi.Z),
	)
}

func (aabb *AABB) padToMinimums() {
	if aabb.X.Size() >= 0 && aabb.X.Size() < minAxisExtent {
		aabb.X = aabb.X.Expand(minAxisExtent)
	}
	if aabb.Y.Size() >= 0 && aabb.Y.Size() < minAxisExtent {
		aabb.Y = aabb.Y.Expand(minAxisExtent)
	}
	if aabb.Z.Size() >= 0 && aabb.Z.Size() < minAxisExtent {
		aabb.Z = aabb.Z.Expand(minAxisExtent)
	}
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or 2 (Z)
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return Vec3{aabb.X.Min, aabb.Y.Min, aabb.Z.Min}
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return Vec3{aabb.X.Max, aabb.Y.Max, aabb.Z.Max}
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.AxisInterval(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Handle parallel rays (direction near zero)
		if math.Abs(direction) < 1e-12 {
			if origin < slab.Min || origin > slab.Max {
				return false // Ray origin outside slab
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		rayT.Min = math.Max(rayT.Min, t0)
		rayT.Max = math.Min(rayT.Max, t1)

		if rayT.Max <= rayT.Min {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: IntervalUnion(aabb.X, other.X),
		Y: IntervalUnion(aabb.Y, other.Y),
		Z: IntervalUnion(aabb.Z, other.Z),
	}
}

// Offset returns the AABB translated by offset
func (aabb AABB) Offset(offset Vec3) AABB {
	return AABB{
		X: aabb.X.Offset(offset.X),
		Y: aabb.Y.Offset(offset.Y),
		Z: aabb.Z.Offset(offset.Z),
	}
}

// Expand returns the AABB padded by delta/2 on every side
func (aabb AABB) Expand(delta float64) AABB {
	return AABB{
		X: aabb.X.Expand(delta),
		Y: aabb.Y.Expand(delta),
		Z: aabb.Z.Expand(delta),
	}
}

// Corners returns the 8 corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	n := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*aabb.X.Max + float64(1-i)*aabb.X.Min
				y := float64(j)*aabb.Y.Max + float64(1-j)*aabb.Y.Min
				z := float64(k)*aabb.Z.Max + float64(1-k)*aabb.Z.Min
				corners[n] = NewVec3(x, y, z)
				n++
			}
		}
	}
	return corners
}

// Contains reports whether point lies inside the box (boundary inclusive)
func (aabb AABB) Contains(point Vec3) bool {
	return aabb.X.Contains(point.X) && aabb.Y.Contains(point.Y) && aabb.Z.Contains(point.Z)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max().Subtract(aabb.Min())
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0 // X axis
	}
	if size.Y > size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.X.Min <= aabb.X.Max &&
		aabb.Y.Min <= aabb.Y.Max &&
		aabb.Z.Min <= aabb.Z.Max
}
