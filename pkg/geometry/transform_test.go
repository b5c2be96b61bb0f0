package geometry

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
)

func TestTranslate_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	moved := NewTranslate(sphere, core.NewVec3(2, 0, 0))

	ray := core.NewRay(core.NewVec3(2, 0, 5), core.NewVec3(0, 0, -1))
	hit, isHit := moved.Hit(ray, testRange, nil)
	if !isHit {
		t.Fatal("Expected hit on translated sphere")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if !vecNear(hit.Point, core.NewVec3(2, 0, 1), 1e-9) {
		t.Errorf("Expected world-space point (2,0,1), got %v", hit.Point)
	}
	if !vecNear(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	// The untranslated position is now empty
	if _, isHit := moved.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), testRange, nil); isHit {
		t.Error("Expected miss at the original position")
	}
}

func TestTranslate_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	moved := NewTranslate(sphere, core.NewVec3(1, -2, 3))

	bbox := moved.BoundingBox()
	if !bbox.Min().Equals(core.NewVec3(0, -3, 2)) || !bbox.Max().Equals(core.NewVec3(2, -1, 4)) {
		t.Errorf("Unexpected translated bounding box %v", bbox)
	}
}

func TestRotateY_Hit(t *testing.T) {
	// Box spanning x∈[0,2]; rotating 90° maps +X onto -Z
	box := NewBox(core.NewVec3(0, 0, -0.5), core.NewVec3(2, 1, 0.5), testMaterial)
	rotated := NewRotateY(box, 90)

	ray := core.NewRay(core.NewVec3(0, 0.5, 5), core.NewVec3(0, 0, -1))
	hit, isHit := rotated.Hit(ray, testRange, nil)
	if !isHit {
		t.Fatal("Expected hit on rotated box")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("Expected t=5, got %f", hit.T)
	}
	if !vecNear(hit.Point, core.NewVec3(0, 0.5, 0), 1e-9) {
		t.Errorf("Expected point (0,0.5,0), got %v", hit.Point)
	}
	if !vecNear(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	bbox := rotated.BoundingBox()
	if !bbox.Contains(core.NewVec3(0, 0.5, -1.9)) || bbox.Contains(core.NewVec3(1.5, 0.5, 0)) {
		t.Errorf("Rotated bounding box %v does not follow the rotation", bbox)
	}
}

func TestRotateY_MatchesQuaternionRotation(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	for i := 0; i < 50; i++ {
		angle := random.Float64()*720 - 360
		r := NewRotateY(sphere, angle)
		q := r3.NewRotation(core.DegreesToRadians(angle), r3.Vec{Y: 1})

		p := core.NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64())
		want := q.Rotate(r3.Vec{X: p.X, Y: p.Y, Z: p.Z})
		got := r.toWorld(p)

		if !vecNear(got, core.NewVec3(want.X, want.Y, want.Z), 1e-9) {
			t.Fatalf("angle %f: rotated %v to %v, quaternion gives %v", angle, p, got, want)
		}
		if back := r.toObject(got); !vecNear(back, p, 1e-9) {
			t.Fatalf("angle %f: inverse rotation returned %v, want %v", angle, back, p)
		}
	}
}

func TestRotateY_InverseRotationIsIdentity(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	sphere := NewSphere(core.NewVec3(1, 0.5, -2), 0.75, testMaterial)
	roundTrip := NewRotateY(NewRotateY(sphere, 37), -37)

	for i := 0; i < 200; i++ {
		origin := core.NewVec3(random.Float64()*4-2, random.Float64()*4-2, 5)
		target := core.NewVec3(1+random.NormFloat64()*0.5, 0.5+random.NormFloat64()*0.5, -2)
		ray := core.NewRay(origin, target.Subtract(origin))

		want, wantHit := sphere.Hit(ray, testRange, nil)
		got, gotHit := roundTrip.Hit(ray, testRange, nil)
		if wantHit != gotHit {
			t.Fatalf("Ray %d: direct hit=%t, round-trip hit=%t", i, wantHit, gotHit)
		}
		if !wantHit {
			continue
		}
		if math.Abs(want.T-got.T) > 1e-9 || !vecNear(want.Point, got.Point, 1e-9) || !vecNear(want.Normal, got.Normal, 1e-9) {
			t.Fatalf("Ray %d: direct %+v, round-trip %+v", i, *want, *got)
		}
	}
}

func TestWrappers_BoundingBoxIsConservative(t *testing.T) {
	random := rand.New(rand.NewSource(99))
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), testMaterial)

	for _, angle := range []float64{0, 15, -18, 45, 90, 133} {
		shape := NewTranslate(NewRotateY(box, angle), core.NewVec3(265, 0, 295))
		bbox := shape.BoundingBox()
		center := bbox.Center()

		hits := 0
		for i := 0; i < 500; i++ {
			// Aim from far away toward random points near the center
			dir := core.RandomUnitVector(core.NewRandomSampler(random))
			origin := center.Add(dir.Multiply(1000))
			target := center.Add(core.NewVec3(random.NormFloat64()*60, random.NormFloat64()*120, random.NormFloat64()*60))
			hit, isHit := shape.Hit(core.NewRay(origin, target.Subtract(origin)), testRange, nil)
			if !isHit {
				continue
			}
			hits++
			if !bbox.Expand(1e-6).Contains(hit.Point) {
				t.Fatalf("angle %f: hit point %v outside bounding box %v", angle, hit.Point, bbox)
			}
		}
		if hits == 0 {
			t.Fatalf("angle %f: expected some rays to hit", angle)
		}
	}
}

func TestWrappers_MovingSphereBoundingBox(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0.5, testMaterial)
	shape := NewTranslate(NewRotateY(sphere, 30), core.NewVec3(1, 0, 0))
	bbox := shape.BoundingBox()

	for _, time := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
		center := shape.Offset.Add(sphere.CenterAt(time))
		for _, dir := range []core.Vec3{
			core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
			core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
			core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
		} {
			p := center.Add(dir.Multiply(0.5))
			if !bbox.Expand(1e-9).Contains(p) {
				t.Errorf("time %f: surface point %v outside %v", time, p, bbox)
			}
		}
	}
}
