package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
)

func TestNewBox_Faces(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1), core.NewVec3(-1, -1, -1), testMaterial)

	if len(box.Shapes) != 6 {
		t.Fatalf("Expected 6 faces, got %d", len(box.Shapes))
	}

	// Each face is padded along its flat axis, so allow a little slack
	bbox := box.BoundingBox()
	if !vecNear(bbox.Min(), core.NewVec3(-1, -1, -1), 1e-3) || !vecNear(bbox.Max(), core.NewVec3(1, 1, 1), 1e-3) {
		t.Errorf("Unexpected bounding box %v", bbox)
	}
}

func TestBox_Hit_AxisAligned(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{"from +Z", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 4, core.NewVec3(0, 0, 1)},
		{"from -Z", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 4, core.NewVec3(0, 0, -1)},
		{"from +X", core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), 4, core.NewVec3(1, 0, 0)},
		{"from -X", core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), 4, core.NewVec3(-1, 0, 0)},
		{"from +Y", core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 4, core.NewVec3(0, 1, 0)},
		{"from -Y", core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), 4, core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(core.NewRay(tt.origin, tt.direction), testRange, nil)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if !hit.FrontFace {
				t.Error("Expected outward-facing box faces")
			}
		})
	}
}

func TestBox_Hit_FromInside(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial)

	hit, isHit := box.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), testRange, nil)
	if !isHit {
		t.Fatal("Expected hit from inside")
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside the box")
	}
	if !vecNear(hit.Normal, core.NewVec3(-1, 0, 0), 1e-9) {
		t.Errorf("Expected normal facing the ray, got %v", hit.Normal)
	}
}

func TestBox_Miss(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial)
	if _, isHit := box.Hit(core.NewRay(core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1)), testRange, nil); isHit {
		t.Error("Expected miss")
	}
}
