package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
)

func TestDiffuseLight_Scatter(t *testing.T) {
	emission := core.NewVec3(5.0, 3.0, 1.0)
	light := NewDiffuseLight(emission)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := HitRecord{
		Point:     core.NewVec3(1, 0, 0),
		Normal:    core.NewVec3(-1, 0, 0),
		T:         1.0,
		FrontFace: true,
		Material:  light,
	}

	_, scattered := light.Scatter(ray, hit, sampler)
	if scattered {
		t.Error("Diffuse lights should not scatter")
	}

	if got := Emitted(light, &hit); !got.Equals(emission) {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}

func TestDiffuseLight_TexturedEmission(t *testing.T) {
	checker := NewCheckerTexture(1.0, core.NewVec3(4, 4, 4), core.NewVec3(0, 0, 0))
	light := NewTexturedDiffuseLight(checker)

	if got := light.Emitted(core.Vec2{}, core.NewVec3(0.5, 0.5, 0.5)); !got.Equals(core.NewVec3(4, 4, 4)) {
		t.Errorf("Expected even cell emission, got %v", got)
	}
	if got := light.Emitted(core.Vec2{}, core.NewVec3(1.5, 0.5, 0.5)); !got.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected odd cell emission, got %v", got)
	}
}

func TestEmitted_NonEmitterIsBlack(t *testing.T) {
	materials := []Material{
		NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
		NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.1),
		NewDielectric(1.5),
		NewIsotropic(core.NewVec3(1, 1, 1)),
	}

	hit := HitRecord{Point: core.NewVec3(1, 2, 3)}
	for _, m := range materials {
		if got := Emitted(m, &hit); !got.Equals(core.Vec3{}) {
			t.Errorf("%T should not emit, got %v", m, got)
		}
	}
}
