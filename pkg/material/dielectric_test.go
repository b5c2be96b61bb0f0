package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting glass surface straight on
	rayIn := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, -1), // Normal pointing back toward ray
		T:         1.0,
		FrontFace: true, // Ray entering the glass
	}

	scatter, didScatter := glass.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Dielectric should always scatter")
	}

	expected := core.NewVec3(1, 1, 1)
	if !scatter.Attenuation.Equals(expected) {
		t.Errorf("Expected attenuation %v, got %v", expected, scatter.Attenuation)
	}

	// At normal incidence the ray either refracts straight through or reflects straight back
	dir := scatter.Scattered.Direction.Normalize()
	if math.Abs(math.Abs(dir.Z)-1) > 1e-9 {
		t.Errorf("Expected direction along the normal at normal incidence, got %v", dir)
	}
}

func TestDielectricRefractionBendsTowardNormal(t *testing.T) {
	glass := NewDielectric(1.5)

	// A sampler value of 0.999 keeps the Schlick branch from choosing reflection
	sampler := fixedSampler{value: 0.999}

	incoming := core.NewVec3(1, 0, 1).Normalize() // 45 degrees
	rayIn := core.NewRay(core.NewVec3(-1, 0, -1), incoming)
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, -1),
		FrontFace: true,
	}

	scatter, _ := glass.Scatter(rayIn, hit, sampler)
	out := scatter.Scattered.Direction.Normalize()

	// Snell: sin(theta_t) = sin(45°) / 1.5
	expectedSin := math.Sin(math.Pi/4) / 1.5
	if math.Abs(out.X-expectedSin) > 1e-9 {
		t.Errorf("Expected refracted sin(theta) %f, got %f", expectedSin, out.X)
	}
	if out.Z <= 0 {
		t.Errorf("Refracted ray should continue into the glass, got %v", out)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray exiting glass at steep angle (should cause total internal reflection)
	// Critical angle for glass (n=1.5) is about 41.8 degrees
	angle := 60.0 * math.Pi / 180.0
	rayDirection := core.NewVec3(math.Sin(angle), 0, math.Cos(angle))
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)

	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 1),
		Normal:    core.NewVec3(0, 0, -1), // Normal pointing into glass (we're exiting)
		T:         1.0,
		FrontFace: false, // Ray exiting the glass
	}

	for i := 0; i < 20; i++ {
		scatter, didScatter := glass.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatal("Dielectric should always scatter")
		}

		// Should be reflected back (negative Z component since normal is -Z)
		if scatter.Scattered.Direction.Z >= 0 {
			t.Errorf("Expected total internal reflection, but ray continued forward: %v", scatter.Scattered.Direction)
		}
	}
}

func TestReflectanceFunction(t *testing.T) {
	tests := []struct {
		name            string
		cosine          float64
		refractionRatio float64
		expectedMin     float64
		expectedMax     float64
	}{
		{"Normal incidence air-glass", 1.0, 1.0 / 1.5, 0.03, 0.05},
		{"Grazing incidence", 0.0, 1.0 / 1.5, 0.99, 1.01},
		{"45 degree incidence", math.Cos(math.Pi / 4), 1.0 / 1.5, 0.04, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reflectance := Reflectance(tt.cosine, tt.refractionRatio)
			if reflectance < tt.expectedMin || reflectance > tt.expectedMax {
				t.Errorf("Reflectance %f not in expected range [%f, %f]",
					reflectance, tt.expectedMin, tt.expectedMax)
			}
		})
	}
}
