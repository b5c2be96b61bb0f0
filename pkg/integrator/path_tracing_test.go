package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-scanline-pathtracer/pkg/background"
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
)

// createTestWorld creates a single lambertian sphere in front of the origin
func createTestWorld() geometry.Shape {
	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	return geometry.NewList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian))
}

func newSampler(seed int64) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld()
	sky := background.NewSkyGradient()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	integrator := NewPathTracingIntegrator(0)
	if color := integrator.Radiance(ray, world, sky, newSampler(42)); color != (core.Vec3{}) {
		t.Errorf("Expected black color for depth 0, got %v", color)
	}

	// Even a ray that would miss returns black once depth is exhausted
	up := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if color := integrator.RayColor(up, -3, world, sky, newSampler(42)); color != (core.Vec3{}) {
		t.Errorf("Expected black color for negative depth, got %v", color)
	}

	// One bounce: the surface has no emission and the next level is cut off
	integrator = NewPathTracingIntegrator(1)
	if color := integrator.Radiance(ray, world, sky, newSampler(42)); color != (core.Vec3{}) {
		t.Errorf("Expected black color after a single non-emissive bounce, got %v", color)
	}

	integrator = NewPathTracingIntegrator(3)
	if color := integrator.Radiance(ray, world, sky, newSampler(42)); color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

// TestPathTracingMissedRay tests background handling for rays that miss all objects
func TestPathTracingMissedRay(t *testing.T) {
	world := createTestWorld()
	sky := background.NewSkyGradient()
	integrator := NewPathTracingIntegrator(10)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.3, 1, 0.2))
	color := integrator.Radiance(ray, world, sky, newSampler(42))

	if expected := sky.Radiance(ray); color != expected {
		t.Errorf("Expected background color %v, got %v", expected, color)
	}
}

// TestPathTracingEmissiveMaterial tests that a light returns exactly its emission
func TestPathTracingEmissiveMaterial(t *testing.T) {
	emission := core.NewVec3(2.0, 1.0, 0.5)
	light := material.NewDiffuseLight(emission)
	world := geometry.NewList(geometry.NewQuad(
		core.NewVec3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light))

	integrator := NewPathTracingIntegrator(10)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color := integrator.Radiance(ray, world, background.NewConstant(core.NewVec3(9, 9, 9)), newSampler(42))
	if color != emission {
		t.Errorf("Expected emission %v, got %v", emission, color)
	}
}

// TestPathTracingBlackBackground tests that without emitters nothing is lit
func TestPathTracingBlackBackground(t *testing.T) {
	world := createTestWorld()
	black := background.NewConstant(core.Vec3{})
	integrator := NewPathTracingIntegrator(50)
	sampler := newSampler(3)

	for i := 0; i < 100; i++ {
		dir := core.NewVec3(sampler.Get1D()-0.5, sampler.Get1D()-0.5, -1)
		if color := integrator.Radiance(core.NewRay(core.Vec3{}, dir), world, black, sampler); color != (core.Vec3{}) {
			t.Fatalf("Expected black without emitters, got %v", color)
		}
	}
}

// TestPathTracingMirror tests that a perfect mirror returns albedo times the reflected background
func TestPathTracingMirror(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.8, 0.7)
	mirror := material.NewMetal(albedo, 0)
	world := geometry.NewList(geometry.NewQuad(
		core.NewVec3(-1, -1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), mirror))

	bgColor := core.NewVec3(0.5, 1.0, 0.25)
	integrator := NewPathTracingIntegrator(10)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.1, 0.2, -1))

	color := integrator.Radiance(ray, world, background.NewConstant(bgColor), newSampler(42))
	expected := albedo.MultiplyVec(bgColor)
	if color.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

// TestPathTracingConvexFurnace tests that a diffuse convex object under a uniform
// sky reflects exactly albedo × sky, since every bounce escapes
func TestPathTracingConvexFurnace(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.25, 0.75)
	world := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertian(albedo))
	sky := background.NewConstant(core.NewVec3(1, 1, 1))
	integrator := NewPathTracingIntegrator(10)
	sampler := newSampler(11)

	for i := 0; i < 200; i++ {
		dir := core.NewVec3((sampler.Get1D()-0.5)*0.4, (sampler.Get1D()-0.5)*0.4, -1)
		color := integrator.Radiance(core.NewRay(core.Vec3{}, dir), world, sky, sampler)
		if math.Abs(color.X-albedo.X) > 1e-12 || math.Abs(color.Y-albedo.Y) > 1e-12 || math.Abs(color.Z-albedo.Z) > 1e-12 {
			t.Fatalf("Sample %d: expected %v, got %v", i, albedo, color)
		}
	}
}

// TestPathTracingDeterministic tests that identical inputs produce identical outputs
func TestPathTracingDeterministic(t *testing.T) {
	world := createTestWorld()
	sky := background.NewSkyGradient()
	integrator := NewPathTracingIntegrator(10)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	color1 := integrator.Radiance(ray, world, sky, newSampler(42))
	color2 := integrator.Radiance(ray, world, sky, newSampler(42))

	if color1 != color2 {
		t.Errorf("Expected deterministic results, got %v and %v", color1, color2)
	}
}

// TestPathTracingMedium tests that a dense fog scatters and a vanishing one is transparent
func TestPathTracingMedium(t *testing.T) {
	boundary := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertian(core.NewVec3(1, 1, 1)))
	sky := background.NewConstant(core.NewVec3(1, 1, 1))
	integrator := NewPathTracingIntegrator(5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Almost no density: the ray passes straight through
	thin := geometry.NewConstantMedium(boundary, 1e-12, core.NewVec3(0.5, 0.5, 0.5))
	if color := integrator.Radiance(ray, thin, sky, newSampler(1)); color != sky.Color {
		t.Errorf("Expected sky through a vanishing medium, got %v", color)
	}

	// Dense grey fog darkens the sky
	dense := geometry.NewConstantMedium(boundary, 100, core.NewVec3(0.5, 0.5, 0.5))
	sampler := newSampler(1)
	var sum core.Vec3
	for i := 0; i < 200; i++ {
		sum = sum.Add(integrator.Radiance(ray, dense, sky, sampler))
	}
	mean := sum.Multiply(1.0 / 200)
	if mean.X >= 1 || mean.X <= 0 {
		t.Errorf("Expected dense fog to attenuate the sky, got %v", mean)
	}
}

// TestPathTracingSkyRaysInSpheresScene traces rays that escape a ground plus
// lambertian and metal sphere scene and expects the exact background gradient
func TestPathTracingSkyRaysInSpheresScene(t *testing.T) {
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)),
	)
	sky := background.NewSkyGradient()
	integrator := NewPathTracingIntegrator(1)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"Above the scene looking up", core.NewVec3(0, 2, 10), core.NewVec3(0.1, 1, -0.2)},
		{"Straight up", core.NewVec3(0, 2, 10), core.NewVec3(0, 1, 0)},
		{"Grazing upwards", core.NewVec3(0, 2, 10), core.NewVec3(0.5, 0.05, -1)},
		{"Looking away from the spheres", core.NewVec3(0, 0.5, 2), core.NewVec3(0, 0.2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			color := integrator.Radiance(ray, world, sky, newSampler(42))
			if expected := sky.Radiance(ray); color != expected {
				t.Errorf("Expected background %v, got %v", expected, color)
			}
		})
	}
}
