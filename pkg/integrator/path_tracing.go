package integrator

import (
	"math"

	"github.com/df07/go-scanline-pathtracer/pkg/background"
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
	"github.com/df07/go-scanline-pathtracer/pkg/material"
)

// shadowAcneEpsilon keeps a scattered ray from re-hitting the surface it left
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce limit
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// Radiance traces ray with the configured bounce limit
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, world geometry.Shape, bg background.Background, sampler core.Sampler) core.Vec3 {
	return pt.RayColor(ray, pt.MaxDepth, world, bg, sampler)
}

// RayColor computes the color for a single ray. Each bounce adds the surface's
// emission to the attenuated radiance of the scattered ray.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, depth int, world geometry.Shape, bg background.Background, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return bg.Radiance(ray)
	}

	colorEmitted := material.Emitted(hit.Material, hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, depth-1, world, bg, sampler))

	return colorEmitted.Add(colorScattered)
}
