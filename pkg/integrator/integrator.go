package integrator

import (
	"github.com/df07/go-scanline-pathtracer/pkg/background"
	"github.com/df07/go-scanline-pathtracer/pkg/core"
	"github.com/df07/go-scanline-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms.
// Implementations are stateless apart from configuration and are shared by all workers.
type Integrator interface {
	// Radiance estimates the light arriving along ray with one random sample
	Radiance(ray core.Ray, world geometry.Shape, bg background.Background, sampler core.Sampler) core.Vec3
}
