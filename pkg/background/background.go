// Package background supplies the radiance seen by rays that leave the scene.
package background

import (
	"github.com/df07/go-scanline-pathtracer/pkg/core"
)

// Background returns the radiance arriving along a ray that hit nothing
type Background interface {
	Radiance(ray core.Ray) core.Vec3
}

// Constant is a uniform background color. Black makes emitters the only light source.
type Constant struct {
	Color core.Vec3
}

// NewConstant creates a uniform background
func NewConstant(color core.Vec3) *Constant {
	return &Constant{Color: color}
}

// Radiance returns the constant color regardless of direction
func (c *Constant) Radiance(ray core.Ray) core.Vec3 {
	return c.Color
}

// Gradient blends vertically between two colors based on ray direction
type Gradient struct {
	Top    core.Vec3 // Color straight up
	Bottom core.Vec3 // Color straight down
}

// NewGradient creates a vertical gradient background
func NewGradient(top, bottom core.Vec3) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

// NewSkyGradient returns the default white-to-blue sky
func NewSkyGradient() *Gradient {
	return NewGradient(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// Radiance maps the normalized direction's Y from [-1,1] to a blend factor in [0,1]
func (g *Gradient) Radiance(ray core.Ray) core.Vec3 {
	direction := ray.Direction.Normalize()
	t := 0.5 * (direction.Y + 1.0)
	return g.Bottom.Lerp(g.Top, t)
}
