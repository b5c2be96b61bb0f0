package material

import (
	"github.com/df07/go-scanline-pathtracer/pkg/core"
)

// missingTexture is returned when an image texture has no pixel data,
// so a failed load shows up as an obvious cyan surface.
var missingTexture = core.NewVec3(0, 1, 1)

// ImageTexture maps a linear RGB raster onto surface UV coordinates
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Empty reports whether the texture has no usable pixels
func (t *ImageTexture) Empty() bool {
	return t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height
}

// Evaluate looks up the nearest pixel. UV is clamped to [0,1]; v=0 is the
// bottom row of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Empty() {
		return missingTexture
	}

	unit := core.NewInterval(0, 1)
	u := unit.Clamp(uv.X)
	v := 1.0 - unit.Clamp(uv.Y)

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
