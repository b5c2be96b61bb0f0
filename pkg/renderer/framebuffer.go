package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-scanline-pathtracer/pkg/core"
)

// FrameBuffer holds linear RGB pixel values in one contiguous row-major slice.
// Row j is written only by the task that renders row j.
type FrameBuffer struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFrameBuffer allocates a black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Row returns the pixels of row j (0 is the top row). The slice's capacity
// ends at the row boundary, so appending cannot spill into the next row.
func (fb *FrameBuffer) Row(j int) []core.Vec3 {
	if j < 0 || j >= fb.Height {
		panic("renderer: frame buffer row out of range")
	}
	start := j * fb.Width
	end := start + fb.Width
	return fb.pixels[start:end:end]
}

// At returns the linear color of pixel (i, j)
func (fb *FrameBuffer) At(i, j int) core.Vec3 {
	return fb.Row(j)[i]
}

// ToImage converts the buffer to an 8-bit sRGB-ish image using gamma 2
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i, c := range fb.Row(j) {
			img.SetRGBA(i, j, ToRGBA(c))
		}
	}
	return img
}

// intensity is the range colors are clamped to before quantization
var intensity = core.NewInterval(0.000, 0.999)

// ToRGBA applies gamma 2 and maps each component to [0, 255]
func ToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(linear float64) uint8 {
	// NaN and negative values end up black
	gamma := 0.0
	if linear > 0 {
		gamma = math.Sqrt(linear)
	}
	return uint8(255.999 * intensity.Clamp(gamma))
}
