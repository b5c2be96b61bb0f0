package output

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Downscale resamples img by factor (0 < factor < 1 shrinks) with a Catmull-Rom
// filter. Each dimension stays at least one pixel.
func Downscale(img image.Image, factor float64) *image.RGBA {
	src := img.Bounds()
	width := max(1, int(float64(src.Dx())*factor))
	height := max(1, int(float64(src.Dy())*factor))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}

const captionPadding = 3

// DrawCaption writes a single line of text over a dark band at the bottom of img
func DrawCaption(img *image.RGBA, text string) {
	if text == "" {
		return
	}

	face := basicfont.Face7x13
	metrics := face.Metrics()
	bandHeight := (metrics.Ascent + metrics.Descent).Ceil() + 2*captionPadding

	bounds := img.Bounds()
	band := image.Rect(bounds.Min.X, max(bounds.Min.Y, bounds.Max.Y-bandHeight), bounds.Max.X, bounds.Max.Y)
	draw.Draw(img, band, image.NewUniform(color.RGBA{0, 0, 0, 160}), image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(bounds.Min.X + captionPadding),
			Y: fixed.I(band.Max.Y-captionPadding) - metrics.Descent,
		},
	}
	drawer.DrawString(text)
}

// CaptionWidth returns the width in pixels text occupies when drawn by DrawCaption
func CaptionWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}
