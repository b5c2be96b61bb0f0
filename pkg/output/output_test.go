package output

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(2, 0, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(0, 1, color.RGBA{10, 20, 30, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	img.SetRGBA(2, 1, color.RGBA{0, 0, 0, 255})
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"image.ppm", PPM, false},
		{"out/render.PNG", PNG, false},
		{"a.jpg", JPEG, false},
		{"a.jpeg", JPEG, false},
		{"a.bmp", BMP, false},
		{"a.tif", TIFF, false},
		{"a.tiff", TIFF, false},
		{"a.gif", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil || format != tt.expected {
				t.Errorf("Expected %q, got %q (err %v)", tt.expected, format, err)
			}
		})
	}
}

func TestWritePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{255, 128, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{1, 2, 3, 255})

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 1\n255\n255 128 0\n1 2 3\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestEncodeLosslessFormats(t *testing.T) {
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		PNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		BMP:  func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
		TIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
	}

	src := testImage()
	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			decoded, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.Bounds().Size() != src.Bounds().Size() {
				t.Fatalf("Expected size %v, got %v", src.Bounds().Size(), decoded.Bounds().Size())
			}

			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					want := src.RGBAAt(x, y)
					got := color.RGBAModel.Convert(decoded.At(x, y)).(color.RGBA)
					if got != want {
						t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
					}
				}
			}
		})
	}
}

func TestEncodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), JPEG); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 3 || decoded.Bounds().Dy() != 2 {
		t.Errorf("Unexpected bounds %v", decoded.Bounds())
	}
}

func TestEncodeUnsupported(t *testing.T) {
	err := Encode(&bytes.Buffer{}, testImage(), Format("gif"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSaveImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "render.ppm")
	if err := SaveImage(path, testImage()); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("P3\n3 2\n255\n255 0 0\n")) {
		t.Errorf("Unexpected PPM content %q", data)
	}

	if err := SaveImage(filepath.Join(t.TempDir(), "render.gif"), testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDownscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	red := color.RGBA{200, 0, 0, 255}
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, red)
		}
	}

	dst := Downscale(src, 0.5)
	if dst.Bounds().Dx() != 4 || dst.Bounds().Dy() != 3 {
		t.Fatalf("Expected 4x3, got %v", dst.Bounds())
	}

	// A flat image stays flat
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			got := dst.RGBAAt(x, y)
			if absDiff(got.R, red.R) > 1 || got.G > 1 || got.B > 1 {
				t.Errorf("Pixel (%d,%d): expected about %v, got %v", x, y, red, got)
			}
		}
	}

	if tiny := Downscale(src, 0.01); tiny.Bounds().Dx() != 1 || tiny.Bounds().Dy() != 1 {
		t.Errorf("Expected 1x1 minimum, got %v", tiny.Bounds())
	}
}

func TestDrawCaption(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 80, 40))

	DrawCaption(img, "")
	for _, v := range img.Pix {
		if v != 0 {
			t.Fatal("Empty caption should not modify the image")
		}
	}

	DrawCaption(img, "hello")

	// Band covers the bottom rows only
	if img.RGBAAt(40, 0) != (color.RGBA{}) {
		t.Errorf("Top row should be untouched, got %v", img.RGBAAt(40, 0))
	}
	bright := 0
	for y := 20; y < 40; y++ {
		for x := 0; x < 80; x++ {
			if img.RGBAAt(x, y).R > 200 {
				bright++
			}
		}
	}
	if bright == 0 {
		t.Error("Expected caption glyph pixels in the bottom band")
	}
}

func TestCaptionWidth(t *testing.T) {
	if got := CaptionWidth("abc"); got != 21 {
		t.Errorf("Expected 21 pixels for 3 glyphs, got %d", got)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
