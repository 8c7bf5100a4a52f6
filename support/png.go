// Package support provides the RGB8 image type and PNG load/save
// collaborator that spec.md treats as external to the codec core:
// load_rgb8(path) -> image, save_rgb8(path, image).
//
// Grounded on original_source/Support/PNGLoader.cpp's API shape, but
// implemented against the standard library's image/png rather than a
// hand-rolled decoder, the same way the teacher's own CLI
// (cmd/gwebp/main.go) reaches for stdlib image/png/image/jpeg for any
// format it doesn't implement natively.
package support

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// RGB8Image is an 8-bit RGB raster: Width x Height pixels, Pix holding
// 3*Width*Height bytes in row-major, R-G-B interleaved order. Immutable
// once loaded by convention (callers should treat it as a value type).
type RGB8Image struct {
	Width, Height int
	Pix           []byte
}

// NewRGB8Image allocates a zeroed RGB8Image of the given dimensions.
func NewRGB8Image(width, height int) RGB8Image {
	return RGB8Image{Width: width, Height: height, Pix: make([]byte, 3*width*height)}
}

// At returns the R, G, B bytes of the pixel at (x, y).
func (img RGB8Image) At(x, y int) (r, g, b byte) {
	off := (y*img.Width + x) * 3
	return img.Pix[off], img.Pix[off+1], img.Pix[off+2]
}

// Set writes the R, G, B bytes of the pixel at (x, y).
func (img RGB8Image) Set(x, y int, r, g, b byte) {
	off := (y*img.Width + x) * 3
	img.Pix[off], img.Pix[off+1], img.Pix[off+2] = r, g, b
}

// LoadPNG reads an RGB8Image from a PNG file, stripping alpha and
// narrowing 16-bit channels to 8-bit as spec.md §6 requires of the image
// I/O collaborator.
func LoadPNG(path string) (RGB8Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return RGB8Image{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return RGB8Image{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	b := src.Bounds()
	out := NewRGB8Image(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			// color.Color.RGBA returns 16-bit-per-channel premultiplied
			// values in [0, 0xffff]; narrow to 8-bit.
			out.Set(x-b.Min.X, y-b.Min.Y, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}
	return out, nil
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img RGB8Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y)
			dst.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	if err := png.Encode(f, dst); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
