package decoder

//go:generate mockgen -source=decoder.go -destination=decoder_mock.go -package=decoder

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"bootsplash/internal/app/errors"
	"bootsplash/internal/config"
)

// Pixel formats
const (
	FormatRGBA8888 = config.PixelFormatRGBA8888
	FormatRGB565   = config.PixelFormatRGB565
)

// Image is a raw pixel buffer ready for upload
type Image struct {
	Width  int
	Height int
	Format string
	Pix    []byte
}

// Stride returns the number of bytes per row
func (img *Image) Stride() int {
	return img.Width * BytesPerPixel(img.Format)
}

// Decoder turns encoded frame bytes into raw pixels
type Decoder interface {
	Decode(data []byte) (*Image, error)
	Format() string
}

// decoder implements the Decoder interface using the registered image codecs
type decoder struct {
	format string
}

// NewDecoder creates a Decoder producing the given pixel format
func NewDecoder(format string) Decoder {
	if format != FormatRGB565 {
		format = FormatRGBA8888
	}

	return &decoder{format: format}
}

// Format returns the output pixel format
func (d *decoder) Format() string {
	return d.format
}

// Decode decodes PNG, BMP or WebP data
func (d *decoder) Decode(data []byte) (*Image, error) {
	src, kind, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrDecodeFailed, err)
	}

	if src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty %s image", errors.ErrDecodeFailed, kind)
	}

	return Convert(src, d.format), nil
}

// Convert copies any image into a raw buffer of the given format
func Convert(src image.Image, format string) *Image {
	b := src.Bounds()

	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) || rgba.Stride != b.Dx()*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}

	img := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: FormatRGBA8888,
		Pix:    rgba.Pix,
	}

	if format == FormatRGB565 {
		img.Format = FormatRGB565
		img.Pix = toRGB565(rgba.Pix)
	}

	return img
}

// toRGB565 packs RGBA8888 pixels into little-endian RGB565
func toRGB565(pix []byte) []byte {
	out := make([]byte, len(pix)/2)

	for i, j := 0, 0; i+3 < len(pix); i, j = i+4, j+2 {
		v := uint16(pix[i]>>3)<<11 | uint16(pix[i+1]>>2)<<5 | uint16(pix[i+2]>>3)
		out[j] = byte(v)
		out[j+1] = byte(v >> 8)
	}

	return out
}

// BytesPerPixel returns the pixel size of a format
func BytesPerPixel(format string) int {
	if format == FormatRGB565 {
		return 2
	}

	return 4
}
