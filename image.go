package tileview

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("tileview: image has no pixels")

// LoadImage reads and decodes the image file at path into tightly packed
// RGBA pixels ready for texture upload.
func LoadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes any registered format and converts it to RGBA with
// the origin at (0, 0) and no row padding.
func DecodeImage(r io.Reader) (*image.RGBA, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	logger.Debug("image converted to RGBA", "format", format, "width", b.Dx(), "height", b.Dy())
	return dst, nil
}

// ImageSize returns the pixel extent of img.
func ImageSize(img image.Image) Size {
	b := img.Bounds()
	return SizeOf(b.Dx(), b.Dy())
}
