package tileview

import "fmt"

// PixelRect is a rectangle in window pixel coordinates, given by two
// opposite corners.
type PixelRect struct {
	X1, Y1, X2, Y2 float32
}

// NDCRect is a rectangle in normalized device coordinates.
type NDCRect struct {
	X1, Y1, X2, Y2 float32
}

// ToNDC maps each corner coordinate independently with ndc = 2*p/dim - 1.
// No aspect correction is applied; callers that want letterboxing compute
// the pixel rectangle themselves.
func (r PixelRect) ToNDC(window Size) (NDCRect, error) {
	if !window.Valid() {
		return NDCRect{}, fmt.Errorf("render area in %gx%g window: %w", window.Width, window.Height, ErrInvalidSize)
	}
	return NDCRect{
		X1: toNDC(r.X1, window.Width),
		Y1: toNDC(r.Y1, window.Height),
		X2: toNDC(r.X2, window.Width),
		Y2: toNDC(r.Y2, window.Height),
	}, nil
}

// ToPixels is the inverse of PixelRect.ToNDC.
func (r NDCRect) ToPixels(window Size) PixelRect {
	return PixelRect{
		X1: toPixel(r.X1, window.Width),
		Y1: toPixel(r.Y1, window.Height),
		X2: toPixel(r.X2, window.Width),
		Y2: toPixel(r.Y2, window.Height),
	}
}

// Array returns the corners as x1, y1, x2, y2.
func (r NDCRect) Array() [4]float32 {
	return [4]float32{r.X1, r.Y1, r.X2, r.Y2}
}

func toNDC(p, dim float32) float32 {
	return 2*p/dim - 1
}

func toPixel(ndc, dim float32) float32 {
	return (ndc + 1) / 2 * dim
}
