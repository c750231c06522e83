// Package tileview draws a tileset image letterboxed above a fixed-height
// info bar, with a colored rectangle overlay on top.
//
// The root package holds everything that does not touch the GPU: the layout
// calculator, render-area mapping, overlay geometry, image loading, config
// and the application controller. The OpenGL renderers live in
// backend/opengl.
package tileview

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Mul returns the vector scaled component-wise.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{X: v.X * other.X, Y: v.Y * other.Y}
}

// Size is a pixel extent of a window or an image.
type Size struct {
	Width, Height float32
}

// SizeOf converts integer pixel dimensions, as reported by the window system
// or an image decoder, into a Size.
func SizeOf(width, height int) Size {
	return Size{Width: float32(width), Height: float32(height)}
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Aspect returns width divided by height.
func (s Size) Aspect() float32 {
	return s.Width / s.Height
}

// Color is a straight-alpha RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBAf creates a color from float components, clamping each to [0, 1].
func RGBAf(r, g, b, a float32) Color {
	return Color{
		R: clampf(r, 0, 1),
		G: clampf(g, 0, 1),
		B: clampf(b, 0, 1),
		A: clampf(a, 0, 1),
	}
}

// Array returns the components in shader attribute order.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
