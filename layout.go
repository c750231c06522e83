package tileview

import (
	"errors"
	"fmt"
)

// DefaultInfoBarHeight is the pixel height of the strip reserved at the
// bottom of the window.
const DefaultInfoBarHeight = 32

// Layout errors.
var (
	// ErrInvalidSize is returned when a window or image dimension is not positive.
	ErrInvalidSize = errors.New("tileview: size must be positive")

	// ErrWindowTooShort is returned when the window is not taller than the info bar.
	ErrWindowTooShort = errors.New("tileview: window height must exceed info bar height")

	// ErrImageTooShort is returned when the image is not taller than the info bar.
	ErrImageTooShort = errors.New("tileview: image height must exceed info bar height")
)

// Layout holds the two values the vertex shaders are driven by.
type Layout struct {
	// AspectRatio is image aspect divided by window aspect. Values above 1
	// mean the image is relatively wider than the window.
	AspectRatio float32

	// InfoBarFraction is the info bar height in NDC units (the NDC span is 2).
	InfoBarFraction float32
}

// Transform is the per-axis scale and vertical offset applied to a quad
// spanning [-1, 1] on both axes.
type Transform struct {
	HScale, VScale float32
	YOffset        float32
}

// InfoBarFraction converts a pixel bar height into NDC units for the given
// window.
func InfoBarFraction(window Size, bar float32) (float32, error) {
	if !window.Valid() {
		return 0, fmt.Errorf("window %gx%g: %w", window.Width, window.Height, ErrInvalidSize)
	}
	if window.Height <= bar {
		return 0, fmt.Errorf("window height %g, bar %g: %w", window.Height, bar, ErrWindowTooShort)
	}
	return 2 * bar / window.Height, nil
}

// NewBarLayout returns a layout for content that only needs to stay clear of
// the info bar. The aspect ratio is fixed at 1.
func NewBarLayout(window Size, bar float32) (Layout, error) {
	f, err := InfoBarFraction(window, bar)
	if err != nil {
		return Layout{}, err
	}
	return Layout{AspectRatio: 1, InfoBarFraction: f}, nil
}

// NewImageLayout returns the layout that keeps an image undistorted inside
// the part of the window above the info bar. The image's own bottom bar
// rows are excluded from its aspect.
func NewImageLayout(window, image Size, bar float32) (Layout, error) {
	f, err := InfoBarFraction(window, bar)
	if err != nil {
		return Layout{}, err
	}
	if !image.Valid() {
		return Layout{}, fmt.Errorf("image %gx%g: %w", image.Width, image.Height, ErrInvalidSize)
	}
	if image.Height <= bar {
		return Layout{}, fmt.Errorf("image height %g, bar %g: %w", image.Height, bar, ErrImageTooShort)
	}

	imageAspect := image.Width / (image.Height - bar)
	return Layout{
		AspectRatio:     imageAspect / window.Aspect(),
		InfoBarFraction: f,
	}, nil
}

// Fit returns the letterbox scales: the overflowing axis shrinks, the other
// stays at 1.
func (l Layout) Fit() (hscale, vscale float32) {
	if l.AspectRatio >= 1 {
		return 1, 1 / l.AspectRatio
	}
	return l.AspectRatio, 1
}

// Transform compresses the fit scales into the region above the info bar and
// shifts the quad up by half the bar.
func (l Layout) Transform() Transform {
	h, v := l.Fit()
	k := (2 - l.InfoBarFraction) / 2
	return Transform{
		HScale:  h * k,
		VScale:  v * k,
		YOffset: l.InfoBarFraction / 2,
	}
}

// ContentTransform stretches the unit quad over the whole area above the
// info bar, ignoring the aspect ratio. Overlays positioned in content-area
// NDC use it.
func (l Layout) ContentTransform() Transform {
	return Transform{
		HScale:  1,
		VScale:  (2 - l.InfoBarFraction) / 2,
		YOffset: l.InfoBarFraction / 2,
	}
}

// Apply maps a point of the unit quad into NDC.
func (t Transform) Apply(p Vec2) Vec2 {
	return p.Mul(Vec2{X: t.HScale, Y: t.VScale}).Add(Vec2{Y: t.YOffset})
}

// Scale returns the scales as a shader vec2.
func (t Transform) Scale() [2]float32 {
	return [2]float32{t.HScale, t.VScale}
}
