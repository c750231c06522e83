package tileview

import (
	"errors"
	"log/slog"
)

// Renderer draws one layer of the scene and reacts to window size changes.
type Renderer interface {
	Resize(window Size) error
	Render()
	Delete()
}

// App holds the window extent and forwards resize and redraw events to its
// renderers. All methods must be called from the thread owning the GPU
// context.
type App struct {
	renderers []Renderer
	window    Size
	bar       float32
	viewport  func(Size)
	logger    *slog.Logger
	closed    bool
}

// AppOption configures an App instance.
type AppOption func(*App)

// WithViewport sets the hook run on every accepted resize, before the
// renderers see the new size. The GL backend points it at gl.Viewport.
func WithViewport(fn func(Size)) AppOption {
	return func(a *App) { a.viewport = fn }
}

// WithInfoBarHeight overrides DefaultInfoBarHeight for size validation.
func WithInfoBarHeight(h float32) AppOption {
	return func(a *App) { a.bar = h }
}

// WithLogger sets the logger used for resize diagnostics.
func WithLogger(l *slog.Logger) AppOption {
	return func(a *App) { a.logger = l }
}

// NewApp creates an App drawing renderers in order, first one at the back.
func NewApp(renderers []Renderer, opts ...AppOption) *App {
	a := &App{
		renderers: renderers,
		window:    Size{Width: 1, Height: 1},
		bar:       DefaultInfoBarHeight,
		logger:    logger,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Window returns the last accepted window extent.
func (a *App) Window() Size {
	return a.window
}

// Resize records the new framebuffer size and relays it to every renderer.
// A size that leaves no room above the info bar is rejected and the
// previous layout stays in effect.
func (a *App) Resize(width, height int) error {
	size := SizeOf(width, height)
	if _, err := InfoBarFraction(size, a.bar); err != nil {
		a.logger.Warn("resize rejected", "width", width, "height", height, "err", err)
		return err
	}

	a.window = size
	if a.viewport != nil {
		a.viewport(size)
	}

	var errs []error
	for _, r := range a.renderers {
		if err := r.Resize(size); err != nil {
			errs = append(errs, err)
		}
	}
	a.logger.Debug("window resized", "width", width, "height", height)
	return errors.Join(errs...)
}

// Redraw renders every layer back to front.
func (a *App) Redraw() {
	if a.closed {
		return
	}
	for _, r := range a.renderers {
		r.Render()
	}
}

// Close releases renderer resources in reverse creation order. Calling it
// again is a no-op.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	for i := len(a.renderers) - 1; i >= 0; i-- {
		a.renderers[i].Delete()
	}
}
