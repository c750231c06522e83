package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fuzzy-pickles/tileview"
)

// WindowEvents adapts GLFW window callbacks to a tileview.App.
//
// Framebuffer resizes are forwarded to App.Resize and trigger a redraw;
// refresh requests redraw; Escape and the close button end the loop.
type WindowEvents struct {
	window *glfw.Window
	app    *tileview.App
	dirty  bool
}

// NewWindowEvents registers the callbacks on window.
func NewWindowEvents(window *glfw.Window, app *tileview.App) *WindowEvents {
	e := &WindowEvents{
		window: window,
		app:    app,
		dirty:  true,
	}

	// Setup callbacks
	window.SetFramebufferSizeCallback(e.framebufferSizeCallback)
	window.SetRefreshCallback(e.refreshCallback)
	window.SetKeyCallback(e.keyCallback)
	window.SetCloseCallback(e.closeCallback)

	return e
}

// Viewport is the tileview.WithViewport hook for the current GL context.
func Viewport(size tileview.Size) {
	gl.Viewport(0, 0, int32(size.Width), int32(size.Height))
}

// Start sends the initial framebuffer size to the app.
func (e *WindowEvents) Start() error {
	w, h := e.window.GetFramebufferSize()
	return e.app.Resize(w, h)
}

// Run blocks on window events until the window should close, redrawing
// only when something asked for it.
func (e *WindowEvents) Run() {
	for !e.window.ShouldClose() {
		if e.dirty {
			e.redraw()
		}
		glfw.WaitEvents()
	}
}

func (e *WindowEvents) redraw() {
	e.dirty = false
	e.app.Redraw()
	e.window.SwapBuffers()
}

func (e *WindowEvents) framebufferSizeCallback(w *glfw.Window, width, height int) {
	// Errors are logged by the app; the previous layout stays in use.
	_ = e.app.Resize(width, height)
	e.dirty = true
}

func (e *WindowEvents) refreshCallback(w *glfw.Window) {
	e.redraw()
}

func (e *WindowEvents) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func (e *WindowEvents) closeCallback(w *glfw.Window) {
	tileview.Logger().Debug("window close requested")
}
