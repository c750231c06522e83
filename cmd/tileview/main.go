// Command tileview opens a window showing the tileset image above a
// reserved info bar, with a rectangle overlay.
//
// Settings are read from tileview.toml in the working directory if it
// exists. Escape or closing the window quits.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/fuzzy-pickles/tileview"
	"github.com/fuzzy-pickles/tileview/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := tileview.LoadConfig(tileview.ConfigFile)
	if err != nil {
		return err
	}
	tileview.SetVerbose(conf.Verbose)

	img, err := tileview.LoadImage(conf.Asset)
	if err != nil {
		return fmt.Errorf("load tileset: %w", err)
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	if conf.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	tileview.Logger().Debug("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	tileset, err := opengl.NewTilesetRenderer(img, conf.InfoBarHeight)
	if err != nil {
		return err
	}

	overlay, err := opengl.NewRectangleRenderer(conf.Rectangle(), conf.InfoBarHeight)
	if err != nil {
		tileset.Delete()
		return err
	}
	if area, ok := conf.RenderArea(); ok {
		overlay.SetRenderArea(area)
	}

	app := tileview.NewApp(
		[]tileview.Renderer{tileset, overlay},
		tileview.WithViewport(opengl.Viewport),
		tileview.WithInfoBarHeight(conf.InfoBarHeight),
	)
	defer app.Close()

	events := opengl.NewWindowEvents(window, app)
	if err := events.Start(); err != nil {
		return fmt.Errorf("initial layout: %w", err)
	}
	events.Run()

	return nil
}
