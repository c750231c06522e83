package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/fuzzy-pickles/tileview"
)

// TilesetRenderer draws the tileset image letterboxed above the info bar.
// It is the back layer and clears the frame.
type TilesetRenderer struct {
	program *Program
	quad    *VertexArray
	texture *Texture
	bar     float32
}

var _ tileview.Renderer = (*TilesetRenderer)(nil)

// NewTilesetRenderer uploads img and prepares the textured quad.
func NewTilesetRenderer(img *image.RGBA, bar float32) (*TilesetRenderer, error) {
	program, err := NewProgram(tilesetVertexShader, tilesetFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("tileset shader: %w", err)
	}

	r := &TilesetRenderer{
		program: program,
		quad:    NewVertexArray(tileview.TilesetQuad[:], gl.STATIC_DRAW, 2, 2),
		texture: NewTexture(img),
		bar:     bar,
	}

	program.Use()
	program.SetInt("texture0", 0)
	r.apply(tileview.Transform{HScale: 1, VScale: 1})

	tileview.Logger().Debug("tileset renderer ready",
		"width", r.texture.Size().Width, "height", r.texture.Size().Height)
	return r, nil
}

// ImageSize returns the tileset extent in pixels.
func (r *TilesetRenderer) ImageSize() tileview.Size {
	return r.texture.Size()
}

// Resize recomputes the letterbox transform for the new window.
func (r *TilesetRenderer) Resize(window tileview.Size) error {
	layout, err := tileview.NewImageLayout(window, r.texture.Size(), r.bar)
	if err != nil {
		return fmt.Errorf("tileset layout: %w", err)
	}
	r.apply(layout.Transform())
	return nil
}

func (r *TilesetRenderer) apply(t tileview.Transform) {
	r.program.Use()
	r.program.SetVec2("scale", t.Scale())
	r.program.SetFloat("offset", t.YOffset)
}

// Render clears the frame and draws the tileset.
func (r *TilesetRenderer) Render() {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.texture.Bind(0)
	r.program.Use()
	r.quad.Draw(tileview.Triangles)
}

// Delete releases the GPU resources.
func (r *TilesetRenderer) Delete() {
	r.texture.Delete()
	r.quad.Delete()
	r.program.Delete()
}
