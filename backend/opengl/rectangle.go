package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/fuzzy-pickles/tileview"
)

// RectangleRenderer draws a flat-colored rectangle overlay.
//
// By default the rectangle's coordinates are NDC of the content area above
// the info bar. After SetRenderArea the rectangle instead covers a window
// pixel rectangle and is positioned directly in window NDC.
type RectangleRenderer struct {
	program *Program
	rect    tileview.Rectangle
	verts   *VertexArray
	bar     float32

	area    tileview.PixelRect
	useArea bool
}

var _ tileview.Renderer = (*RectangleRenderer)(nil)

// NewRectangleRenderer uploads the rectangle geometry.
func NewRectangleRenderer(rect tileview.Rectangle, bar float32) (*RectangleRenderer, error) {
	program, err := NewProgram(rectangleVertexShader, rectangleFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("rectangle shader: %w", err)
	}

	r := &RectangleRenderer{
		program: program,
		rect:    rect,
		verts:   NewVertexArray(rect.Vertices(), gl.DYNAMIC_DRAW, 2, 4),
		bar:     bar,
	}
	r.apply(tileview.Transform{HScale: 1, VScale: 1})
	return r, nil
}

// SetRenderArea places the rectangle at the given window pixel area from
// the next Resize on.
func (r *RectangleRenderer) SetRenderArea(area tileview.PixelRect) {
	r.area = area
	r.useArea = true
}

// Resize updates the rectangle for the new window size.
func (r *RectangleRenderer) Resize(window tileview.Size) error {
	if r.useArea {
		ndc, err := r.area.ToNDC(window)
		if err != nil {
			return fmt.Errorf("rectangle area: %w", err)
		}
		rect := r.rect
		rect.Coords = ndc
		r.verts.Update(rect.Vertices())
		r.apply(tileview.Transform{HScale: 1, VScale: 1})
		return nil
	}

	layout, err := tileview.NewBarLayout(window, r.bar)
	if err != nil {
		return fmt.Errorf("rectangle layout: %w", err)
	}
	r.apply(layout.ContentTransform())
	return nil
}

func (r *RectangleRenderer) apply(t tileview.Transform) {
	r.program.Use()
	r.program.SetVec2("scale", t.Scale())
	r.program.SetFloat("offset", t.YOffset)
}

// Render draws the rectangle over whatever is already in the frame.
func (r *RectangleRenderer) Render() {
	r.program.Use()
	r.verts.Draw(r.rect.Primitive())
}

// Delete releases the GPU resources.
func (r *RectangleRenderer) Delete() {
	r.verts.Delete()
	r.program.Delete()
}
