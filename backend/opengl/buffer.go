package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/fuzzy-pickles/tileview"
)

const floatSize = 4

// VertexArray is a VAO with a single interleaved float32 VBO.
type VertexArray struct {
	vao, vbo uint32
	count    int32
	stride   int
}

// NewVertexArray uploads data and describes it as consecutive float
// attributes of the given component counts, at locations 0, 1, ...
func NewVertexArray(data []float32, usage uint32, attribSizes ...int) *VertexArray {
	stride := 0
	for _, n := range attribSizes {
		stride += n
	}

	va := &VertexArray{stride: stride}

	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), usage)

	offset := 0
	for i, n := range attribSizes {
		gl.VertexAttribPointerWithOffset(uint32(i), int32(n), gl.FLOAT, false,
			int32(stride*floatSize), uintptr(offset*floatSize))
		gl.EnableVertexAttribArray(uint32(i))
		offset += n
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	va.count = int32(len(data) / stride)
	return va
}

// Update replaces the buffer contents. data must have the same length as
// the original upload.
func (va *VertexArray) Update(data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*floatSize, gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw issues one draw call over every vertex.
func (va *VertexArray) Draw(p tileview.Primitive) {
	gl.BindVertexArray(va.vao)
	gl.DrawArrays(glPrimitive(p), 0, va.count)
	gl.BindVertexArray(0)
}

// Delete releases the VBO and VAO.
func (va *VertexArray) Delete() {
	if va.vbo != 0 {
		gl.DeleteBuffers(1, &va.vbo)
		va.vbo = 0
	}
	if va.vao != 0 {
		gl.DeleteVertexArrays(1, &va.vao)
		va.vao = 0
	}
}

func glPrimitive(p tileview.Primitive) uint32 {
	switch p {
	case tileview.LineLoop:
		return gl.LINE_LOOP
	default:
		return gl.TRIANGLES
	}
}
