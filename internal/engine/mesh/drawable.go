// Package mesh owns the GPU buffers of imported meshes.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshview/internal/geometry"
)

// Drawable is one mesh resident in a VAO with its vertex and index buffers.
// Data is uploaded once and never modified.
type Drawable struct {
	Name       string
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewDrawable uploads m. Requires a current GL context.
func NewDrawable(m geometry.Mesh) *Drawable {
	d := &Drawable{Name: m.Name, indexCount: int32(len(m.Indices))}
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return d
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*geometry.VertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, geometry.VertexSize, 0)
	gl.EnableVertexAttribArray(0)
	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, geometry.VertexSize, 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, geometry.VertexSize, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &d.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return d
}

// Draw issues one indexed draw call.
func (d *Drawable) Draw() {
	if d.vao == 0 {
		return
	}
	gl.BindVertexArray(d.vao)
	gl.DrawElements(gl.TRIANGLES, d.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers. Safe to call twice.
func (d *Drawable) Delete() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
		d.ebo = 0
	}
}
