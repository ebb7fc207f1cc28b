// Package geometry holds the CPU-side mesh data shared by the importer and the renderer.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one interleaved vertex as uploaded to the GPU.
// Layout: position (location 0), normal (location 1), texcoord (location 2).
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// VertexSize is the byte stride of Vertex.
const VertexSize = 8 * 4

// Mesh is an indexed triangle list. Indices are consumed in groups of three.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Stats sums vertex and index counts across meshes.
func Stats(meshes []Mesh) (vertices, indices int) {
	for i := range meshes {
		vertices += len(meshes[i].Vertices)
		indices += len(meshes[i].Indices)
	}
	return vertices, indices
}
