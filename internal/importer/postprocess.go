package importer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshview/internal/geometry"
)

// postProcess turns a RawMesh into an indexed triangle mesh.
func postProcess(raw *RawMesh) (geometry.Mesh, error) {
	tris, err := triangulate(raw.Faces, len(raw.Positions))
	if err != nil {
		return geometry.Mesh{}, err
	}

	normals := raw.Normals
	if !raw.HasNormals() {
		normals = smoothNormals(raw.Positions, tris)
	}
	hasUV := raw.HasTexCoords()

	verts := make([]geometry.Vertex, len(raw.Positions))
	for i, p := range raw.Positions {
		v := geometry.Vertex{Position: p, Normal: normals[i]}
		if hasUV {
			uv := raw.TexCoords[i]
			v.TexCoord = mgl32.Vec2{uv[0], 1 - uv[1]}
		}
		verts[i] = v
	}

	mesh := joinIdenticalVertices(verts, tris)
	mesh.Name = raw.Name
	return mesh, nil
}

// triangulate fans every polygon from its first corner. Faces with fewer
// than three corners (points, lines) are dropped.
func triangulate(faces [][]uint32, vertexCount int) ([]uint32, error) {
	tris := make([]uint32, 0, len(faces)*3)
	for fi, face := range faces {
		for _, idx := range face {
			if int(idx) >= vertexCount {
				return nil, fmt.Errorf("face %d: vertex index %d out of range (%d vertices)", fi, idx, vertexCount)
			}
		}
		for i := 1; i+1 < len(face); i++ {
			tris = append(tris, face[0], face[i], face[i+1])
		}
	}
	return tris, nil
}

// smoothNormals averages area-weighted face normals. Vertices sharing a
// position share a normal, so split seams still shade smoothly.
func smoothNormals(positions []mgl32.Vec3, tris []uint32) []mgl32.Vec3 {
	acc := make(map[mgl32.Vec3]mgl32.Vec3, len(positions))
	for i := 0; i+2 < len(tris); i += 3 {
		p0 := positions[tris[i]]
		p1 := positions[tris[i+1]]
		p2 := positions[tris[i+2]]
		// Unnormalized cross product weights by triangle area.
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		for _, p := range [3]mgl32.Vec3{p0, p1, p2} {
			acc[p] = acc[p].Add(n)
		}
	}

	normals := make([]mgl32.Vec3, len(positions))
	for i, p := range positions {
		n := acc[p]
		if l := n.Len(); l > 0 {
			normals[i] = n.Mul(1 / l)
		}
	}
	return normals
}

// joinIdenticalVertices merges vertices that are exactly equal and drops
// unreferenced ones. Output order follows first use in the index list.
func joinIdenticalVertices(verts []geometry.Vertex, tris []uint32) geometry.Mesh {
	seen := make(map[geometry.Vertex]uint32, len(verts))
	out := geometry.Mesh{
		Vertices: make([]geometry.Vertex, 0, len(verts)),
		Indices:  make([]uint32, len(tris)),
	}
	for i, idx := range tris {
		v := verts[idx]
		remapped, ok := seen[v]
		if !ok {
			remapped = uint32(len(out.Vertices))
			out.Vertices = append(out.Vertices, v)
			seen[v] = remapped
		}
		out.Indices[i] = remapped
	}
	return out
}
