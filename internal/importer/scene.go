package importer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshview/internal/geometry"
)

// Scene is the parsed form of a model file before post-processing.
type Scene struct {
	Root   *Node
	Meshes []*RawMesh
}

// Node is one entry of the scene hierarchy. Meshes index into Scene.Meshes.
type Node struct {
	Name     string
	Meshes   []int
	Children []*Node
}

// RawMesh holds per-vertex attributes as read from the file.
// Normals and TexCoords are either empty or the same length as Positions.
// Faces are polygons of any corner count.
type RawMesh struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Faces     [][]uint32
}

// HasNormals reports whether every vertex carries a source normal.
func (m *RawMesh) HasNormals() bool {
	return len(m.Normals) > 0 && len(m.Normals) == len(m.Positions)
}

// HasTexCoords reports whether the mesh has a texture coordinate channel.
func (m *RawMesh) HasTexCoords() bool {
	return len(m.TexCoords) > 0 && len(m.TexCoords) == len(m.Positions)
}

// Flatten walks the scene depth-first, a node's own meshes before its
// children, and post-processes every referenced mesh.
func Flatten(scene *Scene) ([]geometry.Mesh, error) {
	if scene == nil || scene.Root == nil {
		return nil, ErrNoRootNode
	}
	if len(scene.Meshes) == 0 {
		return nil, ErrIncompleteScene
	}

	var out []geometry.Mesh
	var walk func(n *Node) error
	walk = func(n *Node) error {
		for _, idx := range n.Meshes {
			if idx < 0 || idx >= len(scene.Meshes) {
				return fmt.Errorf("node %q: mesh index %d out of range: %w", n.Name, idx, ErrIncompleteScene)
			}
			mesh, err := postProcess(scene.Meshes[idx])
			if err != nil {
				return fmt.Errorf("mesh %q: %w", scene.Meshes[idx].Name, err)
			}
			out = append(out, mesh)
		}
		for _, child := range n.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(scene.Root); err != nil {
		return nil, err
	}
	return out, nil
}
