package importer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// parseGLTF converts a glTF document into a Scene. Every triangle primitive
// becomes one RawMesh; the node hierarchy is kept as-is under a synthetic
// root so documents with several top-level nodes still have one entry point.
func parseGLTF(doc *gltf.Document) (*Scene, error) {
	scene := &Scene{}

	// primMeshes[i] lists the RawMesh indices produced by doc.Meshes[i].
	primMeshes := make([][]int, len(doc.Meshes))
	for mi, m := range doc.Meshes {
		for pi, prim := range m.Primitives {
			raw, err := readPrimitive(doc, prim)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
			if raw == nil {
				continue
			}
			raw.Name = m.Name
			primMeshes[mi] = append(primMeshes[mi], len(scene.Meshes))
			scene.Meshes = append(scene.Meshes, raw)
		}
	}

	roots := gltfRootNodes(doc)
	if len(roots) == 0 {
		return scene, nil
	}

	scene.Root = &Node{Name: "root"}
	var build func(idx int, depth int) (*Node, error)
	build = func(idx int, depth int) (*Node, error) {
		if idx < 0 || idx >= len(doc.Nodes) {
			return nil, fmt.Errorf("node index %d out of range", idx)
		}
		if depth > len(doc.Nodes) {
			return nil, fmt.Errorf("node %d: hierarchy is cyclic", idx)
		}
		src := doc.Nodes[idx]
		n := &Node{Name: src.Name}
		if src.Mesh != nil {
			mi := int(*src.Mesh)
			if mi < 0 || mi >= len(doc.Meshes) {
				return nil, fmt.Errorf("node %d: mesh index %d out of range", idx, mi)
			}
			n.Meshes = primMeshes[mi]
		}
		for _, child := range src.Children {
			c, err := build(int(child), depth+1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, c)
		}
		return n, nil
	}

	for _, idx := range roots {
		n, err := build(idx, 0)
		if err != nil {
			return nil, err
		}
		scene.Root.Children = append(scene.Root.Children, n)
	}
	return scene, nil
}

// gltfRootNodes returns the default scene's nodes, or every node without a
// parent when the document declares no scenes.
func gltfRootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		sceneIdx := 0
		if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
			sceneIdx = int(*doc.Scene)
		}
		roots := make([]int, 0, len(doc.Scenes[sceneIdx].Nodes))
		for _, n := range doc.Scenes[sceneIdx].Nodes {
			roots = append(roots, int(n))
		}
		return roots
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if int(c) < len(isChild) {
				isChild[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// readPrimitive returns nil for primitives that are not triangles, strips or
// fans, or that have no positions.
func readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*RawMesh, error) {
	switch prim.Mode {
	case gltf.PrimitiveTriangles, gltf.PrimitiveTriangleStrip, gltf.PrimitiveTriangleFan:
	default:
		return nil, nil
	}
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, nil
	}

	acc, err := accessor(doc, posIdx)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}
	positions, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}
	raw := &RawMesh{Positions: make([]mgl32.Vec3, len(positions))}
	for i, p := range positions {
		raw.Positions[i] = mgl32.Vec3(p)
	}

	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		acc, err := accessor(doc, idx)
		if err != nil {
			return nil, fmt.Errorf("read normals: %w", err)
		}
		normals, err := modeler.ReadNormal(doc, acc, nil)
		if err != nil {
			return nil, fmt.Errorf("read normals: %w", err)
		}
		raw.Normals = make([]mgl32.Vec3, len(normals))
		for i, n := range normals {
			raw.Normals[i] = mgl32.Vec3(n)
		}
	}

	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		acc, err := accessor(doc, idx)
		if err != nil {
			return nil, fmt.Errorf("read texcoords: %w", err)
		}
		uvs, err := modeler.ReadTextureCoord(doc, acc, nil)
		if err != nil {
			return nil, fmt.Errorf("read texcoords: %w", err)
		}
		raw.TexCoords = make([]mgl32.Vec2, len(uvs))
		for i, uv := range uvs {
			raw.TexCoords[i] = mgl32.Vec2(uv)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		acc, err := accessor(doc, *prim.Indices)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
		indices, err = modeler.ReadIndices(doc, acc, nil)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	raw.Faces = triangleFaces(prim.Mode, indices)
	return raw, nil
}

func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	return doc.Accessors[idx], nil
}

// triangleFaces expands an index list in the given mode into triangles.
// Odd strip triangles swap their first two corners to keep the winding.
// Degenerate strip triangles used as restarts are dropped.
func triangleFaces(mode gltf.PrimitiveMode, indices []uint32) [][]uint32 {
	var faces [][]uint32
	switch mode {
	case gltf.PrimitiveTriangleStrip:
		for i := 0; i+2 < len(indices); i++ {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if a == b || b == c || a == c {
				continue
			}
			if i%2 == 1 {
				a, b = b, a
			}
			faces = append(faces, []uint32{a, b, c})
		}
	case gltf.PrimitiveTriangleFan:
		for i := 1; i+1 < len(indices); i++ {
			faces = append(faces, []uint32{indices[0], indices[i], indices[i+1]})
		}
	default:
		for i := 0; i+2 < len(indices); i += 3 {
			faces = append(faces, []uint32{indices[i], indices[i+1], indices[i+2]})
		}
	}
	return faces
}
