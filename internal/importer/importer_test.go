package importer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"teapot.obj", FormatOBJ},
		{"models/Part.STL", FormatSTL},
		{"scene.gltf", FormatGLTF},
		{"scene.glb", FormatGLTF},
		{"scene.fbx", FormatUnknown},
		{"noext", FormatUnknown},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		want error
	}{
		{"unsupported", filepath.Join(dir, "model.fbx"), ErrUnsupportedFormat},
		{"missing obj", filepath.Join(dir, "missing.obj"), nil},
		{"missing glb", filepath.Join(dir, "missing.glb"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import(tt.path)
			var ie *ImportError
			if !errors.As(err, &ie) {
				t.Fatalf("expected *ImportError, got %T (%v)", err, err)
			}
			if ie.Path != tt.path {
				t.Errorf("ImportError.Path = %q, want %q", ie.Path, tt.path)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func triangleMesh(name string, x float32) *RawMesh {
	return &RawMesh{
		Name:      name,
		Positions: []mgl32.Vec3{{x, 0, 0}, {x + 1, 0, 0}, {x, 1, 0}},
		Faces:     [][]uint32{{0, 1, 2}},
	}
}

func TestFlattenDepthFirst(t *testing.T) {
	// root(a) -> [child(b) -> [grandchild(c)], child(d)]
	scene := &Scene{
		Meshes: []*RawMesh{
			triangleMesh("a", 0),
			triangleMesh("b", 1),
			triangleMesh("c", 2),
			triangleMesh("d", 3),
		},
		Root: &Node{
			Name:   "root",
			Meshes: []int{0},
			Children: []*Node{
				{Name: "child1", Meshes: []int{1}, Children: []*Node{{Name: "grandchild", Meshes: []int{2}}}},
				{Name: "child2", Meshes: []int{3}},
			},
		},
	}

	meshes, err := Flatten(scene)
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}
	want := []string{"a", "b", "c", "d"}
	if len(meshes) != len(want) {
		t.Fatalf("expected %d meshes, got %d", len(want), len(meshes))
	}
	for i, name := range want {
		if meshes[i].Name != name {
			t.Errorf("mesh %d = %q, want %q", i, meshes[i].Name, name)
		}
	}
}

func TestFlattenSharedMeshEmittedPerReference(t *testing.T) {
	scene := &Scene{
		Meshes: []*RawMesh{triangleMesh("shared", 0)},
		Root: &Node{Children: []*Node{
			{Meshes: []int{0}},
			{Meshes: []int{0}},
		}},
	}
	meshes, err := Flatten(scene)
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}
	if len(meshes) != 2 {
		t.Errorf("expected 2 meshes, got %d", len(meshes))
	}
}

func TestFlattenErrors(t *testing.T) {
	tests := []struct {
		name  string
		scene *Scene
		want  error
	}{
		{"nil scene", nil, ErrNoRootNode},
		{"no root", &Scene{Meshes: []*RawMesh{triangleMesh("a", 0)}}, ErrNoRootNode},
		{"no meshes", &Scene{Root: &Node{}}, ErrIncompleteScene},
		{"dangling mesh ref", &Scene{Root: &Node{Meshes: []int{3}}, Meshes: []*RawMesh{triangleMesh("a", 0)}}, ErrIncompleteScene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Flatten(tt.scene)
			if !errors.Is(err, tt.want) {
				t.Errorf("Flatten() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTriangulateDropsPointsAndLines(t *testing.T) {
	tris, err := triangulate([][]uint32{{0}, {0, 1}, {0, 1, 2, 3, 4}}, 5)
	if err != nil {
		t.Fatalf("triangulate() error: %v", err)
	}
	want := []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if len(tris) != len(want) {
		t.Fatalf("triangulate() = %v, want %v", tris, want)
	}
	for i := range want {
		if tris[i] != want[i] {
			t.Fatalf("triangulate() = %v, want %v", tris, want)
		}
	}
}
