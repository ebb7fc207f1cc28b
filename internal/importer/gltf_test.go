package importer

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
)

// triangleGLTF builds a document with two meshes sharing one position
// accessor. Node "parent" (mesh "second") has child node "child" (mesh
// "first"), so the walk emits "second" before "first".
func triangleGLTF(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	for _, f := range []float32{0, 0, 0, 1, 0, 0, 0, 1, 0} {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			t.Fatalf("write buffer: %v", err)
		}
	}
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	return fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": [
    {"name": "parent", "mesh": 1, "children": [1]},
    {"name": "child", "mesh": 0}
  ],
  "meshes": [
    {"name": "first", "primitives": [{"attributes": {"POSITION": 0}}]},
    {"name": "second", "primitives": [{"attributes": {"POSITION": 0}}]}
  ],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]}
  ],
  "bufferViews": [{"buffer": 0, "byteLength": %d}],
  "buffers": [{"byteLength": %d, "uri": %q}]
}`, buf.Len(), buf.Len(), uri)
}

func TestLoadGLTFNodeOrder(t *testing.T) {
	meshes, err := Load(strings.NewReader(triangleGLTF(t)), "scene.gltf", FormatGLTF)
	if err != nil {
		t.Fatalf("failed to load glTF: %v", err)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if meshes[0].Name != "second" || meshes[1].Name != "first" {
		t.Errorf("mesh order = %q, %q; want second, first", meshes[0].Name, meshes[1].Name)
	}
	for _, m := range meshes {
		if m.TriangleCount() != 1 {
			t.Errorf("mesh %q: expected 1 triangle, got %d", m.Name, m.TriangleCount())
		}
		// No NORMAL attribute: generated normals face +Z.
		for _, v := range m.Vertices {
			if v.Normal.Z() < 0.999 {
				t.Errorf("mesh %q: normal = %v, want (0, 0, 1)", m.Name, v.Normal)
			}
		}
	}
}

func TestImportGLTFFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.gltf")
	if err := os.WriteFile(path, []byte(triangleGLTF(t)), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	meshes, err := Import(path)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if len(meshes) != 2 {
		t.Errorf("expected 2 meshes, got %d", len(meshes))
	}
}

func TestLoadGLTFWithoutNodes(t *testing.T) {
	src := `{"asset": {"version": "2.0"}}`
	_, err := Load(strings.NewReader(src), "empty.gltf", FormatGLTF)
	if err == nil {
		t.Fatal("expected error for document without nodes")
	}
}

// quadGLTF builds a single-mesh document with four corners of a unit quad
// and a uint16 index accessor 0,1,2,3. primitive is the JSON body of the
// mesh's only primitive.
func quadGLTF(t *testing.T, primitive string) string {
	t.Helper()
	var buf bytes.Buffer
	for _, f := range []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0} {
		if err := binary.Write(&buf, binary.LittleEndian, f); err != nil {
			t.Fatalf("write buffer: %v", err)
		}
	}
	for _, i := range []uint16{0, 1, 2, 3} {
		if err := binary.Write(&buf, binary.LittleEndian, i); err != nil {
			t.Fatalf("write buffer: %v", err)
		}
	}
	uri := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	return fmt.Sprintf(`{
  "asset": {"version": "2.0"},
  "nodes": [{"name": "quad", "mesh": 0}],
  "meshes": [{"name": "quad", "primitives": [%s]}],
  "accessors": [
    {"bufferView": 0, "componentType": 5126, "count": 4, "type": "VEC3", "min": [0, 0, 0], "max": [1, 1, 0]},
    {"bufferView": 1, "componentType": 5123, "count": 4, "type": "SCALAR"}
  ],
  "bufferViews": [
    {"buffer": 0, "byteLength": 48},
    {"buffer": 0, "byteOffset": 48, "byteLength": 8}
  ],
  "buffers": [{"byteLength": %d, "uri": %q}]
}`, primitive, buf.Len(), uri)
}

func TestLoadGLTFAccessorOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		primitive string
	}{
		{"position", `{"attributes": {"POSITION": 7}}`},
		{"normal", `{"attributes": {"POSITION": 0, "NORMAL": 5}}`},
		{"texcoord", `{"attributes": {"POSITION": 0, "TEXCOORD_0": 5}}`},
		{"indices", `{"attributes": {"POSITION": 0}, "indices": 9}`},
		{"negative indices", `{"attributes": {"POSITION": 0}, "indices": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(quadGLTF(t, tt.primitive)), "bad.gltf", FormatGLTF)
			if err == nil {
				t.Fatal("expected error for out-of-range accessor")
			}
			var importErr *ImportError
			if !errors.As(err, &importErr) {
				t.Fatalf("error type = %T, want *ImportError", err)
			}
			if !strings.Contains(err.Error(), "out of range") {
				t.Errorf("error = %q, want accessor range message", err)
			}
		})
	}
}

func TestLoadGLTFStripAndFan(t *testing.T) {
	tests := []struct {
		name      string
		primitive string
	}{
		{"indexed list", `{"attributes": {"POSITION": 0}, "indices": 1, "mode": 4}`},
		{"strip", `{"attributes": {"POSITION": 0}, "indices": 1, "mode": 5}`},
		{"fan", `{"attributes": {"POSITION": 0}, "indices": 1, "mode": 6}`},
		{"unindexed strip", `{"attributes": {"POSITION": 0}, "mode": 5}`},
	}

	want := map[string]int{"indexed list": 1, "strip": 2, "fan": 2, "unindexed strip": 2}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meshes, err := Load(strings.NewReader(quadGLTF(t, tt.primitive)), "quad.gltf", FormatGLTF)
			if err != nil {
				t.Fatalf("failed to load glTF: %v", err)
			}
			if len(meshes) != 1 {
				t.Fatalf("expected 1 mesh, got %d", len(meshes))
			}
			if got := meshes[0].TriangleCount(); got != want[tt.name] {
				t.Errorf("TriangleCount() = %d, want %d", got, want[tt.name])
			}
		})
	}
}

func TestLoadGLTFSkipsLines(t *testing.T) {
	src := quadGLTF(t, `{"attributes": {"POSITION": 0}, "mode": 1}`)
	_, err := Load(strings.NewReader(src), "lines.gltf", FormatGLTF)
	if !errors.Is(err, ErrIncompleteScene) {
		t.Fatalf("error = %v, want %v", err, ErrIncompleteScene)
	}
}

func TestTriangleFaces(t *testing.T) {
	indices := []uint32{0, 1, 2, 3, 4}
	tests := []struct {
		name string
		mode gltf.PrimitiveMode
		want [][]uint32
	}{
		{"list", gltf.PrimitiveTriangles, [][]uint32{{0, 1, 2}}},
		{"strip", gltf.PrimitiveTriangleStrip, [][]uint32{{0, 1, 2}, {2, 1, 3}, {2, 3, 4}}},
		{"fan", gltf.PrimitiveTriangleFan, [][]uint32{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := triangleFaces(tt.mode, indices)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("triangleFaces() = %v, want %v", got, tt.want)
			}
		})
	}

	strip := triangleFaces(gltf.PrimitiveTriangleStrip, []uint32{0, 1, 2, 2, 3, 4})
	for _, f := range strip {
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			t.Errorf("degenerate strip triangle %v not dropped", f)
		}
	}
}
