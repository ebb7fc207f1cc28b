package importer

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	stlHeaderSize = 80
	stlFacetSize  = 50
)

// parseSTL reads ASCII or binary STL. Every facet gets three vertices of
// its own carrying the facet normal; joining merges them later.
func parseSTL(r io.Reader, name string) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stl: %w", err)
	}

	var mesh *RawMesh
	if isBinarySTL(data) {
		mesh, err = parseBinarySTL(data, name)
	} else {
		mesh, err = parseASCIISTL(data, name)
	}
	if err != nil {
		return nil, err
	}

	scene := &Scene{Root: &Node{Name: name}}
	if len(mesh.Faces) > 0 {
		scene.Root.Meshes = []int{0}
		scene.Meshes = []*RawMesh{mesh}
	}
	return scene, nil
}

// isBinarySTL treats data as binary unless it starts with "solid" and its
// length does not match the binary facet count.
func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize+4 {
		return false
	}
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return true
	}
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	return uint64(len(data)) == stlHeaderSize+4+uint64(count)*stlFacetSize
}

func parseBinarySTL(data []byte, name string) (*RawMesh, error) {
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	want := stlHeaderSize + 4 + uint64(count)*stlFacetSize
	if uint64(len(data)) < want {
		return nil, fmt.Errorf("binary stl truncated: want %d bytes, got %d", want, len(data))
	}

	mesh := &RawMesh{Name: name}
	off := stlHeaderSize + 4
	for i := uint32(0); i < count; i++ {
		var vec [4]mgl32.Vec3
		for j := range vec {
			for k := 0; k < 3; k++ {
				vec[j][k] = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
				off += 4
			}
		}
		off += 2 // attribute byte count
		addFacet(mesh, vec[0], [3]mgl32.Vec3{vec[1], vec[2], vec[3]})
	}
	return mesh, nil
}

func parseASCIISTL(data []byte, name string) (*RawMesh, error) {
	mesh := &RawMesh{Name: name}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0

	var normal mgl32.Vec3
	var corners []mgl32.Vec3

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		case "facet":
			if len(fields) < 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("line %d: malformed facet", lineNum)
			}
			v, err := parseSTLVec(fields[2:5])
			if err != nil {
				return nil, fmt.Errorf("line %d: facet normal: %w", lineNum, err)
			}
			normal = v
			corners = corners[:0]
		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: malformed vertex", lineNum)
			}
			v, err := parseSTLVec(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNum, err)
			}
			corners = append(corners, v)
		case "endfacet":
			if len(corners) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices, want 3", lineNum, len(corners))
			}
			addFacet(mesh, normal, [3]mgl32.Vec3{corners[0], corners[1], corners[2]})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stl: %w", err)
	}
	return mesh, nil
}

// addFacet appends one triangle. A zero facet normal is replaced by the
// geometric one.
func addFacet(mesh *RawMesh, normal mgl32.Vec3, tri [3]mgl32.Vec3) {
	if normal.Len() == 0 {
		if n := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0])); n.Len() > 0 {
			normal = n.Normalize()
		}
	}
	base := uint32(len(mesh.Positions))
	for _, p := range tri {
		mesh.Positions = append(mesh.Positions, p)
		mesh.Normals = append(mesh.Normals, normal)
	}
	mesh.Faces = append(mesh.Faces, []uint32{base, base + 1, base + 2})
}

func parseSTLVec(fields []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(x)
	}
	return v, nil
}
