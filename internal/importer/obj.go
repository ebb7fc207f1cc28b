package importer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// objCorner is one face corner: 0-based indices, -1 when absent.
type objCorner struct {
	pos, uv, normal int
}

// objBuilder accumulates the current object's vertices. OBJ indexes
// positions, texcoords and normals separately, so each distinct corner
// triple becomes one vertex.
type objBuilder struct {
	mesh          *RawMesh
	normals       []mgl32.Vec3
	texCoords     []mgl32.Vec2
	corners       map[objCorner]uint32
	missingNormal bool
	anyUV         bool
}

func newOBJBuilder(name string) *objBuilder {
	return &objBuilder{
		mesh:    &RawMesh{Name: name},
		corners: make(map[objCorner]uint32),
	}
}

func (b *objBuilder) vertex(c objCorner, positions, normals []mgl32.Vec3, uvs []mgl32.Vec2) uint32 {
	if idx, ok := b.corners[c]; ok {
		return idx
	}
	idx := uint32(len(b.mesh.Positions))
	b.mesh.Positions = append(b.mesh.Positions, positions[c.pos])

	var n mgl32.Vec3
	if c.normal >= 0 {
		n = normals[c.normal]
	} else {
		b.missingNormal = true
	}
	b.normals = append(b.normals, n)

	var uv mgl32.Vec2
	if c.uv >= 0 {
		uv = uvs[c.uv]
		b.anyUV = true
	}
	b.texCoords = append(b.texCoords, uv)

	b.corners[c] = idx
	return idx
}

func (b *objBuilder) finish() *RawMesh {
	if !b.missingNormal {
		b.mesh.Normals = b.normals
	}
	if b.anyUV {
		b.mesh.TexCoords = b.texCoords
	}
	return b.mesh
}

// parseOBJ reads a Wavefront OBJ stream. Each "o" or "g" statement starts a
// new child node carrying one mesh.
func parseOBJ(r io.Reader, name string) (*Scene, error) {
	var positions, normals []mgl32.Vec3
	var uvs []mgl32.Vec2

	scene := &Scene{Root: &Node{Name: name}}
	cur := newOBJBuilder(name)

	flush := func() {
		if len(cur.mesh.Faces) == 0 {
			return
		}
		scene.Root.Children = append(scene.Root.Children, &Node{
			Name:   cur.mesh.Name,
			Meshes: []int{len(scene.Meshes)},
		})
		scene.Meshes = append(scene.Meshes, cur.finish())
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNum, err)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: texture coord: %w", lineNum, err)
			}
			uvs = append(uvs, mgl32.Vec2{v[0], v[1]})

		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNum, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			face := make([]uint32, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := parseCorner(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				face = append(face, cur.vertex(c, positions, normals, uvs))
			}
			cur.mesh.Faces = append(cur.mesh.Faces, face)

		case "o", "g":
			objName := "default"
			if len(fields) > 1 {
				objName = strings.Join(fields[1:], " ")
			}
			if len(cur.mesh.Faces) > 0 {
				flush()
				cur = newOBJBuilder(objName)
			} else {
				cur.mesh.Name = objName
			}

		default:
			// mtllib, usemtl, s, l, p and friends carry nothing we draw.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	flush()
	return scene, nil
}

// parseCorner parses v, v/vt, v//vn or v/vt/vn and resolves 1-based and
// negative indices against the counts seen so far.
func parseCorner(tok string, nPos, nUV, nNormal int) (objCorner, error) {
	parts := strings.Split(tok, "/")
	c := objCorner{pos: -1, uv: -1, normal: -1}

	var err error
	if c.pos, err = resolveOBJIndex(parts[0], nPos); err != nil || c.pos < 0 {
		return c, fmt.Errorf("bad position index %q", parts[0])
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.uv, err = resolveOBJIndex(parts[1], nUV); err != nil || c.uv < 0 {
			return c, fmt.Errorf("bad texture index %q", parts[1])
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.normal, err = resolveOBJIndex(parts[2], nNormal); err != nil || c.normal < 0 {
			return c, fmt.Errorf("bad normal index %q", parts[2])
		}
	}
	return c, nil
}

// resolveOBJIndex returns a 0-based index, or -1 when out of range.
func resolveOBJIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return -1, err
	}
	switch {
	case idx > 0 && idx <= count:
		return idx - 1, nil
	case idx < 0 && -idx <= count:
		return count + idx, nil
	}
	return -1, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("need %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
