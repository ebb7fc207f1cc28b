// Package importer reads model files into flat lists of drawable meshes.
//
// Every format is first parsed into a Scene node tree. The tree is then
// walked depth-first and each referenced mesh goes through the same
// post-processing: triangulation, smooth normal generation when normals are
// missing, V flip, and identical-vertex joining. Node transforms are not
// applied; meshes are assumed to be authored in object space.
package importer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/geometry"
	"github.com/Faultbox/meshview/internal/logger"
)

var (
	// ErrUnsupportedFormat is returned for file types no parser handles.
	ErrUnsupportedFormat = errors.New("unsupported model format")
	// ErrNoRootNode is returned when the parsed scene has no root node.
	ErrNoRootNode = errors.New("scene has no root node")
	// ErrIncompleteScene is returned when the scene holds no usable geometry.
	ErrIncompleteScene = errors.New("scene is incomplete")
)

// ImportError reports why a model could not be imported.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Format identifies a model file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatOBJ
	FormatSTL
	FormatGLTF
)

func (f Format) String() string {
	switch f {
	case FormatOBJ:
		return "obj"
	case FormatSTL:
		return "stl"
	case FormatGLTF:
		return "gltf"
	}
	return "unknown"
}

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return FormatOBJ
	case ".stl":
		return FormatSTL
	case ".gltf", ".glb":
		return FormatGLTF
	}
	return FormatUnknown
}

// Import loads the model at path and returns its meshes in scene order.
// All failures are reported as *ImportError.
func Import(path string) ([]geometry.Mesh, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, &ImportError{Path: path, Err: ErrUnsupportedFormat}
	}

	var scene *Scene
	var err error
	if format == FormatGLTF {
		// gltf.Open resolves external buffers relative to the file.
		var doc *gltf.Document
		doc, err = gltf.Open(path)
		if err == nil {
			scene, err = parseGLTF(doc)
		}
	} else {
		var f *os.File
		f, err = os.Open(path)
		if err == nil {
			scene, err = parse(f, filepath.Base(path), format)
			f.Close()
		}
	}
	if err != nil {
		return nil, &ImportError{Path: path, Err: err}
	}

	meshes, err := Flatten(scene)
	if err != nil {
		return nil, &ImportError{Path: path, Err: err}
	}

	vertices, indices := geometry.Stats(meshes)
	logger.Debug("model file parsed",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("meshes", len(meshes)),
		zap.Int("vertices", vertices),
		zap.Int("indices", indices),
	)
	return meshes, nil
}

// Load parses a model from r. name labels errors and default mesh names.
func Load(r io.Reader, name string, format Format) ([]geometry.Mesh, error) {
	scene, err := parse(r, name, format)
	if err != nil {
		return nil, &ImportError{Path: name, Err: err}
	}
	meshes, err := Flatten(scene)
	if err != nil {
		return nil, &ImportError{Path: name, Err: err}
	}
	return meshes, nil
}

func parse(r io.Reader, name string, format Format) (*Scene, error) {
	switch format {
	case FormatOBJ:
		return parseOBJ(r, name)
	case FormatSTL:
		return parseSTL(r, name)
	case FormatGLTF:
		doc := new(gltf.Document)
		if err := gltf.NewDecoder(r).Decode(doc); err != nil {
			return nil, fmt.Errorf("decode gltf: %w", err)
		}
		return parseGLTF(doc)
	}
	return nil, ErrUnsupportedFormat
}
