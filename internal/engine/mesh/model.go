package mesh

import (
	"github.com/Faultbox/meshview/internal/geometry"
)

// Model is the loaded scene: drawables in import order plus the bounds
// used to place the camera.
type Model struct {
	Meshes []*Drawable
	Bounds geometry.BoundingVolume
}

// NewModel computes bounds from the CPU-side meshes and uploads each one.
func NewModel(meshes []geometry.Mesh) *Model {
	m := &Model{
		Meshes: make([]*Drawable, len(meshes)),
		Bounds: geometry.ComputeBounds(meshes),
	}
	for i := range meshes {
		m.Meshes[i] = NewDrawable(meshes[i])
	}
	return m
}

// Draw draws every mesh with the currently bound program.
func (m *Model) Draw() {
	for _, d := range m.Meshes {
		d.Draw()
	}
}

// Delete releases all GPU buffers.
func (m *Model) Delete() {
	for _, d := range m.Meshes {
		d.Delete()
	}
	m.Meshes = nil
}
