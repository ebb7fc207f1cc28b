package geometry

import "github.com/go-gl/mathgl/mgl32"

// DefaultRadius is used when there is no geometry to measure.
const DefaultRadius float32 = 5.0

// BoundingVolume is the axis-aligned box enclosing a model plus the
// center and radius derived from it.
type BoundingVolume struct {
	Min    mgl32.Vec3
	Max    mgl32.Vec3
	Center mgl32.Vec3
	Radius float32
}

// ComputeBounds folds min/max over every vertex of every mesh.
//
// The radius is half the box diagonal, not a minimal bounding sphere.
// Camera distance defaults are tuned against this value, so keep it.
// With no meshes, or an empty first mesh, the center is the origin and the
// radius is DefaultRadius.
func ComputeBounds(meshes []Mesh) BoundingVolume {
	if len(meshes) == 0 || len(meshes[0].Vertices) == 0 {
		return BoundingVolume{Radius: DefaultRadius}
	}

	minPos := meshes[0].Vertices[0].Position
	maxPos := minPos

	for i := range meshes {
		for _, v := range meshes[i].Vertices {
			minPos = componentMin(minPos, v.Position)
			maxPos = componentMax(maxPos, v.Position)
		}
	}

	return BoundingVolume{
		Min:    minPos,
		Max:    maxPos,
		Center: minPos.Add(maxPos).Mul(0.5),
		Radius: maxPos.Sub(minPos).Len() * 0.5,
	}
}

// Size returns the box extents.
func (b BoundingVolume) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

func componentMin(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

func componentMax(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}
