package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshview/internal/engine/input"
)

// Orbit circles the model center. Offset translates the model itself;
// the camera follows it.
type Orbit struct {
	Yaw      float32 // degrees
	Pitch    float32 // degrees
	Distance float32
	Offset   mgl32.Vec3
}

func (o *Orbit) look(yawDelta, pitchDelta float32) {
	o.Yaw += yawDelta
	o.Pitch = clampPitch(o.Pitch + pitchDelta)
}

func (o *Orbit) zoom(amount, minDistance float32) {
	o.Distance -= amount * o.Distance
	if o.Distance < minDistance {
		o.Distance = minDistance
	}
}

// move shifts the model: forward/back along world Y, left/right along the
// camera's right vector.
func (o *Orbit) move(keys input.KeySet, speed float32) {
	if keys.Down(input.KeyForward) {
		o.Offset[1] += speed
	}
	if keys.Down(input.KeyBack) {
		o.Offset[1] -= speed
	}

	right := direction(o.Yaw, o.Pitch).Cross(worldUp).Normalize()
	if keys.Down(input.KeyLeft) {
		o.Offset = o.Offset.Sub(right.Mul(speed))
	}
	if keys.Down(input.KeyRight) {
		o.Offset = o.Offset.Add(right.Mul(speed))
	}
}

// Eye returns the camera position for the given model center.
func (o *Orbit) Eye(center mgl32.Vec3) mgl32.Vec3 {
	return center.Add(o.Offset).Add(direction(o.Yaw, o.Pitch).Mul(o.Distance))
}

func (o *Orbit) view(center mgl32.Vec3) View {
	eye := o.Eye(center)
	return View{
		View:  mgl32.LookAtV(eye, center.Add(o.Offset), worldUp),
		Model: mgl32.Translate3D(o.Offset[0], o.Offset[1], o.Offset[2]),
		Eye:   eye,
	}
}
