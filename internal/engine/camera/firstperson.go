package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshview/internal/engine/input"
)

// FirstPerson is a free fly camera. Front is kept unit length.
type FirstPerson struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32 // degrees
	Pitch    float32 // degrees
}

func (f *FirstPerson) look(yawDelta, pitchDelta float32) {
	f.Yaw += yawDelta
	f.Pitch = clampPitch(f.Pitch + pitchDelta)
	f.Front = direction(f.Yaw, f.Pitch).Normalize()
}

func (f *FirstPerson) zoom(amount, minDistance float32) {}

func (f *FirstPerson) move(keys input.KeySet, speed float32) {
	right := f.Front.Cross(f.Up).Normalize()

	if keys.Down(input.KeyForward) {
		f.Position = f.Position.Add(f.Front.Mul(speed))
	}
	if keys.Down(input.KeyBack) {
		f.Position = f.Position.Sub(f.Front.Mul(speed))
	}
	if keys.Down(input.KeyLeft) {
		f.Position = f.Position.Sub(right.Mul(speed))
	}
	if keys.Down(input.KeyRight) {
		f.Position = f.Position.Add(right.Mul(speed))
	}
	if keys.Down(input.KeyAscend) {
		f.Position = f.Position.Add(f.Up.Mul(speed))
	}
	if keys.Down(input.KeyDescend) {
		f.Position = f.Position.Sub(f.Up.Mul(speed))
	}
}

func (f *FirstPerson) view(mgl32.Vec3) View {
	return View{
		View:  mgl32.LookAtV(f.Position, f.Position.Add(f.Front), f.Up),
		Model: mgl32.Ident4(),
		Eye:   f.Position,
	}
}
